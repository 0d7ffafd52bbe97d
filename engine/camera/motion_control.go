package camera

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/input"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	worldUp      = mgl32.Vec3{0, 1, 0}
	localForward = mgl32.Vec3{0, 0, -1}
	localRight   = mgl32.Vec3{1, 0, 0}
)

// Target supplies a live world-space point, such as the position of a moving object.
// It is evaluated on every Update, never cached between frames.
type Target func() mgl32.Vec3

// MotionControl owns a camera's position and orientation.
type MotionControl interface {
	// Update advances the control by dt seconds.
	//
	// Parameters:
	//   - cam: the camera the control belongs to
	//   - dt: frame time in seconds
	Update(cam Camera, dt float32)

	// HandleInput applies one frame of input.
	//
	// Parameters:
	//   - cam: the camera the control belongs to
	//   - dt: frame time in seconds
	//   - in: the input snapshot of the frame
	HandleInput(cam Camera, dt float32, in input.Snapshot)

	// Position returns the world-space eye position.
	Position() mgl32.Vec3

	// Forward returns the unit view direction.
	Forward() mgl32.Vec3

	// Right returns the unit right vector.
	Right() mgl32.Vec3

	// Up returns the unit up vector.
	Up() mgl32.Vec3

	// ViewMatrix returns the world-to-view transform.
	ViewMatrix() mgl32.Mat4
}

// orientation is a yaw about world up followed by a pitch about the local right axis.
// Composing the two rotations this way never introduces roll.
type orientation struct {
	yaw   float32
	pitch float32
}

// orientationFromForward returns the yaw and pitch that point -Z along f.
func orientationFromForward(f mgl32.Vec3) orientation {
	f = f.Normalize()
	return orientation{
		yaw:   math32.Atan2(-f.X(), -f.Z()),
		pitch: math32.Asin(mgl32.Clamp(f.Y(), -1, 1)),
	}
}

func (o orientation) quat() mgl32.Quat {
	return mgl32.QuatRotate(o.yaw, worldUp).Mul(mgl32.QuatRotate(o.pitch, localRight))
}

func (o orientation) forward() mgl32.Vec3 {
	return o.quat().Rotate(localForward)
}

func (o orientation) right() mgl32.Vec3 {
	return o.quat().Rotate(localRight)
}

func (o orientation) up() mgl32.Vec3 {
	return o.quat().Rotate(worldUp)
}

// lookBasis returns the forward, right and up vectors of an eye looking from eye to target.
func lookBasis(eye, target, up mgl32.Vec3) (forward, right, trueUp mgl32.Vec3) {
	forward = target.Sub(eye).Normalize()
	right = forward.Cross(up).Normalize()
	trueUp = right.Cross(forward).Normalize()
	return forward, right, trueUp
}

func lookAt(eye, target, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, target, up)
}

type fixedControl struct {
	position mgl32.Vec3
	forward  mgl32.Vec3
	right    mgl32.Vec3
	up       mgl32.Vec3
	view     mgl32.Mat4
}

var _ MotionControl = &fixedControl{}

// NewFixedControl creates a control that looks from position at target and ignores input.
//
// Parameters:
//   - position: the eye position
//   - target: the point looked at
//
// Returns:
//   - MotionControl: the immutable control
func NewFixedControl(position, target mgl32.Vec3) MotionControl {
	f, r, u := lookBasis(position, target, worldUp)
	return &fixedControl{
		position: position,
		forward:  f,
		right:    r,
		up:       u,
		view:     lookAt(position, target, worldUp),
	}
}

// FreezeControl snapshots another control into an immutable one.
//
// Parameters:
//   - c: the control to copy
//
// Returns:
//   - MotionControl: a fixed control with the same pose
func FreezeControl(c MotionControl) MotionControl {
	return &fixedControl{
		position: c.Position(),
		forward:  c.Forward(),
		right:    c.Right(),
		up:       c.Up(),
		view:     c.ViewMatrix(),
	}
}

func (c *fixedControl) Update(Camera, float32)                      {}
func (c *fixedControl) HandleInput(Camera, float32, input.Snapshot) {}
func (c *fixedControl) Position() mgl32.Vec3                        { return c.position }
func (c *fixedControl) Forward() mgl32.Vec3                         { return c.forward }
func (c *fixedControl) Right() mgl32.Vec3                           { return c.right }
func (c *fixedControl) Up() mgl32.Vec3                              { return c.up }
func (c *fixedControl) ViewMatrix() mgl32.Mat4                      { return c.view }

type followControl struct {
	position mgl32.Vec3
	target   Target
	focal    mgl32.Vec3
}

var _ MotionControl = &followControl{}

// NewFollowControl creates a control that stays at position and keeps looking at a live target.
//
// Parameters:
//   - position: the eye position
//   - target: the live point looked at
//
// Returns:
//   - MotionControl: the following control
func NewFollowControl(position mgl32.Vec3, target Target) MotionControl {
	return &followControl{
		position: position,
		target:   target,
		focal:    target(),
	}
}

func (c *followControl) Update(Camera, float32) {
	c.focal = c.target()
}

func (c *followControl) HandleInput(Camera, float32, input.Snapshot) {}

func (c *followControl) Position() mgl32.Vec3 {
	return c.position
}

func (c *followControl) Forward() mgl32.Vec3 {
	f, _, _ := lookBasis(c.position, c.focal, worldUp)
	return f
}

func (c *followControl) Right() mgl32.Vec3 {
	_, r, _ := lookBasis(c.position, c.focal, worldUp)
	return r
}

func (c *followControl) Up() mgl32.Vec3 {
	_, _, u := lookBasis(c.position, c.focal, worldUp)
	return u
}

func (c *followControl) ViewMatrix() mgl32.Mat4 {
	return lookAt(c.position, c.focal, worldUp)
}
