package camera

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// FlyControl is a free-flying control: the mouse turns it while the left button is held and
// W/S, A/D and Q/E move it along its forward, right and up axes.
type FlyControl struct {
	rig
	position mgl32.Vec3
	orient   orientation
}

var _ MotionControl = &FlyControl{}

// NewFlyControl creates a fly control at position facing focal.
//
// Parameters:
//   - position: the eye position
//   - focal: a point in the initial view direction
//   - options: speed options
//
// Returns:
//   - *FlyControl: the new control
func NewFlyControl(position, focal mgl32.Vec3, options ...ControlBuilderOption) *FlyControl {
	c := &FlyControl{
		rig:      newRig(options...),
		position: position,
		orient:   orientationFromForward(focal.Sub(position)),
	}
	return c
}

// NewFlyControlFrom creates a fly control that starts at the pose of another control.
//
// Parameters:
//   - from: the control to take position and view direction from
//   - options: speed options
//
// Returns:
//   - *FlyControl: the new control
func NewFlyControlFrom(from MotionControl, options ...ControlBuilderOption) *FlyControl {
	return &FlyControl{
		rig:      newRig(options...),
		position: from.Position(),
		orient:   orientationFromForward(from.Forward()),
	}
}

func (c *FlyControl) Update(Camera, float32) {}

func (c *FlyControl) HandleInput(_ Camera, dt float32, in input.Snapshot) {
	step := dt * c.speed
	var move mgl32.Vec3
	forward, right, up := c.Forward(), c.Right(), c.Up()
	if in.KeyDown(common.KeyW) {
		move = move.Add(forward.Mul(step))
	}
	if in.KeyDown(common.KeyS) {
		move = move.Sub(forward.Mul(step))
	}
	if in.KeyDown(common.KeyD) {
		move = move.Add(right.Mul(step))
	}
	if in.KeyDown(common.KeyA) {
		move = move.Sub(right.Mul(step))
	}
	if in.KeyDown(common.KeyE) {
		move = move.Add(up.Mul(step))
	}
	if in.KeyDown(common.KeyQ) {
		move = move.Sub(up.Mul(step))
	}
	c.position = c.position.Add(move)

	delta := in.MouseDelta().Mul(dt)
	if delta.Len() == 0 || !in.ButtonDown(common.MouseButtonLeft) {
		return
	}
	c.Rotate(delta)
}

// Rotate turns the control by a mouse delta already scaled by frame time. Horizontal motion is
// mirrored while upside down so dragging always moves the view the same way on screen.
//
// Parameters:
//   - delta: mouse movement times dt
func (c *FlyControl) Rotate(delta mgl32.Vec2) {
	sign := float32(1)
	if c.Up().Y() < 0 {
		sign = -1
	}
	c.orient.yaw -= sign * delta.X() * c.rotationSpeed
	c.orient.pitch -= delta.Y() * c.rotationSpeed
}

// SetPosition moves the control without changing its orientation.
func (c *FlyControl) SetPosition(p mgl32.Vec3) {
	c.position = p
}

func (c *FlyControl) Position() mgl32.Vec3 {
	return c.position
}

func (c *FlyControl) Forward() mgl32.Vec3 {
	return c.orient.forward()
}

func (c *FlyControl) Right() mgl32.Vec3 {
	return c.orient.right()
}

func (c *FlyControl) Up() mgl32.Vec3 {
	return c.orient.up()
}

func (c *FlyControl) ViewMatrix() mgl32.Mat4 {
	return lookAt(c.position, c.position.Add(c.Forward()), c.Up())
}
