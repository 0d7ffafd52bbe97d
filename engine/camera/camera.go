// Package camera composes a Camera from two swappable strategies: a MotionControl that owns
// position and orientation, and a Projection that owns the lens.
package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// UniformLoader is the subset of a shader program the camera uploads through.
type UniformLoader interface {
	LoadVec3(name string, v mgl32.Vec3)
	LoadMat4(name string, m mgl32.Mat4, transpose bool)
}

type cameraImpl struct {
	mu *sync.Mutex

	control    MotionControl
	projection Projection
}

// Camera is the product of one MotionControl and one Projection. Position, orientation and the
// view matrix come from the control; aspect and the projection matrix come from the projection.
// Either strategy can be replaced at any time.
type Camera interface {
	// Control returns the motion control strategy.
	//
	// Returns:
	//   - MotionControl: the current control
	Control() MotionControl

	// SetControl replaces the motion control strategy.
	//
	// Parameters:
	//   - c: the new control
	SetControl(c MotionControl)

	// Projection returns the projection strategy.
	//
	// Returns:
	//   - Projection: the current projection
	Projection() Projection

	// SetProjection replaces the projection strategy. The aspect ratio of the previous projection
	// is not carried over.
	//
	// Parameters:
	//   - p: the new projection
	SetProjection(p Projection)

	// Position returns the world-space eye position.
	Position() mgl32.Vec3

	// Forward returns the unit view direction.
	Forward() mgl32.Vec3

	// Right returns the unit right vector.
	Right() mgl32.Vec3

	// Up returns the unit up vector.
	Up() mgl32.Vec3

	// Aspect returns the width / height ratio of the projection.
	Aspect() float32

	// SetAspect forwards a new width / height ratio to the projection.
	//
	// Parameters:
	//   - aspect: the new aspect ratio
	SetAspect(aspect float32)

	// ViewMatrix returns the world-to-view transform.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the view-to-clip transform.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns projection * view.
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix
	ViewProjectionMatrix() mgl32.Mat4

	// Update advances both strategies by dt seconds, control first.
	//
	// Parameters:
	//   - dt: frame time in seconds
	Update(dt float32)

	// HandleInput feeds one frame of input to both strategies, control first.
	//
	// Parameters:
	//   - dt: frame time in seconds
	//   - in: the input snapshot of the frame
	HandleInput(dt float32, in input.Snapshot)

	// Apply uploads view, projection and viewPos.
	//
	// Parameters:
	//   - p: the program receiving the uniforms
	Apply(p UniformLoader)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a camera from a control and a projection.
//
// Parameters:
//   - control: the motion control strategy
//   - projection: the projection strategy
//
// Returns:
//   - Camera: the new camera
func NewCamera(control MotionControl, projection Projection) Camera {
	return &cameraImpl{
		mu:         &sync.Mutex{},
		control:    control,
		projection: projection,
	}
}

func (c *cameraImpl) Control() MotionControl {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.control
}

func (c *cameraImpl) SetControl(control MotionControl) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.control = control
}

func (c *cameraImpl) Projection() Projection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projection
}

func (c *cameraImpl) SetProjection(p Projection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.projection = p
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	return c.Control().Position()
}

func (c *cameraImpl) Forward() mgl32.Vec3 {
	return c.Control().Forward()
}

func (c *cameraImpl) Right() mgl32.Vec3 {
	return c.Control().Right()
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	return c.Control().Up()
}

func (c *cameraImpl) Aspect() float32 {
	return c.Projection().Aspect()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.Projection().SetAspect(aspect)
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	return c.Control().ViewMatrix()
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	return c.Projection().ProjectionMatrix()
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

func (c *cameraImpl) Update(dt float32) {
	c.Control().Update(c, dt)
	c.Projection().Update(c, dt)
}

func (c *cameraImpl) HandleInput(dt float32, in input.Snapshot) {
	c.Control().HandleInput(c, dt, in)
	c.Projection().HandleInput(c, dt, in)
}

func (c *cameraImpl) Apply(p UniformLoader) {
	p.LoadMat4("view", c.ViewMatrix(), false)
	p.LoadMat4("projection", c.ProjectionMatrix(), false)
	p.LoadVec3("viewPos", c.Position())
}
