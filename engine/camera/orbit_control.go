package camera

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/input"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MinOrbitDistance is the closest an OrbitControl gets to its target.
const MinOrbitDistance float32 = 1

// OrbitControl is a third-person control circling a live target. Dragging with the left button
// rotates around the target; dragging vertically with the right button zooms.
type OrbitControl struct {
	rig
	target   Target
	focal    mgl32.Vec3
	position mgl32.Vec3
	orient   orientation
}

var _ MotionControl = &OrbitControl{}

// NewOrbitControl creates an orbit control around target. The initial distance comes from
// WithDistance and defaults to 10.
//
// Parameters:
//   - target: the live point orbited
//   - options: speed and distance options
//
// Returns:
//   - *OrbitControl: the new control
func NewOrbitControl(target Target, options ...ControlBuilderOption) *OrbitControl {
	c := &OrbitControl{
		rig:    newRig(options...),
		target: target,
	}
	c.distance = max(c.distance, MinOrbitDistance)
	c.refresh()
	return c
}

func (c *OrbitControl) refresh() {
	c.focal = c.target()
	c.position = c.focal.Sub(c.orient.forward().Mul(c.distance))
}

func (c *OrbitControl) Update(Camera, float32) {
	c.refresh()
}

func (c *OrbitControl) HandleInput(_ Camera, dt float32, in input.Snapshot) {
	delta := in.MouseDelta().Mul(dt)
	if delta.Len() == 0 {
		return
	}
	switch {
	case in.ButtonDown(common.MouseButtonLeft):
		c.Rotate(delta)
	case in.ButtonDown(common.MouseButtonRight):
		c.Zoom(delta)
	}
}

// Rotate moves the eye around the target by a mouse delta already scaled by frame time.
//
// Parameters:
//   - delta: mouse movement times dt
func (c *OrbitControl) Rotate(delta mgl32.Vec2) {
	sign := float32(1)
	if c.Up().Y() < 0 {
		sign = -1
	}
	c.orient.yaw += sign * delta.X() * c.rotationSpeed
	c.orient.pitch -= delta.Y() * c.rotationSpeed
	c.position = c.focal.Sub(c.orient.forward().Mul(c.distance))
}

// Zoom scales the distance by (1+zoomSpeed)^delta.y, never closer than MinOrbitDistance.
//
// Parameters:
//   - delta: mouse movement times dt
func (c *OrbitControl) Zoom(delta mgl32.Vec2) {
	c.distance = max(MinOrbitDistance, c.distance*math32.Pow(1+c.zoomSpeed, delta.Y()))
	c.position = c.focal.Sub(c.orient.forward().Mul(c.distance))
}

// Distance returns the distance between the eye and the target.
func (c *OrbitControl) Distance() float32 {
	return c.distance
}

// Focal returns the target position sampled by the last Update.
func (c *OrbitControl) Focal() mgl32.Vec3 {
	return c.focal
}

func (c *OrbitControl) Position() mgl32.Vec3 {
	return c.position
}

func (c *OrbitControl) Forward() mgl32.Vec3 {
	return c.orient.forward()
}

func (c *OrbitControl) Right() mgl32.Vec3 {
	return c.orient.right()
}

func (c *OrbitControl) Up() mgl32.Vec3 {
	return c.orient.up()
}

func (c *OrbitControl) ViewMatrix() mgl32.Mat4 {
	return lookAt(c.position, c.focal, c.Up())
}
