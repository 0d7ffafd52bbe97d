package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/input"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, eps), "want %v, got %v", want, got)
}

func TestFlyControlForwardDisplacement(t *testing.T) {
	c := NewFlyControl(mgl32.Vec3{0, 4, 3}, mgl32.Vec3{0, 1, -10}, WithSpeed(2))
	start := c.Position()
	forward := c.Forward()

	c.HandleInput(nil, 1.0, input.NewSnapshot(input.WithKeysDown(common.KeyW)))

	moved := c.Position().Sub(start)
	assert.InDelta(t, 2.0, moved.Len(), eps)
	assertVec3(t, forward.Mul(2), moved)
	assertVec3(t, forward, c.Forward())
}

func TestFlyControlStrafeAndVertical(t *testing.T) {
	c := NewFlyControl(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, WithSpeed(3))

	c.HandleInput(nil, 0.5, input.NewSnapshot(input.WithKeysDown(common.KeyD, common.KeyE)))
	assertVec3(t, mgl32.Vec3{1.5, 1.5, 0}, c.Position())

	c.HandleInput(nil, 0.5, input.NewSnapshot(input.WithKeysDown(common.KeyA, common.KeyQ, common.KeyS)))
	assertVec3(t, mgl32.Vec3{0, 0, 1.5}, c.Position())
}

func TestFlyControlRotatesOnlyWithLeftButton(t *testing.T) {
	c := NewFlyControl(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1})
	drag := input.WithMouse(mgl32.Vec2{}, mgl32.Vec2{10, 0})

	c.HandleInput(nil, 0.1, input.NewSnapshot(drag))
	assertVec3(t, mgl32.Vec3{0, 0, -1}, c.Forward())

	c.HandleInput(nil, 0.1, input.NewSnapshot(drag, input.WithButtonsDown(common.MouseButtonLeft)))
	// yaw -= 1 radian: forward swings towards +X
	want := mgl32.Vec3{math32.Sin(1), 0, -math32.Cos(1)}
	assertVec3(t, want, c.Forward())
	assert.InDelta(t, 0, c.Right().Dot(c.Forward()), eps)
	assert.InDelta(t, 0, c.Up().Dot(c.Forward()), eps)
}

func TestFlyControlFromKeepsPose(t *testing.T) {
	fixed := NewFixedControl(mgl32.Vec3{0, 4, 3}, mgl32.Vec3{0, 1, -10})
	fly := NewFlyControlFrom(fixed)

	assertVec3(t, fixed.Position(), fly.Position())
	assertVec3(t, fixed.Forward(), fly.Forward())
	assert.True(t, fixed.ViewMatrix().ApproxEqualThreshold(fly.ViewMatrix(), eps))
}

func TestFixedControlIgnoresInput(t *testing.T) {
	c := NewFixedControl(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
	c.HandleInput(nil, 1, input.NewSnapshot(input.WithKeysDown(common.KeyW), input.WithScroll(3)))
	c.Update(nil, 1)

	assertVec3(t, mgl32.Vec3{0, 0, 5}, c.Position())
	assertVec3(t, mgl32.Vec3{0, 0, -1}, c.Forward())
	assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Right())
	assertVec3(t, mgl32.Vec3{0, 1, 0}, c.Up())

	frozen := FreezeControl(c)
	assert.Equal(t, c.ViewMatrix(), frozen.ViewMatrix())
}

func TestFollowControlTracksTarget(t *testing.T) {
	target := mgl32.Vec3{0, 0, -5}
	c := NewFollowControl(mgl32.Vec3{}, func() mgl32.Vec3 { return target })
	assertVec3(t, mgl32.Vec3{0, 0, -1}, c.Forward())

	target = mgl32.Vec3{5, 0, 0}
	c.Update(nil, 0.016)
	assertVec3(t, mgl32.Vec3{0, 0, 0}, c.Position())
	assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Forward())

	eye := c.ViewMatrix().Mul4x1(mgl32.Vec4{5, 0, 0, 1})
	assert.InDelta(t, -5, eye.Z(), eps, "target sits straight ahead")
}

func TestOrbitControl(t *testing.T) {
	target := mgl32.Vec3{1, 2, 3}
	c := NewOrbitControl(func() mgl32.Vec3 { return target }, WithDistance(4))
	assertVec3(t, mgl32.Vec3{1, 2, 7}, c.Position())

	target = mgl32.Vec3{0, 0, 0}
	c.Update(nil, 0)
	assertVec3(t, mgl32.Vec3{0, 0, 4}, c.Position())
	assert.InDelta(t, 4, c.Position().Sub(c.Focal()).Len(), eps)
}

func TestOrbitControlZoomClamps(t *testing.T) {
	c := NewOrbitControl(func() mgl32.Vec3 { return mgl32.Vec3{} }, WithDistance(10), WithZoomSpeed(1))
	zoom := func(dy float32) input.Snapshot {
		return input.NewSnapshot(
			input.WithMouse(mgl32.Vec2{}, mgl32.Vec2{0, dy}),
			input.WithButtonsDown(common.MouseButtonRight),
		)
	}

	c.HandleInput(nil, 1, zoom(1))
	assert.InDelta(t, 20, c.Distance(), eps)

	c.HandleInput(nil, 1, zoom(-10))
	assert.Equal(t, MinOrbitDistance, c.Distance())
	assert.InDelta(t, 1, c.Position().Len(), eps)

	tiny := NewOrbitControl(func() mgl32.Vec3 { return mgl32.Vec3{} }, WithDistance(0))
	assert.Equal(t, MinOrbitDistance, tiny.Distance())
}

func TestPerspectiveScrollZoom(t *testing.T) {
	p := NewPerspectiveProjection(WithAspect(2))
	require.Equal(t, DefaultFovY, p.FovY())

	p.HandleInput(nil, 0, input.NewSnapshot(input.WithScroll(10)))
	assert.InDelta(t, DefaultFovY*math32.Pow(1.002, 10), p.FovY(), eps)

	p.HandleInput(nil, 0, input.NewSnapshot(input.WithScroll(100000)))
	assert.Equal(t, MaxFovY, p.FovY())
	p.HandleInput(nil, 0, input.NewSnapshot(input.WithScroll(-1e7)))
	assert.Equal(t, MinFovY, p.FovY())

	want := mgl32.Perspective(MinFovY, 2, 0.1, 100)
	assert.Equal(t, want, p.ProjectionMatrix())
}

func TestOrthographicScrollZoom(t *testing.T) {
	p := NewOrthographicProjection(WithZoom(2), WithSensitivity(1))
	p.HandleInput(nil, 0, input.NewSnapshot(input.WithScroll(1)))
	assert.InDelta(t, 4, p.Height(), eps)

	p.HandleInput(nil, 0, input.NewSnapshot(input.WithScroll(-3)))
	assert.InDelta(t, 0.5, p.Height(), eps)
	assert.GreaterOrEqual(t, p.Height(), float32(0))

	p.SetAspect(2)
	m := p.ProjectionMatrix()
	assert.InDelta(t, 2, m.At(0, 0), eps)
	assert.InDelta(t, 4, m.At(1, 1), eps)

	neg := NewOrthographicProjection(WithZoom(-1))
	assert.Equal(t, float32(0), neg.Height())
}

type uniformRecorder struct {
	vec3 map[string]mgl32.Vec3
	mat4 map[string]mgl32.Mat4
}

func (u *uniformRecorder) LoadVec3(name string, v mgl32.Vec3) { u.vec3[name] = v }
func (u *uniformRecorder) LoadMat4(name string, m mgl32.Mat4, _ bool) {
	u.mat4[name] = m
}

func TestCameraComposition(t *testing.T) {
	fly := NewFlyControl(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
	cam := NewCamera(fly, NewPerspectiveProjection(WithAspect(1.5)))

	assert.Equal(t, float32(1.5), cam.Aspect())
	cam.SetAspect(2)
	assert.Equal(t, float32(2), cam.Projection().Aspect())

	rec := &uniformRecorder{vec3: map[string]mgl32.Vec3{}, mat4: map[string]mgl32.Mat4{}}
	cam.Apply(rec)
	assert.Equal(t, cam.ViewMatrix(), rec.mat4["view"])
	assert.Equal(t, cam.ProjectionMatrix(), rec.mat4["projection"])
	assert.Equal(t, mgl32.Vec3{0, 0, 5}, rec.vec3["viewPos"])
	assert.Equal(t, cam.ProjectionMatrix().Mul4(cam.ViewMatrix()), cam.ViewProjectionMatrix())

	cam.HandleInput(1, input.NewSnapshot(input.WithKeysDown(common.KeyW), input.WithScroll(1)))
	cam.Update(1)
	assertVec3(t, mgl32.Vec3{0, 0, 4}, cam.Position())

	ortho := NewOrthographicProjection()
	cam.SetProjection(ortho)
	assert.Same(t, ortho, cam.Projection())
	cam.SetControl(FreezeControl(fly))
	cam.HandleInput(1, input.NewSnapshot(input.WithKeysDown(common.KeyW)))
	assertVec3(t, mgl32.Vec3{0, 0, 4}, cam.Position())
}

func TestCameraRotationCycles(t *testing.T) {
	mk := func(aspect float32) Camera {
		return NewCamera(NewFixedControl(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{}), NewPerspectiveProjection(WithAspect(aspect)))
	}
	a, b, c := mk(1), mk(1), mk(1)
	r := NewCameraRotation(a, b, c)
	require.Equal(t, 2, r.Len())

	r.SetAspect(1.75)
	for i := 0; i < 3; i++ {
		r.SwitchActive()
		assert.Equal(t, float32(1.75), r.Active().Aspect(), "switch %d keeps the aspect", i)
		assert.Equal(t, 2, r.Len())
	}
	assert.Same(t, a, r.Active())

	r.SwitchActive()
	assert.Same(t, b, r.Active())
}

func TestCameraRotationEmptyQueue(t *testing.T) {
	a := NewCamera(NewFixedControl(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{}), NewPerspectiveProjection())
	r := NewCameraRotation(a)
	r.SwitchActive()
	assert.Same(t, a, r.Active())
	assert.Zero(t, r.Len())

	d := NewCamera(NewFixedControl(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{}), NewPerspectiveProjection())
	r.Enqueue(d)
	r.SwitchActive()
	assert.Same(t, d, r.Active())
}
