package camera

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/input"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultFovY is the vertical field of view of a new perspective projection.
	DefaultFovY float32 = math32.Pi / 4
	// MinFovY and MaxFovY bound the field of view inside the open interval (0, π).
	MinFovY float32 = 1e-3
	MaxFovY float32 = math32.Pi - 1e-3

	// DefaultSensitivity is the scroll zoom sensitivity of both projections.
	DefaultSensitivity float32 = 0.002
)

// Projection owns a camera's lens: aspect ratio and the projection matrix.
type Projection interface {
	// Update advances the projection by dt seconds.
	//
	// Parameters:
	//   - cam: the camera the projection belongs to
	//   - dt: frame time in seconds
	Update(cam Camera, dt float32)

	// HandleInput applies one frame of input, zooming on scroll.
	//
	// Parameters:
	//   - cam: the camera the projection belongs to
	//   - dt: frame time in seconds
	//   - in: the input snapshot of the frame
	HandleInput(cam Camera, dt float32, in input.Snapshot)

	// Aspect returns the width / height ratio.
	Aspect() float32

	// SetAspect sets the width / height ratio.
	SetAspect(aspect float32)

	// ProjectionMatrix returns the view-to-clip transform.
	ProjectionMatrix() mgl32.Mat4
}

// lens is the state shared by both projections. zoom is the field of view or the height.
type lens struct {
	aspect      float32
	near        float32
	far         float32
	sensitivity float32
	zoom        float32
}

func (l *lens) Aspect() float32 {
	return l.aspect
}

func (l *lens) SetAspect(aspect float32) {
	l.aspect = aspect
}

// scrollFactor returns (1+sensitivity)^scroll.
func (l *lens) scrollFactor(in input.Snapshot) float32 {
	return math32.Pow(1+l.sensitivity, in.Scroll())
}

// PerspectiveProjection is a symmetric perspective frustum.
type PerspectiveProjection struct {
	lens
}

var _ Projection = &PerspectiveProjection{}

// NewPerspectiveProjection creates a perspective projection with a π/4 field of view,
// clip planes 0.1 and 100 and aspect 1 unless overridden.
//
// Parameters:
//   - options: lens options
//
// Returns:
//   - *PerspectiveProjection: the new projection
func NewPerspectiveProjection(options ...ProjectionBuilderOption) *PerspectiveProjection {
	p := &PerspectiveProjection{lens: lens{
		aspect:      1,
		near:        0.1,
		far:         100,
		sensitivity: DefaultSensitivity,
		zoom:        DefaultFovY,
	}}
	for _, opt := range options {
		opt(&p.lens)
	}
	p.zoom = mgl32.Clamp(p.zoom, MinFovY, MaxFovY)
	return p
}

// FovY returns the vertical field of view in radians.
func (p *PerspectiveProjection) FovY() float32 {
	return p.zoom
}

func (p *PerspectiveProjection) Update(Camera, float32) {}

func (p *PerspectiveProjection) HandleInput(_ Camera, _ float32, in input.Snapshot) {
	if in.Scroll() == 0 {
		return
	}
	p.zoom = mgl32.Clamp(p.zoom*p.scrollFactor(in), MinFovY, MaxFovY)
}

func (p *PerspectiveProjection) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(p.zoom, p.aspect, p.near, p.far)
}

// OrthographicProjection is a box projection whose visible height zooms on scroll.
type OrthographicProjection struct {
	lens
}

var _ Projection = &OrthographicProjection{}

// NewOrthographicProjection creates an orthographic projection with height 1, clip planes
// 0 and 100 and aspect 1 unless overridden.
//
// Parameters:
//   - options: lens options
//
// Returns:
//   - *OrthographicProjection: the new projection
func NewOrthographicProjection(options ...ProjectionBuilderOption) *OrthographicProjection {
	p := &OrthographicProjection{lens: lens{
		aspect:      1,
		near:        0,
		far:         100,
		sensitivity: DefaultSensitivity,
		zoom:        1,
	}}
	for _, opt := range options {
		opt(&p.lens)
	}
	p.zoom = max(p.zoom, 0)
	return p
}

// Height returns the visible height in world units.
func (p *OrthographicProjection) Height() float32 {
	return p.zoom
}

func (p *OrthographicProjection) Update(Camera, float32) {}

func (p *OrthographicProjection) HandleInput(_ Camera, _ float32, in input.Snapshot) {
	if in.Scroll() == 0 {
		return
	}
	p.zoom = max(p.zoom*p.scrollFactor(in), 0)
}

func (p *OrthographicProjection) ProjectionMatrix() mgl32.Mat4 {
	halfH := p.zoom / 2
	halfW := halfH * p.aspect
	return mgl32.Ortho(-halfW, halfW, -halfH, halfH, p.near, p.far)
}
