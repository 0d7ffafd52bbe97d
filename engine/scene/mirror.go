package scene

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/game_object"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/resource"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMirrorSize is the edge length in pixels of the mirror's render target.
const DefaultMirrorSize = 1024

// mirrorEyeOffset places the mirror camera in front of the surface.
var mirrorEyeOffset = mgl32.Vec3{0, 0, 3}

// Mirror is a surface that shows the scene as seen from a fixed camera in front of it. The
// scene is drawn into an off-screen target first, then the target's color texture is mapped
// onto the surface mesh in the main pass.
type Mirror struct {
	surface game_object.GameObject
	target  resource.RenderTarget
	frame   resource.Texture
}

// NewMirror allocates a square color+depth target for a mirror surface.
//
// Parameters:
//   - dev: the device that owns the target
//   - surface: the object whose mesh and transform show the reflection
//   - size: the target edge length in pixels, DefaultMirrorSize when not positive
//   - frame: texture drawn on a slightly larger copy of the surface behind it, nil for none
//
// Returns:
//   - *Mirror: the new mirror
//   - error: the completeness error of the render target
func NewMirror(dev device.Device, surface game_object.GameObject, size int, frame resource.Texture) (*Mirror, error) {
	if surface == nil || surface.Mesh() == nil {
		return nil, errors.New("mirror surface needs a mesh")
	}
	if size <= 0 {
		size = DefaultMirrorSize
	}
	target, err := resource.NewColorDepthTarget(dev, size, size)
	if err != nil {
		return nil, err
	}
	return &Mirror{surface: surface, target: target, frame: frame}, nil
}

// Surface returns the object the reflection is drawn on.
func (m *Mirror) Surface() game_object.GameObject {
	return m.surface
}

// Target returns the off-screen render target.
func (m *Mirror) Target() resource.RenderTarget {
	return m.target
}

// Frame returns the frame texture, or nil.
func (m *Mirror) Frame() resource.Texture {
	return m.frame
}

// Eye returns the position of the mirror camera.
func (m *Mirror) Eye() mgl32.Vec3 {
	return m.surface.Position().Add(mirrorEyeOffset)
}

// ViewMatrix returns the view of the mirror camera. It looks at the fixed world point
// (0, 0, 1) with +Y up, whatever the surface's rotation.
func (m *Mirror) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(m.Eye(), mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0})
}

// FrameMatrix returns the model matrix of the frame: the surface scaled by 1.1 in its plane
// and pushed slightly behind it.
func (m *Mirror) FrameMatrix() mgl32.Mat4 {
	return m.surface.ModelMatrix().
		Mul4(mgl32.Scale3D(1.1, 1.1, 1)).
		Mul4(mgl32.Translate3D(0, 0, -0.01))
}

// Texture returns the color texture the reflection is rendered into.
//
// Returns:
//   - resource.Texture: the color attachment
//   - error: resource.ErrNoAttachment if the target has no color attachment
func (m *Mirror) Texture() (resource.Texture, error) {
	return m.target.Texture(device.AttachmentColor0)
}

// Release destroys the render target. The surface and frame texture are not owned.
func (m *Mirror) Release() {
	m.target.Release()
}
