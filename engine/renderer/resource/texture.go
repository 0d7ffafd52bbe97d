package resource

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
)

// texture is the implementation of the Texture interface.
type texture struct {
	resource
	desc device.TextureDescriptor
}

// Texture is a 2D texture with immutable storage.
type Texture interface {
	GpuResource

	// Descriptor returns the size, format and sampling state the texture was created with.
	//
	// Returns:
	//   - device.TextureDescriptor: the creation descriptor
	Descriptor() device.TextureDescriptor

	// Upload writes tightly packed RGBA8 pixels covering the whole texture.
	//
	// Parameters:
	//   - pixels: width*height*4 bytes
	//
	// Returns:
	//   - error: ErrOutOfBounds if pixels is too short, ErrReleased if released
	Upload(pixels []byte) error

	// BindUnit binds the texture to a sampler unit.
	//
	// Parameters:
	//   - unit: the texture unit
	BindUnit(unit uint32)

	// UnbindUnit clears a sampler unit.
	//
	// Parameters:
	//   - unit: the texture unit
	UnbindUnit(unit uint32)
}

var _ Texture = &texture{}

// NewTexture allocates a texture with the given descriptor. Levels below 1 are treated as 1.
//
// Parameters:
//   - dev: the device that owns the texture
//   - desc: size, format and sampling state
//
// Returns:
//   - Texture: the new texture
func NewTexture(dev device.Device, desc device.TextureDescriptor) Texture {
	if desc.Levels < 1 {
		desc.Levels = 1
	}
	return &texture{
		resource: newResource(dev, dev.CreateTexture(desc), dev.DeleteTexture),
		desc:     desc,
	}
}

func (t *texture) Descriptor() device.TextureDescriptor {
	return t.desc
}

func (t *texture) Upload(pixels []byte) error {
	if t.Released() {
		return ErrReleased
	}
	need := t.desc.Width * t.desc.Height * 4
	if len(pixels) < need {
		return fmt.Errorf("texture upload of %d bytes, need %d: %w", len(pixels), need, ErrOutOfBounds)
	}
	t.dev.TextureUpload(t.handle, t.desc.Width, t.desc.Height, pixels[:need], t.desc.Levels > 1)
	return nil
}

func (t *texture) BindUnit(unit uint32) {
	t.dev.BindTextureUnit(unit, t.handle)
}

func (t *texture) UnbindUnit(unit uint32) {
	t.dev.BindTextureUnit(unit, device.InvalidHandle)
}
