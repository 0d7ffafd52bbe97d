package resource

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/device/devicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func colorTexture(dev device.Device) Texture {
	return NewTexture(dev, device.TextureDescriptor{Width: 4, Height: 4, Format: device.TextureFormatRGBA8})
}

func TestRenderTargetColorOnlyMissingDepth(t *testing.T) {
	dev := devicetest.New()
	rt := NewRenderTarget(dev, 4, 4)
	require.NoError(t, rt.AttachTexture(device.AttachmentColor0, colorTexture(dev)))

	err := rt.CheckCompleteness(device.AttachmentKindColor, device.AttachmentKindDepth)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncomplete)

	var inc *IncompleteError
	require.True(t, errors.As(err, &inc))
	assert.Equal(t, []device.AttachmentKind{device.AttachmentKindDepth}, inc.Missing)
	assert.Contains(t, err.Error(), "missing depth")
}

func TestRenderTargetFormatMismatch(t *testing.T) {
	dev := devicetest.New()
	rt := NewRenderTarget(dev, 4, 4)
	require.NoError(t, rt.AttachTexture(device.AttachmentColor0, colorTexture(dev)))
	require.NoError(t, rt.AttachRenderBuffer(device.AttachmentDepth, NewRenderBuffer(dev, device.TextureFormatRGBA8, 4, 4)))

	err := rt.CheckCompleteness(device.AttachmentKindColor)
	var inc *IncompleteError
	require.True(t, errors.As(err, &inc))
	assert.Equal(t, []device.AttachmentSlot{device.AttachmentDepth}, inc.Mismatched)
	assert.Equal(t, device.FramebufferIncompleteAttachment, inc.Status)
}

func TestColorDepthTargetIsComplete(t *testing.T) {
	dev := devicetest.New()
	rt, err := NewColorDepthTarget(dev, 1024, 1024)
	require.NoError(t, err)

	tex, err := rt.Texture(device.AttachmentColor0)
	require.NoError(t, err)
	assert.Equal(t, 1024, tex.Descriptor().Width)

	_, err = rt.Texture(device.AttachmentColor1)
	assert.ErrorIs(t, err, ErrNoAttachment)
	_, err = rt.Texture(device.AttachmentDepthStencil)
	assert.ErrorIs(t, err, ErrNoAttachment)

	rt.Bind()
	assert.Equal(t, rt.Handle(), dev.BoundFramebuffer)
	assert.Equal(t, [4]int{0, 0, 1024, 1024}, dev.Viewports[len(dev.Viewports)-1])
	rt.Unbind()
	assert.Equal(t, device.InvalidHandle, dev.BoundFramebuffer)
}

func TestRenderTargetReleaseCascades(t *testing.T) {
	dev := devicetest.New()
	rt := NewRenderTarget(dev, 4, 4)
	tex := colorTexture(dev)
	rb := NewRenderBuffer(dev, device.TextureFormatDepth24Stencil8, 4, 4)
	require.NoError(t, rt.AttachTexture(device.AttachmentColor0, tex))
	require.NoError(t, rt.AttachRenderBuffer(device.AttachmentDepthStencil, rb))
	texHandle, rbHandle, fbHandle := tex.Handle(), rb.Handle(), rt.Handle()

	rt.Release()
	rt.Release()
	assert.True(t, tex.Released())
	assert.True(t, rb.Released())
	assert.Equal(t, 1, dev.Deletes[texHandle])
	assert.Equal(t, 1, dev.Deletes[rbHandle])
	assert.Equal(t, 1, dev.Deletes[fbHandle])
	assert.ErrorIs(t, rt.AttachTexture(device.AttachmentColor0, colorTexture(dev)), ErrReleased)
}

func TestRenderTargetReplaceDoesNotReleaseOld(t *testing.T) {
	dev := devicetest.New()
	rt := NewRenderTarget(dev, 4, 4)
	old := colorTexture(dev)
	replacement := colorTexture(dev)
	require.NoError(t, rt.AttachTexture(device.AttachmentColor0, old))
	require.NoError(t, rt.AttachTexture(device.AttachmentColor0, replacement))

	got, err := rt.Texture(device.AttachmentColor0)
	require.NoError(t, err)
	assert.Equal(t, replacement.Handle(), got.Handle())
	assert.Equal(t, replacement.Handle(), dev.Framebuffers[rt.Handle()][device.AttachmentColor0])

	rt.Release()
	assert.False(t, old.Released())
	assert.True(t, replacement.Released())
}

func TestTextureUpload(t *testing.T) {
	dev := devicetest.New()
	tex := colorTexture(dev)
	assert.ErrorIs(t, tex.Upload(make([]byte, 10)), ErrOutOfBounds)
	require.NoError(t, tex.Upload(make([]byte, 64)))
	assert.Len(t, dev.Surfaces[tex.Handle()].Pixels, 64)

	tex.BindUnit(1)
	assert.Equal(t, tex.Handle(), dev.BoundTextures[1])
	tex.UnbindUnit(1)
	assert.Equal(t, device.InvalidHandle, dev.BoundTextures[1])
}
