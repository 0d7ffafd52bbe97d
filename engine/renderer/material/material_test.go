package material

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/device/devicetest"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/resource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedLoad struct {
	i int32
	f float32
}

type loaderStub map[string]recordedLoad

func (s loaderStub) LoadInt(name string, v int32)     { s[name] = recordedLoad{i: v} }
func (s loaderStub) LoadFloat(name string, v float32) { s[name] = recordedLoad{f: v} }

func newTex(dev device.Device) resource.Texture {
	return resource.NewTexture(dev, device.TextureDescriptor{Width: 1, Height: 1, Format: device.TextureFormatRGBA8})
}

func TestMaterialApply(t *testing.T) {
	dev := devicetest.New()
	diffuse, specular := newTex(dev), newTex(dev)
	m := NewMaterial(WithName("crate"), WithDiffuse(diffuse), WithSpecular(specular), WithShininess(64))

	loads := loaderStub{}
	m.Apply(loads)

	assert.Equal(t, "crate", m.Name())
	assert.Equal(t, diffuse.Handle(), dev.BoundTextures[DiffuseUnit])
	assert.Equal(t, specular.Handle(), dev.BoundTextures[SpecularUnit])
	assert.Equal(t, int32(0), loads["material.diffuse"].i)
	assert.Equal(t, int32(1), loads["material.specular"].i)
	assert.Equal(t, float32(64), loads["material.shininess"].f)

	m.Unbind()
	assert.Equal(t, device.InvalidHandle, dev.BoundTextures[DiffuseUnit])
	assert.Equal(t, device.InvalidHandle, dev.BoundTextures[SpecularUnit])
}

func TestMaterialDefaults(t *testing.T) {
	m := NewMaterial()
	assert.Nil(t, m.Diffuse())
	assert.Equal(t, DefaultShininess, m.Shininess())

	loads := loaderStub{}
	require.NotPanics(t, func() { m.Apply(loads) })
	assert.Equal(t, DefaultShininess, loads["material.shininess"].f)

	m.SetShininess(8)
	assert.Equal(t, float32(8), m.Shininess())
}

func TestMaterialRelease(t *testing.T) {
	dev := devicetest.New()
	shared := newTex(dev)
	NewMaterial(WithDiffuse(shared)).Release()
	assert.False(t, shared.Released(), "borrowed textures stay alive")

	tex := newTex(dev)
	h := tex.Handle()
	m := NewMaterial(WithDiffuse(tex), WithSpecular(tex), WithOwnedTextures())
	m.Release()
	m.Release()
	assert.True(t, tex.Released())
	assert.Equal(t, 1, dev.Deletes[h])
}
