package loader

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/device/devicetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"textures/red.png":   {Data: encodePNG(t, 4, 2, color.NRGBA{R: 255, A: 255})},
		"textures/green.png": {Data: encodePNG(t, 2, 2, color.NRGBA{G: 255, A: 255})},
		"textures/blue.png":  {Data: encodePNG(t, 8, 8, color.NRGBA{B: 255, A: 255})},
		"textures/bad.png":   {Data: []byte("definitely not a png")},
		"shaders/a.vert":     {Data: []byte("void main() {}")},
	}
}

func TestReadAll(t *testing.T) {
	src := NewFSSource(testFS(t))

	data, err := ReadAll(src, "shaders/a.vert")
	require.NoError(t, err)
	assert.Equal(t, "void main() {}", string(data))

	data, err = ReadAll(src, "/shaders/a.vert")
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	_, err = ReadAll(src, "shaders/missing.vert")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDirSourceNotFound(t *testing.T) {
	src := NewDirSource(t.TempDir())
	_, err := src.Open("nothing.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadTextureCaches(t *testing.T) {
	dev := devicetest.New()
	l := NewLoader(dev, BackendTypeImage, WithSource(NewFSSource(testFS(t))), WithMipmaps(false))

	tex, err := l.LoadTexture("textures/red.png")
	require.NoError(t, err)
	desc := tex.Descriptor()
	assert.Equal(t, 4, desc.Width)
	assert.Equal(t, 2, desc.Height)
	assert.Equal(t, 1, desc.Levels)

	surface := dev.Surfaces[tex.Handle()]
	require.NotNil(t, surface)
	require.Len(t, surface.Pixels, 4*2*4)
	assert.Equal(t, []byte{255, 0, 0, 255}, surface.Pixels[:4])

	again, err := l.LoadTexture("textures/red.png")
	require.NoError(t, err)
	assert.Same(t, tex, again)
	assert.Len(t, dev.Surfaces, 1)
	assert.Same(t, tex, l.Get("textures/red.png"))
}

func TestLoadTextureMipmaps(t *testing.T) {
	dev := devicetest.New()
	l := NewLoader(dev, BackendTypeImage, WithSource(NewFSSource(testFS(t))))

	tex, err := l.LoadTexture("textures/blue.png")
	require.NoError(t, err)
	assert.Equal(t, 4, tex.Descriptor().Levels)
}

func TestLoadTextureErrors(t *testing.T) {
	dev := devicetest.New()
	l := NewLoader(dev, BackendTypeImage, WithSource(NewFSSource(testFS(t))))

	_, err := l.LoadTexture("textures/missing.png")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = l.LoadTexture("textures/bad.png")
	assert.Error(t, err)
	assert.Empty(t, l.Textures())
	assert.Empty(t, dev.Surfaces)
}

func TestLoadTexturesParallel(t *testing.T) {
	dev := devicetest.New()
	l := NewLoader(dev, BackendTypeImage, WithSource(NewFSSource(testFS(t))), WithWorkers(3))
	defer l.Release()

	paths := []string{"textures/red.png", "textures/green.png", "textures/blue.png", "textures/red.png"}
	texs, err := l.LoadTextures(paths...)
	require.NoError(t, err)
	require.Len(t, texs, 4)
	for i, tex := range texs {
		require.NotNil(t, tex, paths[i])
	}
	assert.Same(t, texs[0], texs[3])
	assert.Equal(t, 2, texs[1].Descriptor().Width)
	assert.Len(t, l.Textures(), 3)
	assert.Len(t, dev.Surfaces, 3)
}

func TestLoadTexturesPartialFailure(t *testing.T) {
	dev := devicetest.New()
	l := NewLoader(dev, BackendTypeImage, WithSource(NewFSSource(testFS(t))))
	defer l.Release()

	texs, err := l.LoadTextures("textures/green.png", "textures/missing.png", "textures/bad.png")
	assert.ErrorIs(t, err, ErrNotFound)
	require.Len(t, texs, 3)
	assert.NotNil(t, texs[0])
	assert.Nil(t, texs[1])
	assert.Nil(t, texs[2])
	assert.NotNil(t, l.Get("textures/green.png"))
}

func TestLoaderRelease(t *testing.T) {
	dev := devicetest.New()
	l := NewLoader(dev, BackendTypeImage, WithSource(NewFSSource(testFS(t))))

	texs, err := l.LoadTextures("textures/red.png", "textures/green.png")
	require.NoError(t, err)
	handles := make([]device.Handle, 0, len(texs))
	for _, tex := range texs {
		handles = append(handles, tex.Handle())
	}

	l.Release()
	l.Release()
	assert.Empty(t, l.Textures())
	for i, tex := range texs {
		assert.True(t, tex.Released())
		assert.Equal(t, 1, dev.Deletes[handles[i]])
	}
	assert.Empty(t, dev.Surfaces)
}

func TestMipLevels(t *testing.T) {
	assert.Equal(t, 1, mipLevels(1, 1))
	assert.Equal(t, 4, mipLevels(8, 8))
	assert.Equal(t, 10, mipLevels(512, 256))
}
