package assets

import (
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/device/devicetest"
	"github.com/Carmen-Shannon/oxy-gl/engine/loader"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramsBuild(t *testing.T) {
	dev := devicetest.New()
	for _, paths := range [][]string{PhongProgram, LampProgram, MirrorProgram} {
		p, err := shader.NewReloadableProgram(dev, Source(), paths)
		require.NoError(t, err, strings.Join(paths, ", "))
		assert.False(t, p.Program().Released())
	}
}

func TestPhongLimits(t *testing.T) {
	dev := devicetest.New()
	p, err := shader.NewReloadableProgram(dev, Source(), PhongProgram)
	require.NoError(t, err)

	n, ok := p.Program().Define("MAX_POINT_LIGHTS")
	require.True(t, ok)
	assert.Equal(t, 8, n)
	n, ok = p.Program().Define("MAX_FLASH_LIGHTS")
	require.True(t, ok)
	assert.Equal(t, 4, n)
}

func TestTexturesDecode(t *testing.T) {
	dev := devicetest.New()
	l := loader.NewLoader(dev, loader.BackendTypeImage, loader.WithSource(Source()))
	defer l.Release()

	texs, err := l.LoadTextures(Textures()...)
	require.NoError(t, err)
	for i, tex := range texs {
		assert.Equal(t, 64, tex.Descriptor().Width, Textures()[i])
	}
}
