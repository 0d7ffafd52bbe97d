package renderer

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/device/devicetest"
	"github.com/Carmen-Shannon/oxy-gl/engine/loader"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/resource"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drawOne(dev device.Device) func() error {
	return func() error {
		dev.DrawArrays(device.TopologyTriangles, 0, 3)
		return nil
	}
}

func TestRenderFrameRunsOffscreenPassesFirst(t *testing.T) {
	dev := devicetest.New()
	r := NewRenderer(dev, WithSize(800, 600))
	mirror, err := resource.NewColorDepthTarget(dev, 256, 256)
	require.NoError(t, err)

	var order []string
	record := func(name string) func() error {
		return func() error {
			order = append(order, name)
			dev.DrawArrays(device.TopologyTriangles, 0, 3)
			return nil
		}
	}
	err = r.RenderFrame(
		Pass{Name: "main", Draw: record("main")},
		Pass{Name: "mirror", Target: mirror, Draw: record("mirror")},
		Pass{Name: "overlay", Draw: record("overlay")},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"mirror", "main", "overlay"}, order)
	require.Len(t, dev.Draws, 3)
	assert.Equal(t, mirror.Handle(), dev.Draws[0].Framebuffer)
	assert.Equal(t, device.InvalidHandle, dev.Draws[1].Framebuffer)
	assert.Equal(t, device.InvalidHandle, dev.BoundFramebuffer)
	assert.Equal(t, 3, dev.Clears)
	assert.Contains(t, dev.Viewports, [4]int{0, 0, 256, 256})
	assert.Equal(t, [4]int{0, 0, 800, 600}, dev.Viewports[len(dev.Viewports)-1])
}

func TestRenderFrameStopsOnError(t *testing.T) {
	dev := devicetest.New()
	r := NewRenderer(dev)
	boom := errors.New("boom")
	ran := false
	err := r.RenderFrame(
		Pass{Name: "first", Draw: func() error { return boom }},
		Pass{Name: "second", Draw: func() error { ran = true; return nil }},
	)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `"first"`)
	assert.False(t, ran)
	assert.Equal(t, device.InvalidHandle, dev.BoundFramebuffer)
}

func TestResizeAndAspect(t *testing.T) {
	dev := devicetest.New()
	r := NewRenderer(dev)
	r.Resize(1920, 1080)
	w, h := r.Size()
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)
	assert.InDelta(t, 16.0/9.0, r.Aspect(), 1e-6)

	r.Resize(100, 0)
	assert.Equal(t, float32(1), r.Aspect())

	require.NoError(t, r.RenderFrame(Pass{Name: "main", Draw: drawOne(dev)}))
	assert.Equal(t, [4]int{0, 0, 100, 0}, dev.Viewports[len(dev.Viewports)-1])
}

func TestClearColorOverride(t *testing.T) {
	r := NewRenderer(devicetest.New(), WithClearColor(mgl32.Vec4{1, 0, 0, 1}))
	impl := r.(*renderer)
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, impl.clearFor(Pass{}))
	blue := mgl32.Vec4{0, 0, 1, 1}
	assert.Equal(t, blue, impl.clearFor(Pass{ClearColor: &blue}))
	r.SetClearColor(mgl32.Vec4{})
	assert.Equal(t, mgl32.Vec4{}, impl.clearFor(Pass{}))
}

func programFS() fstest.MapFS {
	return fstest.MapFS{
		"lit.vert":  {Data: []byte("void main() {}")},
		"lit.frag":  {Data: []byte("void main() {}")},
		"lamp.vert": {Data: []byte("void main() {}")},
		"lamp.frag": {Data: []byte("void main() {}")},
	}
}

func TestProgramCacheAndReload(t *testing.T) {
	dev := devicetest.New()
	dev.FailCompile("BROKEN", "syntax error")
	fsys := programFS()
	src := loader.NewFSSource(fsys)
	lit, err := shader.NewReloadableProgram(dev, src, []string{"lit.vert", "lit.frag"})
	require.NoError(t, err)
	lamp, err := shader.NewReloadableProgram(dev, src, []string{"lamp.vert", "lamp.frag"})
	require.NoError(t, err)

	r := NewRenderer(dev, WithProgram("lit", lit))
	r.RegisterProgram("lamp", lamp)
	assert.Nil(t, r.Program("missing"))
	assert.Len(t, r.Programs(), 2)

	before := r.Program("lit")
	n, err := r.ReloadChanged([]string{"lit.frag"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NotSame(t, before, r.Program("lit"))

	fsys["lamp.frag"] = &fstest.MapFile{Data: []byte("BROKEN")}
	keep := r.Program("lamp")
	n, err = r.ReloadChanged([]string{"lamp.frag", "unrelated.glsl"})
	assert.ErrorIs(t, err, shader.ErrCompile)
	assert.Zero(t, n)
	assert.Same(t, keep, r.Program("lamp"))

	n, err = r.ReloadChanged(nil)
	assert.NoError(t, err)
	assert.Zero(t, n)

	r.Release()
	assert.True(t, keep.Released())
	assert.Empty(t, r.Programs())
}

func TestRegisterProgramReplacesAndReleases(t *testing.T) {
	dev := devicetest.New()
	src := loader.NewFSSource(programFS())
	a, err := shader.NewReloadableProgram(dev, src, []string{"lit.vert", "lit.frag"})
	require.NoError(t, err)
	b, err := shader.NewReloadableProgram(dev, src, []string{"lamp.vert", "lamp.frag"})
	require.NoError(t, err)

	r := NewRenderer(dev)
	r.RegisterProgram("k", a)
	r.RegisterProgram("k", b)
	assert.True(t, a.Program().Released())
	assert.Same(t, b.Program(), r.Program("k"))
}
