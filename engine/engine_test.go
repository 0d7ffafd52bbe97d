package engine

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/assets"
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/device/devicetest"
	"github.com/Carmen-Shannon/oxy-gl/engine/input"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow runs a fixed number of frames and exposes the registered callbacks.
type fakeWindow struct {
	frames  int
	running bool
	now     float64

	update    func()
	resize    func(width, height int)
	scroll    func(delta float32)
	keyDown   func(key uint32)
	keyUp     func(key uint32)
	mouseDown func(button uint32)
	mouseUp   func(button uint32)
	mouseMove func(x, y float32)

	// beforeFrame runs ahead of each update with the frame index.
	beforeFrame func(i int)
}

func (w *fakeWindow) SetUpdateCallback(cb func())                  { w.update = cb }
func (w *fakeWindow) SetResizeCallback(cb func(width, height int)) { w.resize = cb }
func (w *fakeWindow) SetScrollCallback(cb func(delta float32))     { w.scroll = cb }
func (w *fakeWindow) SetKeyDownCallback(cb func(keyCode uint32))   { w.keyDown = cb }
func (w *fakeWindow) SetKeyUpCallback(cb func(keyCode uint32))     { w.keyUp = cb }
func (w *fakeWindow) SetMouseDownCallback(cb func(button uint32))  { w.mouseDown = cb }
func (w *fakeWindow) SetMouseUpCallback(cb func(button uint32))    { w.mouseUp = cb }
func (w *fakeWindow) SetMouseMoveCallback(cb func(x, y float32))   { w.mouseMove = cb }
func (w *fakeWindow) IsRunning() bool                              { return w.running }
func (w *fakeWindow) RequestClose()                                { w.running = false }
func (w *fakeWindow) Close() error                                 { return nil }
func (w *fakeWindow) Time() float64                                { return w.now }
func (w *fakeWindow) Width() int                                   { return 800 }
func (w *fakeWindow) Height() int                                  { return 600 }

func (w *fakeWindow) ProcessMessages() {
	w.running = true
	for i := 0; i < w.frames && w.running; i++ {
		if w.beforeFrame != nil {
			w.beforeFrame(i)
		}
		w.update()
		w.now += 0.5
	}
}

// fakeWatcher hands out one batch of changed paths.
type fakeWatcher struct {
	pending []string
	closed  bool
}

func (w *fakeWatcher) Add(...string) error { return nil }
func (w *fakeWatcher) Close() error        { w.closed = true; return nil }
func (w *fakeWatcher) Pending() []string {
	p := w.pending
	w.pending = nil
	return p
}

func newTestScene(t *testing.T, dev *devicetest.Device) scene.Scene {
	t.Helper()
	r := renderer.NewRenderer(dev, renderer.WithSize(800, 600))
	for key, paths := range map[string][]string{
		scene.ProgramLit:  assets.PhongProgram,
		scene.ProgramLamp: assets.LampProgram,
	} {
		p, err := shader.NewReloadableProgram(dev, assets.Source(), paths)
		require.NoError(t, err)
		r.RegisterProgram(key, p)
	}
	cam := camera.NewCamera(camera.NewFlyControl(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}), camera.NewPerspectiveProjection())
	return scene.NewScene("test", r, camera.NewCameraRotation(cam), scene.WithActive(true))
}

func TestRunDrivesFramesWithWindowDeltas(t *testing.T) {
	dev := devicetest.New()
	w := &fakeWindow{frames: 3, now: 10}
	e := NewEngine(WithWindow(w), WithScene(0, newTestScene(t, dev)))

	var dts []float32
	e.SetTickCallback(func(dt float32, _ input.Snapshot) { dts = append(dts, dt) })
	renders := 0
	e.SetRenderCallback(func(float32) { renders++ })

	e.Run()

	assert.Equal(t, []float32{0, 0.5, 0.5}, dts)
	assert.Equal(t, 3, renders)
	assert.Equal(t, 3, dev.Clears)
}

func TestInputCallbacksFeedSnapshot(t *testing.T) {
	w := &fakeWindow{frames: 2}
	e := NewEngine(WithWindow(w))

	var snaps []input.Snapshot
	e.SetTickCallback(func(_ float32, in input.Snapshot) { snaps = append(snaps, in) })
	w.beforeFrame = func(i int) {
		if i == 0 {
			w.keyDown(uint32(common.KeyW))
			w.mouseDown(uint32(common.MouseButtonLeft))
			w.scroll(2)
		}
	}
	e.Run()

	require.Len(t, snaps, 2)
	assert.True(t, snaps[0].KeyPressed(uint32(common.KeyW)))
	assert.True(t, snaps[0].ButtonDown(uint32(common.MouseButtonLeft)))
	assert.Equal(t, float32(2), snaps[0].Scroll())
	assert.True(t, snaps[1].KeyDown(uint32(common.KeyW)))
	assert.False(t, snaps[1].KeyPressed(uint32(common.KeyW)))
	assert.Zero(t, snaps[1].Scroll())
}

func TestResizeReachesScenes(t *testing.T) {
	dev := devicetest.New()
	w := &fakeWindow{}
	s := newTestScene(t, dev)
	NewEngine(WithWindow(w), WithScene(1, s))

	w.resize(1920, 1080)
	assert.InDelta(t, 16.0/9.0, s.Camera().Aspect(), 1e-6)
}

func TestQuitClosesWindow(t *testing.T) {
	w := &fakeWindow{frames: 10}
	e := NewEngine(WithWindow(w))
	ticks := 0
	e.SetTickCallback(func(float32, input.Snapshot) {
		ticks++
		if ticks == 2 {
			e.Quit()
		}
	})
	e.Run()
	assert.Equal(t, 2, ticks)
	assert.False(t, w.IsRunning())
}

func TestInactiveScenesAreSkipped(t *testing.T) {
	dev := devicetest.New()
	s := newTestScene(t, dev)
	s.SetActive(false)
	w := &fakeWindow{frames: 2}
	e := NewEngine(WithWindow(w), WithScene(0, s))
	e.Run()
	assert.Zero(t, dev.Clears)

	assert.Same(t, s, e.Scene(0))
	e.RemoveScene(0)
	assert.Nil(t, e.Scene(0))
	assert.Empty(t, e.Scenes())
}

func TestWatcherTriggersReload(t *testing.T) {
	dev := devicetest.New()
	s := newTestScene(t, dev)
	lamp := s.Renderer().Program(scene.ProgramLamp)
	lit := s.Renderer().Program(scene.ProgramLit)

	watcher := &fakeWatcher{pending: []string{"shaders/lamp.frag"}}
	w := &fakeWindow{frames: 2}
	e := NewEngine(WithWindow(w), WithScene(0, s), WithShaderWatcher(watcher))
	e.Run()

	assert.True(t, lamp.Released())
	assert.NotSame(t, lamp, s.Renderer().Program(scene.ProgramLamp))
	assert.Same(t, lit, s.Renderer().Program(scene.ProgramLit))
	assert.True(t, watcher.closed)
}

func TestReloadKeyRebuildsEverything(t *testing.T) {
	dev := devicetest.New()
	s := newTestScene(t, dev)
	lit := s.Renderer().Program(scene.ProgramLit)

	w := &fakeWindow{frames: 1}
	w.beforeFrame = func(int) { w.keyDown(uint32(common.KeyR)) }
	NewEngine(WithWindow(w), WithScene(0, s)).Run()

	assert.True(t, lit.Released())
}

func TestRenderErrorsAreLoggedOnce(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	dev := devicetest.New()
	cam := camera.NewCamera(camera.NewFlyControl(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}), camera.NewPerspectiveProjection())
	bare := scene.NewScene("bare", renderer.NewRenderer(dev), camera.NewCameraRotation(cam), scene.WithActive(true))

	w := &fakeWindow{frames: 3}
	NewEngine(WithWindow(w), WithScene(0, bare), WithLogger(zap.New(core))).Run()

	entries := logs.FilterMessage("frame failed").All()
	require.Len(t, entries, 1)
	err, ok := entries[0].ContextMap()["error"].(string)
	require.True(t, ok)
	assert.Contains(t, err, scene.ErrMissingProgram.Error())
	assert.True(t, errors.Is(bare.Render(), scene.ErrMissingProgram))
}

func TestRunWithoutWindowPanics(t *testing.T) {
	assert.Panics(t, func() { NewEngine().Run() })
}
