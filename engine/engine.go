package engine

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/input"
	"github.com/Carmen-Shannon/oxy-gl/engine/logger"
	"github.com/Carmen-Shannon/oxy-gl/engine/profiler"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
	"go.uber.org/zap"
)

// engine implements the Engine interface.
// Every frame runs on the window's thread, which owns the graphics context.
type engine struct {
	mu *sync.Mutex

	window  window.Window
	tracker *input.Tracker
	clock   func() float64

	quit atomic.Bool

	profiler         *profiler.Profiler
	profilingEnabled bool

	watcher   shader.Watcher
	reloadKey uint32

	tickCallback   func(deltaTime float32, in input.Snapshot)
	renderCallback func(deltaTime float32)

	scenes map[int]scene.Scene

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	lastTime  float64
	started   bool
	lastError string

	log *zap.Logger
}

// Engine is the main entry point for the engine.
// It owns the frame loop: input, game logic, scene updates, rendering and profiling.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Input returns the tracker fed by the window's input callbacks.
	Input() *input.Tracker

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// Profiler returns the frame profiler.
	Profiler() *profiler.Profiler

	// SetTickCallback registers the function called each frame before the scenes update.
	// Use this for game logic such as moving objects.
	//
	// Parameters:
	//   - callback: receives the delta time in seconds and the frame's input snapshot
	SetTickCallback(callback func(deltaTime float32, in input.Snapshot))

	// SetRenderCallback registers the function called each frame after the scenes rendered.
	//
	// Parameters:
	//   - callback: function to call each render frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// AddScene registers a scene at the given z-index key.
	// Scenes are updated and rendered in ascending key order.
	//
	// Parameters:
	//   - key: the z-index determining render order (lower renders first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given z-index key.
	// Returns nil if no scene exists at that key.
	//
	// Parameters:
	//   - key: the z-index of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes keyed by z-index.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Run drives frames from the window's message loop and blocks until the window closes.
	// Must be called on the thread that created the window.
	Run()

	// Quit asks the window to close after the current frame.
	// Safe to call multiple times and from any goroutine.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// When a window is given, its input callbacks feed the engine's tracker and its resize
// callback resizes every scene.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, scenes, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:        &sync.Mutex{},
		tracker:   input.NewTracker(),
		scenes:    make(map[int]scene.Scene),
		reloadKey: uint32(common.KeyR),
		log:       logger.Log,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.log))
	}

	if e.window != nil {
		if e.clock == nil {
			e.clock = e.window.Time
		}
		e.window.SetKeyDownCallback(e.tracker.KeyDown)
		e.window.SetKeyUpCallback(e.tracker.KeyUp)
		e.window.SetMouseDownCallback(e.tracker.ButtonDown)
		e.window.SetMouseUpCallback(e.tracker.ButtonUp)
		e.window.SetMouseMoveCallback(e.tracker.MouseMove)
		e.window.SetScrollCallback(e.tracker.Scroll)
		e.window.SetResizeCallback(func(width, height int) {
			for _, s := range e.Scenes() {
				s.Resize(width, height)
			}
		})
	}
	if e.clock == nil {
		start := time.Now()
		e.clock = func() float64 { return time.Since(start).Seconds() }
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Input() *input.Tracker {
	return e.tracker
}

func (e *engine) Run() {
	if e.window == nil {
		panic("engine: Run requires a window")
	}
	defer e.closeWatcher()

	e.window.SetUpdateCallback(func() {
		if e.quit.Load() {
			e.window.RequestClose()
			return
		}
		e.frame(e.clock())
	})
	e.window.ProcessMessages()
}

func (e *engine) Quit() {
	e.quit.Store(true)
}

func (e *engine) closeWatcher() {
	if e.watcher == nil {
		return
	}
	if err := e.watcher.Close(); err != nil {
		e.log.Warn("shader watcher close failed", zap.Error(err))
	}
}

// frame runs one iteration of the loop at time now, in seconds.
func (e *engine) frame(now float64) {
	frameStart := time.Now()

	var dt float32
	if e.started {
		dt = float32(now - e.lastTime)
	}
	e.started = true
	e.lastTime = now

	in := e.tracker.Snapshot()
	active := e.activeScenes()

	if paths, all := e.pendingReload(in); all || len(paths) > 0 {
		for _, s := range active {
			if _, err := s.ReloadShaders(paths); err != nil {
				e.log.Error("shader reload failed", zap.String("scene", s.Name()), zap.Error(err))
			}
		}
	}

	e.mu.Lock()
	tick, render := e.tickCallback, e.renderCallback
	e.mu.Unlock()

	if tick != nil {
		tick(dt, in)
	}

	for _, s := range active {
		s.Update(dt, in)
		e.report(s, s.Render())
	}

	if render != nil {
		render(dt)
	}

	if e.profilingEnabled {
		e.profiler.Tick()
	}

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - time.Since(frameStart); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// pendingReload returns the changed shader files reported by the watcher. all is true when
// the reload key was pressed, which rebuilds every program.
func (e *engine) pendingReload(in input.Snapshot) (paths []string, all bool) {
	if e.watcher != nil {
		paths = e.watcher.Pending()
	}
	if e.reloadKey != 0 && in.KeyPressed(e.reloadKey) {
		return nil, true
	}
	return paths, false
}

// report logs a render error once until the error changes or a frame succeeds.
func (e *engine) report(s scene.Scene, err error) {
	if err == nil {
		e.lastError = ""
		return
	}
	if msg := err.Error(); msg != e.lastError {
		e.lastError = msg
		e.log.Error("frame failed", zap.String("scene", s.Name()), zap.Error(err))
	}
}

// activeScenes returns the active scenes in ascending key order.
func (e *engine) activeScenes() []scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	active := make([]scene.Scene, 0, len(keys))
	for _, k := range keys {
		if s := e.scenes[k]; s.Active() {
			active = append(active, s)
		}
	}
	return active
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) Profiler() *profiler.Profiler {
	return e.profiler
}

func (e *engine) SetTickCallback(callback func(deltaTime float32, in input.Snapshot)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		out[k] = v
	}
	return out
}
