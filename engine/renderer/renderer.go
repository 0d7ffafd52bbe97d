package renderer

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/logger"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	dev          device.Device
	programCache map[string]*shader.ReloadableProgram

	width, height int
	clearColor    mgl32.Vec4
	log           *zap.Logger
}

// Renderer drives one frame as an ordered list of passes on the default framebuffer and on
// off-screen render targets, and keeps the programs those passes draw with.
//
// Programs are cached by key as reloadable programs so the render thread can rebuild them
// from changed sources between frames.
type Renderer interface {
	// Device returns the device the renderer issues commands to.
	//
	// Returns:
	//   - device.Device: the device
	Device() device.Device

	// Program retrieves the active program cached under key.
	// If the key is not registered, this will return nil.
	//
	// Parameters:
	//   - key: the unique identifier for the program
	//
	// Returns:
	//   - shader.Program: the active program, or nil if not found
	Program(key string) shader.Program

	// Programs returns a copy of the cache keyed by program key.
	//
	// Returns:
	//   - map[string]*shader.ReloadableProgram: the cached programs
	Programs() map[string]*shader.ReloadableProgram

	// RegisterProgram caches p under key. A program already registered under key is released
	// and replaced.
	//
	// Parameters:
	//   - key: the unique identifier for the program
	//   - p: the program to cache
	RegisterProgram(key string, p *shader.ReloadableProgram)

	// ReloadChanged rebuilds every cached program whose stage files include one of paths. A
	// program that fails to rebuild keeps its previous version.
	//
	// Parameters:
	//   - paths: logical paths of changed shader files
	//
	// Returns:
	//   - int: the number of programs swapped in
	//   - error: the joined rebuild errors, nil if all rebuilds succeeded
	ReloadChanged(paths []string) (int, error)

	// Resize sets the size of the default framebuffer.
	// This should be called when the window's framebuffer size changes.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	Resize(width, height int)

	// Size returns the size of the default framebuffer.
	Size() (width, height int)

	// Aspect returns width/height of the default framebuffer, 1 for a zero height.
	Aspect() float32

	// SetClearColor sets the color passes without their own clear color use.
	//
	// Parameters:
	//   - c: RGBA clear color
	SetClearColor(c mgl32.Vec4)

	// RenderFrame runs the passes. Off-screen passes run before passes on the default
	// framebuffer so their targets are complete before anything samples them; the relative
	// order within each group is kept. Each pass binds its destination, sets the viewport,
	// clears and calls Draw. The default framebuffer is bound again afterwards.
	//
	// Parameters:
	//   - passes: the passes of this frame
	//
	// Returns:
	//   - error: the first Draw error, wrapped with the pass name; later passes are skipped
	RenderFrame(passes ...Pass) error

	// Release releases every cached program.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer issuing commands to dev.
//
// Parameters:
//   - dev: the device owning the graphics context
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer
func NewRenderer(dev device.Device, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:           &sync.Mutex{},
		dev:          dev,
		programCache: make(map[string]*shader.ReloadableProgram),
		width:        1,
		height:       1,
		clearColor:   mgl32.Vec4{0.1, 0.1, 0.1, 1},
	}
	for _, opt := range options {
		opt(r)
	}
	r.log = logger.Or(r.log)
	return r
}

func (r *renderer) Device() device.Device {
	return r.dev
}

func (r *renderer) Program(key string) shader.Program {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.programCache[key]
	if !ok {
		return nil
	}
	return p.Program()
}

func (r *renderer) Programs() map[string]*shader.ReloadableProgram {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]*shader.ReloadableProgram, len(r.programCache))
	for k, p := range r.programCache {
		out[k] = p
	}
	return out
}

func (r *renderer) RegisterProgram(key string, p *shader.ReloadableProgram) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, exists := r.programCache[key]; exists && old != p {
		old.Release()
	}
	r.programCache[key] = p
}

func (r *renderer) ReloadChanged(paths []string) (int, error) {
	if len(paths) == 0 {
		return 0, nil
	}
	r.mu.Lock()
	keys := make([]string, 0, len(r.programCache))
	for k := range r.programCache {
		keys = append(keys, k)
	}
	r.mu.Unlock()
	sort.Strings(keys)

	var (
		swapped int
		errs    []error
	)
	for _, key := range keys {
		r.mu.Lock()
		p := r.programCache[key]
		r.mu.Unlock()
		if !usesAny(p, paths) {
			continue
		}
		if err := p.Reload(); err != nil {
			errs = append(errs, fmt.Errorf("program %q: %w", key, err))
			continue
		}
		swapped++
	}
	if len(errs) > 0 {
		return swapped, errors.Join(errs...)
	}
	return swapped, nil
}

func usesAny(p *shader.ReloadableProgram, paths []string) bool {
	for _, path := range paths {
		if p.Uses(path) {
			return true
		}
	}
	return false
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	r.width, r.height = width, height
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

func (r *renderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *renderer) Aspect() float32 {
	w, h := r.Size()
	if h == 0 {
		return 1
	}
	return float32(w) / float32(h)
}

func (r *renderer) SetClearColor(c mgl32.Vec4) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearColor = c
}

func (r *renderer) RenderFrame(passes ...Pass) error {
	ordered := orderPasses(passes)
	defer r.bindDefault()

	for _, p := range ordered {
		if p.Target != nil {
			p.Target.Bind()
		} else {
			r.bindDefault()
		}
		c := r.clearFor(p)
		r.dev.Clear(c[0], c[1], c[2], c[3])
		if p.Draw == nil {
			continue
		}
		if err := p.Draw(); err != nil {
			r.log.Error("render pass failed", zap.String("pass", p.Name), zap.Error(err))
			return fmt.Errorf("render pass %q: %w", p.Name, err)
		}
	}
	return nil
}

func (r *renderer) bindDefault() {
	w, h := r.Size()
	r.dev.BindFramebuffer(device.InvalidHandle)
	r.dev.Viewport(0, 0, w, h)
}

func (r *renderer) clearFor(p Pass) mgl32.Vec4 {
	if p.ClearColor != nil {
		return *p.ClearColor
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clearColor
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, p := range r.programCache {
		p.Release()
		delete(r.programCache, key)
	}
}
