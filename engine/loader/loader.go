// Package loader reads assets through a Source and turns image files into cached device
// textures. Decoding runs on a worker pool; every device call stays on the calling goroutine.
package loader

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/logger"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/resource"

	"go.uber.org/zap"
)

// LoaderBackendType identifies the asset decoder backend to use.
type LoaderBackendType int

const (
	// BackendTypeImage selects the image decoder backend (PNG, JPEG, BMP, TIFF, WebP).
	BackendTypeImage LoaderBackendType = iota
)

const defaultQueueSize = 256

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	dev     device.Device
	src     Source
	backend loaderBackend
	log     *zap.Logger

	workers int
	pool    worker.DynamicWorkerPool
	mipmaps bool

	textureCache map[string]resource.Texture
}

// Loader loads textures from a Source and caches them by asset path.
type Loader interface {
	// Source returns the asset source the loader reads from.
	//
	// Returns:
	//   - Source: the asset source
	Source() Source

	// LoadTexture decodes and uploads one texture, or returns the cached one.
	//
	// Parameters:
	//   - path: the logical asset path
	//
	// Returns:
	//   - resource.Texture: the loaded texture
	//   - error: ErrNotFound, a decode error, or a device error
	LoadTexture(path string) (resource.Texture, error)

	// LoadTextures decodes every uncached path in parallel, then uploads them in path order.
	// Textures that loaded are cached even when another path fails.
	//
	// Parameters:
	//   - paths: the logical asset paths
	//
	// Returns:
	//   - []resource.Texture: textures in the order of paths, nil where loading failed
	//   - error: the first failure in path order
	LoadTextures(paths ...string) ([]resource.Texture, error)

	// Get retrieves a cached texture. Returns nil if not found.
	//
	// Parameters:
	//   - path: the cache key
	//
	// Returns:
	//   - resource.Texture: the cached texture or nil
	Get(path string) resource.Texture

	// Textures returns a copy of the texture cache.
	//
	// Returns:
	//   - map[string]resource.Texture: every cached texture keyed by path
	Textures() map[string]resource.Texture

	// Release releases every cached texture, empties the cache and stops the worker pool.
	Release()
}

var _ Loader = &loader{}

// NewLoader creates a new Loader with the given backend and options applied.
// Without WithSource the loader reads from the working directory.
//
// Parameters:
//   - dev: the device textures are created on
//   - backendType: the decoder backend to use
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: the configured loader
func NewLoader(dev device.Device, backendType LoaderBackendType, options ...LoaderBuilderOption) Loader {
	l := &loader{
		mu:           sync.RWMutex{},
		dev:          dev,
		workers:      4,
		mipmaps:      true,
		textureCache: make(map[string]resource.Texture),
	}

	switch backendType {
	case BackendTypeImage:
		l.backend = newImageLoaderBackend()
	}

	for _, option := range options {
		option(l)
	}
	if l.src == nil {
		l.src = NewDirSource(".")
	}
	l.log = logger.Or(l.log)
	return l
}

func (l *loader) Source() Source {
	return l.src
}

func (l *loader) LoadTexture(path string) (resource.Texture, error) {
	if cached := l.Get(path); cached != nil {
		return cached, nil
	}

	decoded, err := l.decode(path)
	if err != nil {
		return nil, err
	}
	return l.upload(decoded)
}

func (l *loader) LoadTextures(paths ...string) ([]resource.Texture, error) {
	out := make([]resource.Texture, len(paths))
	decoded := make(map[string]*common.ImportedTexture)
	errs := make(map[string]error)

	pending := make([]string, 0, len(paths))
	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		if seen[p] || l.Get(p) != nil {
			continue
		}
		seen[p] = true
		pending = append(pending, p)
	}

	if len(pending) > 0 {
		var (
			wg    sync.WaitGroup
			resMu sync.Mutex
		)
		pool := l.workerPool()
		for id, p := range pending {
			wg.Add(1)
			path := p
			pool.SubmitTask(worker.Task{
				ID:      id,
				Payload: path,
				Do: func() (any, error) {
					defer wg.Done()
					tex, err := l.decode(path)
					resMu.Lock()
					defer resMu.Unlock()
					if err != nil {
						errs[path] = err
						return nil, err
					}
					decoded[path] = tex
					return tex, nil
				},
			})
		}
		wg.Wait()

		sort.Strings(pending)
		for _, p := range pending {
			tex, ok := decoded[p]
			if !ok {
				continue
			}
			if _, err := l.upload(tex); err != nil {
				errs[p] = err
			}
		}
	}

	var first error
	for i, p := range paths {
		if err, ok := errs[p]; ok {
			if first == nil {
				first = err
			}
			continue
		}
		out[i] = l.Get(p)
	}
	if first != nil {
		l.log.Warn("texture batch incomplete",
			zap.Int("requested", len(paths)),
			zap.Int("failed", len(errs)),
			zap.Error(first),
		)
	}
	return out, first
}

func (l *loader) Get(path string) resource.Texture {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.textureCache[path]
}

func (l *loader) Textures() map[string]resource.Texture {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]resource.Texture, len(l.textureCache))
	for k, v := range l.textureCache {
		out[k] = v
	}
	return out
}

func (l *loader) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for path, tex := range l.textureCache {
		tex.Release()
		delete(l.textureCache, path)
	}
	if l.pool != nil {
		l.pool.Stop()
		l.pool = nil
	}
}

// workerPool lazily starts the decode pool. Workers are kept for the lifetime of the loader.
func (l *loader) workerPool() worker.DynamicWorkerPool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pool == nil {
		l.pool = worker.NewDynamicWorkerPool(l.workers, defaultQueueSize, 1*time.Second)
	}
	return l.pool
}

// decode reads and decodes one asset. Safe to call from worker goroutines.
func (l *loader) decode(path string) (*common.ImportedTexture, error) {
	data, err := ReadAll(l.src, path)
	if err != nil {
		return nil, err
	}
	tex, err := l.backend.Decode(path, data)
	if err != nil {
		return nil, err
	}
	return tex, nil
}

// upload creates the device texture for decoded pixels and caches it. Must run on the
// goroutine that owns the device.
func (l *loader) upload(decoded *common.ImportedTexture) (resource.Texture, error) {
	desc := device.TextureDescriptor{
		Width:     decoded.Width,
		Height:    decoded.Height,
		Format:    device.TextureFormatRGBA8,
		Levels:    1,
		MinFilter: device.FilterLinear,
		MagFilter: device.FilterLinear,
		Wrap:      device.WrapRepeat,
	}
	if l.mipmaps {
		desc.Levels = mipLevels(decoded.Width, decoded.Height)
		desc.MinFilter = device.FilterLinearMipmapLinear
	}

	tex := resource.NewTexture(l.dev, desc)
	if err := tex.Upload(decoded.Pixels); err != nil {
		tex.Release()
		return nil, fmt.Errorf("failed to upload texture %s: %w", decoded.Name, err)
	}

	l.mu.Lock()
	if existing, ok := l.textureCache[decoded.Name]; ok {
		l.mu.Unlock()
		tex.Release()
		return existing, nil
	}
	l.textureCache[decoded.Name] = tex
	l.mu.Unlock()

	l.log.Debug("texture loaded",
		zap.String("path", decoded.Name),
		zap.String("format", decoded.Format),
		zap.Int("width", decoded.Width),
		zap.Int("height", decoded.Height),
		zap.Int("levels", desc.Levels),
	)
	return tex, nil
}

// mipLevels returns the length of the full mip chain for a w by h image.
func mipLevels(w, h int) int {
	levels := 1
	for w > 1 || h > 1 {
		w /= 2
		h /= 2
		levels++
	}
	return levels
}
