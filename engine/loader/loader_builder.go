package loader

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/resource"

	"go.uber.org/zap"
)

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithSource is an option builder that sets the Source assets are read from.
//
// Parameters:
//   - src: the asset source
//
// Returns:
//   - LoaderBuilderOption: a function that applies the source option to a loader
func WithSource(src Source) LoaderBuilderOption {
	return func(l *loader) {
		l.src = src
	}
}

// WithWorkers is an option builder that sets how many goroutines decode images in parallel.
//
// Parameters:
//   - n: worker count, values below 1 are treated as 1
//
// Returns:
//   - LoaderBuilderOption: a function that applies the worker option to a loader
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		l.workers = max(n, 1)
	}
}

// WithMipmaps is an option builder that toggles mip chain generation for loaded textures.
//
// Parameters:
//   - enabled: true to generate mipmaps
//
// Returns:
//   - LoaderBuilderOption: a function that applies the mipmap option to a loader
func WithMipmaps(enabled bool) LoaderBuilderOption {
	return func(l *loader) {
		l.mipmaps = enabled
	}
}

// WithLogger is an option builder that sets the logger used by the Loader.
func WithLogger(log *zap.Logger) LoaderBuilderOption {
	return func(l *loader) {
		l.log = log
	}
}

// WithTexture is an option builder that pre-populates the texture cache.
//
// Parameters:
//   - key: the cache key for the texture
//   - tex: the texture to cache
//
// Returns:
//   - LoaderBuilderOption: a function that applies the texture option to a loader
func WithTexture(key string, tex resource.Texture) LoaderBuilderOption {
	return func(l *loader) {
		l.textureCache[key] = tex
	}
}
