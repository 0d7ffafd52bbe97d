package renderer

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithProgram pre-registers a program in the renderer's cache under the given key.
//
// Parameters:
//   - key: the unique identifier for the program
//   - p: the program to cache
//
// Returns:
//   - RendererBuilderOption: a function that applies the program option to a renderer
func WithProgram(key string, p *shader.ReloadableProgram) RendererBuilderOption {
	return func(r *renderer) {
		r.programCache[key] = p
	}
}

// WithSize sets the initial size of the default framebuffer.
//
// Parameters:
//   - width: the width in pixels
//   - height: the height in pixels
//
// Returns:
//   - RendererBuilderOption: a function that applies the size option to a renderer
func WithSize(width, height int) RendererBuilderOption {
	return func(r *renderer) {
		r.width, r.height = width, height
	}
}

// WithClearColor sets the default clear color.
//
// Parameters:
//   - c: RGBA clear color
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear color option to a renderer
func WithClearColor(c mgl32.Vec4) RendererBuilderOption {
	return func(r *renderer) {
		r.clearColor = c
	}
}

// WithLogger sets the logger for pass failures.
func WithLogger(l *zap.Logger) RendererBuilderOption {
	return func(r *renderer) {
		r.log = l
	}
}
