package scene

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/game_object"
	"github.com/Carmen-Shannon/oxy-gl/engine/light"
	"github.com/Carmen-Shannon/oxy-gl/engine/logger"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithObjects adds initial lit objects to the scene, in order.
// Objects without IDs will be assigned new IDs.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			s.initial = append(s.initial, entry{obj: obj})
		}
	}
}

// WithLamps adds initial lamp objects to the scene, in order.
//
// Parameters:
//   - lamps: the lamps to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLamps(lamps ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range lamps {
			s.initial = append(s.initial, entry{obj: obj, lamp: true})
		}
	}
}

// WithLighting uses an existing light manager instead of a new empty one.
//
// Parameters:
//   - m: the light manager
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLighting(m light.Manager) SceneBuilderOption {
	return func(s *scene) {
		s.lighting = m
	}
}

// WithMirror installs a mirror.
func WithMirror(m *Mirror) SceneBuilderOption {
	return func(s *scene) {
		s.mirror = m
	}
}

// WithBackground sets the clear color used while fog is off.
func WithBackground(c mgl32.Vec4) SceneBuilderOption {
	return func(s *scene) {
		s.background = c
	}
}

// WithControls replaces the default key map (Space, F, B, N).
//
// Parameters:
//   - c: the key map, zero keys disable their action
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithControls(c Controls) SceneBuilderOption {
	return func(s *scene) {
		s.controls = c
	}
}

// WithLogger sets the logger, falling back to the package logger when nil.
func WithLogger(l *zap.Logger) SceneBuilderOption {
	return func(s *scene) {
		s.log = logger.Or(l)
	}
}
