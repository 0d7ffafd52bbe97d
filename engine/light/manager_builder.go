package light

import "go.uber.org/zap"

// ManagerBuilderOption is a function that configures a Manager during construction.
type ManagerBuilderOption func(*manager)

// WithLogger sets the logger used for binding warnings.
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - ManagerBuilderOption: a function that applies the logger option to a manager
func WithLogger(l *zap.Logger) ManagerBuilderOption {
	return func(m *manager) {
		m.log = l
	}
}

// WithLights appends lights to their collections in the given order.
//
// Parameters:
//   - lights: the lights to add
//
// Returns:
//   - ManagerBuilderOption: a function that applies the lights option to a manager
func WithLights(lights ...Light) ManagerBuilderOption {
	return func(m *manager) {
		for _, l := range lights {
			if c := m.collection(l.Type()); c != nil {
				*c = append(*c, l)
			}
		}
	}
}

// WithFog sets the fog descriptor.
func WithFog(f *Fog) ManagerBuilderOption {
	return func(m *manager) {
		m.fog = f
	}
}

// WithBindings shares a binding table with other managers.
func WithBindings(b *Bindings) ManagerBuilderOption {
	return func(m *manager) {
		if b != nil {
			m.bindings = b
		}
	}
}

// WithBlinn sets the initial Blinn-Phong state.
func WithBlinn(enabled bool) ManagerBuilderOption {
	return func(m *manager) {
		m.blinn = enabled
	}
}
