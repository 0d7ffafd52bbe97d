package light

import "github.com/go-gl/mathgl/mgl32"

// LightBuilderOption is a function that configures a Light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithPosition is an option builder that sets a static world-space position.
//
// Parameters:
//   - p: the position
//
// Returns:
//   - LightBuilderOption: a function that applies the position option to a lightImpl
func WithPosition(p mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = Static(p)
	}
}

// WithBoundPosition is an option builder that makes the position follow a dynamic source.
//
// Parameters:
//   - id: the source id resolved through Bindings
//   - fallback: the position used while id is unbound
//
// Returns:
//   - LightBuilderOption: a function that applies the bound position option to a lightImpl
func WithBoundPosition(id SourceID, fallback mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = Bound(id, fallback)
	}
}

// WithDirection is an option builder that sets a static direction.
//
// Parameters:
//   - d: the direction the light shines along
//
// Returns:
//   - LightBuilderOption: a function that applies the direction option to a lightImpl
func WithDirection(d mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.direction = Static(d)
	}
}

// WithBoundDirection is an option builder that makes the direction follow a dynamic source.
//
// Parameters:
//   - id: the source id resolved through Bindings
//   - fallback: the direction used while id is unbound
//
// Returns:
//   - LightBuilderOption: a function that applies the bound direction option to a lightImpl
func WithBoundDirection(id SourceID, fallback mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.direction = Bound(id, fallback)
	}
}

// WithColors is an option builder that sets the ambient, diffuse and specular colors.
//
// Parameters:
//   - ambient: ambient color
//   - diffuse: diffuse color
//   - specular: specular color
//
// Returns:
//   - LightBuilderOption: a function that applies the color option to a lightImpl
func WithColors(ambient, diffuse, specular mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.SetColors(ambient, diffuse, specular)
	}
}

// WithColor sets ambient to 10% and diffuse to 100% of c, with a white specular.
func WithColor(c mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.SetColors(c.Mul(0.1), c, mgl32.Vec3{1, 1, 1})
	}
}

// WithRange is an option builder that picks the attenuation preset nearest to rng.
//
// Parameters:
//   - rng: the desired effective range in world units
//
// Returns:
//   - LightBuilderOption: a function that applies the range option to a lightImpl
func WithRange(rng float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.SetRange(rng)
	}
}

// WithSpotCone is an option builder that sets the inner and outer cone angles of a spot light.
//
// Parameters:
//   - innerDeg: inner angle in degrees
//   - outerDeg: outer angle in degrees
//
// Returns:
//   - LightBuilderOption: a function that applies the cone option to a lightImpl
func WithSpotCone(innerDeg, outerDeg float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.SetSpotCone(innerDeg, outerDeg)
	}
}
