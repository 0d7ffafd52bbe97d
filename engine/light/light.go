// Package light holds Phong light sources, linear fog and the LightingManager that uploads
// them into the uniform arrays declared by GLSLLightSource.
package light

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// LightType represents the type of light source.
type LightType int

const (
	// LightTypeDirectional is a light infinitely far away with parallel rays.
	LightTypeDirectional LightType = iota
	// LightTypePoint is an omnidirectional light at a position.
	LightTypePoint
	// LightTypeSpot is a cone-shaped light at a position (a flashlight).
	LightTypeSpot
)

func (t LightType) String() string {
	switch t {
	case LightTypeDirectional:
		return "directional"
	case LightTypePoint:
		return "point"
	case LightTypeSpot:
		return "spot"
	}
	return "unknown"
}

var (
	// DefaultCutOff is the cosine of the 12.5° inner cone of a spot light.
	DefaultCutOff = math32.Cos(mgl32.DegToRad(12.5))
	// DefaultOuterCutOff is the cosine of the 17.5° outer cone of a spot light.
	DefaultOuterCutOff = math32.Cos(mgl32.DegToRad(17.5))
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	lightType LightType

	position  Vec3Source
	direction Vec3Source

	ambient  mgl32.Vec3
	diffuse  mgl32.Vec3
	specular mgl32.Vec3

	lightRange  float32
	attenuation Attenuation

	cutOff      float32
	outerCutOff float32
}

// Light is one Phong light source. Position and direction may be static or bound to a
// dynamic source resolved by the LightingManager every time it applies the light.
type Light interface {
	// Type returns the kind of light.
	//
	// Returns:
	//   - LightType: directional, point or spot
	Type() LightType

	// Position returns the position source. Ignored by directional lights.
	//
	// Returns:
	//   - Vec3Source: the static or bound position
	Position() Vec3Source

	// Direction returns the direction source. Ignored by point lights.
	//
	// Returns:
	//   - Vec3Source: the static or bound direction
	Direction() Vec3Source

	// Ambient returns the ambient color.
	Ambient() mgl32.Vec3

	// Diffuse returns the diffuse color.
	Diffuse() mgl32.Vec3

	// Specular returns the specular color.
	Specular() mgl32.Vec3

	// Range returns the effective range the attenuation was chosen for.
	Range() float32

	// Attenuation returns the falloff coefficients.
	Attenuation() Attenuation

	// CutOff returns the cosine of the inner cone angle.
	CutOff() float32

	// OuterCutOff returns the cosine of the outer cone angle.
	OuterCutOff() float32

	// SetPosition sets the position source.
	//
	// Parameters:
	//   - src: a Static or Bound source
	SetPosition(src Vec3Source)

	// SetDirection sets the direction source.
	//
	// Parameters:
	//   - src: a Static or Bound source
	SetDirection(src Vec3Source)

	// SetColors sets the three Phong colors.
	//
	// Parameters:
	//   - ambient: ambient color
	//   - diffuse: diffuse color
	//   - specular: specular color
	SetColors(ambient, diffuse, specular mgl32.Vec3)

	// SetRange picks the attenuation preset nearest to rng.
	//
	// Parameters:
	//   - rng: the desired effective range
	SetRange(rng float32)

	// SetSpotCone sets the inner and outer cone angles.
	//
	// Parameters:
	//   - innerDeg: inner angle in degrees
	//   - outerDeg: outer angle in degrees
	SetSpotCone(innerDeg, outerDeg float32)
}

var _ Light = &lightImpl{}

// NewLight creates a new light of the given type with the provided options applied.
// Lights start white with zero ambient, point straight down, and use the range-50 attenuation
// preset and a 12.5°/17.5° cone.
//
// Parameters:
//   - lightType: the type of light
//   - opts: a variadic list of LightBuilderOption functions
//
// Returns:
//   - Light: the configured light
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType:   lightType,
		direction:   Static(mgl32.Vec3{0, -1, 0}),
		diffuse:     mgl32.Vec3{1, 1, 1},
		specular:    mgl32.Vec3{1, 1, 1},
		cutOff:      DefaultCutOff,
		outerCutOff: DefaultOuterCutOff,
	}
	l.SetRange(50)
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// DefaultDirectionalLight returns the dim white sun of the demo scene.
//
// Returns:
//   - Light: a directional light pointing down and slightly away
func DefaultDirectionalLight() Light {
	return NewLight(LightTypeDirectional,
		WithDirection(mgl32.Vec3{-0.2, -1.0, -0.3}),
		WithColors(mgl32.Vec3{0.2, 0.2, 0.2}, mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{1, 1, 1}),
	)
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Position() Vec3Source {
	return l.position
}

func (l *lightImpl) Direction() Vec3Source {
	return l.direction
}

func (l *lightImpl) Ambient() mgl32.Vec3 {
	return l.ambient
}

func (l *lightImpl) Diffuse() mgl32.Vec3 {
	return l.diffuse
}

func (l *lightImpl) Specular() mgl32.Vec3 {
	return l.specular
}

func (l *lightImpl) Range() float32 {
	return l.lightRange
}

func (l *lightImpl) Attenuation() Attenuation {
	return l.attenuation
}

func (l *lightImpl) CutOff() float32 {
	return l.cutOff
}

func (l *lightImpl) OuterCutOff() float32 {
	return l.outerCutOff
}

func (l *lightImpl) SetPosition(src Vec3Source) {
	l.position = src
}

func (l *lightImpl) SetDirection(src Vec3Source) {
	l.direction = src
}

func (l *lightImpl) SetColors(ambient, diffuse, specular mgl32.Vec3) {
	l.ambient = ambient
	l.diffuse = diffuse
	l.specular = specular
}

func (l *lightImpl) SetRange(rng float32) {
	l.lightRange = rng
	l.attenuation = AttenuationForRange(rng)
}

func (l *lightImpl) SetSpotCone(innerDeg, outerDeg float32) {
	l.cutOff = math32.Cos(mgl32.DegToRad(innerDeg))
	l.outerCutOff = math32.Cos(mgl32.DegToRad(outerDeg))
}
