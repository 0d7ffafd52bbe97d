package material

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/resource"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithDiffuse is an option builder that sets the diffuse map sampled at DiffuseUnit.
//
// Parameters:
//   - t: the diffuse texture
//
// Returns:
//   - MaterialBuilderOption: a function that applies the diffuse option to a material
func WithDiffuse(t resource.Texture) MaterialBuilderOption {
	return func(m *material) {
		m.diffuse = t
	}
}

// WithSpecular is an option builder that sets the specular map sampled at SpecularUnit.
//
// Parameters:
//   - t: the specular texture
//
// Returns:
//   - MaterialBuilderOption: a function that applies the specular option to a material
func WithSpecular(t resource.Texture) MaterialBuilderOption {
	return func(m *material) {
		m.specular = t
	}
}

// WithShininess is an option builder that sets the specular exponent of the material.
func WithShininess(s float32) MaterialBuilderOption {
	return func(m *material) {
		m.shininess = s
	}
}

// WithOwnedTextures is an option builder that makes Release release the material's textures.
// Textures shared through a loader cache are owned by the loader and should not use this.
func WithOwnedTextures() MaterialBuilderOption {
	return func(m *material) {
		m.owned = true
	}
}
