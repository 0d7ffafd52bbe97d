// Package material pairs the diffuse and specular textures of a surface with its shininess and
// uploads them to the `material` uniform declared by GLSLMaterialSource.
package material

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/resource"
)

const (
	// DiffuseUnit is the texture unit the diffuse map is bound to.
	DiffuseUnit uint32 = 0
	// SpecularUnit is the texture unit the specular map is bound to.
	SpecularUnit uint32 = 1

	// DefaultShininess is the specular exponent of a material built without WithShininess.
	DefaultShininess float32 = 32
)

// UniformLoader is the subset of a shader program a material uploads through.
type UniformLoader interface {
	LoadInt(name string, v int32)
	LoadFloat(name string, v float32)
}

// material is the implementation of the Material interface.
type material struct {
	name      string
	diffuse   resource.Texture
	specular  resource.Texture
	shininess float32
	owned     bool
}

// Material describes how a surface samples its diffuse and specular maps.
type Material interface {
	// Name returns the name of the material.
	//
	// Returns:
	//   - string: the material name
	Name() string

	// Diffuse returns the diffuse map, or nil if the material has none.
	//
	// Returns:
	//   - resource.Texture: the diffuse map
	Diffuse() resource.Texture

	// Specular returns the specular map, or nil if the material has none.
	//
	// Returns:
	//   - resource.Texture: the specular map
	Specular() resource.Texture

	// Shininess returns the specular exponent.
	//
	// Returns:
	//   - float32: the specular exponent
	Shininess() float32

	// SetShininess sets the specular exponent.
	//
	// Parameters:
	//   - s: the new specular exponent
	SetShininess(s float32)

	// Apply binds both maps to DiffuseUnit and SpecularUnit and uploads material.diffuse,
	// material.specular and material.shininess. A missing map leaves its unit unbound.
	//
	// Parameters:
	//   - p: the program receiving the uniforms
	Apply(p UniformLoader)

	// Unbind clears both texture units.
	Unbind()

	// Release releases the textures when the material owns them (see WithOwnedTextures).
	Release()
}

var _ Material = &material{}

// NewMaterial creates a new Material with the provided options applied.
//
// Parameters:
//   - options: a variadic list of MaterialBuilderOption functions to configure the Material
//
// Returns:
//   - Material: the configured material
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		shininess: DefaultShininess,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Diffuse() resource.Texture {
	return m.diffuse
}

func (m *material) Specular() resource.Texture {
	return m.specular
}

func (m *material) Shininess() float32 {
	return m.shininess
}

func (m *material) SetShininess(s float32) {
	m.shininess = s
}

func (m *material) Apply(p UniformLoader) {
	bindOrClear(m.diffuse, DiffuseUnit)
	bindOrClear(m.specular, SpecularUnit)
	p.LoadInt("material.diffuse", int32(DiffuseUnit))
	p.LoadInt("material.specular", int32(SpecularUnit))
	p.LoadFloat("material.shininess", m.shininess)
}

func (m *material) Unbind() {
	if m.diffuse != nil {
		m.diffuse.UnbindUnit(DiffuseUnit)
	}
	if m.specular != nil {
		m.specular.UnbindUnit(SpecularUnit)
	}
}

func (m *material) Release() {
	if !m.owned {
		return
	}
	if m.diffuse != nil {
		m.diffuse.Release()
	}
	if m.specular != nil && m.specular != m.diffuse {
		m.specular.Release()
	}
}

func bindOrClear(t resource.Texture, unit uint32) {
	if t == nil || t.Released() {
		return
	}
	t.BindUnit(unit)
}
