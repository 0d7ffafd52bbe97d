// Package game_object holds scene entities: a Transformable with an optional mesh, material
// and attached light.
package game_object

import (
	"fmt"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-gl/engine/light"
	"github.com/Carmen-Shannon/oxy-gl/engine/model"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/material"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// UniformLoader is the subset of a shader program a game object uploads through.
type UniformLoader interface {
	material.UniformLoader
	LoadMat3(name string, m mgl32.Mat3, transpose bool)
	LoadMat4(name string, m mgl32.Mat4, transpose bool)
}

type gameObject struct {
	transform

	id            uint64
	name          string
	enabled       atomic.Bool
	mesh          model.Mesh
	mat           material.Material
	attachedLight light.Light
}

// GameObject is a drawable scene entity. Its transform follows the Transformable rules; the
// mesh and material are borrowed and never released by the object.
type GameObject interface {
	Transformable

	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Name returns the object's name, which may be empty.
	Name() string

	// Enabled returns whether this object is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Mesh returns the mesh drawn by Draw, or nil if not set.
	//
	// Returns:
	//   - model.Mesh: the associated mesh or nil
	Mesh() model.Mesh

	// Material returns the material applied by Draw, or nil if not set.
	//
	// Returns:
	//   - material.Material: the associated material or nil
	Material() material.Material

	// SourceID returns the binding id under which a scene publishes this object's position.
	//
	// Returns:
	//   - light.SourceID: the binding id
	SourceID() light.SourceID

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetMesh assigns the mesh.
	SetMesh(m model.Mesh)

	// SetMaterial assigns the material.
	SetMaterial(m material.Material)

	// Light returns the Light attached to this object, or nil if none is set.
	//
	// Returns:
	//   - light.Light: the attached light or nil
	Light() light.Light

	// SetLight attaches a Light to this object. When the object is added to a scene, the
	// light's position is bound to the object's position. Pass nil to detach.
	//
	// Parameters:
	//   - l: the Light to attach, or nil to detach
	SetLight(l light.Light)

	// Orbit rotates the position about the world Y axis by speed*dt radians and turns the
	// object so it faces the origin.
	//
	// Parameters:
	//   - dt: the frame time in seconds
	//   - speed: angular speed in radians per second
	Orbit(dt, speed float32)

	// Draw uploads model and normalMatrix, applies the material and draws the mesh.
	// Disabled objects and objects without a mesh draw nothing.
	//
	// Parameters:
	//   - p: the bound program
	Draw(p UniformLoader)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new enabled GameObject configured with the given options.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		transform: newTransform(),
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Mesh() model.Mesh {
	return g.mesh
}

func (g *gameObject) Material() material.Material {
	return g.mat
}

func (g *gameObject) SourceID() light.SourceID {
	if g.name != "" {
		return light.SourceID("object." + g.name)
	}
	return light.SourceID(fmt.Sprintf("object.%d", g.id))
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetMesh(m model.Mesh) {
	g.mesh = m
}

func (g *gameObject) SetMaterial(m material.Material) {
	g.mat = m
}

func (g *gameObject) Light() light.Light {
	return g.attachedLight
}

func (g *gameObject) SetLight(l light.Light) {
	g.attachedLight = l
}

func (g *gameObject) Orbit(dt, speed float32) {
	pos := mgl32.Rotate3DY(speed * dt).Mul3x1(g.position)
	rot := g.rotation
	if pos.Len() > 0 {
		toCenter := pos.Mul(-1).Normalize()
		rot = mgl32.Vec3{0, math32.Atan2(toCenter[2], toCenter[0]), 0}
	}
	if pos == g.position && rot == g.rotation {
		return
	}
	g.position = pos
	g.rotation = rot
	g.rebuild()
}

func (g *gameObject) Draw(p UniformLoader) {
	if !g.Enabled() || g.mesh == nil {
		return
	}
	p.LoadMat4("model", g.model, false)
	p.LoadMat3("normalMatrix", g.normal.Mat3(), false)
	if g.mat != nil {
		g.mat.Apply(p)
	}
	g.mesh.Draw()
}
