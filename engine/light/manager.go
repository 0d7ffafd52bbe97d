package light

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/engine/logger"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Uniform array names declared by GLSLLightSource.
const (
	DirectionalLightsName = "DirectionalLights"
	PointLightsName       = "PointLights"
	FlashLightsName       = "FlashLights"
)

// UniformLoader is the subset of a shader program the lighting pipeline uploads through.
type UniformLoader interface {
	LoadInt(name string, v int32)
	LoadBool(name string, v bool)
	LoadFloat(name string, v float32)
	LoadVec3(name string, v mgl32.Vec3)
}

// manager is the implementation of the Manager interface.
type manager struct {
	mu  *sync.Mutex
	log *zap.Logger

	directional []Light
	point       []Light
	spot        []Light

	bindings *Bindings
	fog      *Fog
	blinn    bool
	night    bool

	warned map[SourceID]struct{}
}

// Manager owns the directional, point and spot light collections plus one optional fog
// descriptor and uploads them to a shader program.
type Manager interface {
	// Add appends l to the collection matching its type.
	//
	// Parameters:
	//   - l: the light to add
	Add(l Light)

	// Remove removes l from its collection, keeping the order of the others.
	//
	// Parameters:
	//   - l: the light to remove
	//
	// Returns:
	//   - bool: true if l was found
	Remove(l Light) bool

	// Lights returns a copy of the collection for t in insertion order.
	//
	// Parameters:
	//   - t: the light type
	//
	// Returns:
	//   - []Light: the lights of that type
	Lights(t LightType) []Light

	// Bindings returns the table dynamic light vectors are resolved through.
	//
	// Returns:
	//   - *Bindings: the binding table
	Bindings() *Bindings

	// Fog returns the fog descriptor, or nil if the scene has none.
	Fog() *Fog

	// SetFog replaces the fog descriptor. Nil removes fog.
	SetFog(f *Fog)

	// Blinn reports whether Blinn-Phong specular is enabled.
	Blinn() bool

	// Night reports whether directional lights are switched off.
	Night() bool

	// Apply uploads all lights, the blinn and night flags, and the fog when set.
	//
	// Parameters:
	//   - p: the program receiving the uniforms
	Apply(p UniformLoader)

	// ApplyLights uploads every collection as <Name>Count followed by <Name>[i].<field>,
	// directional first, then point, then spot.
	//
	// Parameters:
	//   - p: the program receiving the uniforms
	ApplyLights(p UniformLoader)

	// ApplyFog uploads the fog uniforms. Does nothing when no fog is set.
	//
	// Parameters:
	//   - p: the program receiving the uniforms
	ApplyFog(p UniformLoader)

	// ToggleFog flips fog.Enabled and re-uploads only fog.use.
	//
	// Parameters:
	//   - p: the program receiving the uniform
	//
	// Returns:
	//   - bool: the new state, false when no fog is set
	ToggleFog(p UniformLoader) bool

	// ToggleBlinn flips Blinn-Phong specular and uploads the blinn uniform.
	ToggleBlinn(p UniformLoader) bool

	// ToggleNight flips night mode and uploads the night uniform.
	ToggleNight(p UniformLoader) bool
}

var _ Manager = &manager{}

// NewManager creates an empty lighting manager.
//
// Parameters:
//   - opts: a variadic list of ManagerBuilderOption functions
//
// Returns:
//   - Manager: the new manager
func NewManager(opts ...ManagerBuilderOption) Manager {
	m := &manager{
		mu:       &sync.Mutex{},
		bindings: NewBindings(),
		warned:   make(map[SourceID]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = logger.Or(m.log)
	return m
}

func (m *manager) collection(t LightType) *[]Light {
	switch t {
	case LightTypeDirectional:
		return &m.directional
	case LightTypePoint:
		return &m.point
	case LightTypeSpot:
		return &m.spot
	}
	return nil
}

func (m *manager) Add(l Light) {
	if l == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.collection(l.Type())
	if c == nil {
		m.log.Warn("light of unknown type ignored", zap.Stringer("type", l.Type()))
		return
	}
	*c = append(*c, l)
}

func (m *manager) Remove(l Light) bool {
	if l == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.collection(l.Type())
	if c == nil {
		return false
	}
	for i, existing := range *c {
		if existing == l {
			*c = append((*c)[:i], (*c)[i+1:]...)
			return true
		}
	}
	return false
}

func (m *manager) Lights(t LightType) []Light {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.collection(t)
	if c == nil {
		return nil
	}
	out := make([]Light, len(*c))
	copy(out, *c)
	return out
}

func (m *manager) Bindings() *Bindings {
	return m.bindings
}

func (m *manager) Fog() *Fog {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fog
}

func (m *manager) SetFog(f *Fog) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fog = f
}

func (m *manager) Blinn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.blinn
}

func (m *manager) Night() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.night
}

func (m *manager) Apply(p UniformLoader) {
	m.ApplyLights(p)
	m.mu.Lock()
	p.LoadBool("blinn", m.blinn)
	p.LoadBool("night", m.night)
	m.mu.Unlock()
	m.ApplyFog(p)
}

func (m *manager) ApplyLights(p UniformLoader) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p.LoadInt(DirectionalLightsName+"Count", int32(len(m.directional)))
	for i, l := range m.directional {
		prefix := fmt.Sprintf("%s[%d].", DirectionalLightsName, i)
		p.LoadVec3(prefix+"direction", m.resolve(l.Direction()))
		m.applyColors(p, prefix, l)
	}

	p.LoadInt(PointLightsName+"Count", int32(len(m.point)))
	for i, l := range m.point {
		prefix := fmt.Sprintf("%s[%d].", PointLightsName, i)
		p.LoadVec3(prefix+"position", m.resolve(l.Position()))
		m.applyColors(p, prefix, l)
		applyAttenuation(p, prefix, l.Attenuation())
	}

	p.LoadInt(FlashLightsName+"Count", int32(len(m.spot)))
	for i, l := range m.spot {
		prefix := fmt.Sprintf("%s[%d].", FlashLightsName, i)
		p.LoadVec3(prefix+"position", m.resolve(l.Position()))
		p.LoadVec3(prefix+"direction", m.resolve(l.Direction()))
		m.applyColors(p, prefix, l)
		applyAttenuation(p, prefix, l.Attenuation())
		p.LoadFloat(prefix+"cutOff", l.CutOff())
		p.LoadFloat(prefix+"outerCutOff", l.OuterCutOff())
	}
}

func (m *manager) ApplyFog(p UniformLoader) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fog == nil {
		return
	}
	m.fog.Apply(p)
}

func (m *manager) ToggleFog(p UniformLoader) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fog == nil {
		m.log.Debug("fog toggle ignored, scene has no fog")
		return false
	}
	m.fog.Enabled = !m.fog.Enabled
	p.LoadBool("fog.use", m.fog.Enabled)
	return m.fog.Enabled
}

func (m *manager) ToggleBlinn(p UniformLoader) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blinn = !m.blinn
	p.LoadBool("blinn", m.blinn)
	return m.blinn
}

func (m *manager) ToggleNight(p UniformLoader) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.night = !m.night
	p.LoadBool("night", m.night)
	return m.night
}

// resolve evaluates a light vector. Unbound sources fall back to the static value and warn
// once per id until the id is bound again.
func (m *manager) resolve(src Vec3Source) mgl32.Vec3 {
	if !src.IsDynamic() {
		return src.Static
	}
	if v, ok := m.bindings.Lookup(src.Source); ok {
		delete(m.warned, src.Source)
		return v
	}
	if _, seen := m.warned[src.Source]; !seen {
		m.warned[src.Source] = struct{}{}
		m.log.Warn("light source unbound, using static fallback",
			zap.String("source", string(src.Source)),
			zap.Float32s("fallback", src.Static[:]),
		)
	}
	return src.Static
}

func (m *manager) applyColors(p UniformLoader, prefix string, l Light) {
	p.LoadVec3(prefix+"ambient", l.Ambient())
	p.LoadVec3(prefix+"diffuse", l.Diffuse())
	p.LoadVec3(prefix+"specular", l.Specular())
}

func applyAttenuation(p UniformLoader, prefix string, a Attenuation) {
	p.LoadFloat(prefix+"constant", a.Constant)
	p.LoadFloat(prefix+"linear", a.Linear)
	p.LoadFloat(prefix+"quadratic", a.Quadratic)
}
