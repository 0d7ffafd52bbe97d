package light

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// SourceID names a dynamic vector source registered in Bindings, such as "camera.position".
type SourceID string

// Vec3Source is a light vector that is either a static value or a reference to a dynamic
// source. Static is used when Source is empty, and as the fallback when Source is unbound.
type Vec3Source struct {
	Static mgl32.Vec3
	Source SourceID
}

// Static returns a source that always yields v.
func Static(v mgl32.Vec3) Vec3Source {
	return Vec3Source{Static: v}
}

// Bound returns a source resolved through Bindings at apply time, with fallback used while
// id is unbound.
//
// Parameters:
//   - id: the dynamic source
//   - fallback: the value used when id has no binding
//
// Returns:
//   - Vec3Source: the bound source
func Bound(id SourceID, fallback mgl32.Vec3) Vec3Source {
	return Vec3Source{Static: fallback, Source: id}
}

// IsDynamic reports whether the source refers to a binding.
func (s Vec3Source) IsDynamic() bool {
	return s.Source != ""
}

// Bindings maps source ids to functions returning the current value of another entity, e.g.
// the active camera's position. Functions are called on every Apply and never cached.
type Bindings struct {
	mu    *sync.Mutex
	funcs map[SourceID]func() mgl32.Vec3
}

// NewBindings creates an empty binding table.
//
// Returns:
//   - *Bindings: the new table
func NewBindings() *Bindings {
	return &Bindings{
		mu:    &sync.Mutex{},
		funcs: make(map[SourceID]func() mgl32.Vec3),
	}
}

// Bind registers or replaces the function behind id.
//
// Parameters:
//   - id: the source id
//   - fn: returns the current value
func (b *Bindings) Bind(id SourceID, fn func() mgl32.Vec3) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.funcs[id] = fn
}

// Unbind removes id. Lights referring to it fall back to their static value.
func (b *Bindings) Unbind(id SourceID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.funcs, id)
}

// Lookup evaluates the function behind id.
//
// Parameters:
//   - id: the source id
//
// Returns:
//   - mgl32.Vec3: the current value
//   - bool: false if id is unbound
func (b *Bindings) Lookup(id SourceID) (mgl32.Vec3, bool) {
	b.mu.Lock()
	fn, ok := b.funcs[id]
	b.mu.Unlock()
	if !ok || fn == nil {
		return mgl32.Vec3{}, false
	}
	return fn(), true
}
