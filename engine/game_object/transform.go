package game_object

import (
	"github.com/go-gl/mathgl/mgl32"
)

// transform is the implementation of the Transformable interface.
type transform struct {
	position mgl32.Vec3
	rotation mgl32.Vec3
	scale    mgl32.Vec3

	model   mgl32.Mat4
	normal  mgl32.Mat4
	version uint64
}

// Transformable owns a position, an euler rotation and a scale together with the model and
// normal matrices derived from them. The matrices are rebuilt by the setters, and only when
// the new value differs from the current one, so they are never stale when read.
type Transformable interface {
	// Position returns the world-space position.
	Position() mgl32.Vec3

	// Rotation returns the euler angles in radians, applied X then Y then Z.
	Rotation() mgl32.Vec3

	// Scale returns the per-axis scale.
	Scale() mgl32.Vec3

	// SetPosition sets the world-space position.
	//
	// Parameters:
	//   - p: the new position
	//
	// Returns:
	//   - bool: true if the value changed and the matrices were rebuilt
	SetPosition(p mgl32.Vec3) bool

	// SetRotation sets the euler angles in radians.
	//
	// Parameters:
	//   - r: the new rotation
	//
	// Returns:
	//   - bool: true if the value changed and the matrices were rebuilt
	SetRotation(r mgl32.Vec3) bool

	// SetScale sets the per-axis scale.
	//
	// Parameters:
	//   - s: the new scale
	//
	// Returns:
	//   - bool: true if the value changed and the matrices were rebuilt
	SetScale(s mgl32.Vec3) bool

	// ModelMatrix returns T * Rz * Ry * Rx * S.
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix
	ModelMatrix() mgl32.Mat4

	// NormalMatrix returns transpose(inverse(ModelMatrix())). A model with a zero scale axis has
	// no inverse and yields the zero matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the normal matrix
	NormalMatrix() mgl32.Mat4

	// Version increments on every rebuild. Callers caching values derived from the matrices
	// compare it to detect staleness.
	//
	// Returns:
	//   - uint64: the rebuild counter
	Version() uint64
}

var _ Transformable = &transform{}

// NewTransform creates an identity transform at the origin with unit scale.
//
// Returns:
//   - Transformable: the new transform
func NewTransform() Transformable {
	t := newTransform()
	return &t
}

func newTransform() transform {
	return transform{
		scale:  mgl32.Vec3{1, 1, 1},
		model:  mgl32.Ident4(),
		normal: mgl32.Ident4(),
	}
}

func (t *transform) Position() mgl32.Vec3 {
	return t.position
}

func (t *transform) Rotation() mgl32.Vec3 {
	return t.rotation
}

func (t *transform) Scale() mgl32.Vec3 {
	return t.scale
}

func (t *transform) SetPosition(p mgl32.Vec3) bool {
	if p == t.position {
		return false
	}
	t.position = p
	t.rebuild()
	return true
}

func (t *transform) SetRotation(r mgl32.Vec3) bool {
	if r == t.rotation {
		return false
	}
	t.rotation = r
	t.rebuild()
	return true
}

func (t *transform) SetScale(s mgl32.Vec3) bool {
	if s == t.scale {
		return false
	}
	t.scale = s
	t.rebuild()
	return true
}

func (t *transform) ModelMatrix() mgl32.Mat4 {
	return t.model
}

func (t *transform) NormalMatrix() mgl32.Mat4 {
	return t.normal
}

func (t *transform) Version() uint64 {
	return t.version
}

// rebuild recomputes both matrices. Column-vector order, so X is applied first and the
// translation last.
func (t *transform) rebuild() {
	t.model = mgl32.Translate3D(t.position[0], t.position[1], t.position[2]).
		Mul4(mgl32.HomogRotate3DZ(t.rotation[2])).
		Mul4(mgl32.HomogRotate3DY(t.rotation[1])).
		Mul4(mgl32.HomogRotate3DX(t.rotation[0])).
		Mul4(mgl32.Scale3D(t.scale[0], t.scale[1], t.scale[2]))
	t.normal = t.model.Inv().Transpose()
	t.version++
}
