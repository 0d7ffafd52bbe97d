package model

import (
	"unsafe"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/resource"
)

// Vertex is the interleaved vertex format shared by every generated primitive.
// Size: 32 bytes, matching VertexLayout.
type Vertex struct {
	Position [3]float32 // offset  0: model-space position (12 bytes)
	Normal   [3]float32 // offset 12: unit normal (12 bytes)
	TexCoord [2]float32 // offset 24: UV coordinate (8 bytes)
}

// Size returns the size of the Vertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (v *Vertex) Size() int {
	return int(unsafe.Sizeof(*v))
}

// Shader input locations of the Vertex fields.
const (
	AttribPosition uint32 = 0
	AttribNormal   uint32 = 1
	AttribTexCoord uint32 = 2
)

// VertexLayout returns the attribute layout of Vertex: position, normal and uv at locations 0, 1 and 2.
//
// Returns:
//   - *resource.AttributeLayout: the layout with a 32-byte stride
func VertexLayout() *resource.AttributeLayout {
	return resource.MustAttributeLayout(
		device.VertexAttribute{Slot: AttribPosition, Count: 3, Type: device.AttributeTypeFloat},
		device.VertexAttribute{Slot: AttribNormal, Count: 3, Type: device.AttributeTypeFloat},
		device.VertexAttribute{Slot: AttribTexCoord, Count: 2, Type: device.AttributeTypeFloat},
	)
}
