package resource

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
)

// AttributeLayout describes how the bytes of one interleaved vertex buffer map to shader
// input slots. Offsets are assigned in declaration order and the stride is the sum of all
// attribute sizes, so attributes never overlap.
type AttributeLayout struct {
	attributes []device.VertexAttribute
	stride     int
}

// NewAttributeLayout computes offsets and stride for the given attributes. Any Offset set
// on the inputs is ignored.
//
// Parameters:
//   - attributes: the attributes in buffer order
//
// Returns:
//   - *AttributeLayout: the finalized layout
//   - error: ErrEmptyLayout when no attributes are given, or an error for a non-positive component count
func NewAttributeLayout(attributes ...device.VertexAttribute) (*AttributeLayout, error) {
	if len(attributes) == 0 {
		return nil, ErrEmptyLayout
	}
	l := &AttributeLayout{attributes: make([]device.VertexAttribute, len(attributes))}
	offset := 0
	for i, a := range attributes {
		if a.Count <= 0 {
			return nil, fmt.Errorf("attribute slot %d: component count %d must be positive", a.Slot, a.Count)
		}
		a.Offset = offset
		offset += a.ByteSize()
		l.attributes[i] = a
	}
	l.stride = offset
	return l, nil
}

// MustAttributeLayout is NewAttributeLayout for static layouts, panicking on error.
func MustAttributeLayout(attributes ...device.VertexAttribute) *AttributeLayout {
	l, err := NewAttributeLayout(attributes...)
	if err != nil {
		panic(err)
	}
	return l
}

// Float32Attributes builds a float attribute per component count, on consecutive slots starting at 0.
//
// Parameters:
//   - counts: component count of each attribute, e.g. 3, 3, 2 for position, normal, uv
//
// Returns:
//   - []device.VertexAttribute: the attributes without offsets
func Float32Attributes(counts ...int) []device.VertexAttribute {
	attrs := make([]device.VertexAttribute, len(counts))
	for i, c := range counts {
		attrs[i] = device.VertexAttribute{Slot: uint32(i), Count: c, Type: device.AttributeTypeFloat}
	}
	return attrs
}

// Attributes returns a copy of the attributes with their computed offsets.
func (l *AttributeLayout) Attributes() []device.VertexAttribute {
	return append([]device.VertexAttribute(nil), l.attributes...)
}

// Offsets returns the byte offset of each attribute in declaration order.
func (l *AttributeLayout) Offsets() []int {
	offsets := make([]int, len(l.attributes))
	for i, a := range l.attributes {
		offsets[i] = a.Offset
	}
	return offsets
}

// Stride returns the byte distance between consecutive vertices.
func (l *AttributeLayout) Stride() int {
	return l.stride
}
