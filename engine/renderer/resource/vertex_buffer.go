package resource

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/device"
)

// vertexBuffer is the implementation of the VertexBuffer interface.
type vertexBuffer struct {
	*dataBuffer
	layout *AttributeLayout
}

// VertexBuffer is a DataBuffer on the array target with an AttributeLayout describing its vertices.
type VertexBuffer interface {
	DataBuffer

	// Layout returns the attribute layout, nil until SetLayout is called.
	//
	// Returns:
	//   - *AttributeLayout: the layout
	Layout() *AttributeLayout

	// SetLayout finalizes the vertex format of the buffer.
	//
	// Parameters:
	//   - layout: the attribute layout
	SetLayout(layout *AttributeLayout)

	// VertexCount returns the number of whole vertices in the buffer.
	//
	// Returns:
	//   - int: capacity divided by stride, 0 without a layout
	VertexCount() int

	// AttachTo describes this buffer's attributes on a vertex array at the given binding index.
	//
	// Parameters:
	//   - vao: the vertex array handle
	//   - binding: the vertex buffer binding index
	//
	// Returns:
	//   - error: ErrNoLayout when no layout is set, ErrReleased if released
	AttachTo(vao device.Handle, binding uint32) error
}

var _ VertexBuffer = &vertexBuffer{}

// NewVertexBuffer creates an empty vertex buffer. The layout may be nil and set later.
//
// Parameters:
//   - dev: the device that owns the buffer
//   - layout: the attribute layout, or nil
//   - options: functional options to configure the underlying buffer
//
// Returns:
//   - VertexBuffer: the new vertex buffer
func NewVertexBuffer(dev device.Device, layout *AttributeLayout, options ...BufferBuilderOption) VertexBuffer {
	return &vertexBuffer{
		dataBuffer: NewDataBuffer(dev, device.BufferTargetArray, options...).(*dataBuffer),
		layout:     layout,
	}
}

func (v *vertexBuffer) Layout() *AttributeLayout {
	return v.layout
}

func (v *vertexBuffer) SetLayout(layout *AttributeLayout) {
	v.layout = layout
}

func (v *vertexBuffer) VertexCount() int {
	if v.layout == nil || v.layout.Stride() == 0 {
		return 0
	}
	return v.capacity / v.layout.Stride()
}

func (v *vertexBuffer) AttachTo(vao device.Handle, binding uint32) error {
	if v.Released() {
		return ErrReleased
	}
	if v.layout == nil {
		return ErrNoLayout
	}
	v.dev.VertexArrayVertexBuffer(vao, binding, v.handle, 0, v.layout.Stride())
	for _, a := range v.layout.attributes {
		v.dev.VertexArrayAttrib(vao, a, binding)
	}
	return nil
}
