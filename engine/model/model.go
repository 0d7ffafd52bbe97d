package model

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/resource"
)

// mesh is the implementation of the Mesh interface.
type mesh struct {
	dev          device.Device
	name         string
	vao          device.Handle
	vertexBuffer resource.VertexBuffer
	indexBuffer  resource.IndexBuffer
	topology     device.Topology
	usage        device.BufferUsage
	indices16    []uint16
	indices32    []uint32
}

// Mesh pairs a vertex buffer and an optional index buffer behind one vertex array.
// A Mesh is built once at load time, read-only while rendering and released at teardown.
type Mesh interface {
	resource.GpuResource

	// Name retrieves the mesh identifier.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// Topology returns the primitive assembly mode used by Draw.
	//
	// Returns:
	//   - device.Topology: the topology
	Topology() device.Topology

	// ElementCount returns the number of indices, or vertices for a non-indexed mesh.
	//
	// Returns:
	//   - int: the number of elements Draw submits
	ElementCount() int

	// VertexBuffer retrieves the owned vertex buffer.
	//
	// Returns:
	//   - resource.VertexBuffer: the vertex buffer
	VertexBuffer() resource.VertexBuffer

	// IndexBuffer retrieves the owned index buffer, nil for a non-indexed mesh.
	//
	// Returns:
	//   - resource.IndexBuffer: the index buffer or nil
	IndexBuffer() resource.IndexBuffer

	// Bind binds the vertex array of the mesh.
	Bind()

	// Unbind clears the vertex array binding.
	Unbind()

	// Draw binds the mesh and submits one draw call covering all elements.
	Draw()
}

var _ Mesh = &mesh{}

// NewMesh uploads vertex data with the given layout and builds the vertex array.
//
// Parameters:
//   - dev: the device that owns the buffers
//   - layout: the vertex attribute layout
//   - vertexData: interleaved vertex bytes matching layout
//   - options: functional options for name, topology, usage and indices
//
// Returns:
//   - Mesh: the uploaded mesh
//   - error: resource.ErrNoLayout when layout is nil, or an upload error
func NewMesh(dev device.Device, layout *resource.AttributeLayout, vertexData []byte, options ...MeshBuilderOption) (Mesh, error) {
	if layout == nil {
		return nil, resource.ErrNoLayout
	}
	m := &mesh{
		dev:      dev,
		topology: device.TopologyTriangles,
		usage:    device.BufferUsageStaticDraw,
	}
	for _, opt := range options {
		opt(m)
	}

	m.vao = dev.CreateVertexArray()
	m.vertexBuffer = resource.NewVertexBuffer(dev, layout, resource.WithUsage(m.usage))
	if err := m.vertexBuffer.Load(vertexData); err != nil {
		m.Release()
		return nil, fmt.Errorf("mesh %q vertices: %w", m.name, err)
	}
	if err := m.vertexBuffer.AttachTo(m.vao, 0); err != nil {
		m.Release()
		return nil, fmt.Errorf("mesh %q layout: %w", m.name, err)
	}

	if m.indices16 != nil || m.indices32 != nil {
		m.indexBuffer = resource.NewIndexBuffer(dev, resource.WithUsage(m.usage))
		var err error
		if m.indices16 != nil {
			err = m.indexBuffer.Load16(m.indices16)
		} else {
			err = m.indexBuffer.Load32(m.indices32)
		}
		if err != nil {
			m.Release()
			return nil, fmt.Errorf("mesh %q indices: %w", m.name, err)
		}
		dev.VertexArrayElementBuffer(m.vao, m.indexBuffer.Handle())
	}
	m.indices16, m.indices32 = nil, nil
	return m, nil
}

// NewVertexMesh is NewMesh for a slice of Vertex values using VertexLayout.
//
// Parameters:
//   - dev: the device that owns the buffers
//   - vertices: the vertices
//   - options: functional options for name, topology, usage and indices
//
// Returns:
//   - Mesh: the uploaded mesh
//   - error: an upload error
func NewVertexMesh(dev device.Device, vertices []Vertex, options ...MeshBuilderOption) (Mesh, error) {
	return NewMesh(dev, VertexLayout(), vertexBytes(vertices), options...)
}

func (m *mesh) Handle() device.Handle {
	return m.vao
}

func (m *mesh) Released() bool {
	return m.vao == device.InvalidHandle
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) Topology() device.Topology {
	return m.topology
}

func (m *mesh) ElementCount() int {
	if m.indexBuffer != nil {
		return m.indexBuffer.Count()
	}
	return m.vertexBuffer.VertexCount()
}

func (m *mesh) VertexBuffer() resource.VertexBuffer {
	return m.vertexBuffer
}

func (m *mesh) IndexBuffer() resource.IndexBuffer {
	return m.indexBuffer
}

func (m *mesh) Bind() {
	m.dev.BindVertexArray(m.vao)
}

func (m *mesh) Unbind() {
	m.dev.BindVertexArray(device.InvalidHandle)
}

func (m *mesh) Draw() {
	if m.Released() {
		return
	}
	m.Bind()
	if m.indexBuffer != nil {
		m.dev.DrawElements(m.topology, m.indexBuffer.Count(), m.indexBuffer.IndexType())
		return
	}
	m.dev.DrawArrays(m.topology, 0, m.vertexBuffer.VertexCount())
}

// Release destroys the vertex array and both buffers. Calling it again is a no-op.
func (m *mesh) Release() {
	if m.Released() {
		return
	}
	m.dev.DeleteVertexArray(m.vao)
	m.vao = device.InvalidHandle
	if m.vertexBuffer != nil {
		m.vertexBuffer.Release()
	}
	if m.indexBuffer != nil {
		m.indexBuffer.Release()
	}
}
