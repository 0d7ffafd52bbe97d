package model

import "github.com/Carmen-Shannon/oxy-gl/engine/device"

// MeshBuilderOption is a functional option for configuring a Mesh via NewMesh.
type MeshBuilderOption func(*mesh)

// WithName is an option builder that sets the name of the Mesh.
//
// Parameters:
//   - name: the mesh identifier
//
// Returns:
//   - MeshBuilderOption: a function that applies the name option to a mesh
func WithName(name string) MeshBuilderOption {
	return func(m *mesh) {
		m.name = name
	}
}

// WithTopology is an option builder that sets the primitive topology. Defaults to triangles.
//
// Parameters:
//   - topology: the primitive assembly mode
//
// Returns:
//   - MeshBuilderOption: a function that applies the topology option to a mesh
func WithTopology(topology device.Topology) MeshBuilderOption {
	return func(m *mesh) {
		m.topology = topology
	}
}

// WithUsage is an option builder that sets the usage hint of both buffers. Defaults to static draw.
//
// Parameters:
//   - usage: the buffer usage hint
//
// Returns:
//   - MeshBuilderOption: a function that applies the usage option to a mesh
func WithUsage(usage device.BufferUsage) MeshBuilderOption {
	return func(m *mesh) {
		m.usage = usage
	}
}

// WithIndices16 is an option builder that gives the Mesh a 16-bit index buffer.
//
// Parameters:
//   - indices: the triangle indices
//
// Returns:
//   - MeshBuilderOption: a function that applies the indices option to a mesh
func WithIndices16(indices []uint16) MeshBuilderOption {
	return func(m *mesh) {
		m.indices16, m.indices32 = indices, nil
	}
}

// WithIndices32 is an option builder that gives the Mesh a 32-bit index buffer.
//
// Parameters:
//   - indices: the triangle indices
//
// Returns:
//   - MeshBuilderOption: a function that applies the indices option to a mesh
func WithIndices32(indices []uint32) MeshBuilderOption {
	return func(m *mesh) {
		m.indices32, m.indices16 = indices, nil
	}
}
