package model

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/chewxy/math32"
)

// Default tessellation of SphereGeometry.
const (
	DefaultLatitudeBands  = 50
	DefaultLongitudeBands = 50
)

func vertexBytes(vertices []Vertex) []byte {
	return common.SliceToBytes(vertices)
}

// CubeGeometry returns a unit cube centered on the origin with per-face normals and uvs.
//
// Returns:
//   - []Vertex: 24 vertices, four per face
//   - []uint32: 36 indices, counter-clockwise front faces
func CubeGeometry() ([]Vertex, []uint32) {
	faces := []struct {
		normal, u, v [3]float32
	}{
		{normal: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
		{normal: [3]float32{0, 0, -1}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}},
		{normal: [3]float32{1, 0, 0}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},
		{normal: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
		{normal: [3]float32{0, 1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},
		{normal: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
	}
	corners := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	vertices := make([]Vertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		base := uint32(len(vertices))
		for _, c := range corners {
			su, sv := c[0]-0.5, c[1]-0.5
			var p [3]float32
			for i := range p {
				p[i] = f.normal[i]*0.5 + f.u[i]*su + f.v[i]*sv
			}
			vertices = append(vertices, Vertex{Position: p, Normal: f.normal, TexCoord: c})
		}
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}
	return vertices, indices
}

// SphereGeometry returns a UV sphere. Rows run from the north pole (v = 1) to the south pole (v = 0).
//
// Parameters:
//   - latitudeBands: number of horizontal bands
//   - longitudeBands: number of vertical segments
//   - radius: the sphere radius
//
// Returns:
//   - []Vertex: (latitudeBands+1)*(longitudeBands+1) vertices
//   - []uint32: 6*latitudeBands*longitudeBands indices
func SphereGeometry(latitudeBands, longitudeBands int, radius float32) ([]Vertex, []uint32) {
	vertices := make([]Vertex, 0, (latitudeBands+1)*(longitudeBands+1))
	for lat := 0; lat <= latitudeBands; lat++ {
		theta := float32(lat) * math32.Pi / float32(latitudeBands)
		sinTheta, cosTheta := math32.Sincos(theta)
		for long := 0; long <= longitudeBands; long++ {
			phi := float32(long) * 2 * math32.Pi / float32(longitudeBands)
			sinPhi, cosPhi := math32.Sincos(phi)
			n := [3]float32{cosPhi * sinTheta, cosTheta, sinPhi * sinTheta}
			vertices = append(vertices, Vertex{
				Position: [3]float32{n[0] * radius, n[1] * radius, n[2] * radius},
				Normal:   n,
				TexCoord: [2]float32{float32(long) / float32(longitudeBands), 1 - float32(lat)/float32(latitudeBands)},
			})
		}
	}

	indices := make([]uint32, 0, 6*latitudeBands*longitudeBands)
	for lat := 0; lat < latitudeBands; lat++ {
		for long := 0; long < longitudeBands; long++ {
			first := uint32(lat*(longitudeBands+1) + long)
			second := first + uint32(longitudeBands) + 1
			indices = append(indices, first, second, first+1, second, second+1, first+1)
		}
	}
	return vertices, indices
}

// PlaneGeometry returns a unit quad in the XY plane facing +Z.
//
// Returns:
//   - []Vertex: 4 vertices
//   - []uint16: 6 indices
func PlaneGeometry() ([]Vertex, []uint16) {
	normal := [3]float32{0, 0, 1}
	vertices := []Vertex{
		{Position: [3]float32{-0.5, -0.5, 0}, Normal: normal, TexCoord: [2]float32{0, 0}},
		{Position: [3]float32{0.5, -0.5, 0}, Normal: normal, TexCoord: [2]float32{1, 0}},
		{Position: [3]float32{0.5, 0.5, 0}, Normal: normal, TexCoord: [2]float32{1, 1}},
		{Position: [3]float32{-0.5, 0.5, 0}, Normal: normal, TexCoord: [2]float32{0, 1}},
	}
	return vertices, []uint16{0, 1, 2, 2, 3, 0}
}

// NewCube uploads CubeGeometry.
//
// Parameters:
//   - dev: the device that owns the buffers
//
// Returns:
//   - Mesh: the cube mesh
//   - error: an upload error
func NewCube(dev device.Device) (Mesh, error) {
	vertices, indices := CubeGeometry()
	return NewVertexMesh(dev, vertices, WithName("cube"), WithIndices32(indices))
}

// NewSphere uploads SphereGeometry with the default tessellation.
//
// Parameters:
//   - dev: the device that owns the buffers
//   - radius: the sphere radius
//
// Returns:
//   - Mesh: the sphere mesh
//   - error: an upload error
func NewSphere(dev device.Device, radius float32) (Mesh, error) {
	vertices, indices := SphereGeometry(DefaultLatitudeBands, DefaultLongitudeBands, radius)
	return NewVertexMesh(dev, vertices, WithName("sphere"), WithIndices32(indices))
}

// NewPlane uploads PlaneGeometry.
//
// Parameters:
//   - dev: the device that owns the buffers
//
// Returns:
//   - Mesh: the plane mesh
//   - error: an upload error
func NewPlane(dev device.Device) (Mesh, error) {
	vertices, indices := PlaneGeometry()
	return NewVertexMesh(dev, vertices, WithName("plane"), WithIndices16(indices))
}
