package model

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/device/devicetest"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexMatchesLayout(t *testing.T) {
	var v Vertex
	assert.Equal(t, v.Size(), VertexLayout().Stride())
	assert.Equal(t, []int{0, 12, 24}, VertexLayout().Offsets())
}

func TestCubeMeshDraw(t *testing.T) {
	dev := devicetest.New()
	m, err := NewCube(dev)
	require.NoError(t, err)
	assert.Equal(t, "cube", m.Name())
	assert.Equal(t, 36, m.ElementCount())
	assert.Equal(t, 24, m.VertexBuffer().VertexCount())

	vao := dev.VertexArrays[m.Handle()]
	require.NotNil(t, vao)
	assert.Equal(t, m.IndexBuffer().Handle(), vao.ElementBuffer)
	assert.Equal(t, m.VertexBuffer().Handle(), vao.VertexBuffers[0])

	m.Draw()
	require.Len(t, dev.Draws, 1)
	d := dev.Draws[0]
	assert.True(t, d.Indexed)
	assert.Equal(t, 36, d.Count)
	assert.Equal(t, device.IndexTypeUnsignedInt, d.IndexType)
	assert.Equal(t, m.Handle(), d.VertexArray)
}

func TestNonIndexedMesh(t *testing.T) {
	dev := devicetest.New()
	vertices, _ := PlaneGeometry()
	m, err := NewVertexMesh(dev, vertices[:3])
	require.NoError(t, err)
	assert.Nil(t, m.IndexBuffer())
	assert.Equal(t, 3, m.ElementCount())

	m.Draw()
	require.Len(t, dev.Draws, 1)
	assert.False(t, dev.Draws[0].Indexed)
	assert.Equal(t, 3, dev.Draws[0].Count)
}

func TestMeshWithoutLayout(t *testing.T) {
	_, err := NewMesh(devicetest.New(), nil, nil)
	assert.Error(t, err)
}

func TestMeshReleaseOnce(t *testing.T) {
	dev := devicetest.New()
	m, err := NewPlane(dev)
	require.NoError(t, err)
	vao, vb, ib := m.Handle(), m.VertexBuffer().Handle(), m.IndexBuffer().Handle()

	m.Release()
	m.Release()
	assert.Equal(t, 1, dev.Deletes[vao])
	assert.Equal(t, 1, dev.Deletes[vb])
	assert.Equal(t, 1, dev.Deletes[ib])

	m.Draw()
	assert.Empty(t, dev.Draws)
}

func TestSphereGeometry(t *testing.T) {
	vertices, indices := SphereGeometry(4, 8, 2)
	assert.Len(t, vertices, 5*9)
	assert.Len(t, indices, 6*4*8)

	for _, v := range vertices {
		r := math32.Sqrt(v.Position[0]*v.Position[0] + v.Position[1]*v.Position[1] + v.Position[2]*v.Position[2])
		assert.InDelta(t, 2, r, 1e-4)
	}
	assert.InDelta(t, 2, vertices[0].Position[1], 1e-5)
	assert.Equal(t, [2]float32{0, 1}, vertices[0].TexCoord)
	assert.Equal(t, []uint32{0, 9, 1, 9, 10, 1}, indices[:6])
}

func TestCubeGeometryNormalsPointOutward(t *testing.T) {
	vertices, _ := CubeGeometry()
	for _, v := range vertices {
		dot := v.Position[0]*v.Normal[0] + v.Position[1]*v.Normal[1] + v.Position[2]*v.Normal[2]
		assert.InDelta(t, 0.5, dot, 1e-6)
	}
}
