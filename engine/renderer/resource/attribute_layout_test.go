package resource

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/device/devicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeLayoutOffsetsArePrefixSums(t *testing.T) {
	cases := []struct {
		name    string
		attrs   []device.VertexAttribute
		offsets []int
		stride  int
	}{
		{
			name:    "position normal uv",
			attrs:   Float32Attributes(3, 3, 2),
			offsets: []int{0, 12, 24},
			stride:  32,
		},
		{
			name:    "single",
			attrs:   Float32Attributes(4),
			offsets: []int{0},
			stride:  16,
		},
		{
			name: "mixed types",
			attrs: []device.VertexAttribute{
				{Slot: 0, Count: 3, Type: device.AttributeTypeFloat},
				{Slot: 1, Count: 4, Type: device.AttributeTypeUnsignedByte, Normalized: true},
				{Slot: 2, Count: 4, Type: device.AttributeTypeInt2101010Rev},
				{Slot: 3, Count: 2, Type: device.AttributeTypeHalfFloat},
			},
			offsets: []int{0, 12, 16, 20},
			stride:  24,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := NewAttributeLayout(tc.attrs...)
			require.NoError(t, err)
			assert.Equal(t, tc.offsets, l.Offsets())
			assert.Equal(t, tc.stride, l.Stride())
		})
	}
}

func TestAttributeLayoutIgnoresInputOffsets(t *testing.T) {
	l := MustAttributeLayout(device.VertexAttribute{Count: 2, Type: device.AttributeTypeFloat, Offset: 99})
	assert.Equal(t, 0, l.Attributes()[0].Offset)
}

func TestAttributeLayoutErrors(t *testing.T) {
	_, err := NewAttributeLayout()
	assert.ErrorIs(t, err, ErrEmptyLayout)

	_, err = NewAttributeLayout(device.VertexAttribute{Count: 0, Type: device.AttributeTypeFloat})
	assert.Error(t, err)
}

func TestVertexBufferAttachTo(t *testing.T) {
	dev := devicetest.New()
	vao := dev.CreateVertexArray()

	vb := NewVertexBuffer(dev, nil)
	assert.ErrorIs(t, vb.AttachTo(vao, 0), ErrNoLayout)

	vb.SetLayout(MustAttributeLayout(Float32Attributes(3, 3, 2)...))
	require.NoError(t, LoadSlice(vb, make([]float32, 8*4)))
	require.NoError(t, vb.AttachTo(vao, 0))

	rec := dev.VertexArrays[vao]
	assert.Equal(t, vb.Handle(), rec.VertexBuffers[0])
	assert.Equal(t, 32, rec.Strides[0])
	assert.Equal(t, 24, rec.Attribs[2].Offset)
	assert.Equal(t, 4, vb.VertexCount())
}
