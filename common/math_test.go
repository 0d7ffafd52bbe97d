package common

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceToBytes(t *testing.T) {
	assert.Nil(t, SliceToBytes([]float32{}))

	b := SliceToBytes([]float32{1, -2})
	assert.Len(t, b, 8)
	assert.Equal(t, float32(1), math.Float32frombits(binary.NativeEndian.Uint32(b[0:4])))
	assert.Equal(t, float32(-2), math.Float32frombits(binary.NativeEndian.Uint32(b[4:8])))

	assert.Len(t, SliceToBytes([]uint16{1, 2, 3}), 6)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 1, 3))
	assert.Equal(t, 3, Clamp(5, 1, 3))
	assert.Equal(t, float32(2.5), Clamp(float32(2.5), 1, 3))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, 0, Coalesce(0, 0))
}
