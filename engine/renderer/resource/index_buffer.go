package resource

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/device"
)

// indexBuffer is the implementation of the IndexBuffer interface.
type indexBuffer struct {
	*dataBuffer
	indexType device.IndexType
}

// IndexBuffer is a DataBuffer on the element array target holding indices of one type.
type IndexBuffer interface {
	DataBuffer

	// IndexType returns the element type of the stored indices.
	//
	// Returns:
	//   - device.IndexType: the index element type
	IndexType() device.IndexType

	// Count returns the number of indices in the buffer.
	//
	// Returns:
	//   - int: capacity divided by the index size
	Count() int

	// Load16 uploads 16-bit indices and switches the index type accordingly.
	//
	// Parameters:
	//   - indices: the indices
	//
	// Returns:
	//   - error: ErrReleased if released
	Load16(indices []uint16) error

	// Load32 uploads 32-bit indices and switches the index type accordingly.
	//
	// Parameters:
	//   - indices: the indices
	//
	// Returns:
	//   - error: ErrReleased if released
	Load32(indices []uint32) error
}

var _ IndexBuffer = &indexBuffer{}

// NewIndexBuffer creates an empty index buffer of 32-bit indices.
//
// Parameters:
//   - dev: the device that owns the buffer
//   - options: functional options to configure the underlying buffer
//
// Returns:
//   - IndexBuffer: the new index buffer
func NewIndexBuffer(dev device.Device, options ...BufferBuilderOption) IndexBuffer {
	return &indexBuffer{
		dataBuffer: NewDataBuffer(dev, device.BufferTargetElementArray, options...).(*dataBuffer),
		indexType:  device.IndexTypeUnsignedInt,
	}
}

func (b *indexBuffer) IndexType() device.IndexType {
	return b.indexType
}

func (b *indexBuffer) Count() int {
	return b.capacity / b.indexType.Size()
}

func (b *indexBuffer) Load16(indices []uint16) error {
	if err := b.Load(common.SliceToBytes(indices)); err != nil {
		return err
	}
	b.indexType = device.IndexTypeUnsignedShort
	return nil
}

func (b *indexBuffer) Load32(indices []uint32) error {
	if err := b.Load(common.SliceToBytes(indices)); err != nil {
		return err
	}
	b.indexType = device.IndexTypeUnsignedInt
	return nil
}
