package resource

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/device"
)

// dataBuffer is the implementation of the DataBuffer interface.
type dataBuffer struct {
	resource
	target   device.BufferTarget
	usage    device.BufferUsage
	capacity int
	mapped   bool
}

// DataBuffer is typed device storage (vertex, index or uniform data). Its capacity is set
// only by Allocate or Load; Update writes inside the current capacity without reallocating.
// Binding is explicit and not reference counted.
type DataBuffer interface {
	GpuResource

	// Target returns the binding point the buffer is bound to by Bind.
	//
	// Returns:
	//   - device.BufferTarget: the binding point
	Target() device.BufferTarget

	// Usage returns the usage hint passed to the device on allocation.
	//
	// Returns:
	//   - device.BufferUsage: the usage hint
	Usage() device.BufferUsage

	// Capacity returns the size of the allocated storage in bytes.
	//
	// Returns:
	//   - int: capacity in bytes, 0 before the first Allocate or Load
	Capacity() int

	// Allocate reserves size bytes of uninitialized storage, replacing any previous storage.
	//
	// Parameters:
	//   - size: storage size in bytes
	//
	// Returns:
	//   - error: ErrReleased, or an error for a negative size
	Allocate(size int) error

	// Load allocates storage of len(data) bytes and uploads data in one step.
	//
	// Parameters:
	//   - data: the initial contents
	//
	// Returns:
	//   - error: ErrReleased if the buffer was released
	Load(data []byte) error

	// Update overwrites size bytes at dstOffset with data[srcOffset:srcOffset+size].
	//
	// Parameters:
	//   - data: the source bytes
	//   - srcOffset: first byte of data to copy
	//   - dstOffset: destination offset in the buffer
	//   - size: number of bytes to copy
	//
	// Returns:
	//   - error: ErrOutOfBounds if either range is out of bounds, ErrReleased if released
	Update(data []byte, srcOffset, dstOffset, size int) error

	// Map exposes the storage as a byte slice until Unmap. The slice must not be kept after Unmap.
	//
	// Parameters:
	//   - access: the requested access
	//
	// Returns:
	//   - []byte: the mapped storage
	//   - error: ErrAlreadyMapped, ErrMapFailed or ErrReleased
	Map(access device.MapAccess) ([]byte, error)

	// Unmap ends a mapping started by Map.
	//
	// Returns:
	//   - error: ErrNotMapped if the buffer is not mapped
	Unmap() error

	// Bind binds the buffer to its target.
	Bind()

	// Unbind clears the buffer's target.
	Unbind()
}

var _ DataBuffer = &dataBuffer{}

// NewDataBuffer creates a buffer object with no storage.
//
// Parameters:
//   - dev: the device that owns the buffer
//   - target: the binding point used by Bind
//   - options: functional options to configure the buffer
//
// Returns:
//   - DataBuffer: the new buffer
func NewDataBuffer(dev device.Device, target device.BufferTarget, options ...BufferBuilderOption) DataBuffer {
	b := &dataBuffer{
		resource: newResource(dev, dev.CreateBuffer(), dev.DeleteBuffer),
		target:   target,
		usage:    device.BufferUsageStaticDraw,
	}
	for _, opt := range options {
		opt(b)
	}
	return b
}

// LoadSlice uploads a slice of plain values through Load.
//
// Parameters:
//   - b: the destination buffer
//   - data: the values to upload
//
// Returns:
//   - error: any error from Load
func LoadSlice[T any](b DataBuffer, data []T) error {
	return b.Load(common.SliceToBytes(data))
}

func (b *dataBuffer) Target() device.BufferTarget {
	return b.target
}

func (b *dataBuffer) Usage() device.BufferUsage {
	return b.usage
}

func (b *dataBuffer) Capacity() int {
	return b.capacity
}

func (b *dataBuffer) Allocate(size int) error {
	if b.Released() {
		return ErrReleased
	}
	if size < 0 {
		return fmt.Errorf("allocate %d bytes: negative size", size)
	}
	b.dev.BufferData(b.handle, size, nil, b.usage)
	b.capacity = size
	return nil
}

func (b *dataBuffer) Load(data []byte) error {
	if b.Released() {
		return ErrReleased
	}
	b.dev.BufferData(b.handle, len(data), data, b.usage)
	b.capacity = len(data)
	return nil
}

func (b *dataBuffer) Update(data []byte, srcOffset, dstOffset, size int) error {
	if b.Released() {
		return ErrReleased
	}
	if srcOffset < 0 || dstOffset < 0 || size < 0 {
		return fmt.Errorf("update src %d dst %d size %d: %w", srcOffset, dstOffset, size, ErrOutOfBounds)
	}
	if dstOffset > b.capacity || size > b.capacity-dstOffset {
		return fmt.Errorf("update %d bytes at offset %d exceeds capacity %d: %w", size, dstOffset, b.capacity, ErrOutOfBounds)
	}
	if srcOffset > len(data) || size > len(data)-srcOffset {
		return fmt.Errorf("update reads %d bytes at %d from %d-byte source: %w", size, srcOffset, len(data), ErrOutOfBounds)
	}
	b.dev.BufferSubData(b.handle, dstOffset, data[srcOffset:srcOffset+size])
	return nil
}

func (b *dataBuffer) Map(access device.MapAccess) ([]byte, error) {
	if b.Released() {
		return nil, ErrReleased
	}
	if b.mapped {
		return nil, ErrAlreadyMapped
	}
	mem := b.dev.MapBuffer(b.handle, b.capacity, access)
	if mem == nil && b.capacity > 0 {
		return nil, ErrMapFailed
	}
	b.mapped = true
	return mem, nil
}

func (b *dataBuffer) Unmap() error {
	if !b.mapped {
		return ErrNotMapped
	}
	b.mapped = false
	if !b.dev.UnmapBuffer(b.handle) {
		return fmt.Errorf("buffer %d contents lost while mapped", b.handle)
	}
	return nil
}

func (b *dataBuffer) Bind() {
	b.dev.BindBuffer(b.target, b.handle)
}

func (b *dataBuffer) Unbind() {
	b.dev.BindBuffer(b.target, device.InvalidHandle)
}

func (b *dataBuffer) Release() {
	if b.mapped && !b.Released() {
		b.dev.UnmapBuffer(b.handle)
		b.mapped = false
	}
	b.resource.Release()
	b.capacity = 0
}
