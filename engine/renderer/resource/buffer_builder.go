package resource

import "github.com/Carmen-Shannon/oxy-gl/engine/device"

// BufferBuilderOption is a function that configures a DataBuffer during construction.
type BufferBuilderOption func(*dataBuffer)

// WithUsage is an option builder that sets the usage hint passed to the device on every allocation.
//
// Parameters:
//   - usage: the buffer usage hint
//
// Returns:
//   - BufferBuilderOption: a function that applies the usage option to a dataBuffer
func WithUsage(usage device.BufferUsage) BufferBuilderOption {
	return func(b *dataBuffer) {
		b.usage = usage
	}
}
