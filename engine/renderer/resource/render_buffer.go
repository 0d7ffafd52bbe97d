package resource

import "github.com/Carmen-Shannon/oxy-gl/engine/device"

// renderBuffer is the implementation of the RenderBuffer interface.
type renderBuffer struct {
	resource
	format        device.TextureFormat
	width, height int
}

// RenderBuffer is write-only render storage, typically a depth attachment that is never sampled.
type RenderBuffer interface {
	GpuResource

	// Format returns the internal format of the storage.
	Format() device.TextureFormat

	// Size returns the storage size in pixels.
	Size() (width, height int)
}

var _ RenderBuffer = &renderBuffer{}

// NewRenderBuffer allocates render buffer storage.
//
// Parameters:
//   - dev: the device that owns the render buffer
//   - format: the internal format
//   - width: the width in pixels
//   - height: the height in pixels
//
// Returns:
//   - RenderBuffer: the new render buffer
func NewRenderBuffer(dev device.Device, format device.TextureFormat, width, height int) RenderBuffer {
	return &renderBuffer{
		resource: newResource(dev, dev.CreateRenderBuffer(format, width, height), dev.DeleteRenderBuffer),
		format:   format,
		width:    width,
		height:   height,
	}
}

func (r *renderBuffer) Format() device.TextureFormat {
	return r.format
}

func (r *renderBuffer) Size() (int, int) {
	return r.width, r.height
}
