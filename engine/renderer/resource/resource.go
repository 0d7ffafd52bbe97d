// Package resource wraps device objects in owning types. Each type holds exactly one device
// handle (a RenderTarget also owns its attachments) and releases it exactly once. None of the
// types are safe for concurrent use; they belong to the thread that owns the graphics context.
package resource

import "github.com/Carmen-Shannon/oxy-gl/engine/device"

// GpuResource is implemented by every type that owns a device handle.
type GpuResource interface {
	// Handle returns the owned device handle, or device.InvalidHandle after Release.
	//
	// Returns:
	//   - device.Handle: the device object name
	Handle() device.Handle

	// Released reports whether Release has been called.
	//
	// Returns:
	//   - bool: true once the handle has been given back to the device
	Released() bool

	// Release destroys the device object. Calling it again is a no-op.
	Release()
}

// resource is the shared handle-owning base embedded by every resource type.
type resource struct {
	dev     device.Device
	handle  device.Handle
	destroy func(device.Handle)
}

var _ GpuResource = &resource{}

func newResource(dev device.Device, handle device.Handle, destroy func(device.Handle)) resource {
	return resource{dev: dev, handle: handle, destroy: destroy}
}

func (r *resource) Handle() device.Handle {
	return r.handle
}

func (r *resource) Released() bool {
	return r.handle == device.InvalidHandle
}

func (r *resource) Release() {
	if r.handle == device.InvalidHandle {
		return
	}
	h := r.handle
	r.handle = device.InvalidHandle
	if r.destroy != nil {
		r.destroy(h)
	}
}
