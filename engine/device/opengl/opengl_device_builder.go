package opengl

import "github.com/Carmen-Shannon/oxy-gl/engine/device"

// DeviceBuilderOption is a functional option for configuring the OpenGL device.
type DeviceBuilderOption func(*glDevice)

// WithDebugOutput enables synchronous driver debug output. Requires a debug context.
//
// Parameters:
//   - enabled: true to enable debug output
//
// Returns:
//   - DeviceBuilderOption: option function to apply
func WithDebugOutput(enabled bool) DeviceBuilderOption {
	return func(d *glDevice) {
		d.debugEnabled = enabled
	}
}

// WithDebugCallback installs a callback for driver debug messages at construction time.
//
// Parameters:
//   - callback: function receiving each debug message
//
// Returns:
//   - DeviceBuilderOption: option function to apply
func WithDebugCallback(callback func(msg device.DebugMessage)) DeviceBuilderOption {
	return func(d *glDevice) {
		d.debugCallback = callback
	}
}
