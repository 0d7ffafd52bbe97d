package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87  // W key (ASCII), fly forward
	KeyA     = 65  // A key (ASCII), fly left
	KeyS     = 83  // S key (ASCII), fly backward
	KeyD     = 68  // D key (ASCII), fly right
	KeyQ     = 81  // Q key (ASCII), fly down
	KeyE     = 69  // E key (ASCII), fly up
	KeyB     = 66  // B key (ASCII), Blinn-Phong toggle
	KeyF     = 70  // F key (ASCII), fog toggle
	KeyN     = 78  // N key (ASCII), night toggle
	KeyR     = 82  // R key (ASCII), shader reload
	KeySpace = 32  // Spacebar (ASCII), camera switch
	KeyEsc   = 256 // Escape key (GLFW)

	Key0 = 48 // 0 key (ASCII)
	Key1 = 49 // 1 key (ASCII)
	Key2 = 50 // 2 key (ASCII)
	Key3 = 51 // 3 key (ASCII)
)

// Additional non-printable keys
const (
	KeyRight      = 262 // Right arrow (GLFW)
	KeyLeft       = 263 // Left arrow (GLFW)
	KeyDown       = 264 // Down arrow (GLFW)
	KeyUp         = 265 // Up arrow (GLFW)
	KeyLeftShift  = 340 // Left Shift (GLFW)
	KeyRightShift = 344 // Right Shift (GLFW)
)

// Mouse button codes, matching glfw.MouseButton values.
const (
	MouseButtonLeft   = 0 // Button1
	MouseButtonRight  = 1 // Button2
	MouseButtonMiddle = 2 // Button3
)
