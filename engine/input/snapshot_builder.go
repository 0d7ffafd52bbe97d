package input

import (
	"github.com/go-gl/mathgl/mgl32"
)

// SnapshotBuilderOption is a functional option for configuring a Snapshot via NewSnapshot.
type SnapshotBuilderOption func(*Snapshot)

// WithKeysDown marks keys as held.
//
// Parameters:
//   - keys: key codes from package common
//
// Returns:
//   - SnapshotBuilderOption: option function to apply
func WithKeysDown(keys ...uint32) SnapshotBuilderOption {
	return func(s *Snapshot) {
		for _, k := range keys {
			s.keys[k] = true
		}
	}
}

// WithKeysPressed marks keys as held and newly pressed this frame.
//
// Parameters:
//   - keys: key codes from package common
//
// Returns:
//   - SnapshotBuilderOption: option function to apply
func WithKeysPressed(keys ...uint32) SnapshotBuilderOption {
	return func(s *Snapshot) {
		for _, k := range keys {
			s.keys[k] = true
			s.pressed[k] = true
		}
	}
}

// WithButtonsDown marks mouse buttons as held.
//
// Parameters:
//   - buttons: mouse button codes from package common
//
// Returns:
//   - SnapshotBuilderOption: option function to apply
func WithButtonsDown(buttons ...uint32) SnapshotBuilderOption {
	return func(s *Snapshot) {
		for _, b := range buttons {
			s.buttons[b] = true
		}
	}
}

// WithMouse sets the cursor position and its movement since the previous frame.
//
// Parameters:
//   - position: cursor position in window coordinates
//   - delta: cursor movement
//
// Returns:
//   - SnapshotBuilderOption: option function to apply
func WithMouse(position, delta mgl32.Vec2) SnapshotBuilderOption {
	return func(s *Snapshot) {
		s.position = position
		s.delta = delta
	}
}

// WithScroll sets the vertical scroll amount.
func WithScroll(scroll float32) SnapshotBuilderOption {
	return func(s *Snapshot) {
		s.scroll = scroll
	}
}
