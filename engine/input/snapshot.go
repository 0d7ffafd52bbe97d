// Package input turns window events into immutable per-frame snapshots.
package input

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Snapshot is the input state of one frame. It is never modified after it is built.
type Snapshot struct {
	keys     map[uint32]bool
	pressed  map[uint32]bool
	buttons  map[uint32]bool
	position mgl32.Vec2
	delta    mgl32.Vec2
	scroll   float32
}

// NewSnapshot builds a snapshot from options. Tracker.Snapshot is the usual source; this
// constructor exists for callers that synthesize input, such as tests and replays.
//
// Parameters:
//   - options: a variadic list of SnapshotBuilderOption functions describing the state
//
// Returns:
//   - Snapshot: the built snapshot
func NewSnapshot(options ...SnapshotBuilderOption) Snapshot {
	s := Snapshot{
		keys:    make(map[uint32]bool),
		pressed: make(map[uint32]bool),
		buttons: make(map[uint32]bool),
	}
	for _, opt := range options {
		opt(&s)
	}
	return s
}

// KeyDown reports whether the key is held.
//
// Parameters:
//   - key: a key code from package common
//
// Returns:
//   - bool: true while the key is held
func (s Snapshot) KeyDown(key uint32) bool {
	return s.keys[key]
}

// KeyPressed reports whether the key went down since the previous snapshot.
//
// Parameters:
//   - key: a key code from package common
//
// Returns:
//   - bool: true only on the frame of the press
func (s Snapshot) KeyPressed(key uint32) bool {
	return s.pressed[key]
}

// ButtonDown reports whether a mouse button is held.
//
// Parameters:
//   - button: a mouse button code from package common
//
// Returns:
//   - bool: true while the button is held
func (s Snapshot) ButtonDown(button uint32) bool {
	return s.buttons[button]
}

// MousePosition returns the cursor position in window coordinates.
func (s Snapshot) MousePosition() mgl32.Vec2 {
	return s.position
}

// MouseDelta returns how far the cursor moved since the previous snapshot.
func (s Snapshot) MouseDelta() mgl32.Vec2 {
	return s.delta
}

// Scroll returns the vertical scroll accumulated since the previous snapshot.
func (s Snapshot) Scroll() float32 {
	return s.scroll
}
