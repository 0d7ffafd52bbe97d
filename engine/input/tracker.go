package input

import (
	"maps"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Tracker accumulates window events between frames. Its event methods match the window
// callback signatures so they can be registered directly.
type Tracker struct {
	mu *sync.Mutex

	keys    map[uint32]bool
	pressed map[uint32]bool
	buttons map[uint32]bool

	position  mgl32.Vec2
	last      mgl32.Vec2
	seenMouse bool
	scroll    float32
}

// NewTracker creates a Tracker with nothing held.
//
// Returns:
//   - *Tracker: the new tracker
func NewTracker() *Tracker {
	return &Tracker{
		mu:      &sync.Mutex{},
		keys:    make(map[uint32]bool),
		pressed: make(map[uint32]bool),
		buttons: make(map[uint32]bool),
	}
}

// KeyDown records a key press. Repeats of a held key do not count as new presses.
func (t *Tracker) KeyDown(key uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.keys[key] {
		t.pressed[key] = true
	}
	t.keys[key] = true
}

// KeyUp records a key release.
func (t *Tracker) KeyUp(key uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.keys, key)
}

// ButtonDown records a mouse button press.
func (t *Tracker) ButtonDown(button uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buttons[button] = true
}

// ButtonUp records a mouse button release.
func (t *Tracker) ButtonUp(button uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.buttons, button)
}

// MouseMove records the cursor position. The first event only establishes the origin so the
// initial jump from (0, 0) does not show up as movement.
func (t *Tracker) MouseMove(x, y float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.position = mgl32.Vec2{x, y}
	if !t.seenMouse {
		t.last = t.position
		t.seenMouse = true
	}
}

// Scroll accumulates vertical scroll.
func (t *Tracker) Scroll(delta float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scroll += delta
}

// Snapshot captures the current state and starts a new frame: presses, scroll and mouse
// movement are reset, held keys and buttons carry over.
//
// Returns:
//   - Snapshot: the state of the frame that just ended
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Snapshot{
		keys:     maps.Clone(t.keys),
		pressed:  maps.Clone(t.pressed),
		buttons:  maps.Clone(t.buttons),
		position: t.position,
		delta:    t.position.Sub(t.last),
		scroll:   t.scroll,
	}
	clear(t.pressed)
	t.last = t.position
	t.scroll = 0
	return s
}
