package input

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stretchr/testify/assert"
)

func TestTrackerFrames(t *testing.T) {
	tr := NewTracker()
	tr.MouseMove(100, 100)
	tr.KeyDown(common.KeyW)
	tr.KeyDown(common.KeyW)
	tr.ButtonDown(common.MouseButtonLeft)
	tr.MouseMove(110, 95)
	tr.Scroll(1)
	tr.Scroll(2)

	s := tr.Snapshot()
	assert.True(t, s.KeyDown(common.KeyW))
	assert.True(t, s.KeyPressed(common.KeyW))
	assert.True(t, s.ButtonDown(common.MouseButtonLeft))
	assert.False(t, s.ButtonDown(common.MouseButtonRight))
	assert.Equal(t, mgl32.Vec2{110, 95}, s.MousePosition())
	assert.Equal(t, mgl32.Vec2{10, -5}, s.MouseDelta())
	assert.Equal(t, float32(3), s.Scroll())

	tr.KeyDown(common.KeyW)
	next := tr.Snapshot()
	assert.True(t, next.KeyDown(common.KeyW), "held keys carry over")
	assert.False(t, next.KeyPressed(common.KeyW), "repeats are not presses")
	assert.Equal(t, mgl32.Vec2{}, next.MouseDelta())
	assert.Zero(t, next.Scroll())

	tr.KeyUp(common.KeyW)
	tr.ButtonUp(common.MouseButtonLeft)
	last := tr.Snapshot()
	assert.False(t, last.KeyDown(common.KeyW))
	assert.False(t, last.ButtonDown(common.MouseButtonLeft))

	assert.True(t, s.KeyDown(common.KeyW), "snapshots are not affected by later events")
}

func TestNewSnapshot(t *testing.T) {
	s := NewSnapshot(
		WithKeysDown(common.KeyA),
		WithKeysPressed(common.KeySpace),
		WithButtonsDown(common.MouseButtonRight),
		WithMouse(mgl32.Vec2{1, 2}, mgl32.Vec2{3, 4}),
		WithScroll(-1),
	)
	assert.True(t, s.KeyDown(common.KeyA))
	assert.False(t, s.KeyPressed(common.KeyA))
	assert.True(t, s.KeyPressed(common.KeySpace))
	assert.True(t, s.ButtonDown(common.MouseButtonRight))
	assert.Equal(t, mgl32.Vec2{3, 4}, s.MouseDelta())
	assert.Equal(t, float32(-1), s.Scroll())

	var zero Snapshot
	assert.False(t, zero.KeyDown(common.KeyW))
}
