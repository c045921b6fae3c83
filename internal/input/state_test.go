package input

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestStatePressIsEdgeTriggered(t *testing.T) {
	s := NewState(800, 600)
	s.Press(KeySpace)

	assert.True(t, s.KeyPressed(KeySpace))
	assert.True(t, s.KeyDown(KeySpace))

	s.EndFrame()

	assert.False(t, s.KeyPressed(KeySpace))
	assert.True(t, s.KeyDown(KeySpace), "held keys survive the frame")
}

func TestStateGrabCentersCursor(t *testing.T) {
	s := NewState(800, 600)
	s.Mouse = rl.Vector2{X: 10, Y: 20}

	s.Grab()

	assert.True(t, s.Grabbed())
	assert.Equal(t, rl.Vector2{X: 400, Y: 300}, s.MousePosition())
	assert.Equal(t, 1, s.Centers)

	s.Release()
	assert.False(t, s.Grabbed())
}

func TestStateEndFrameClearsMouseDelta(t *testing.T) {
	s := NewState(800, 600)
	s.Delta = rl.Vector2{X: 5, Y: -3}
	s.Click(MouseLeft)

	s.EndFrame()

	assert.Equal(t, rl.Vector2{}, s.MouseDelta())
	assert.False(t, s.MouseButtonPressed(MouseLeft))
	assert.True(t, s.MouseButtonDown(MouseLeft))
}

var (
	_ Input  = (*State)(nil)
	_ Cursor = (*State)(nil)
	_ Input  = (*Raylib)(nil)
	_ Cursor = (*Raylib)(nil)
)
