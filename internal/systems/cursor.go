package systems

import (
	"demos3d/internal/engine"
	"demos3d/internal/input"
)

// CursorManager grabs the cursor on left click and releases it on Escape.
type CursorManager struct {
	engine.BaseComponent
}

func NewCursorManager() *CursorManager {
	return &CursorManager{}
}

func (c *CursorManager) Update(deltaTime float32) {
	w := c.World()
	if w == nil || w.Input() == nil || w.Cursor() == nil {
		return
	}
	in, cursor := w.Input(), w.Cursor()

	if in.MouseButtonPressed(input.MouseLeft) {
		cursor.Grab()
	}
	if in.KeyPressed(input.KeyEscape) {
		cursor.Release()
	}
}
