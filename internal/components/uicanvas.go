package components

import (
	"demos3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UICanvas is the root container for UI elements.
// Attach to a GameObject and add UI element children.
type UICanvas struct {
	engine.BaseComponent
	SortOrder int // Higher values render on top
}

func NewUICanvas() *UICanvas {
	return &UICanvas{}
}

// ScreenRect returns the full-window rect for this canvas' world, falling
// back to the raylib window size.
func (c *UICanvas) ScreenRect() rl.Rectangle {
	if w := c.World(); w != nil && w.Input() != nil {
		size := w.Input().ScreenSize()
		return rl.Rectangle{Width: size.X, Height: size.Y}
	}
	return rl.Rectangle{Width: float32(rl.GetScreenWidth()), Height: float32(rl.GetScreenHeight())}
}

// Layout computes every RectTransform under the canvas against screen.
func (c *UICanvas) Layout(screen rl.Rectangle) {
	c.walk(c.GetGameObject(), screen, nil)
}

// Draw lays out and renders all UI elements under this canvas
func (c *UICanvas) Draw(screen rl.Rectangle) {
	c.walk(c.GetGameObject(), screen, drawElement)
}

func (c *UICanvas) walk(g *engine.GameObject, parentRect rl.Rectangle, visit func(*engine.GameObject, rl.Rectangle)) {
	if g == nil || !g.Active {
		return
	}

	currentRect := parentRect
	if rt := engine.GetComponent[*RectTransform](g); rt != nil {
		rt.CalculateRect(parentRect)
		currentRect = rt.GetScreenRect()
	}

	if visit != nil {
		visit(g, currentRect)
	}

	for _, child := range g.Children {
		c.walk(child, currentRect, visit)
	}
}

// drawElement draws panels under bars under text.
func drawElement(g *engine.GameObject, rect rl.Rectangle) {
	if panel := engine.GetComponent[*UIPanel](g); panel != nil {
		panel.Draw(rect)
	}
	if bar := engine.GetComponent[*UIProgressBar](g); bar != nil {
		bar.Draw(rect)
	}
	if text := engine.GetComponent[*UIText](g); text != nil {
		text.Draw(rect)
	}
}
