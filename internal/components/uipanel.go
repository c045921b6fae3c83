package components

import (
	"demos3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIPanel is a filled rectangle, optionally rounded and bordered.
type UIPanel struct {
	engine.BaseComponent
	Color        rl.Color
	BorderColor  rl.Color
	BorderWidth  int32
	BorderRadius float32 // Rounded corners (0 = sharp)
}

func NewUIPanel() *UIPanel {
	return &UIPanel{
		Color:       rl.NewColor(30, 30, 40, 200),
		BorderColor: rl.NewColor(60, 60, 75, 255),
		BorderWidth: 1,
	}
}

// NewReticle is the borderless half-transparent white dot at screen centre.
func NewReticle() *UIPanel {
	return &UIPanel{Color: rl.NewColor(255, 255, 255, 128)}
}

// Draw renders the panel background
func (p *UIPanel) Draw(rect rl.Rectangle) {
	if p.BorderRadius > 0 && rect.Height > 0 {
		rl.DrawRectangleRounded(rect, p.BorderRadius/rect.Height, 8, p.Color)
		if p.BorderWidth > 0 {
			rl.DrawRectangleRoundedLinesEx(rect, p.BorderRadius/rect.Height, 8, float32(p.BorderWidth), p.BorderColor)
		}
		return
	}
	rl.DrawRectangleRec(rect, p.Color)
	if p.BorderWidth > 0 {
		rl.DrawRectangleLinesEx(rect, float32(p.BorderWidth), p.BorderColor)
	}
}
