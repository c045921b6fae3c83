package components

import (
	"demos3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Anchor presets for common UI layouts
type AnchorPreset int

const (
	AnchorTopLeft AnchorPreset = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorMiddleLeft
	AnchorMiddleCenter
	AnchorMiddleRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
	AnchorStretchAll
)

// RectTransform positions UI elements in screen space. Anchors are relative
// to the parent rect (0-1, top-left origin); offsets are pixels.
type RectTransform struct {
	engine.BaseComponent

	AnchorMin rl.Vector2
	AnchorMax rl.Vector2

	// Pivot point within the element (0-1)
	Pivot rl.Vector2

	// Position offset from anchor (in pixels)
	// When anchors are same point: this is position relative to anchor
	// When anchors differ: this is inset from edges
	AnchoredPosition rl.Vector2

	// Size of the element (when anchors are same point)
	SizeDelta rl.Vector2

	// Computed screen rectangle (updated each layout)
	screenRect rl.Rectangle
}

func NewRectTransform() *RectTransform {
	return &RectTransform{
		AnchorMin: rl.Vector2{X: 0.5, Y: 0.5},
		AnchorMax: rl.Vector2{X: 0.5, Y: 0.5},
		Pivot:     rl.Vector2{X: 0.5, Y: 0.5},
		SizeDelta: rl.Vector2{X: 100, Y: 30},
	}
}

// NewPercentRect places the top-left corner of a w x h element at the given
// fraction of the parent.
func NewPercentRect(px, py, w, h float32) *RectTransform {
	rt := NewRectTransform()
	rt.AnchorMin = rl.Vector2{X: px, Y: py}
	rt.AnchorMax = rt.AnchorMin
	rt.Pivot = rl.Vector2{}
	rt.SizeDelta = rl.Vector2{X: w, Y: h}
	return rt
}

// SetAnchorPreset configures anchors and pivot from a preset
func (rt *RectTransform) SetAnchorPreset(preset AnchorPreset) {
	var a rl.Vector2
	switch preset {
	case AnchorTopLeft:
		a = rl.Vector2{X: 0, Y: 0}
	case AnchorTopCenter:
		a = rl.Vector2{X: 0.5, Y: 0}
	case AnchorTopRight:
		a = rl.Vector2{X: 1, Y: 0}
	case AnchorMiddleLeft:
		a = rl.Vector2{X: 0, Y: 0.5}
	case AnchorMiddleCenter:
		a = rl.Vector2{X: 0.5, Y: 0.5}
	case AnchorMiddleRight:
		a = rl.Vector2{X: 1, Y: 0.5}
	case AnchorBottomLeft:
		a = rl.Vector2{X: 0, Y: 1}
	case AnchorBottomCenter:
		a = rl.Vector2{X: 0.5, Y: 1}
	case AnchorBottomRight:
		a = rl.Vector2{X: 1, Y: 1}
	case AnchorStretchAll:
		rt.AnchorMin = rl.Vector2{X: 0, Y: 0}
		rt.AnchorMax = rl.Vector2{X: 1, Y: 1}
		rt.Pivot = rl.Vector2{X: 0.5, Y: 0.5}
		return
	}
	rt.AnchorMin, rt.AnchorMax, rt.Pivot = a, a, a
}

// GetScreenRect returns the computed screen-space rectangle
func (rt *RectTransform) GetScreenRect() rl.Rectangle {
	return rt.screenRect
}

// CalculateRect computes screen position based on parent rect and anchors
func (rt *RectTransform) CalculateRect(parentRect rl.Rectangle) {
	anchorMinX := parentRect.X + parentRect.Width*rt.AnchorMin.X
	anchorMinY := parentRect.Y + parentRect.Height*rt.AnchorMin.Y
	anchorMaxX := parentRect.X + parentRect.Width*rt.AnchorMax.X
	anchorMaxY := parentRect.Y + parentRect.Height*rt.AnchorMax.Y

	var x, y, width, height float32

	if rt.AnchorMin == rt.AnchorMax {
		// Point anchor - position relative to anchor point
		width = rt.SizeDelta.X
		height = rt.SizeDelta.Y
		x = anchorMinX + rt.AnchoredPosition.X - width*rt.Pivot.X
		y = anchorMinY + rt.AnchoredPosition.Y - height*rt.Pivot.Y
	} else {
		// Stretched anchors - SizeDelta acts as insets
		x = anchorMinX + rt.AnchoredPosition.X
		y = anchorMinY + rt.AnchoredPosition.Y
		width = (anchorMaxX - anchorMinX) + rt.SizeDelta.X
		height = (anchorMaxY - anchorMinY) + rt.SizeDelta.Y
	}

	rt.screenRect = rl.Rectangle{X: x, Y: y, Width: width, Height: height}
}

// ContainsPoint checks if a screen point is inside this rect
func (rt *RectTransform) ContainsPoint(point rl.Vector2) bool {
	return rl.CheckCollisionPointRec(point, rt.screenRect)
}
