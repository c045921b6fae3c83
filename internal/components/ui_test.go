package components

import (
	"testing"

	"demos3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestReticleCentredByPercentRect(t *testing.T) {
	canvasObj := engine.NewGameObject("Canvas")
	canvas := NewUICanvas()
	canvasObj.AddComponent(canvas)

	reticle := engine.NewGameObject("Reticle")
	rt := NewPercentRect(0.5, 0.5, 4, 4)
	reticle.AddComponent(rt)
	reticle.AddComponent(NewReticle())
	canvasObj.AddChild(reticle)

	canvas.Layout(rl.Rectangle{Width: 800, Height: 600})

	assert.Equal(t, rl.Rectangle{X: 400, Y: 300, Width: 4, Height: 4}, rt.GetScreenRect())
	assert.True(t, rt.ContainsPoint(rl.Vector2{X: 401, Y: 302}))
}

func TestRectTransformPresetsAndStretch(t *testing.T) {
	parent := rl.Rectangle{Width: 800, Height: 600}

	rt := NewRectTransform()
	rt.SetAnchorPreset(AnchorBottomRight)
	rt.SizeDelta = rl.Vector2{X: 200, Y: 20}
	rt.AnchoredPosition = rl.Vector2{X: -10, Y: -10}
	rt.CalculateRect(parent)
	assert.Equal(t, rl.Rectangle{X: 590, Y: 570, Width: 200, Height: 20}, rt.GetScreenRect())

	rt.SetAnchorPreset(AnchorStretchAll)
	rt.SizeDelta = rl.Vector2{X: -20, Y: -20}
	rt.AnchoredPosition = rl.Vector2{X: 10, Y: 10}
	rt.CalculateRect(parent)
	assert.Equal(t, rl.Rectangle{X: 10, Y: 10, Width: 780, Height: 580}, rt.GetScreenRect())
}

func TestInactiveUIElementsSkipLayout(t *testing.T) {
	canvasObj := engine.NewGameObject("Canvas")
	canvas := NewUICanvas()
	canvasObj.AddComponent(canvas)

	hidden := engine.NewGameObject("Hidden")
	hidden.Active = false
	rt := NewPercentRect(0.5, 0.5, 10, 10)
	hidden.AddComponent(rt)
	canvasObj.AddChild(hidden)

	canvas.Layout(rl.Rectangle{Width: 800, Height: 600})

	assert.Equal(t, rl.Rectangle{}, rt.GetScreenRect())
}

func TestProgressBarPercent(t *testing.T) {
	bar := NewUIProgressBar(100)
	bar.Value = 140
	assert.Equal(t, float32(1), bar.GetPercent())

	bar.SetPercent(0.25)
	assert.Equal(t, float32(25), bar.Value)

	bar.MaxValue = 0
	assert.Zero(t, bar.GetPercent())
}
