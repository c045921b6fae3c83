package components

import (
	"demos3d/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIProgressBar displays a fill gauge (jetpack fuel) through raygui.
type UIProgressBar struct {
	engine.BaseComponent
	Value     float32
	MaxValue  float32
	TextLeft  string
	TextRight string
}

func NewUIProgressBar(maxValue float32) *UIProgressBar {
	return &UIProgressBar{
		Value:    maxValue,
		MaxValue: maxValue,
	}
}

// GetPercent returns the fill percentage (0-1)
func (pb *UIProgressBar) GetPercent() float32 {
	if pb.MaxValue <= 0 {
		return 0
	}
	return clamp01(pb.Value / pb.MaxValue)
}

// SetPercent sets value based on percentage (0-1)
func (pb *UIProgressBar) SetPercent(percent float32) {
	pb.Value = clamp01(percent) * pb.MaxValue
}

func (pb *UIProgressBar) Draw(rect rl.Rectangle) {
	gui.ProgressBar(rect, pb.TextLeft, pb.TextRight, pb.GetPercent(), 0, 1)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
