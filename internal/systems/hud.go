package systems

import (
	"fmt"

	"demos3d/internal/components"
	"demos3d/internal/engine"
)

// FuelGauge mirrors the player's jetpack into a HUD bar and label.
type FuelGauge struct {
	engine.BaseComponent
	Bar   *components.UIProgressBar
	Label *components.UIText
}

func NewFuelGauge(bar *components.UIProgressBar, label *components.UIText) *FuelGauge {
	return &FuelGauge{Bar: bar, Label: label}
}

func (f *FuelGauge) Update(deltaTime float32) {
	g := f.GetGameObject()
	if g == nil || g.Scene == nil {
		return
	}
	player, err := g.Scene.FindSingleByTag(engine.TagPlayer)
	if err != nil {
		return
	}
	jp := engine.GetComponent[*components.Jetpack](player)
	if jp == nil {
		return
	}

	if f.Bar != nil {
		f.Bar.MaxValue = jp.MaxFuel
		f.Bar.Value = jp.Fuel
		f.Bar.TextRight = fmt.Sprintf("%d%%", int(jp.Percent()*100+0.5))
	}
	if f.Label != nil {
		status := "FUEL"
		if jp.Active {
			status = "FUEL (burning)"
		}
		if dash := engine.GetComponent[*components.Dash](player); dash != nil && dash.Dashing() {
			status = "DASH"
		}
		f.Label.Text = status
	}
}
