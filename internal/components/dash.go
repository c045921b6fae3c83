package components

import (
	"demos3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Dash is a short fixed-speed burst along Direction.
type Dash struct {
	engine.BaseComponent
	Speed     float32
	Duration  float32
	Cooldown  float64
	FuelCost  float32
	Direction rl.Vector3
	Remaining float32

	readyAt float64
}

func NewDash() *Dash {
	return &Dash{
		Speed:    22,
		Duration: 0.18,
		Cooldown: 0.6,
		FuelCost: 20,
	}
}

func (d *Dash) Dashing() bool { return d.Remaining > 0 }

// Ready reports whether the cooldown since the last dash has passed.
func (d *Dash) Ready(now float64) bool {
	return !d.Dashing() && now >= d.readyAt
}

// Begin starts a dash along dir (flattened by the caller).
func (d *Dash) Begin(dir rl.Vector3, now float64) {
	d.Direction = dir
	d.Remaining = d.Duration
	d.readyAt = now + d.Cooldown
}

func (d *Dash) Update(deltaTime float32) {
	if d.Remaining > 0 {
		d.Remaining -= deltaTime
		if d.Remaining < 0 {
			d.Remaining = 0
		}
	}
}
