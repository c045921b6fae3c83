package components

import (
	"math"

	"demos3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Orbiter circles an object around Center on the XZ plane while spinning it
// about Y. Used for the moving targets in the shooter scene.
type Orbiter struct {
	engine.BaseComponent
	Center    rl.Vector3
	Radius    float32
	Speed     float32 // radians per second
	Phase     float32
	SpinSpeed float32 // degrees per second

	time float32
}

func NewOrbiter(center rl.Vector3, radius, speed, phase float32) *Orbiter {
	return &Orbiter{
		Center:    center,
		Radius:    radius,
		Speed:     speed,
		Phase:     phase,
		SpinSpeed: 45,
	}
}

func (o *Orbiter) Update(deltaTime float32) {
	g := o.GetGameObject()
	if g == nil {
		return
	}

	o.time += deltaTime
	t := float64(o.time*o.Speed + o.Phase)
	g.Transform.Position = rl.Vector3Add(o.Center, rl.Vector3{
		X: float32(math.Cos(t)) * o.Radius,
		Z: float32(math.Sin(t)) * o.Radius,
	})

	g.Transform.Rotation.Y = float32(math.Mod(float64(g.Transform.Rotation.Y+o.SpinSpeed*deltaTime), 360))
}
