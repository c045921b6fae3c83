package systems

import (
	"math"

	"demos3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TopDownCamera keeps its object at a fixed offset from the target and
// looks back along that offset. It lives on the camera object and provides
// the camera's look direction.
type TopDownCamera struct {
	engine.BaseComponent
	Target engine.GameObjectRef
	Offset rl.Vector3
	// Stiffness is the follow rate; zero snaps to the target every frame.
	Stiffness float32
}

func NewTopDownCamera(target *engine.GameObject) *TopDownCamera {
	return &TopDownCamera{
		Target:    engine.RefTo(target),
		Offset:    rl.Vector3{Y: 18, Z: 10},
		Stiffness: 8,
	}
}

func (c *TopDownCamera) Start() {
	c.follow(0)
}

func (c *TopDownCamera) Update(deltaTime float32) {
	c.follow(deltaTime)
}

func (c *TopDownCamera) follow(dt float32) {
	g := c.GetGameObject()
	if g == nil || g.Scene == nil {
		return
	}
	target := c.Target.Get(g.Scene)
	if target == nil {
		return
	}

	desired := rl.Vector3Add(target.WorldPosition(), c.Offset)
	if c.Stiffness <= 0 || dt <= 0 {
		g.Transform.Position = desired
		return
	}
	t := float32(1 - math.Exp(float64(-c.Stiffness*dt)))
	g.Transform.Position = rl.Vector3Lerp(g.Transform.Position, desired, t)
}

func (c *TopDownCamera) GetLookDirection() (x, y, z float32) {
	d := rl.Vector3Normalize(rl.Vector3Negate(c.Offset))
	return d.X, d.Y, d.Z
}

func (c *TopDownCamera) GetEyeHeight() float32 { return 0 }
