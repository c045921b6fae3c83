package components

import (
	"demos3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CylinderCollider is an upright cylinder. Contacts treat it as its bounding
// square prism, which keeps the player from snagging on box edges.
type CylinderCollider struct {
	engine.BaseComponent
	HalfHeight float32
	Radius     float32
	Offset     rl.Vector3
	IsTrigger  bool
}

func NewCylinderCollider(halfHeight, radius float32) *CylinderCollider {
	return &CylinderCollider{
		HalfHeight: halfHeight,
		Radius:     radius,
	}
}

func (c *CylinderCollider) GetCenter() rl.Vector3 {
	return offsetCenter(c.GetGameObject(), c.Offset)
}

// BoxSize returns the full size of the bounding prism.
func (c *CylinderCollider) BoxSize() rl.Vector3 {
	return rl.Vector3{X: c.Radius * 2, Y: c.HalfHeight * 2, Z: c.Radius * 2}
}

func (c *CylinderCollider) Trigger() bool { return c.IsTrigger }
