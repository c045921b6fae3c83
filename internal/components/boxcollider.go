package components

import (
	"demos3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	engine.BaseComponent
	Size      rl.Vector3
	Offset    rl.Vector3
	IsTrigger bool
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// NewCuboidCollider builds a box from half extents.
func NewCuboidCollider(hx, hy, hz float32) *BoxCollider {
	return NewBoxCollider(rl.Vector3{X: hx * 2, Y: hy * 2, Z: hz * 2})
}

func (b *BoxCollider) GetCenter() rl.Vector3 {
	return offsetCenter(b.GetGameObject(), b.Offset)
}

// GetWorldSize returns Size scaled by the object's world scale.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Size
	}
	s := g.WorldScale()
	return rl.Vector3{X: b.Size.X * s.X, Y: b.Size.Y * s.Y, Z: b.Size.Z * s.Z}
}

func (b *BoxCollider) Trigger() bool { return b.IsTrigger }
