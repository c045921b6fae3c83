package components

import (
	"demos3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collider is implemented by every collision shape component.
type Collider interface {
	engine.Component
	GetCenter() rl.Vector3
	// Trigger colliders report collisions but are never pushed apart.
	Trigger() bool
}

// GetCollider returns the first collider on g, or nil.
func GetCollider(g *engine.GameObject) Collider {
	return engine.FindComponent[Collider](g)
}

func offsetCenter(g *engine.GameObject, offset rl.Vector3) rl.Vector3 {
	if g == nil {
		return offset
	}
	return rl.Vector3Add(g.WorldPosition(), offset)
}
