package components

import "demos3d/internal/engine"

// Pickable controls whether pointer picking considers an object. Objects
// without one are pickable.
type Pickable struct {
	engine.BaseComponent
	Ignore bool
}

func NewPickable(ignore bool) *Pickable {
	return &Pickable{Ignore: ignore}
}

// IsPickable reports whether g may be hit by a picking ray.
func IsPickable(g *engine.GameObject) bool {
	p := engine.GetComponent[*Pickable](g)
	return p == nil || !p.Ignore
}
