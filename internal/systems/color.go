package systems

import (
	"math/rand/v2"

	"demos3d/internal/components"
	"demos3d/internal/engine"
)

// ColorRandomizer gives clickable objects a random base colour when the
// Picker on the same object reports a click on them.
type ColorRandomizer struct {
	engine.BaseComponent
	rng *rand.Rand
}

// NewColorRandomizer uses rng for colours; nil uses the global source.
func NewColorRandomizer(rng *rand.Rand) *ColorRandomizer {
	return &ColorRandomizer{rng: rng}
}

func (c *ColorRandomizer) Start() {
	if picker := engine.GetComponent[*Picker](c.GetGameObject()); picker != nil {
		picker.Clicked.AddListener(c.onClick)
	}
}

func (c *ColorRandomizer) onClick(e ClickEvent) {
	if e.Target == nil || !e.Target.HasTag(engine.TagClickable) {
		return
	}
	mr := engine.GetComponent[*components.MeshRenderer](e.Target)
	if mr == nil || mr.Material == nil {
		return
	}
	mr.Material.BaseColor = components.ColorFromFloats(c.float(), c.float(), c.float(), 1)
}

func (c *ColorRandomizer) float() float32 {
	if c.rng != nil {
		return c.rng.Float32()
	}
	return rand.Float32()
}
