package components

import (
	"demos3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// lumensPerUnit maps Intensity to the shader's light strength.
const lumensPerUnit = 1000.0

type PointLight struct {
	engine.BaseComponent
	Color     rl.Color
	Intensity float32 // lumens
	Range     float32 // falloff distance
}

func NewPointLight(intensity float32) *PointLight {
	return &PointLight{
		Color:     rl.White,
		Intensity: intensity,
		Range:     20.0,
	}
}

func (p *PointLight) GetPosition() rl.Vector3 {
	if g := p.GetGameObject(); g != nil {
		return g.WorldPosition()
	}
	return rl.Vector3Zero()
}

// GetColorFloat returns the colour premultiplied by strength, for the shader.
func (p *PointLight) GetColorFloat() []float32 {
	s := p.Intensity / lumensPerUnit
	return []float32{
		float32(p.Color.R) / 255.0 * s,
		float32(p.Color.G) / 255.0 * s,
		float32(p.Color.B) / 255.0 * s,
	}
}
