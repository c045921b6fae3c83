package world

import (
	"demos3d/internal/components"
	"demos3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colliderColor = rl.Lime
	triggerColor  = rl.Orange
)

// drawColliders outlines every collider in the scene. Boxes follow the
// object's rotation; cylinders are drawn upright.
func drawColliders(scene *engine.Scene) {
	for _, g := range scene.GameObjects {
		if !g.Active {
			continue
		}
		col := components.GetCollider(g)
		if col == nil {
			continue
		}
		color := colliderColor
		if col.Trigger() {
			color = triggerColor
		}

		switch c := col.(type) {
		case *components.BoxCollider:
			m := engine.Transform{
				Position: c.GetCenter(),
				Rotation: g.WorldRotation(),
				Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
			}.Matrix()
			rl.PushMatrix()
			f := rl.MatrixToFloat(m)
			rl.MultMatrixf(f[:])
			rl.DrawCubeWiresV(rl.Vector3{}, c.GetWorldSize(), color)
			rl.PopMatrix()
		case *components.SphereCollider:
			rl.DrawSphereWires(c.GetCenter(), c.Radius, 8, 8, color)
		case *components.CylinderCollider:
			base := rl.Vector3Subtract(c.GetCenter(), rl.Vector3{Y: c.HalfHeight})
			rl.DrawCylinderWires(base, c.Radius, c.Radius, c.HalfHeight*2, 12, color)
		}
	}
}
