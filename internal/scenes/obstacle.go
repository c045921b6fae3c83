package scenes

import (
	"fmt"
	"math"

	"demos3d/internal/components"
	"demos3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	Register("obstacle", BuildObstacle)
}

var (
	pillarColor = components.ColorFromFloats(0.6, 0.6, 0.6, 1)
	rampColor   = components.ColorFromFloats(0.7, 0.5, 0.3, 1)
	bridgeColor = components.ColorFromFloats(0.4, 0.4, 0.4, 1)
)

// BuildObstacle is the first-person course: pillars, ramps and a bridge
// around the clickable props, with a reticle at screen centre.
func BuildObstacle(scene *engine.Scene, opts Options) error {
	addCourse(scene)
	addPointLight(scene)
	addFloor(scene)
	addClickables(scene)
	addFPSPlayer(scene, opts)
	addReticle(scene)
	addFPSSystems(scene, opts)
	return nil
}

func addCourse(scene *engine.Scene) {
	for i := range 5 {
		h := 2 + float32(i)*0.5
		addBox(scene, fmt.Sprintf("Pillar_%d", i),
			rl.Vector3{X: float32(i)*3 - 6, Y: h / 2, Z: -5},
			rl.Vector3{X: 0.5, Y: h, Z: 0.5},
			rl.Vector3{},
			pillarColor)
	}

	ramps := [][2]float32{{5, 1}, {5, 2}, {5, 3}}
	for i, r := range ramps {
		length, height := r[0], r[1]
		tilt := -float32(math.Atan2(float64(height), float64(length))) * rl.Rad2deg
		addBox(scene, fmt.Sprintf("Ramp_%d", i),
			rl.Vector3{X: float32(i)*6 - 6, Y: height / 2, Z: 5},
			rl.Vector3{X: length, Y: height, Z: 2},
			rl.Vector3{Z: tilt},
			rampColor)
	}

	addBox(scene, "Bridge",
		rl.Vector3{Y: 3, Z: 10},
		rl.Vector3{X: 10, Y: 0.2, Z: 2},
		rl.Vector3{},
		bridgeColor)
	for i, x := range []float32{-5, 5} {
		addBox(scene, fmt.Sprintf("BridgeSupport_%d", i),
			rl.Vector3{X: x, Y: 1.5, Z: 10},
			rl.Vector3{X: 0.5, Y: 3, Z: 0.5},
			rl.Vector3{},
			bridgeColor)
	}
}
