package scenes

import (
	"fmt"
	"math"
	"math/rand/v2"

	"demos3d/internal/camera"
	"demos3d/internal/components"
	"demos3d/internal/engine"
	"demos3d/internal/systems"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const floorSize = 50

var (
	floorColor     = components.ColorFromFloats(0.3, 0.5, 0.3, 1)
	clickableColor = components.ColorFromFloats(0.8, 0.7, 0.6, 1)
)

func add(scene *engine.Scene, g *engine.GameObject) *engine.GameObject {
	scene.AddGameObject(g)
	return g
}

// addBox spawns a static cube mesh with a matching box collider.
func addBox(scene *engine.Scene, name string, pos, size, rot rl.Vector3, color rl.Color) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.Transform.Rotation = rot
	g.AddComponent(components.NewMeshRenderer(components.MeshCube, color, size))
	g.AddComponent(components.NewBoxCollider(size))
	return add(scene, g)
}

func addPointLight(scene *engine.Scene) {
	g := engine.NewGameObject("PointLight")
	g.Transform.Position = rl.Vector3{X: 4, Y: 8, Z: 4}
	g.AddComponent(components.NewPointLight(1500))
	add(scene, g)
}

// addFloor spawns a 50x50 plane whose collider top sits at y=0.1.
func addFloor(scene *engine.Scene) {
	g := engine.NewGameObject("Floor")
	g.AddTag(engine.TagFloor)
	g.AddComponent(components.NewMeshRenderer(components.MeshPlane, floorColor, rl.Vector3{X: floorSize, Y: 1, Z: floorSize}))
	g.AddComponent(components.NewCuboidCollider(floorSize/2, 0.1, floorSize/2))
	add(scene, g)
}

func addClickables(scene *engine.Scene) {
	for i := range 5 {
		g := addBox(scene, fmt.Sprintf("Clickable_%d", i),
			rl.Vector3{X: float32(i)*2 - 4, Y: 0.5},
			rl.Vector3{X: 1, Y: 1, Z: 1},
			rl.Vector3{},
			clickableColor)
		g.AddTag(engine.TagClickable)
	}
}

// fpsAngles converts a look given as radians, yaw 0 facing -Z and turning
// counter-clockwise, to the controller's degrees with yaw 0 facing +X.
func fpsAngles(yaw, pitch float64) (float32, float32) {
	yawDeg, pitchDeg := camera.YawPitchFromRadians(yaw, pitch)
	return -90 - yawDeg, pitchDeg
}

// addFPSPlayer spawns the logical player and the render camera that views
// through it.
func addFPSPlayer(scene *engine.Scene, opts Options) *engine.GameObject {
	player := engine.NewGameObject("Player")
	player.AddTag(engine.TagPlayer)
	player.Transform.Position = rl.Vector3{Y: 5, Z: 5}

	player.AddComponent(components.NewCylinderCollider(1.5, 0.5))
	rb := components.NewKinematicBody()
	rb.Friction = 0.5
	rb.Bounciness = 0
	rb.ActiveEvents = true
	player.AddComponent(rb)

	fps := components.NewFPSController()
	fps.WalkSpeed = 10
	fps.RunSpeed = 20
	fps.JumpSpeed = 20
	fps.Yaw, fps.Pitch = fpsAngles(math.Pi/4, -math.Pi/8)
	if opts.MouseSensitivity > 0 {
		fps.LookSpeed = opts.MouseSensitivity
	}
	player.AddComponent(fps)
	player.AddComponent(components.NewPickable(true))
	add(scene, player)

	cam := engine.NewGameObject("Camera")
	cam.AddTag(engine.TagCamera)
	cam.AddComponent(components.NewCamera())
	cam.AddComponent(components.NewCameraConfig(0.6))
	cam.AddComponent(components.NewRenderPlayer(player))
	add(scene, cam)

	return player
}

// addReticle spawns a 4px dot centred on screen that picking ignores.
func addReticle(scene *engine.Scene) {
	canvas := engine.NewGameObject("HUD")
	canvas.AddComponent(components.NewUICanvas())
	add(scene, canvas)

	dot := engine.NewGameObject("Reticle")
	dot.AddTag(engine.TagReticle)
	dot.AddComponent(components.NewPercentRect(0.5, 0.5, 4, 4))
	dot.AddComponent(components.NewReticle())
	dot.AddComponent(components.NewPickable(true))
	canvas.AddChild(dot)
	add(scene, dot)
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// addFPSSystems spawns the click, cursor and camera-height behaviours.
func addFPSSystems(scene *engine.Scene, opts Options) {
	g := engine.NewGameObject("Systems")
	g.AddComponent(systems.NewPicker())
	g.AddComponent(systems.NewColorRandomizer(newRand(opts.Seed)))
	g.AddComponent(systems.NewCursorManager())
	g.AddComponent(systems.NewCameraHeightSync())
	add(scene, g)
}
