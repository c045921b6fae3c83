package scenes

import (
	"fmt"
	"math"

	"demos3d/internal/components"
	"demos3d/internal/engine"
	"demos3d/internal/systems"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	Register("shooter", BuildShooter)
}

var (
	playerColor = rl.SkyBlue
	crateColor  = rl.Brown
	coverColor  = rl.Gray
	targetColor = rl.Red
)

// BuildShooter is the top-down arena: a jetpack player, crates to shove,
// cover blocks and orbiting targets.
func BuildShooter(scene *engine.Scene, opts Options) error {
	sun := engine.NewGameObject("Sun")
	sun.AddComponent(components.NewDirectionalLight())
	add(scene, sun)
	addFloor(scene)

	player := addTopDownPlayer(scene)

	cam := engine.NewGameObject("Camera")
	cam.AddTag(engine.TagCamera)
	cam.AddComponent(components.NewCamera())
	cam.AddComponent(systems.NewTopDownCamera(player))
	add(scene, cam)

	addArena(scene)
	bar, label := addFuelGauge(scene)

	sys := engine.NewGameObject("Systems")
	sys.AddComponent(systems.NewAimer())
	sys.AddComponent(systems.NewGun())
	sys.AddComponent(systems.NewJetpackSystem())
	sys.AddComponent(systems.NewBulletSystem())
	sys.AddComponent(systems.NewFuelGauge(bar, label))
	add(scene, sys)
	return nil
}

func addTopDownPlayer(scene *engine.Scene) *engine.GameObject {
	player := engine.NewGameObject("Player")
	player.AddTag(engine.TagPlayer)
	player.Transform.Position = rl.Vector3{Y: 1}

	player.AddComponent(components.NewMeshRenderer(components.MeshCylinder, playerColor, rl.Vector3{X: 0.8, Y: 1.8, Z: 0.8}))
	player.AddComponent(components.NewCylinderCollider(0.9, 0.4))
	rb := components.NewKinematicBody()
	rb.ActiveEvents = true
	player.AddComponent(rb)
	player.AddComponent(components.NewTopDownController())
	player.AddComponent(components.NewJetpack())
	player.AddComponent(components.NewDash())
	player.AddComponent(components.NewPickable(true))
	return add(scene, player)
}

func addArena(scene *engine.Scene) {
	for i := range 8 {
		a := float64(i) * 2 * math.Pi / 8
		g := engine.NewGameObject(fmt.Sprintf("Crate_%d", i))
		g.Transform.Position = rl.Vector3{
			X: float32(math.Cos(a)) * 5,
			Y: 0.6,
			Z: float32(math.Sin(a)) * 5,
		}
		size := rl.Vector3{X: 1, Y: 1, Z: 1}
		g.AddComponent(components.NewMeshRenderer(components.MeshCube, crateColor, size))
		g.AddComponent(components.NewBoxCollider(size))
		g.AddComponent(components.NewRigidbody())
		add(scene, g)
	}

	cover := []rl.Vector3{{X: -10, Z: -4}, {X: 10, Z: 4}, {X: -4, Z: 11}, {X: 4, Z: -11}}
	for i, p := range cover {
		p.Y = 0.75
		addBox(scene, fmt.Sprintf("Cover_%d", i), p,
			rl.Vector3{X: 3, Y: 1.5, Z: 0.6},
			rl.Vector3{Y: float32(i) * 45},
			coverColor)
	}

	orbits := []struct{ radius, speed float32 }{{8, 0.6}, {13, -0.4}, {18, 0.25}}
	for i, o := range orbits {
		g := engine.NewGameObject(fmt.Sprintf("Target_%d", i))
		g.AddComponent(components.NewMeshRenderer(components.MeshSphere, targetColor, rl.Vector3{X: 1.2, Y: 1.2, Z: 1.2}))
		g.AddComponent(components.NewSphereCollider(0.6))
		g.AddComponent(components.NewOrbiter(rl.Vector3{Y: 1}, o.radius, o.speed, float32(i)*2))
		add(scene, g)
	}
}

func addFuelGauge(scene *engine.Scene) (*components.UIProgressBar, *components.UIText) {
	canvas := engine.NewGameObject("HUD")
	canvas.AddComponent(components.NewUICanvas())
	add(scene, canvas)

	label := components.NewUIText("FUEL")
	labelObj := engine.NewGameObject("FuelLabel")
	labelObj.AddComponent(components.NewPercentRect(0.02, 0.86, 220, 24))
	labelObj.AddComponent(label)
	canvas.AddChild(labelObj)
	add(scene, labelObj)

	bar := components.NewUIProgressBar(100)
	barObj := engine.NewGameObject("FuelBar")
	barObj.AddComponent(components.NewPercentRect(0.02, 0.91, 220, 20))
	barObj.AddComponent(bar)
	canvas.AddChild(barObj)
	add(scene, barObj)

	return bar, label
}
