// Stress test for the physics world: drops crates onto a floor and times
// the steps until they settle.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"demos3d/internal/components"
	"demos3d/internal/engine"
	"demos3d/internal/logging"
	"demos3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/pflag"
)

func main() {
	counts := pflag.IntSlice("counts", []int{100, 250, 500, 1000}, "crate counts to test")
	steps := pflag.Int("steps", 300, "physics steps per run")
	level := pflag.String("log-level", "info", "log level")
	pflag.Parse()

	logging.Setup(*level, os.Stderr, false)

	for _, count := range *counts {
		testDrop(count, *steps)
	}
}

func testDrop(count, steps int) {
	rng := rand.New(rand.NewPCG(42, 42)) // Consistent results
	world := physics.NewPhysicsWorld()

	floor := engine.NewGameObject("Floor")
	floor.AddComponent(components.NewCuboidCollider(100, 0.1, 100))
	world.AddObject(floor)

	// Spawn in a column, spread scales with count to keep density reasonable
	spread := float32(10) + float32(count)/50
	crates := make([]*engine.GameObject, count)
	for i := range crates {
		g := engine.NewGameObject(fmt.Sprintf("Crate_%d", i))
		g.Transform.Position = rl.Vector3{
			X: rng.Float32()*spread - spread/2,
			Y: 1 + rng.Float32()*20,
			Z: rng.Float32()*spread - spread/2,
		}
		g.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))
		g.AddComponent(components.NewRigidbody())
		world.AddObject(g)
		crates[i] = g
	}

	const dt = float32(1.0 / 60)
	start := time.Now()
	var worst time.Duration
	for range steps {
		stepStart := time.Now()
		world.Update(dt)
		worst = max(worst, time.Since(stepStart))
	}
	total := time.Since(start)

	sleeping := 0
	for _, g := range crates {
		if rb := engine.GetComponent[*components.Rigidbody](g); rb != nil && rb.IsSleeping {
			sleeping++
		}
	}

	logging.Logger.Info().
		Int("crates", count).
		Dur("avgStep", (total / time.Duration(steps)).Round(time.Microsecond)).
		Dur("worstStep", worst.Round(time.Microsecond)).
		Int("sleeping", sleeping).
		Msg("drop test")
}
