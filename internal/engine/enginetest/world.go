// Package enginetest provides an in-memory engine.WorldAccess for tests.
package enginetest

import (
	"demos3d/internal/engine"
	"demos3d/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Clock is a manually advanced game clock.
type Clock struct {
	T float64
}

func (c *Clock) Now() float64 { return c.T }

// World is a scripted WorldAccess. Spawned objects join the scene at once;
// destroyed ones are removed on Flush, mirroring end-of-frame cleanup.
type World struct {
	Scene  *engine.Scene
	State  *input.State
	Time   *Clock
	Camera *rl.Camera3D

	// RaycastFn answers Raycast; nil means nothing is ever hit.
	RaycastFn func(origin, direction rl.Vector3, maxDistance float32, filter engine.RaycastFilter) (engine.RaycastResult, bool)

	Spawned   []*engine.GameObject
	Destroyed []*engine.GameObject

	pending []*engine.GameObject
}

// New returns a world over a fresh scene with an 800x600 input state.
func New() *World {
	w := &World{
		Scene: engine.NewScene("test"),
		State: input.NewState(800, 600),
		Time:  &Clock{},
	}
	w.Scene.World = w
	return w
}

// Add places g in the scene and starts it.
func (w *World) Add(g *engine.GameObject) *engine.GameObject {
	w.Scene.AddGameObject(g)
	g.Start()
	return g
}

// Step advances the clock, updates the scene, flushes destruction and ends
// the input frame.
func (w *World) Step(dt float32) {
	w.Time.T += float64(dt)
	w.Scene.Update(dt)
	w.Flush()
	w.State.EndFrame()
}

// Flush removes objects queued by Destroy.
func (w *World) Flush() {
	for _, g := range w.pending {
		w.Scene.RemoveGameObject(g)
	}
	w.pending = nil
}

func (w *World) GetCollidableObjects() []*engine.GameObject {
	return w.Scene.GameObjects
}

func (w *World) SpawnObject(g *engine.GameObject) {
	w.Spawned = append(w.Spawned, g)
	w.Add(g)
}

func (w *World) Destroy(g *engine.GameObject) {
	for _, d := range w.Destroyed {
		if d == g {
			return
		}
	}
	w.Destroyed = append(w.Destroyed, g)
	w.pending = append(w.pending, g)
}

func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, filter engine.RaycastFilter) (engine.RaycastResult, bool) {
	if w.RaycastFn == nil {
		return engine.RaycastResult{}, false
	}
	return w.RaycastFn(origin, direction, maxDistance, filter)
}

func (w *World) Input() input.Input   { return w.State }
func (w *World) Cursor() input.Cursor { return w.State }
func (w *World) Clock() engine.Clock  { return w.Time }

func (w *World) ActiveCamera() (rl.Camera3D, bool) {
	if w.Camera == nil {
		return rl.Camera3D{}, false
	}
	return *w.Camera, true
}

// WasDestroyed reports whether g was queued for destruction.
func (w *World) WasDestroyed(g *engine.GameObject) bool {
	for _, d := range w.Destroyed {
		if d == g {
			return true
		}
	}
	return false
}
