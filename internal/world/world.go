// Package world ties a scene to physics and rendering and serves as the
// scene's engine.WorldAccess.
package world

import (
	"demos3d/internal/components"
	"demos3d/internal/engine"
	"demos3d/internal/input"
	"demos3d/internal/logging"
	"demos3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type clock struct {
	t float64
}

func (c *clock) Now() float64 { return c.t }

type World struct {
	Scene        *engine.Scene
	PhysicsWorld *physics.PhysicsWorld
	Renderer     *Renderer
	// Debug draws collider outlines; F1 toggles it.
	Debug bool

	input   input.Input
	cursor  input.Cursor
	clock   clock
	pending []*engine.GameObject
}

// New wraps scene. Every object already in the scene joins the physics
// world. The renderer is created separately once a window exists.
func New(scene *engine.Scene, in input.Input, cursor input.Cursor) *World {
	w := &World{
		Scene:        scene,
		PhysicsWorld: physics.NewPhysicsWorld(),
		input:        in,
		cursor:       cursor,
	}
	scene.World = w
	for _, g := range scene.GameObjects {
		w.PhysicsWorld.AddObject(g)
	}

	w.PhysicsWorld.Collisions.AddListener(func(e physics.CollisionEvent) {
		logging.FrameSample.Trace().
			Str("a", e.A.Name).
			Str("b", e.B.Name).
			Bool("started", e.Started).
			Msg("collision")
	})
	return w
}

func (w *World) Start() {
	w.Scene.Start()
}

// Update runs one frame: scene behaviours, then physics, then the
// destruction queued during the frame.
func (w *World) Update(deltaTime float32) {
	w.clock.t += float64(deltaTime)

	if w.input != nil && w.input.KeyPressed(input.KeyF1) {
		w.Debug = !w.Debug
		logging.Logger.Debug().Bool("debug", w.Debug).Msg("collider debug")
	}

	w.Scene.Update(deltaTime)
	w.PhysicsWorld.Update(deltaTime)
	w.flush()
}

func (w *World) flush() {
	for _, g := range w.pending {
		w.removeFromPhysics(g)
		w.Scene.RemoveGameObject(g)
	}
	w.pending = w.pending[:0]
}

func (w *World) removeFromPhysics(g *engine.GameObject) {
	for _, child := range g.Children {
		w.removeFromPhysics(child)
	}
	w.PhysicsWorld.RemoveObject(g)
}

// GetCollidableObjects returns all GameObjects that have a collider
func (w *World) GetCollidableObjects() []*engine.GameObject {
	var result []*engine.GameObject
	for _, g := range w.Scene.GameObjects {
		if components.GetCollider(g) != nil {
			result = append(result, g)
		}
	}
	return result
}

func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.PhysicsWorld.AddObject(g)
	g.Start()
}

// Destroy queues g for removal at the end of the frame. Repeated calls are
// ignored.
func (w *World) Destroy(g *engine.GameObject) {
	for _, p := range w.pending {
		if p == g {
			return
		}
	}
	w.pending = append(w.pending, g)
}

func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, filter engine.RaycastFilter) (engine.RaycastResult, bool) {
	hit, ok := w.PhysicsWorld.Raycast(origin, direction, maxDistance, filter)
	if !ok {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{
		GameObject: hit.GameObject,
		Point:      hit.Point,
		Normal:     hit.Normal,
		Distance:   hit.Distance,
	}, true
}

func (w *World) Input() input.Input   { return w.input }
func (w *World) Cursor() input.Cursor { return w.cursor }
func (w *World) Clock() engine.Clock  { return &w.clock }

// ActiveCamera returns the first main camera on an active object.
func (w *World) ActiveCamera() (rl.Camera3D, bool) {
	if cam := w.MainCamera(); cam != nil {
		return cam.GetRaylibCamera(), true
	}
	return rl.Camera3D{}, false
}

func (w *World) MainCamera() *components.Camera {
	for _, cam := range engine.FindComponents[*components.Camera](w.Scene) {
		if cam.IsMain && cam.GetGameObject().Active {
			return cam
		}
	}
	return nil
}
