package world

import (
	"testing"

	"demos3d/internal/components"
	"demos3d/internal/engine"
	"demos3d/internal/input"
	"demos3d/internal/systems"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const step = float32(1.0 / 60)

func newBox(name string, pos, size rl.Vector3, dynamic bool) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewBoxCollider(size))
	if dynamic {
		g.AddComponent(components.NewRigidbody())
	}
	return g
}

func newTestWorld(objs ...*engine.GameObject) (*World, *input.State) {
	scene := engine.NewScene("test")
	for _, g := range objs {
		scene.AddGameObject(g)
	}
	state := input.NewState(800, 600)
	w := New(scene, state, state)
	w.Start()
	return w, state
}

func TestNewRegistersSceneWithPhysics(t *testing.T) {
	floor := newBox("Floor", rl.Vector3{}, rl.Vector3{X: 50, Y: 0.2, Z: 50}, false)
	crate := newBox("Crate", rl.Vector3{Y: 3}, rl.Vector3{X: 1, Y: 1, Z: 1}, true)
	label := engine.NewGameObject("Label")
	w, _ := newTestWorld(floor, crate, label)

	assert.Same(t, w, w.Scene.World)
	assert.True(t, w.PhysicsWorld.Contains(floor))
	assert.True(t, w.PhysicsWorld.Contains(crate))
	assert.False(t, w.PhysicsWorld.Contains(label))
	assert.ElementsMatch(t, []*engine.GameObject{floor, crate}, w.GetCollidableObjects())
}

func TestCrateSettlesOnFloor(t *testing.T) {
	floor := newBox("Floor", rl.Vector3{}, rl.Vector3{X: 50, Y: 0.2, Z: 50}, false)
	crate := newBox("Crate", rl.Vector3{Y: 3}, rl.Vector3{X: 1, Y: 1, Z: 1}, true)
	w, _ := newTestWorld(floor, crate)

	for range 300 {
		w.Update(step)
	}

	assert.InDelta(t, 0.6, crate.Transform.Position.Y, 0.05)
	assert.InDelta(t, 5.0, w.Clock().Now(), 1e-3)
}

func TestDestroyIsDeferredToEndOfFrame(t *testing.T) {
	crate := newBox("Crate", rl.Vector3{Y: 3}, rl.Vector3{X: 1, Y: 1, Z: 1}, true)
	w, _ := newTestWorld(crate)

	w.Destroy(crate)
	w.Destroy(crate)
	assert.NotNil(t, w.Scene.FindByUID(crate.UID), "still present until the frame ends")

	w.Update(step)
	assert.Nil(t, w.Scene.FindByUID(crate.UID))
	assert.False(t, w.PhysicsWorld.Contains(crate))
}

func TestSpawnObjectJoinsPhysics(t *testing.T) {
	w, _ := newTestWorld()
	crate := newBox("Crate", rl.Vector3{Y: 3}, rl.Vector3{X: 1, Y: 1, Z: 1}, true)

	w.SpawnObject(crate)

	assert.True(t, w.PhysicsWorld.Contains(crate))
	assert.Same(t, crate, w.Scene.FindByName("Crate"))
}

func TestRaycastConvertsHit(t *testing.T) {
	wall := newBox("Wall", rl.Vector3{X: 5}, rl.Vector3{X: 1, Y: 2, Z: 2}, false)
	w, _ := newTestWorld(wall)

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{X: 1}, 100, nil)
	require.True(t, ok)
	assert.Same(t, wall, hit.GameObject)
	assert.InDelta(t, 4.5, hit.Distance, 1e-4)
	assert.InDelta(t, -1, hit.Normal.X, 1e-4)

	_, ok = w.Raycast(rl.Vector3{}, rl.Vector3{X: 1}, 100, components.IsPickable)
	assert.True(t, ok)

	wall.AddComponent(components.NewPickable(true))
	_, ok = w.Raycast(rl.Vector3{}, rl.Vector3{X: 1}, 100, components.IsPickable)
	assert.False(t, ok)
}

func TestF1TogglesDebug(t *testing.T) {
	w, state := newTestWorld()

	state.Press(input.KeyF1)
	w.Update(step)
	assert.True(t, w.Debug)

	state.EndFrame()
	w.Update(step)
	assert.True(t, w.Debug)

	state.Press(input.KeyF1)
	w.Update(step)
	assert.False(t, w.Debug)
}

func TestActiveCameraUsesMainCamera(t *testing.T) {
	w, _ := newTestWorld()
	_, ok := w.ActiveCamera()
	assert.False(t, ok)

	g := engine.NewGameObject("Camera")
	g.Transform.Position = rl.Vector3{Y: 2}
	cam := components.NewCamera()
	g.AddComponent(cam)
	w.SpawnObject(g)

	rc, ok := w.ActiveCamera()
	require.True(t, ok)
	assert.Equal(t, rl.Vector3{Y: 2}, rc.Position)

	cam.IsMain = false
	_, ok = w.ActiveCamera()
	assert.False(t, ok)
}

func TestBulletDestroyedOnWallHit(t *testing.T) {
	wall := newBox("Wall", rl.Vector3{X: 3, Y: 1}, rl.Vector3{X: 1, Y: 2, Z: 2}, false)
	sys := engine.NewGameObject("Systems")
	sys.AddComponent(systems.NewBulletSystem())
	w, _ := newTestWorld(wall, sys)

	bullet := systems.NewBulletObject("Bullet_1", rl.Vector3{Y: 1}, rl.Vector3{X: 1}, 0.15)
	w.SpawnObject(bullet)

	for range 30 {
		w.Update(step)
	}

	assert.Nil(t, w.Scene.FindByName("Bullet_1"))
	assert.False(t, w.PhysicsWorld.Contains(bullet))
}

func TestBulletExpiresInOpenSpace(t *testing.T) {
	sys := engine.NewGameObject("Systems")
	sys.AddComponent(systems.NewBulletSystem())
	w, _ := newTestWorld(sys)

	bullet := systems.NewBulletObject("Bullet_1", rl.Vector3{Y: 1}, rl.Vector3{Z: -1}, 0.15)
	w.SpawnObject(bullet)

	for range 60 {
		w.Update(step)
	}
	require.NotNil(t, w.Scene.FindByName("Bullet_1"))

	for range 40 {
		w.Update(step)
	}
	assert.Nil(t, w.Scene.FindByName("Bullet_1"))
}
