package physics

import (
	"testing"

	"demos3d/internal/components"
	"demos3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boxAt(name string, pos rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewBoxCollider(unit))
	return g
}

func TestRaycastReturnsClosestHit(t *testing.T) {
	p := NewPhysicsWorld()
	near := boxAt("Near", rl.Vector3{Z: -3})
	far := boxAt("Far", rl.Vector3{Z: -6})
	p.AddObject(far)
	p.AddObject(near)

	hit, ok := p.Raycast(rl.Vector3{}, rl.Vector3{Z: -1}, 100, nil)

	require.True(t, ok)
	assert.Equal(t, near, hit.GameObject)
	assert.InDelta(t, 2.5, hit.Distance, 1e-4)
	assert.InDelta(t, 1, hit.Normal.Z, 1e-4)
}

func TestRaycastFilterSkipsObjects(t *testing.T) {
	p := NewPhysicsWorld()
	near := boxAt("Reticle", rl.Vector3{Z: -3})
	far := boxAt("Cube", rl.Vector3{Z: -6})
	p.AddObject(near)
	p.AddObject(far)

	hit, ok := p.Raycast(rl.Vector3{}, rl.Vector3{Z: -1}, 100, func(g *engine.GameObject) bool {
		return g != near
	})

	require.True(t, ok)
	assert.Equal(t, far, hit.GameObject)
}

func TestRaycastRespectsMaxDistance(t *testing.T) {
	p := NewPhysicsWorld()
	p.AddObject(boxAt("Cube", rl.Vector3{Z: -6}))

	_, ok := p.Raycast(rl.Vector3{}, rl.Vector3{Z: -1}, 5, nil)
	assert.False(t, ok)

	_, ok = p.Raycast(rl.Vector3{}, rl.Vector3{}, 50, nil)
	assert.False(t, ok)
}

func TestRaycastRotatedBoxNormal(t *testing.T) {
	p := NewPhysicsWorld()
	ramp := engine.NewGameObject("Ramp")
	ramp.Transform.Rotation = rl.Vector3{Z: 45}
	ramp.AddComponent(components.NewBoxCollider(rl.Vector3{X: 4, Y: 0.2, Z: 2}))
	p.AddObject(ramp)

	hit, ok := p.Raycast(rl.Vector3{Y: 5}, rl.Vector3{Y: -1}, 20, nil)

	require.True(t, ok)
	assert.InDelta(t, 0.7071, absf(hit.Normal.X), 1e-3)
	assert.InDelta(t, 0.7071, hit.Normal.Y, 1e-3)
	// top face sits 0.1/cos(45) above the center along the vertical
	assert.InDelta(t, 5-0.1414, hit.Distance, 1e-3)
}

func TestRaycastSphereAndTrigger(t *testing.T) {
	p := NewPhysicsWorld()
	ball := engine.NewGameObject("Ball")
	ball.Transform.Position = rl.Vector3{X: 4}
	ball.AddComponent(components.NewSphereCollider(1))
	p.AddObject(ball)

	sensor := engine.NewGameObject("Sensor")
	sensor.Transform.Position = rl.Vector3{X: 2}
	box := components.NewBoxCollider(unit)
	box.IsTrigger = true
	sensor.AddComponent(box)
	p.AddObject(sensor)

	hit, ok := p.Raycast(rl.Vector3{}, rl.Vector3{X: 2}, 100, nil)

	require.True(t, ok)
	assert.Equal(t, ball, hit.GameObject)
	assert.InDelta(t, 3, hit.Distance, 1e-4)
	assert.InDelta(t, -1, hit.Normal.X, 1e-4)
}

func TestRaycastFromInsideBox(t *testing.T) {
	p := NewPhysicsWorld()
	p.AddObject(boxAt("Cube", rl.Vector3{}))

	hit, ok := p.Raycast(rl.Vector3{}, rl.Vector3{X: 1}, 10, nil)

	require.True(t, ok)
	assert.InDelta(t, 0.5, hit.Distance, 1e-4)
	assert.InDelta(t, 1, hit.Normal.X, 1e-4)
}
