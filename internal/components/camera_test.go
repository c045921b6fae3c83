package components

import (
	"testing"

	"demos3d/internal/engine"
	"demos3d/internal/engine/enginetest"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCameraViewsThroughLogicalPlayer(t *testing.T) {
	w := enginetest.New()

	player := engine.NewGameObject("Player")
	player.Transform.Position = rl.Vector3{X: 1, Y: 1.5, Z: 2}
	player.AddComponent(NewCylinderCollider(1.5, 0.5))
	ctrl := NewFPSController()
	ctrl.Yaw, ctrl.Pitch = 0, 0
	player.AddComponent(ctrl)
	w.Add(player)

	camObj := engine.NewGameObject("MainCamera")
	cam := NewCamera()
	camObj.AddComponent(cam)
	camObj.AddComponent(NewCameraConfig(0.6))
	camObj.AddComponent(NewRenderPlayer(player))
	w.Add(camObj)

	rc := cam.GetRaylibCamera()

	// Feet at y=0, eye 0.6 above them, looking down +X.
	assert.InDelta(t, 0.6, rc.Position.Y, 1e-5)
	assert.InDelta(t, 1, rc.Position.X, 1e-5)
	assert.InDelta(t, 2, rc.Target.X, 1e-5)
	assert.Equal(t, rl.CameraPerspective, rc.Projection)

	cam.Update(0)
	assert.InDelta(t, 0.6, camObj.Transform.Position.Y, 1e-5)
}

func TestRenderCameraWithMissingPlayerFallsBack(t *testing.T) {
	w := enginetest.New()
	player := engine.NewGameObject("Gone")

	camObj := engine.NewGameObject("MainCamera")
	camObj.Transform.Position = rl.Vector3{Y: 3}
	cam := NewCamera()
	camObj.AddComponent(cam)
	camObj.AddComponent(NewRenderPlayer(player))
	w.Add(camObj)

	rc := cam.GetRaylibCamera()

	require.Equal(t, rl.Vector3{Y: 3}, rc.Position)
	// Default view is -Z
	assert.InDelta(t, -1, rc.Target.Z, 1e-5)
}

func TestMeshRendererMaterialsAreIndependent(t *testing.T) {
	a := NewMeshRenderer(MeshCube, rl.Red, rl.Vector3{X: 1, Y: 1, Z: 1})
	b := NewMeshRenderer(MeshCube, rl.Red, rl.Vector3{X: 1, Y: 1, Z: 1})

	a.Material.BaseColor = rl.Blue

	assert.Equal(t, rl.Blue, a.Color())
	assert.Equal(t, rl.Red, b.Color())
}

func TestMeshRendererModelMatrix(t *testing.T) {
	g := engine.NewGameObject("Pillar")
	g.Transform.Position = rl.Vector3{X: -6, Y: 1, Z: -5}
	m := NewMeshRenderer(MeshCube, rl.Gray, rl.Vector3{X: 1, Y: 2, Z: 1})
	g.AddComponent(m)

	top := rl.Vector3Transform(rl.Vector3{Y: 0.5}, m.ModelMatrix())

	assert.InDelta(t, -6, top.X, 1e-5)
	assert.InDelta(t, 2, top.Y, 1e-5)
	assert.InDelta(t, -5, top.Z, 1e-5)
	assert.Equal(t, "cube", m.MeshType.String())
}

func TestColorFromFloats(t *testing.T) {
	c := ColorFromFloats(1, 0.5, 0, 1)
	assert.Equal(t, uint8(255), c.R)
	assert.InDelta(t, 127, int(c.G), 1)
	assert.Equal(t, uint8(0), c.B)
}

func TestPickable(t *testing.T) {
	plain := engine.NewGameObject("Cube")
	reticle := engine.NewGameObject("Reticle")
	reticle.AddComponent(NewPickable(true))

	assert.True(t, IsPickable(plain))
	assert.False(t, IsPickable(reticle))
}
