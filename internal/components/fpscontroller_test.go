package components

import (
	"testing"

	"demos3d/internal/engine"
	"demos3d/internal/engine/enginetest"
	"demos3d/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func newFPSPlayer(w *enginetest.World) (*engine.GameObject, *FPSController) {
	g := engine.NewGameObject("Player")
	g.Transform.Position = rl.Vector3{Y: 5}
	ctrl := NewFPSController()
	ctrl.Yaw = 0
	ctrl.Pitch = 0
	g.AddComponent(ctrl)
	w.Add(g)
	return g, ctrl
}

func TestFPSControllerWalksForward(t *testing.T) {
	w := enginetest.New()
	g, ctrl := newFPSPlayer(w)
	ctrl.Gravity = 0
	w.State.Hold(input.KeyW)

	w.Step(0.5)

	// Yaw 0 faces +X
	assert.InDelta(t, ctrl.WalkSpeed*0.5, g.Transform.Position.X, 1e-4)
	assert.InDelta(t, 0, g.Transform.Position.Z, 1e-4)
}

func TestFPSControllerRunsWithShift(t *testing.T) {
	w := enginetest.New()
	_, ctrl := newFPSPlayer(w)
	w.State.Hold(input.KeyW)
	w.State.Hold(input.KeyShift)

	w.Step(0.1)

	assert.InDelta(t, ctrl.RunSpeed, ctrl.Velocity.X, 1e-4)
}

func TestFPSControllerStrafeRight(t *testing.T) {
	w := enginetest.New()
	_, ctrl := newFPSPlayer(w)
	w.State.Hold(input.KeyD)

	w.Step(0.1)

	// Facing +X, right is +Z
	assert.InDelta(t, ctrl.WalkSpeed, ctrl.Velocity.Z, 1e-4)
	assert.InDelta(t, 0, ctrl.Velocity.X, 1e-4)
}

func TestFPSControllerJumpsOnlyWhenGrounded(t *testing.T) {
	w := enginetest.New()
	_, ctrl := newFPSPlayer(w)

	w.State.Press(input.KeySpace)
	w.Step(0.01)
	assert.Less(t, ctrl.Velocity.Y, float32(0), "airborne jump must be ignored")

	ctrl.SetGrounded(true)
	ctrl.SetVelocityY(0)
	w.State.Press(input.KeySpace)
	w.Step(0.01)
	assert.InDelta(t, ctrl.JumpSpeed-ctrl.Gravity*0.01, ctrl.Velocity.Y, 1e-4)
	assert.False(t, ctrl.Grounded())
}

func TestFPSControllerMouseLookClampsPitch(t *testing.T) {
	w := enginetest.New()
	_, ctrl := newFPSPlayer(w)
	w.State.Delta = rl.Vector2{X: 100, Y: -5000}

	w.Step(0.01)

	assert.InDelta(t, 10, ctrl.Yaw, 1e-4)
	assert.Equal(t, float32(89), ctrl.Pitch)
}

func TestFPSControllerRespawnsBelowKillPlane(t *testing.T) {
	w := enginetest.New()
	g, ctrl := newFPSPlayer(w)
	g.Transform.Position.Y = -49.9
	ctrl.Velocity.Y = -100

	w.Step(0.1)

	assert.Equal(t, rl.Vector3{Y: 5}, g.Transform.Position)
	assert.Equal(t, rl.Vector3{}, ctrl.Velocity)
}

func TestFPSControllerWithoutWorldIsInert(t *testing.T) {
	g := engine.NewGameObject("Player")
	ctrl := NewFPSController()
	g.AddComponent(ctrl)

	g.Update(1)

	assert.Equal(t, rl.Vector3{}, g.Transform.Position)
	var _ engine.PlayerController = ctrl
}
