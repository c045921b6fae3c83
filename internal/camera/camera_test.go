package camera

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-3

func TestLookDirection(t *testing.T) {
	d := LookDirection(0, 0)
	assert.InDelta(t, 1, d.X, eps)
	assert.InDelta(t, 0, d.Y, eps)
	assert.InDelta(t, 0, d.Z, eps)

	d = LookDirection(90, 0)
	assert.InDelta(t, 1, d.Z, eps)

	d = LookDirection(0, 90)
	assert.InDelta(t, 1, d.Y, eps)

	d = LookDirection(45, -22.5)
	assert.InDelta(t, 1, rl.Vector3Length(d), eps, "look vectors are unit length")
}

func TestMoveDirectionNormalizesDiagonals(t *testing.T) {
	d := MoveDirection(0, 1, 1)
	assert.InDelta(t, 1, rl.Vector3Length(d), eps)
	assert.Zero(t, d.Y)

	// Yaw 0 faces +X, so strafing right goes toward +Z.
	d = MoveDirection(0, 0, 1)
	assert.InDelta(t, 0, d.X, eps)
	assert.InDelta(t, 1, d.Z, eps)

	assert.Equal(t, rl.Vector3{}, MoveDirection(30, 0, 0))
}

func TestFlattenVertical(t *testing.T) {
	assert.Equal(t, rl.Vector3{}, Flatten(rl.Vector3{Y: 5}))

	f := Flatten(rl.Vector3{X: 3, Y: 7, Z: 4})
	assert.InDelta(t, 0.6, f.X, eps)
	assert.InDelta(t, 0.8, f.Z, eps)
	assert.Zero(t, f.Y)
}

func TestRayIntersectPlaneY(t *testing.T) {
	r := Ray{Origin: rl.Vector3{X: 1, Y: 10, Z: 2}, Direction: rl.Vector3{Y: -1}}
	p, ok := r.IntersectPlaneY(0)
	require.True(t, ok)
	assert.Equal(t, rl.Vector3{X: 1, Y: 0, Z: 2}, p)

	_, ok = r.IntersectPlaneY(20)
	assert.False(t, ok, "plane behind the origin")

	flat := Ray{Origin: rl.Vector3{Y: 1}, Direction: rl.Vector3{X: 1}}
	_, ok = flat.IntersectPlaneY(0)
	assert.False(t, ok, "parallel ray")
}

func topDownCamera(projection rl.CameraProjection, fovy float32) rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 20, Z: 10},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{Y: 1},
		Fovy:       fovy,
		Projection: projection,
	}
}

func TestScreenRayCenterHitsTarget(t *testing.T) {
	size := rl.Vector2{X: 1280, Y: 720}
	for _, cam := range []rl.Camera3D{
		topDownCamera(rl.CameraPerspective, 45),
		topDownCamera(rl.CameraOrthographic, 30),
	} {
		ray, ok := ScreenRay(cam, rl.Vector2{X: 640, Y: 360}, size)
		require.True(t, ok)
		assert.InDelta(t, 1, rl.Vector3Length(ray.Direction), eps)

		p, ok := ray.IntersectPlaneY(0)
		require.True(t, ok)
		assert.InDelta(t, 0, p.X, 0.05)
		assert.InDelta(t, 0, p.Z, 0.05)
	}
}

func TestScreenRayOrientation(t *testing.T) {
	cam := topDownCamera(rl.CameraPerspective, 45)
	size := rl.Vector2{X: 1280, Y: 720}

	left, ok := ScreenRay(cam, rl.Vector2{X: 100, Y: 360}, size)
	require.True(t, ok)
	pl, ok := left.IntersectPlaneY(0)
	require.True(t, ok)
	assert.Less(t, pl.X, float32(0), "left half of the screen maps to -X")

	top, ok := ScreenRay(cam, rl.Vector2{X: 640, Y: 200}, size)
	require.True(t, ok)
	pt, ok := top.IntersectPlaneY(0)
	require.True(t, ok)
	assert.Less(t, pt.Z, float32(0), "upper half of the screen is farther from the camera")
}

func TestScreenRayRoundTrip(t *testing.T) {
	cam := topDownCamera(rl.CameraPerspective, 45)
	size := rl.Vector2{X: 800, Y: 600}
	world := rl.Vector3{X: 3, Y: 0, Z: -4}

	screen, ok := WorldToScreen(cam, world, size)
	require.True(t, ok)

	ray, ok := ScreenRay(cam, screen, size)
	require.True(t, ok)
	p, ok := ray.IntersectPlaneY(0)
	require.True(t, ok)
	assert.InDelta(t, world.X, p.X, 0.05)
	assert.InDelta(t, world.Z, p.Z, 0.05)
}

func TestScreenRayDegenerate(t *testing.T) {
	cam := rl.Camera3D{Position: rl.Vector3{Y: 10}, Target: rl.Vector3{}, Up: rl.Vector3{Y: 1}, Fovy: 45}
	_, ok := ScreenRay(cam, rl.Vector2{}, rl.Vector2{X: 100, Y: 100})
	assert.False(t, ok, "up parallel to view direction")

	_, ok = ScreenRay(topDownCamera(rl.CameraPerspective, 45), rl.Vector2{}, rl.Vector2{})
	assert.False(t, ok, "empty viewport")
}

func TestYawPitchFromRadians(t *testing.T) {
	yaw, pitch := YawPitchFromRadians(math.Pi/4, -math.Pi/8)
	assert.InDelta(t, 45, yaw, eps)
	assert.InDelta(t, -22.5, pitch, eps)
}
