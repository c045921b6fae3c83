package world

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestFrustumContainsSphere(t *testing.T) {
	cam := rl.Camera3D{
		Target:     rl.Vector3{Z: -1},
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
	f := ExtractFrustum(cam, 4.0/3.0)

	assert.True(t, f.ContainsPoint(rl.Vector3{Z: -10}))
	assert.False(t, f.ContainsPoint(rl.Vector3{Z: 10}), "behind the camera")
	assert.False(t, f.ContainsPoint(rl.Vector3{Z: -2000}), "past the far plane")
	assert.False(t, f.ContainsPoint(rl.Vector3{X: 50, Z: -10}), "off to the side")
	assert.True(t, f.ContainsSphere(rl.Vector3{Z: 5}, 6), "straddles the near plane")
}

func TestOrthographicFrustum(t *testing.T) {
	cam := rl.Camera3D{
		Position:   rl.Vector3{Y: 10},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{Z: -1},
		Fovy:       20,
		Projection: rl.CameraOrthographic,
	}
	f := ExtractFrustum(cam, 1)

	assert.True(t, f.ContainsPoint(rl.Vector3{X: 9}))
	assert.False(t, f.ContainsPoint(rl.Vector3{X: 11}))
}
