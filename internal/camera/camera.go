// Package camera holds the view math shared by the first-person and
// top-down scenes: look vectors from yaw/pitch and screen-to-world rays.
package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LookDirection converts yaw/pitch in degrees into a unit look vector.
// Yaw 0 looks down +X, yaw 90 down +Z; positive pitch looks up.
func LookDirection(yaw, pitch float32) rl.Vector3 {
	yawRad := float64(yaw) * math.Pi / 180
	pitchRad := float64(pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

// FlatDirections returns the horizontal forward and left vectors for yaw.
func FlatDirections(yaw float32) (forward, left rl.Vector3) {
	yawRad := float64(yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Z: float32(math.Sin(yawRad)),
	}
	left = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Z: float32(-math.Cos(yawRad)),
	}
	return
}

// MoveDirection combines forward/back and left/right intents (each -1..1)
// into a normalized horizontal direction for yaw. Returns zero when idle.
func MoveDirection(yaw, forwardAxis, rightAxis float32) rl.Vector3 {
	forward, left := FlatDirections(yaw)
	dir := rl.Vector3{
		X: forward.X*forwardAxis - left.X*rightAxis,
		Z: forward.Z*forwardAxis - left.Z*rightAxis,
	}
	return Flatten(dir)
}

// Flatten drops the Y component and normalizes. Returns zero for vectors
// with no horizontal extent.
func Flatten(v rl.Vector3) rl.Vector3 {
	l := float32(math.Sqrt(float64(v.X*v.X + v.Z*v.Z)))
	if l < 1e-6 {
		return rl.Vector3{}
	}
	return rl.Vector3{X: v.X / l, Z: v.Z / l}
}

// YawPitchFromRadians converts radian angles to the degree convention used
// by LookDirection.
func YawPitchFromRadians(yaw, pitch float64) (float32, float32) {
	return float32(yaw * 180 / math.Pi), float32(pitch * 180 / math.Pi)
}
