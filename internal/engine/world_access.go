package engine

import (
	"demos3d/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// RaycastFilter reports whether an object may be hit. A nil filter accepts all.
type RaycastFilter func(g *GameObject) bool

// Clock exposes the frame clock to components.
type Clock interface {
	// Now returns elapsed game time in seconds.
	Now() float64
}

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies.
type WorldAccess interface {
	GetCollidableObjects() []*GameObject
	SpawnObject(g *GameObject)
	// Destroy removes g at the end of the current frame.
	Destroy(g *GameObject)
	Raycast(origin, direction rl.Vector3, maxDistance float32, filter RaycastFilter) (RaycastResult, bool)
	Input() input.Input
	Cursor() input.Cursor
	Clock() Clock
	// ActiveCamera returns the camera the frame is rendered with.
	ActiveCamera() (rl.Camera3D, bool)
}
