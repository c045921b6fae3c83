package components

import (
	"math"

	"demos3d/internal/camera"
	"demos3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TopDownController moves a kinematic body on the XZ plane with WASD in
// world axes (W is -Z). Vertical motion comes from gravity and whatever
// adds to Velocity.Y, such as the jetpack.
type TopDownController struct {
	engine.BaseComponent
	MoveSpeed float32
	Gravity   float32
	Velocity  rl.Vector3
	// Facing is the last non-zero horizontal move direction.
	Facing rl.Vector3

	grounded bool
}

func NewTopDownController() *TopDownController {
	return &TopDownController{
		MoveSpeed: 8,
		Gravity:   20,
		Facing:    rl.Vector3{Z: -1},
	}
}

func (c *TopDownController) Update(deltaTime float32) {
	g := c.GetGameObject()
	w := c.World()
	if g == nil || w == nil || w.Input() == nil {
		return
	}

	forward, right := axes(w.Input())
	dir := camera.Flatten(rl.Vector3{X: right, Z: -forward})
	if dir != (rl.Vector3{}) {
		c.Facing = dir
	}

	if dash := engine.GetComponent[*Dash](g); dash != nil && dash.Dashing() {
		c.Velocity.X = dash.Direction.X * dash.Speed
		c.Velocity.Z = dash.Direction.Z * dash.Speed
	} else {
		c.Velocity.X = dir.X * c.MoveSpeed
		c.Velocity.Z = dir.Z * c.MoveSpeed
	}

	c.Velocity.Y -= c.Gravity * deltaTime
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(c.Velocity, deltaTime))
}

// FaceTowards turns the body's yaw to look along dir.
func (c *TopDownController) FaceTowards(dir rl.Vector3) {
	g := c.GetGameObject()
	if g == nil || (dir.X == 0 && dir.Z == 0) {
		return
	}
	g.Transform.Rotation.Y = float32(math.Atan2(float64(-dir.X), float64(-dir.Z)) * 180 / math.Pi)
}

func (c *TopDownController) GetLookDirection() (x, y, z float32) {
	return c.Facing.X, 0, c.Facing.Z
}

func (c *TopDownController) GetEyeHeight() float32 { return 0 }

func (c *TopDownController) GetVelocity() (x, y, z float32) {
	return c.Velocity.X, c.Velocity.Y, c.Velocity.Z
}

func (c *TopDownController) SetVelocityY(vy float32) { c.Velocity.Y = vy }

func (c *TopDownController) Grounded() bool { return c.grounded }

func (c *TopDownController) SetGrounded(grounded bool) { c.grounded = grounded }
