package components

import (
	"demos3d/internal/camera"
	"demos3d/internal/engine"
	"demos3d/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FPSController drives a kinematic first-person body: mouse look, WASD
// walking, Shift to run and Space to jump. The physics world pushes the body
// out of geometry and reports grounding back through engine.PlayerController.
type FPSController struct {
	engine.BaseComponent
	Yaw       float32 // degrees, 0 looks down +X
	Pitch     float32 // degrees, positive looks up
	WalkSpeed float32
	RunSpeed  float32
	JumpSpeed float32
	LookSpeed float32 // degrees per pixel of mouse motion
	Gravity   float32
	// Height is the standing height of the body; the render camera's eye
	// offset is synced to it.
	Height   float32
	Velocity rl.Vector3

	// Falling below KillPlaneY puts the body back at its start position.
	KillPlaneY float32

	grounded bool
	spawn    rl.Vector3
}

func NewFPSController() *FPSController {
	return &FPSController{
		Yaw:        -135.0,
		Pitch:      -30.0,
		WalkSpeed:  9.0,
		RunSpeed:   14.0,
		JumpSpeed:  8.5,
		LookSpeed:  0.1,
		Gravity:    23.0,
		Height:     3.0,
		KillPlaneY: -50,
	}
}

func (f *FPSController) Start() {
	if g := f.GetGameObject(); g != nil {
		f.spawn = g.Transform.Position
	}
}

func (f *FPSController) Update(deltaTime float32) {
	g := f.GetGameObject()
	w := f.World()
	if g == nil || w == nil || w.Input() == nil {
		return
	}
	in := w.Input()

	// Mouse look
	mouseDelta := in.MouseDelta()
	f.Yaw += mouseDelta.X * f.LookSpeed
	f.Pitch = clampf(f.Pitch-mouseDelta.Y*f.LookSpeed, -89, 89)

	forwardAxis, rightAxis := axes(in)
	moveDir := camera.MoveDirection(f.Yaw, forwardAxis, rightAxis)

	speed := f.WalkSpeed
	if in.KeyDown(input.KeyShift) {
		speed = f.RunSpeed
	}
	f.Velocity.X = moveDir.X * speed
	f.Velocity.Z = moveDir.Z * speed

	// Jump
	if f.grounded && in.KeyPressed(input.KeySpace) {
		f.Velocity.Y = f.JumpSpeed
		f.grounded = false
	}

	// Gravity always applies; resting contact zeroes it again.
	f.Velocity.Y -= f.Gravity * deltaTime

	g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(f.Velocity, deltaTime))

	if g.Transform.Position.Y < f.KillPlaneY {
		g.Transform.Position = f.spawn
		f.Velocity = rl.Vector3{}
	}
}

// axes reads WASD into forward and right intents in -1..1.
func axes(in input.Input) (forward, right float32) {
	if in.KeyDown(input.KeyW) {
		forward++
	}
	if in.KeyDown(input.KeyS) {
		forward--
	}
	if in.KeyDown(input.KeyD) {
		right++
	}
	if in.KeyDown(input.KeyA) {
		right--
	}
	return
}

func (f *FPSController) GetLookDirection() (x, y, z float32) {
	d := camera.LookDirection(f.Yaw, f.Pitch)
	return d.X, d.Y, d.Z
}

func (f *FPSController) GetEyeHeight() float32 { return f.Height }

func (f *FPSController) GetVelocity() (x, y, z float32) {
	return f.Velocity.X, f.Velocity.Y, f.Velocity.Z
}

func (f *FPSController) SetVelocityY(vy float32) { f.Velocity.Y = vy }

func (f *FPSController) Grounded() bool { return f.grounded }

func (f *FPSController) SetGrounded(grounded bool) { f.grounded = grounded }
