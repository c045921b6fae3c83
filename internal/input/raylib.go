package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Raylib reads input straight from the raylib window. It must only be used
// after InitWindow.
type Raylib struct {
	grabbed bool
}

func NewRaylib() *Raylib {
	return &Raylib{}
}

func (r *Raylib) KeyDown(k Key) bool    { return rl.IsKeyDown(k) }
func (r *Raylib) KeyPressed(k Key) bool { return rl.IsKeyPressed(k) }

func (r *Raylib) MouseButtonDown(b Button) bool    { return rl.IsMouseButtonDown(b) }
func (r *Raylib) MouseButtonPressed(b Button) bool { return rl.IsMouseButtonPressed(b) }

func (r *Raylib) MouseDelta() rl.Vector2 {
	// Ungrabbed cursors must not turn the view.
	if !r.grabbed {
		return rl.Vector2{}
	}
	return rl.GetMouseDelta()
}

func (r *Raylib) MousePosition() rl.Vector2 { return rl.GetMousePosition() }

func (r *Raylib) ScreenSize() rl.Vector2 {
	return rl.Vector2{X: float32(rl.GetScreenWidth()), Y: float32(rl.GetScreenHeight())}
}

func (r *Raylib) Grab() {
	rl.DisableCursor()
	r.grabbed = true
	r.Center()
}

func (r *Raylib) Release() {
	rl.EnableCursor()
	r.grabbed = false
}

func (r *Raylib) Grabbed() bool { return r.grabbed }

func (r *Raylib) Center() {
	rl.SetMousePosition(rl.GetScreenWidth()/2, rl.GetScreenHeight()/2)
}
