// Package input abstracts keyboard, mouse and cursor state so frame
// behaviours can run against raylib in the game and against a scripted
// State in tests.
package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Key and button codes are raylib's.
type (
	Key    = int32
	Button = rl.MouseButton
)

const (
	KeyW      Key = rl.KeyW
	KeyA      Key = rl.KeyA
	KeyS      Key = rl.KeyS
	KeyD      Key = rl.KeyD
	KeySpace  Key = rl.KeySpace
	KeyShift  Key = rl.KeyLeftShift
	KeyEscape Key = rl.KeyEscape
	KeyF1     Key = rl.KeyF1

	MouseLeft  Button = rl.MouseButtonLeft
	MouseRight Button = rl.MouseButtonRight
)

// Input is a per-frame view of the keyboard and mouse.
type Input interface {
	KeyDown(k Key) bool
	KeyPressed(k Key) bool
	MouseButtonDown(b Button) bool
	MouseButtonPressed(b Button) bool
	MouseDelta() rl.Vector2
	MousePosition() rl.Vector2
	ScreenSize() rl.Vector2
}

// Cursor controls pointer grab. A grabbed cursor is hidden and locked to the
// window centre, which is where picking rays originate while grabbed.
type Cursor interface {
	Grab()
	Release()
	Grabbed() bool
	Center()
}
