package input

import rl "github.com/gen2brain/raylib-go/raylib"

// State is a scripted Input and Cursor. Tests set the fields for a frame,
// run the behaviour under test, then call EndFrame to clear edge-triggered
// presses.
type State struct {
	Down          map[Key]bool
	Pressed       map[Key]bool
	ButtonsDown   map[Button]bool
	ButtonPressed map[Button]bool
	Delta         rl.Vector2
	Mouse         rl.Vector2
	Screen        rl.Vector2

	grabbed bool
	Centers int
}

func NewState(width, height float32) *State {
	return &State{
		Down:          map[Key]bool{},
		Pressed:       map[Key]bool{},
		ButtonsDown:   map[Button]bool{},
		ButtonPressed: map[Button]bool{},
		Screen:        rl.Vector2{X: width, Y: height},
		Mouse:         rl.Vector2{X: width / 2, Y: height / 2},
	}
}

// Press marks k as pressed this frame and held.
func (s *State) Press(k Key) {
	s.Pressed[k] = true
	s.Down[k] = true
}

// Hold marks k as held without a press edge.
func (s *State) Hold(k Key) { s.Down[k] = true }

func (s *State) ReleaseKey(k Key) {
	delete(s.Down, k)
	delete(s.Pressed, k)
}

// Click marks b as pressed this frame and held.
func (s *State) Click(b Button) {
	s.ButtonPressed[b] = true
	s.ButtonsDown[b] = true
}

func (s *State) ReleaseButton(b Button) {
	delete(s.ButtonsDown, b)
	delete(s.ButtonPressed, b)
}

// EndFrame clears per-frame edges and mouse motion.
func (s *State) EndFrame() {
	clear(s.Pressed)
	clear(s.ButtonPressed)
	s.Delta = rl.Vector2{}
}

func (s *State) KeyDown(k Key) bool               { return s.Down[k] }
func (s *State) KeyPressed(k Key) bool            { return s.Pressed[k] }
func (s *State) MouseButtonDown(b Button) bool    { return s.ButtonsDown[b] }
func (s *State) MouseButtonPressed(b Button) bool { return s.ButtonPressed[b] }
func (s *State) MouseDelta() rl.Vector2           { return s.Delta }
func (s *State) MousePosition() rl.Vector2        { return s.Mouse }
func (s *State) ScreenSize() rl.Vector2           { return s.Screen }

func (s *State) Grab() {
	s.grabbed = true
	s.Center()
}

func (s *State) Release() { s.grabbed = false }

func (s *State) Grabbed() bool { return s.grabbed }

func (s *State) Center() {
	s.Centers++
	s.Mouse = rl.Vector2{X: s.Screen.X / 2, Y: s.Screen.Y / 2}
}
