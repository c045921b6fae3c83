package systems

import (
	"demos3d/internal/camera"
	"demos3d/internal/components"
	"demos3d/internal/engine"
	"demos3d/internal/input"
	"demos3d/internal/logging"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ClickEvent is a left click that landed on an object.
type ClickEvent struct {
	Target *engine.GameObject
	Hit    engine.RaycastResult
}

// Picker casts a ray through the pointer on left click and publishes the
// closest pickable hit. While the cursor is grabbed the ray goes through the
// screen centre, where the reticle sits.
type Picker struct {
	engine.BaseComponent
	MaxDistance float32
	Clicked     engine.EventWithArg[ClickEvent]
}

func NewPicker() *Picker {
	return &Picker{MaxDistance: 1000}
}

func (p *Picker) Update(deltaTime float32) {
	w := p.World()
	if w == nil || w.Input() == nil {
		return
	}
	in := w.Input()
	if !in.MouseButtonPressed(input.MouseLeft) {
		return
	}

	if hit, ok := p.Pick(pointer(w)); ok {
		logging.Logger.Debug().Str("target", hit.GameObject.Name).Float32("distance", hit.Distance).Msg("picked")
		p.Clicked.Invoke(ClickEvent{Target: hit.GameObject, Hit: hit})
	}
}

// Pick raycasts through a screen position.
func (p *Picker) Pick(screen rl.Vector2) (engine.RaycastResult, bool) {
	w := p.World()
	if w == nil || w.Input() == nil {
		return engine.RaycastResult{}, false
	}
	cam, ok := w.ActiveCamera()
	if !ok {
		return engine.RaycastResult{}, false
	}
	ray, ok := camera.ScreenRay(cam, screen, w.Input().ScreenSize())
	if !ok {
		return engine.RaycastResult{}, false
	}
	return w.Raycast(ray.Origin, ray.Direction, p.MaxDistance, components.IsPickable)
}

// pointer is the mouse position, or the screen centre while grabbed.
func pointer(w engine.WorldAccess) rl.Vector2 {
	in := w.Input()
	if c := w.Cursor(); c != nil && c.Grabbed() {
		size := in.ScreenSize()
		return rl.Vector2{X: size.X / 2, Y: size.Y / 2}
	}
	return in.MousePosition()
}
