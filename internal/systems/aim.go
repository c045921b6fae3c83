package systems

import (
	"fmt"

	"demos3d/internal/camera"
	"demos3d/internal/components"
	"demos3d/internal/engine"
	"demos3d/internal/input"
	"demos3d/internal/logging"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Aimer projects the mouse onto the ground plane and turns the player to
// face the point under it. Direction is the flattened player-to-point
// vector; Valid is false on frames where no aim could be computed.
type Aimer struct {
	engine.BaseComponent
	GroundY   float32
	Point     rl.Vector3
	Direction rl.Vector3
	Valid     bool
}

func NewAimer() *Aimer {
	return &Aimer{}
}

func (a *Aimer) Update(deltaTime float32) {
	a.Valid = false
	g := a.GetGameObject()
	w := a.World()
	if g == nil || g.Scene == nil || w == nil || w.Input() == nil {
		return
	}
	player, err := g.Scene.FindSingleByTag(engine.TagPlayer)
	if err != nil {
		return
	}
	cam, ok := w.ActiveCamera()
	if !ok {
		return
	}

	in := w.Input()
	ray, ok := camera.ScreenRay(cam, in.MousePosition(), in.ScreenSize())
	if !ok {
		return
	}
	point, ok := ray.IntersectPlaneY(a.GroundY)
	if !ok {
		return
	}
	dir := camera.Flatten(rl.Vector3Subtract(point, player.WorldPosition()))
	if dir == (rl.Vector3{}) {
		return
	}

	a.Point, a.Direction, a.Valid = point, dir, true
	if ctrl := engine.GetComponent[*components.TopDownController](player); ctrl != nil {
		ctrl.FaceTowards(dir)
	}
}

// Gun fires bullets along the Aimer's direction while the left button is
// held, at most once per Cooldown.
type Gun struct {
	engine.BaseComponent
	Cooldown     float64
	MuzzleOffset float32
	BulletRadius float32
	Shots        int

	aimer    *Aimer
	lastShot float64
	fired    bool
}

func NewGun() *Gun {
	return &Gun{
		Cooldown:     0.15,
		MuzzleOffset: 0.8,
		BulletRadius: 0.15,
	}
}

func (s *Gun) Start() {
	s.aimer = engine.GetComponent[*Aimer](s.GetGameObject())
}

func (s *Gun) Update(deltaTime float32) {
	w := s.World()
	if w == nil || w.Input() == nil || w.Clock() == nil || s.aimer == nil {
		return
	}
	now := w.Clock().Now()
	if !w.Input().MouseButtonDown(input.MouseLeft) || (s.fired && now-s.lastShot < s.Cooldown) {
		return
	}
	if s.Shoot() {
		s.fired = true
		s.lastShot = now
	}
}

// Shoot spawns one bullet in front of the player. It reports false when
// there is no player or no valid aim.
func (s *Gun) Shoot() bool {
	g := s.GetGameObject()
	w := s.World()
	if g == nil || g.Scene == nil || w == nil || s.aimer == nil || !s.aimer.Valid {
		return false
	}
	player, err := g.Scene.FindSingleByTag(engine.TagPlayer)
	if err != nil {
		return false
	}

	s.Shots++
	origin := rl.Vector3Add(player.WorldPosition(), rl.Vector3Scale(s.aimer.Direction, s.MuzzleOffset))
	bullet := NewBulletObject(fmt.Sprintf("Bullet_%d", s.Shots), origin, s.aimer.Direction, s.BulletRadius)
	bullet.Start()
	w.SpawnObject(bullet)

	logging.FrameSample.Debug().Int("shot", s.Shots).Msg("fire")
	return true
}

// NewBulletObject builds a trigger sphere that reports its contacts.
func NewBulletObject(name string, pos, dir rl.Vector3, radius float32) *engine.GameObject {
	obj := engine.NewGameObject(name)
	obj.AddTag(engine.TagBullet)
	obj.Transform.Position = pos

	d := 2 * radius
	obj.AddComponent(components.NewMeshRenderer(components.MeshSphere, rl.Orange, rl.Vector3{X: d, Y: d, Z: d}))

	col := components.NewSphereCollider(radius)
	col.IsTrigger = true
	obj.AddComponent(col)

	rb := components.NewKinematicBody()
	rb.ActiveEvents = true
	obj.AddComponent(rb)

	obj.AddComponent(components.NewBullet(dir))
	obj.AddComponent(components.NewPickable(true))
	return obj
}
