package physics

import (
	"math"

	"demos3d/internal/components"
	"demos3d/internal/engine"
	"demos3d/internal/logging"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Spatial grid cell size - objects within same or neighboring cells are checked
const CellSize = 5.0

// Cell key for spatial hashing
type CellKey struct {
	X, Y, Z int
}

func posToCell(pos rl.Vector3) CellKey {
	return CellKey{
		X: int(math.Floor(float64(pos.X / CellSize))),
		Y: int(math.Floor(float64(pos.Y / CellSize))),
		Z: int(math.Floor(float64(pos.Z / CellSize))),
	}
}

// CollisionPair represents two objects that are colliding
type CollisionPair struct {
	A, B *engine.GameObject
}

type pairKey struct {
	lo, hi uint64
}

// makePair orders the pair by UID so A/B and B/A share a key.
func makePair(a, b *engine.GameObject) (pairKey, CollisionPair) {
	if a.UID > b.UID {
		a, b = b, a
	}
	return pairKey{lo: a.UID, hi: b.UID}, CollisionPair{A: a, B: b}
}

// CollisionEvent reports that two colliders started or stopped touching.
type CollisionEvent struct {
	A, B    *engine.GameObject
	Started bool
}

// Other returns the participant that is not g.
func (e CollisionEvent) Other(g *engine.GameObject) *engine.GameObject {
	if e.A == g {
		return e.B
	}
	return e.A
}

type PhysicsWorld struct {
	Gravity    rl.Vector3
	Objects    []*engine.GameObject // dynamic rigidbodies
	Kinematics []*engine.GameObject // kinematic rigidbodies (players, bullets)
	Statics    []*engine.GameObject // colliders without rigidbody (floor, course)

	// Collisions publishes contact changes involving a body with ActiveEvents.
	Collisions engine.EventWithArg[CollisionEvent]

	grid map[CellKey][]*engine.GameObject

	// Collision tracking for callbacks
	activeCollisions  map[pairKey]CollisionPair // collisions from last step
	currentCollisions map[pairKey]CollisionPair // collisions this step
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		Gravity:           rl.Vector3{X: 0, Y: -9.81, Z: 0},
		Objects:           make([]*engine.GameObject, 0),
		Kinematics:        make([]*engine.GameObject, 0),
		Statics:           make([]*engine.GameObject, 0),
		grid:              make(map[CellKey][]*engine.GameObject),
		activeCollisions:  make(map[pairKey]CollisionPair),
		currentCollisions: make(map[pairKey]CollisionPair),
	}
}

// AddObject registers g by body type. Objects with neither a rigidbody nor
// a collider are ignored.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](g)
	kind := "static"
	switch {
	case rb == nil:
		if components.GetCollider(g) == nil {
			return
		}
		p.Statics = append(p.Statics, g)
	case rb.IsKinematic:
		kind = "kinematic"
		p.Kinematics = append(p.Kinematics, g)
	default:
		kind = "dynamic"
		p.Objects = append(p.Objects, g)
	}
	logging.Logger.Trace().Str("object", g.Name).Uint64("uid", g.UID).Str("body", kind).Msg("physics body added")
}

// RemoveObject unregisters g and ends any contact it was part of.
func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	p.Objects = removeFrom(p.Objects, g)
	p.Kinematics = removeFrom(p.Kinematics, g)
	p.Statics = removeFrom(p.Statics, g)

	for key, pair := range p.activeCollisions {
		if pair.A == g || pair.B == g {
			delete(p.activeCollisions, key)
			p.notify(pair, false)
		}
	}
	for key, pair := range p.currentCollisions {
		if pair.A == g || pair.B == g {
			delete(p.currentCollisions, key)
		}
	}
}

func removeFrom(list []*engine.GameObject, g *engine.GameObject) []*engine.GameObject {
	for i, obj := range list {
		if obj == g {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Contains reports whether g is registered.
func (p *PhysicsWorld) Contains(g *engine.GameObject) bool {
	for _, list := range [][]*engine.GameObject{p.Objects, p.Kinematics, p.Statics} {
		for _, obj := range list {
			if obj == g {
				return true
			}
		}
	}
	return false
}

// Touching reports whether a and b were in contact at the end of the last step.
func (p *PhysicsWorld) Touching(a, b *engine.GameObject) bool {
	key, _ := makePair(a, b)
	_, ok := p.activeCollisions[key]
	return ok
}

// rebuildGrid clears and repopulates the spatial hash grid
func (p *PhysicsWorld) rebuildGrid() {
	clear(p.grid)
	for _, obj := range p.Objects {
		cell := posToCell(obj.Transform.Position)
		p.grid[cell] = append(p.grid[cell], obj)
	}
}

// getNeighborObjects returns all objects in same cell and 26 neighboring cells
func (p *PhysicsWorld) getNeighborObjects(obj *engine.GameObject) []*engine.GameObject {
	cell := posToCell(obj.Transform.Position)
	var neighbors []*engine.GameObject

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				key := CellKey{cell.X + dx, cell.Y + dy, cell.Z + dz}
				neighbors = append(neighbors, p.grid[key]...)
			}
		}
	}
	return neighbors
}

// Update advances the simulation by deltaTime and dispatches contact changes.
func (p *PhysicsWorld) Update(deltaTime float32) {
	if deltaTime <= 0 {
		return
	}
	clear(p.currentCollisions)

	for _, obj := range p.Objects {
		p.integrate(obj, deltaTime)
	}

	// Dynamic vs dynamic through the grid
	p.rebuildGrid()
	for _, a := range p.Objects {
		for _, b := range p.getNeighborObjects(a) {
			if a.UID < b.UID {
				p.resolveDynamic(a, b)
			}
		}
	}

	for _, obj := range p.Objects {
		for _, static := range p.Statics {
			p.resolveStatic(obj, static)
		}
	}

	for _, k := range p.Kinematics {
		if !k.Active {
			continue
		}
		if pc := engine.FindComponent[engine.PlayerController](k); pc != nil {
			pc.SetGrounded(false)
		}
		for _, static := range p.Statics {
			p.resolveKinematicStatic(k, static)
		}
		for _, obj := range p.Objects {
			p.resolveKinematicDynamic(k, obj)
		}
	}

	p.dispatchCollisions()
}

func (p *PhysicsWorld) integrate(obj *engine.GameObject, dt float32) {
	rb := engine.GetComponent[*components.Rigidbody](obj)
	if rb == nil || !obj.Active || rb.IsSleeping {
		return
	}

	if rb.UseGravity {
		rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(p.Gravity, rb.GravityScale*dt))
	}
	obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, rl.Vector3Scale(rb.Velocity, dt))

	if rb.LockRotation {
		rb.AngularVelocity = rl.Vector3{}
	} else {
		obj.Transform.Rotation = rl.Vector3Add(obj.Transform.Rotation, rl.Vector3Scale(rb.AngularVelocity, dt))
		rb.AngularVelocity = rl.Vector3Scale(rb.AngularVelocity, rb.AngularDamping)
	}

	rb.TrySleep(dt)
}
