package components

import (
	"demos3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Bullet flies in a straight line until its lifetime runs out or it hits
// something solid.
type Bullet struct {
	engine.BaseComponent
	Lifetime  float32 // seconds left
	Speed     float32
	Direction rl.Vector3 // unit
	// Knockback is the impulse given to dynamic bodies on impact.
	Knockback float32
	Spent     bool
}

func NewBullet(direction rl.Vector3) *Bullet {
	return &Bullet{
		Lifetime:  1.5,
		Speed:     25,
		Direction: rl.Vector3Normalize(direction),
		Knockback: 4,
	}
}

// Step counts down the lifetime and moves the bullet. It reports false once
// the bullet has expired.
func (b *Bullet) Step(dt float32) bool {
	b.Lifetime -= dt
	if b.Lifetime <= 0 {
		return false
	}
	if g := b.GetGameObject(); g != nil {
		g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(b.Direction, b.Speed*dt))
	}
	return true
}

func (b *Bullet) OnCollisionEnter(other *engine.GameObject) {
	if b.Spent || other.HasTag(engine.TagPlayer) || other.HasTag(engine.TagBullet) {
		return
	}
	if rb := engine.GetComponent[*Rigidbody](other); rb != nil && !rb.IsKinematic {
		rb.AddImpulse(rl.Vector3Scale(b.Direction, b.Knockback))
	}
	b.Spent = true
	if w := b.World(); w != nil {
		w.Destroy(b.GetGameObject())
	}
}

func (b *Bullet) OnCollisionExit(other *engine.GameObject) {}
