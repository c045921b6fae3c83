package physics

import (
	"demos3d/internal/components"
	"demos3d/internal/engine"
)

func (p *PhysicsWorld) recordCollision(a, b *engine.GameObject) {
	key, pair := makePair(a, b)
	p.currentCollisions[key] = pair
}

// dispatchCollisions compares this step's contacts with the last step's and
// fires enter/exit for the difference.
func (p *PhysicsWorld) dispatchCollisions() {
	for key, pair := range p.currentCollisions {
		if _, ok := p.activeCollisions[key]; !ok {
			p.notify(pair, true)
		}
	}
	for key, pair := range p.activeCollisions {
		if _, ok := p.currentCollisions[key]; ok {
			continue
		}
		// Sleeping bodies skip contact tests but still rest on what they touched.
		if resting(pair.A) || resting(pair.B) {
			p.currentCollisions[key] = pair
			continue
		}
		p.notify(pair, false)
	}
	p.activeCollisions, p.currentCollisions = p.currentCollisions, p.activeCollisions
}

func resting(g *engine.GameObject) bool {
	rb := engine.GetComponent[*components.Rigidbody](g)
	return rb != nil && rb.IsSleeping
}

func (p *PhysicsWorld) notify(pair CollisionPair, started bool) {
	callHandlers(pair.A, pair.B, started)
	callHandlers(pair.B, pair.A, started)

	if wantsEvents(pair.A) || wantsEvents(pair.B) {
		p.Collisions.Invoke(CollisionEvent{A: pair.A, B: pair.B, Started: started})
	}
}

func callHandlers(g, other *engine.GameObject, started bool) {
	for _, c := range g.Components() {
		h, ok := c.(engine.CollisionHandler)
		if !ok {
			continue
		}
		if started {
			h.OnCollisionEnter(other)
		} else {
			h.OnCollisionExit(other)
		}
	}
}

func wantsEvents(g *engine.GameObject) bool {
	rb := engine.GetComponent[*components.Rigidbody](g)
	return rb != nil && rb.ActiveEvents
}
