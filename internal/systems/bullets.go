package systems

import (
	"demos3d/internal/components"
	"demos3d/internal/engine"
)

// BulletSystem advances every bullet and destroys the expired ones.
type BulletSystem struct {
	engine.BaseComponent
}

func NewBulletSystem() *BulletSystem {
	return &BulletSystem{}
}

func (s *BulletSystem) Update(deltaTime float32) {
	g := s.GetGameObject()
	w := s.World()
	if g == nil || g.Scene == nil || w == nil {
		return
	}
	for _, b := range engine.FindComponents[*components.Bullet](g.Scene) {
		if b.Spent {
			continue
		}
		if !b.Step(deltaTime) {
			b.Spent = true
			w.Destroy(b.GetGameObject())
		}
	}
}
