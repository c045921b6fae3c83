package engine

import (
	"errors"
	"fmt"

	"github.com/kamstrup/intmap"
)

// ErrNotSingle is returned by single-object lookups that matched zero or
// several objects.
var ErrNotSingle = errors.New("expected exactly one game object")

type Scene struct {
	Name        string
	GameObjects []*GameObject
	World       WorldAccess
	uidMap      *intmap.Map[uint64, *GameObject]
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      intmap.New[uint64, *GameObject](64),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = intmap.New[uint64, *GameObject](64)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap.Put(g.UID, g)
}

// RemoveGameObject removes g and, recursively, every child of g.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	if s.uidMap != nil {
		s.uidMap.Del(g.UID)
	}
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	if s.uidMap == nil {
		return nil
	}
	if g, ok := s.uidMap.Get(uid); ok {
		return g
	}
	return nil
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

// FindSingleByTag returns the only object carrying tag.
func (s *Scene) FindSingleByTag(tag string) (*GameObject, error) {
	matches := s.FindByTag(tag)
	if len(matches) != 1 {
		return nil, fmt.Errorf("tag %q matched %d objects: %w", tag, len(matches), ErrNotSingle)
	}
	return matches[0], nil
}

// FindComponents returns every component of type T in the scene, in scene order.
func FindComponents[T Component](s *Scene) []T {
	var result []T
	for _, g := range s.GameObjects {
		for _, c := range g.components {
			if typed, ok := c.(T); ok {
				result = append(result, typed)
			}
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

// Update runs every object's components. Objects spawned during the pass are
// started but only updated from the next frame on.
func (s *Scene) Update(deltaTime float32) {
	objects := s.GameObjects
	n := len(objects)
	for i := 0; i < n; i++ {
		objects[i].Update(deltaTime)
	}
}
