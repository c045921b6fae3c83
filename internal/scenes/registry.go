// Package scenes builds the demo scenes by name.
package scenes

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"demos3d/internal/engine"
)

// ErrUnknownScene is returned by Lookup for names nobody registered.
var ErrUnknownScene = errors.New("unknown scene")

// Options carries the runtime settings a builder may apply.
type Options struct {
	// MouseSensitivity scales FPS mouse look, in degrees per pixel.
	MouseSensitivity float32
	// Seed makes click colours reproducible; zero picks a random seed.
	Seed uint64
}

// Builder fills an empty scene.
type Builder func(scene *engine.Scene, opts Options) error

var registry = map[string]Builder{}

// Register makes a builder available under name, replacing any earlier one.
func Register(name string, b Builder) {
	registry[name] = b
}

func Lookup(name string) (Builder, error) {
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownScene, name, Names())
	}
	return b, nil
}

// Names lists the registered scenes in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Build creates a fresh scene and runs the named builder on it.
func Build(name string, opts Options) (*engine.Scene, error) {
	b, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	scene := engine.NewScene(name)
	if err := b(scene, opts); err != nil {
		return nil, fmt.Errorf("build scene %q: %w", name, err)
	}
	return scene, nil
}
