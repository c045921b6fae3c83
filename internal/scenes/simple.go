package scenes

import "demos3d/internal/engine"

func init() {
	Register("simple", BuildSimple)
}

// BuildSimple is the bare variant: floor, light, props and the player.
func BuildSimple(scene *engine.Scene, opts Options) error {
	addPointLight(scene)
	addFloor(scene)
	addClickables(scene)
	addFPSPlayer(scene, opts)
	addFPSSystems(scene, opts)
	return nil
}
