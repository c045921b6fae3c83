package systems

import (
	"demos3d/internal/components"
	"demos3d/internal/engine"
	"demos3d/internal/logging"
)

// CameraHeightSync copies the logical player's controller height into the
// render camera's CameraConfig. It only acts when there is exactly one
// logical player and exactly one render camera.
type CameraHeightSync struct {
	engine.BaseComponent
}

func NewCameraHeightSync() *CameraHeightSync {
	return &CameraHeightSync{}
}

func (c *CameraHeightSync) Update(deltaTime float32) {
	g := c.GetGameObject()
	if g == nil || g.Scene == nil {
		return
	}

	player, err := g.Scene.FindSingleByTag(engine.TagPlayer)
	if err != nil {
		logging.FrameSample.Trace().Err(err).Msg("camera height sync skipped")
		return
	}
	ctrl := engine.GetComponent[*components.FPSController](player)
	if ctrl == nil {
		return
	}

	var configs []*components.CameraConfig
	for _, cfg := range engine.FindComponents[*components.CameraConfig](g.Scene) {
		if engine.GetComponent[*components.RenderPlayer](cfg.GetGameObject()) != nil {
			configs = append(configs, cfg)
		}
	}
	if len(configs) != 1 {
		return
	}

	configs[0].HeightOffset = ctrl.Height
}
