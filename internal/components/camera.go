package components

import (
	"demos3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Camera struct {
	engine.BaseComponent
	FOV        float32 // vertical degrees, or view height in units when orthographic
	Near       float32
	Far        float32
	Projection rl.CameraProjection
	IsMain     bool // If true, this is the active game camera
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        45.0,
		Near:       0.1,
		Far:        1000.0,
		Projection: rl.CameraPerspective,
		IsMain:     true,
	}
}

// CameraConfig tunes how a render camera follows its logical player.
type CameraConfig struct {
	engine.BaseComponent
	// HeightOffset is the eye height above the player's feet.
	HeightOffset float32
}

func NewCameraConfig(heightOffset float32) *CameraConfig {
	return &CameraConfig{HeightOffset: heightOffset}
}

// RenderPlayer marks a render camera that views through a logical player.
type RenderPlayer struct {
	engine.BaseComponent
	Logical engine.GameObjectRef
}

func NewRenderPlayer(logical *engine.GameObject) *RenderPlayer {
	return &RenderPlayer{Logical: engine.RefTo(logical)}
}

// EyePosition is the logical player's feet plus the configured height offset.
func (r *RenderPlayer) EyePosition(logical *engine.GameObject) rl.Vector3 {
	feet := logical.WorldPosition()
	if cyl := engine.GetComponent[*CylinderCollider](logical); cyl != nil {
		feet = rl.Vector3Subtract(cyl.GetCenter(), rl.Vector3{Y: cyl.HalfHeight})
	}
	var offset float32
	if cfg := engine.GetComponent[*CameraConfig](r.GetGameObject()); cfg != nil {
		offset = cfg.HeightOffset
	}
	feet.Y += offset
	return feet
}

// Update moves the camera object onto the eye so scene queries see it there.
func (c *Camera) Update(deltaTime float32) {
	g := c.GetGameObject()
	if g == nil || g.Parent != nil {
		return
	}
	if rp := engine.GetComponent[*RenderPlayer](g); rp != nil && g.Scene != nil {
		if logical := rp.Logical.Get(g.Scene); logical != nil {
			g.Transform.Position = rp.EyePosition(logical)
		}
	}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()
	var lookProvider engine.LookProvider

	// A render camera views through its logical player
	if rp := engine.GetComponent[*RenderPlayer](g); rp != nil && g.Scene != nil {
		if logical := rp.Logical.Get(g.Scene); logical != nil {
			eyePos = rp.EyePosition(logical)
			lookProvider = engine.FindComponent[engine.LookProvider](logical)
		}
	}

	// Otherwise look for a LookProvider on this object or parents
	if lookProvider == nil {
		for obj := g; obj != nil; obj = obj.Parent {
			if lp := engine.FindComponent[engine.LookProvider](obj); lp != nil {
				lookProvider = lp
				// Camera is on same object as controller - add eye height
				if obj == g {
					eyePos.Y += lp.GetEyeHeight()
				}
				break
			}
		}
	}

	var forward rl.Vector3
	if lookProvider != nil {
		x, y, z := lookProvider.GetLookDirection()
		forward = rl.Vector3{X: x, Y: y, Z: z}
	} else {
		// Default: -Z rotated by the object's yaw
		yaw := g.WorldRotation().Y * rl.Deg2rad
		forward = rl.Vector3{X: -sinf(yaw), Z: -cosf(yaw)}
	}

	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, forward),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
