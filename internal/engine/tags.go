package engine

// Marker tags used by the demo scenes.
const (
	TagPlayer    = "Player"
	TagClickable = "Clickable"
	TagReticle   = "Reticle"
	TagBullet    = "Bullet"
	TagCamera    = "MainCamera"
	TagFloor     = "Floor"
)
