package physics

import (
	"demos3d/internal/components"
	"demos3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type shapeKind int

const (
	shapeBox shapeKind = iota
	shapeSphere
)

// shape is a collider snapshot in world space for one step.
type shape struct {
	kind    shapeKind
	obb     OBB // boxes and cylinders
	center  rl.Vector3
	radius  float32 // spheres
	trigger bool
}

// shapeOf reads g's collider. Cylinders become their bounding prism and keep
// no rotation, matching the upright character bodies that use them.
func shapeOf(g *engine.GameObject) (shape, bool) {
	switch c := components.GetCollider(g).(type) {
	case *components.BoxCollider:
		center := c.GetCenter()
		return shape{
			kind:    shapeBox,
			obb:     NewOBBFromBox(center, c.Size, g.WorldRotation(), g.WorldScale()),
			center:  center,
			trigger: c.IsTrigger,
		}, true
	case *components.CylinderCollider:
		center := c.GetCenter()
		return shape{
			kind:    shapeBox,
			obb:     NewAABBasOBB(center, c.BoxSize()),
			center:  center,
			trigger: c.IsTrigger,
		}, true
	case *components.SphereCollider:
		center := c.GetCenter()
		return shape{
			kind:    shapeSphere,
			center:  center,
			radius:  c.Radius * maxComponent(g.WorldScale()),
			trigger: c.IsTrigger,
		}, true
	}
	return shape{}, false
}

// bounds is the shape's world AABB, used for cheap rejection.
func (s shape) bounds() AABB {
	if s.kind == shapeSphere {
		d := s.radius * 2
		return NewAABBFromCenter(s.center, rl.Vector3{X: d, Y: d, Z: d})
	}
	return s.obb.Bounds()
}

// contact returns the minimum translation vector pushing a out of b.
func contact(a, b shape) (rl.Vector3, bool) {
	if !a.bounds().Intersects(b.bounds()) {
		return rl.Vector3{}, false
	}

	switch {
	case a.kind == shapeBox && b.kind == shapeBox:
		mtv := a.obb.ResolveOBB(b.obb)
		return mtv, !isZero(mtv)
	case a.kind == shapeSphere && b.kind == shapeSphere:
		return sphereSphere(a.center, a.radius, b.center, b.radius)
	case a.kind == shapeSphere:
		return sphereBox(a.center, a.radius, b.obb)
	default:
		mtv, ok := sphereBox(b.center, b.radius, a.obb)
		return rl.Vector3Negate(mtv), ok
	}
}

func sphereSphere(ca rl.Vector3, ra float32, cb rl.Vector3, rb float32) (rl.Vector3, bool) {
	diff := rl.Vector3Subtract(ca, cb)
	dist := rl.Vector3Length(diff)
	minDist := ra + rb
	if dist >= minDist {
		return rl.Vector3{}, false
	}
	if dist < 0.0001 {
		return rl.Vector3{Y: minDist}, true
	}
	return rl.Vector3Scale(diff, (minDist-dist)/dist), true
}

// sphereBox pushes a sphere out of a box.
func sphereBox(center rl.Vector3, radius float32, box OBB) (rl.Vector3, bool) {
	closest := ClosestPointOnOBB(box, center)
	diff := rl.Vector3Subtract(center, closest)
	dist := rl.Vector3Length(diff)
	if dist > radius {
		return rl.Vector3{}, false
	}
	if dist > 0.0001 {
		return rl.Vector3Scale(diff, (radius-dist)/dist), true
	}
	// Center is inside the box: fall back to box vs box on the sphere's cube.
	d := radius * 2
	mtv := NewAABBasOBB(center, rl.Vector3{X: d, Y: d, Z: d}).ResolveOBB(box)
	return mtv, !isZero(mtv)
}

func isZero(v rl.Vector3) bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func maxComponent(v rl.Vector3) float32 {
	m := absf(v.X)
	if absf(v.Y) > m {
		m = absf(v.Y)
	}
	if absf(v.Z) > m {
		m = absf(v.Z)
	}
	return m
}
