package physics

import (
	"math"

	"demos3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// Raycast returns the closest non-trigger collider hit within maxDistance.
// Objects rejected by filter are skipped; a nil filter accepts everything.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, filter engine.RaycastFilter) (RaycastHit, bool) {
	if rl.Vector3Length(direction) < 0.0001 || maxDistance <= 0 {
		return RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)

	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	for _, list := range [][]*engine.GameObject{p.Objects, p.Kinematics, p.Statics} {
		for _, obj := range list {
			if !obj.Active || (filter != nil && !filter(obj)) {
				continue
			}
			s, ok := shapeOf(obj)
			if !ok || s.trigger {
				continue
			}

			var h RaycastHit
			if s.kind == shapeSphere {
				h, ok = raycastSphere(origin, direction, s.center, s.radius, maxDistance)
			} else {
				h, ok = raycastOBB(origin, direction, s.obb, maxDistance)
			}
			if ok && h.Distance <= closestHit.Distance {
				closestHit = h
				closestHit.GameObject = obj
				hit = true
			}
		}
	}

	return closestHit, hit
}

// raycastOBB runs the slab test in the box's local frame.
func raycastOBB(origin, direction rl.Vector3, box OBB, maxDistance float32) (RaycastHit, bool) {
	o := box.toLocal(origin)
	d := rl.Vector3{
		X: rl.Vector3DotProduct(direction, box.Axes[0]),
		Y: rl.Vector3DotProduct(direction, box.Axes[1]),
		Z: rl.Vector3DotProduct(direction, box.Axes[2]),
	}
	oa := [3]float32{o.X, o.Y, o.Z}
	da := [3]float32{d.X, d.Y, d.Z}
	ha := [3]float32{box.HalfSize.X, box.HalfSize.Y, box.HalfSize.Z}

	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)
	enterAxis, enterSign := -1, float32(0)
	exitAxis, exitSign := -1, float32(0)

	for i := 0; i < 3; i++ {
		if absf(da[i]) < 1e-8 {
			if oa[i] < -ha[i] || oa[i] > ha[i] {
				return RaycastHit{}, false
			}
			continue
		}
		t1 := (-ha[i] - oa[i]) / da[i]
		t2 := (ha[i] - oa[i]) / da[i]
		sign := float32(-1) // entering through the min face
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin, enterAxis, enterSign = t1, i, sign
		}
		if t2 < tmax {
			tmax, exitAxis, exitSign = t2, i, -sign
		}
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	t, axis, sign := tmin, enterAxis, enterSign
	if t < 0 {
		// origin inside the box
		t, axis, sign = tmax, exitAxis, exitSign
	}
	if t < 0 || t > maxDistance || axis < 0 {
		return RaycastHit{}, false
	}

	var local rl.Vector3
	switch axis {
	case 0:
		local.X = sign
	case 1:
		local.Y = sign
	default:
		local.Z = sign
	}

	return RaycastHit{
		Point:    rl.Vector3Add(origin, rl.Vector3Scale(direction, t)),
		Normal:   box.toWorldDir(local),
		Distance: t,
	}, true
}

func raycastSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (RaycastHit, bool) {
	oc := rl.Vector3Subtract(origin, center)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	// direction is unit length, so a == 1
	discriminant := b*b - 4*c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	sq := float32(math.Sqrt(float64(discriminant)))
	t := (-b - sq) / 2
	if t < 0 {
		t = (-b + sq) / 2
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
