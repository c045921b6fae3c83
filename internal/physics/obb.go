package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from center, full size and euler rotation (degrees).
// Rotation order matches engine.Transform: X, then Y, then Z.
func NewOBB(center, size, rotation rl.Vector3) OBB {
	rot := rl.MatrixMultiply(
		rl.MatrixMultiply(
			rl.MatrixRotateX(rotation.X*rl.Deg2rad),
			rl.MatrixRotateY(rotation.Y*rl.Deg2rad)),
		rl.MatrixRotateZ(rotation.Z*rl.Deg2rad))

	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: absf(size.X) / 2, Y: absf(size.Y) / 2, Z: absf(size.Z) / 2},
		Axes: [3]rl.Vector3{
			rl.Vector3Normalize(rl.Vector3{X: rot.M0, Y: rot.M1, Z: rot.M2}),
			rl.Vector3Normalize(rl.Vector3{X: rot.M4, Y: rot.M5, Z: rot.M6}),
			rl.Vector3Normalize(rl.Vector3{X: rot.M8, Y: rot.M9, Z: rot.M10}),
		},
	}
}

// NewAABBasOBB creates an axis-aligned OBB (no rotation)
func NewAABBasOBB(center, size rl.Vector3) OBB {
	return NewOBB(center, size, rl.Vector3{})
}

// NewOBBFromBox applies scale to size before building the OBB.
func NewOBBFromBox(center, size, rotation, scale rl.Vector3) OBB {
	return NewOBB(center, rl.Vector3{X: size.X * scale.X, Y: size.Y * scale.Y, Z: size.Z * scale.Z}, rotation)
}

// Bounds returns the axis-aligned box enclosing o.
func (o OBB) Bounds() AABB {
	var ext rl.Vector3
	for i, h := range [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z} {
		ext.X += absf(o.Axes[i].X) * h
		ext.Y += absf(o.Axes[i].Y) * h
		ext.Z += absf(o.Axes[i].Z) * h
	}
	return AABB{Min: rl.Vector3Subtract(o.Center, ext), Max: rl.Vector3Add(o.Center, ext)}
}

// projectRadius is the half-length of o projected onto axis.
func (o OBB) projectRadius(axis rl.Vector3) float32 {
	return o.HalfSize.X*absf(rl.Vector3DotProduct(o.Axes[0], axis)) +
		o.HalfSize.Y*absf(rl.Vector3DotProduct(o.Axes[1], axis)) +
		o.HalfSize.Z*absf(rl.Vector3DotProduct(o.Axes[2], axis))
}

// satAxes returns the 15 separating axis candidates, unnormalized.
func satAxes(a, b OBB) []rl.Vector3 {
	axes := make([]rl.Vector3, 0, 15)
	axes = append(axes, a.Axes[:]...)
	axes = append(axes, b.Axes[:]...)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			axes = append(axes, rl.Vector3CrossProduct(a.Axes[i], b.Axes[j]))
		}
	}
	return axes
}

// IntersectsOBB tests if two OBBs intersect using the Separating Axis Theorem
func (a OBB) IntersectsOBB(b OBB) bool {
	t := rl.Vector3Subtract(b.Center, a.Center)
	for _, axis := range satAxes(a, b) {
		// parallel edges give a degenerate axis
		if rl.Vector3Length(axis) < 0.0001 {
			continue
		}
		axis = rl.Vector3Normalize(axis)
		if absf(rl.Vector3DotProduct(t, axis)) > a.projectRadius(axis)+b.projectRadius(axis) {
			return false
		}
	}
	return true
}

// ResolveOBB returns the minimum translation vector to push 'a' out of 'b'.
// Returns zero vector if no overlap.
func (a OBB) ResolveOBB(b OBB) rl.Vector3 {
	t := rl.Vector3Subtract(b.Center, a.Center)
	minPenetration := float32(math.MaxFloat32)
	var mtv rl.Vector3

	for _, axis := range satAxes(a, b) {
		if rl.Vector3Length(axis) < 0.0001 {
			continue
		}
		axis = rl.Vector3Normalize(axis)

		dist := rl.Vector3DotProduct(t, axis)
		penetration := a.projectRadius(axis) + b.projectRadius(axis) - absf(dist)
		if penetration <= 0 {
			return rl.Vector3Zero()
		}
		if penetration < minPenetration {
			minPenetration = penetration
			// push away from B
			if dist < 0 {
				mtv = rl.Vector3Scale(axis, penetration)
			} else {
				mtv = rl.Vector3Scale(axis, -penetration)
			}
		}
	}

	return mtv
}

// toLocal expresses a world point in o's local frame.
func (o OBB) toLocal(p rl.Vector3) rl.Vector3 {
	d := rl.Vector3Subtract(p, o.Center)
	return rl.Vector3{
		X: rl.Vector3DotProduct(d, o.Axes[0]),
		Y: rl.Vector3DotProduct(d, o.Axes[1]),
		Z: rl.Vector3DotProduct(d, o.Axes[2]),
	}
}

// toWorldDir rotates a local direction back into world space.
func (o OBB) toWorldDir(v rl.Vector3) rl.Vector3 {
	out := rl.Vector3Scale(o.Axes[0], v.X)
	out = rl.Vector3Add(out, rl.Vector3Scale(o.Axes[1], v.Y))
	return rl.Vector3Add(out, rl.Vector3Scale(o.Axes[2], v.Z))
}

// IntersectsSphere tests if an OBB intersects with a sphere
func (o OBB) IntersectsSphere(center rl.Vector3, radius float32) bool {
	closest := ClosestPointOnOBB(o, center)
	return rl.Vector3DistanceSqr(closest, center) <= radius*radius
}

// ClosestPointOnOBB returns the point of o nearest to point. Points inside
// the box are returned unchanged.
func ClosestPointOnOBB(o OBB, point rl.Vector3) rl.Vector3 {
	l := o.toLocal(point)
	clamped := rl.Vector3{
		X: clampf(l.X, -o.HalfSize.X, o.HalfSize.X),
		Y: clampf(l.Y, -o.HalfSize.Y, o.HalfSize.Y),
		Z: clampf(l.Z, -o.HalfSize.Z, o.HalfSize.Z),
	}
	return rl.Vector3Add(o.Center, o.toWorldDir(clamped))
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
