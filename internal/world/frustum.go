package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	cullNear = 0.1
	cullFar  = 1000.0
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum extracts frustum planes from the camera's view-projection
// matrix (Gribb/Hartmann).
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, cullNear, cullFar)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, cullNear, cullFar)
	}

	vp := rl.MatrixMultiply(view, proj)

	// Rows of the combined matrix
	r1 := [4]float32{vp.M0, vp.M4, vp.M8, vp.M12}
	r2 := [4]float32{vp.M1, vp.M5, vp.M9, vp.M13}
	r3 := [4]float32{vp.M2, vp.M6, vp.M10, vp.M14}
	r4 := [4]float32{vp.M3, vp.M7, vp.M11, vp.M15}

	var f Frustum
	f.planes[0] = planeFrom(r4, r1, 1)
	f.planes[1] = planeFrom(r4, r1, -1)
	f.planes[2] = planeFrom(r4, r2, 1)
	f.planes[3] = planeFrom(r4, r2, -1)
	f.planes[4] = planeFrom(r4, r3, 1)
	f.planes[5] = planeFrom(r4, r3, -1)
	return f
}

// planeFrom builds the normalized plane row4 + sign*row.
func planeFrom(r4, row [4]float32, sign float32) Plane {
	p := Plane{
		normal: rl.Vector3{
			X: r4[0] + sign*row[0],
			Y: r4[1] + sign*row[1],
			Z: r4[2] + sign*row[2],
		},
		distance: r4[3] + sign*row[3],
	}
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsSphere tests if a sphere is inside or intersects the frustum
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := range f.planes {
		dist := rl.Vector3DotProduct(f.planes[i].normal, center) + f.planes[i].distance
		if dist < -radius {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum
func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	return f.ContainsSphere(point, 0)
}
