package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	projectionNear = 0.1
	projectionFar  = 1000.0
)

// Ray is a half-line with a unit direction.
type Ray struct {
	Origin    rl.Vector3
	Direction rl.Vector3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) rl.Vector3 {
	return rl.Vector3Add(r.Origin, rl.Vector3Scale(r.Direction, t))
}

// IntersectPlaneY intersects the ray with the horizontal plane y = h.
// ok is false when the ray runs parallel to the plane or the plane is behind
// the ray origin.
func (r Ray) IntersectPlaneY(h float32) (point rl.Vector3, ok bool) {
	if math.Abs(float64(r.Direction.Y)) < 1e-6 {
		return rl.Vector3{}, false
	}
	t := (h - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return rl.Vector3{}, false
	}
	p := r.At(t)
	p.Y = h
	return p, true
}

// ScreenRay builds the world-space ray through a screen pixel. screen has its
// origin at the top-left corner, as raylib reports mouse positions. ok is
// false for a degenerate camera or viewport.
func ScreenRay(cam rl.Camera3D, screen, size rl.Vector2) (Ray, bool) {
	if size.X <= 0 || size.Y <= 0 {
		return Ray{}, false
	}
	view, proj, ok := matrices(cam, size.X/size.Y)
	if !ok {
		return Ray{}, false
	}

	w, h := int(size.X), int(size.Y)
	winY := size.Y - screen.Y
	near, err := mgl32.UnProject(mgl32.Vec3{screen.X, winY, 0}, view, proj, 0, 0, w, h)
	if err != nil {
		return Ray{}, false
	}
	far, err := mgl32.UnProject(mgl32.Vec3{screen.X, winY, 1}, view, proj, 0, 0, w, h)
	if err != nil {
		return Ray{}, false
	}

	dir := far.Sub(near)
	if dir.Len() < 1e-6 {
		return Ray{}, false
	}
	dir = dir.Normalize()

	origin := near
	if cam.Projection == rl.CameraPerspective {
		origin = toVec(cam.Position)
	}
	return Ray{Origin: fromVec(origin), Direction: fromVec(dir)}, true
}

// WorldToScreen projects a world point to top-left-origin pixel coordinates.
func WorldToScreen(cam rl.Camera3D, p rl.Vector3, size rl.Vector2) (rl.Vector2, bool) {
	if size.X <= 0 || size.Y <= 0 {
		return rl.Vector2{}, false
	}
	view, proj, ok := matrices(cam, size.X/size.Y)
	if !ok {
		return rl.Vector2{}, false
	}
	win := mgl32.Project(toVec(p), view, proj, 0, 0, int(size.X), int(size.Y))
	return rl.Vector2{X: win.X(), Y: size.Y - win.Y()}, true
}

func matrices(cam rl.Camera3D, aspect float32) (view, proj mgl32.Mat4, ok bool) {
	eye, target, up := toVec(cam.Position), toVec(cam.Target), toVec(cam.Up)
	forward := target.Sub(eye)
	if forward.Len() < 1e-6 || forward.Cross(up).Len() < 1e-6 {
		return view, proj, false
	}
	view = mgl32.LookAtV(eye, target, up)

	switch cam.Projection {
	case rl.CameraOrthographic:
		top := cam.Fovy / 2
		right := top * aspect
		proj = mgl32.Ortho(-right, right, -top, top, projectionNear, projectionFar)
	default:
		proj = mgl32.Perspective(mgl32.DegToRad(cam.Fovy), aspect, projectionNear, projectionFar)
	}
	return view, proj, true
}

func toVec(v rl.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func fromVec(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}
