package physics

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var unit = rl.Vector3{X: 1, Y: 1, Z: 1}

func TestOBBAxisAlignedMatchesAABB(t *testing.T) {
	a := NewAABBasOBB(rl.Vector3{X: 0.8}, unit)
	b := NewAABBasOBB(rl.Vector3{}, unit)

	require.True(t, a.IntersectsOBB(b))
	push := a.ResolveOBB(b)
	assert.InDelta(t, 0.2, push.X, 1e-5)
	assert.InDelta(t, 0, push.Y, 1e-5)
	assert.InDelta(t, 0, push.Z, 1e-5)
}

func TestOBBRotatedCornerReachesFurther(t *testing.T) {
	// A cube spun 45 degrees around Y reaches sqrt(0.5) along X.
	rotated := NewOBB(rl.Vector3{}, unit, rl.Vector3{Y: 45})
	probe := NewAABBasOBB(rl.Vector3{X: 1.15}, unit)
	aligned := NewAABBasOBB(rl.Vector3{}, unit)

	assert.True(t, probe.IntersectsOBB(rotated))
	assert.False(t, probe.IntersectsOBB(aligned))
}

func TestOBBResolveSeparated(t *testing.T) {
	a := NewAABBasOBB(rl.Vector3{Y: 3}, unit)
	b := NewOBB(rl.Vector3{}, unit, rl.Vector3{Z: 30})

	assert.False(t, a.IntersectsOBB(b))
	assert.Equal(t, rl.Vector3{}, a.ResolveOBB(b))
}

func TestOBBRampPushesAlongSurfaceNormal(t *testing.T) {
	angle := float32(-math.Atan2(2, 5) * 180 / math.Pi)
	ramp := NewOBB(rl.Vector3{}, rl.Vector3{X: 5, Y: 0.2, Z: 2}, rl.Vector3{Z: angle})
	body := NewAABBasOBB(rl.Vector3{Y: 0.5}, rl.Vector3{X: 0.5, Y: 1, Z: 0.5})

	push := body.ResolveOBB(ramp)

	assert.Greater(t, push.Y, float32(0))
	assert.NotZero(t, push.X)
}

func TestOBBBounds(t *testing.T) {
	b := NewOBB(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}, rl.Vector3{Y: 45})
	bounds := b.Bounds()

	assert.InDelta(t, math.Sqrt2, bounds.Max.X, 1e-4)
	assert.InDelta(t, 1, bounds.Max.Y, 1e-4)
	assert.InDelta(t, -math.Sqrt2, bounds.Min.Z, 1e-4)
}

func TestClosestPointOnOBB(t *testing.T) {
	b := NewAABBasOBB(rl.Vector3{}, unit)

	p := ClosestPointOnOBB(b, rl.Vector3{X: 3, Y: 0.2})
	assert.InDelta(t, 0.5, p.X, 1e-5)
	assert.InDelta(t, 0.2, p.Y, 1e-5)

	inside := rl.Vector3{X: 0.1, Y: -0.1, Z: 0.2}
	p = ClosestPointOnOBB(b, inside)
	assert.InDelta(t, inside.X, p.X, 1e-5)
	assert.InDelta(t, inside.Z, p.Z, 1e-5)

	assert.True(t, b.IntersectsSphere(rl.Vector3{X: 0.9}, 0.5))
	assert.False(t, b.IntersectsSphere(rl.Vector3{X: 1.1}, 0.5))
}

func TestSphereContacts(t *testing.T) {
	push, ok := sphereSphere(rl.Vector3{X: 0.5}, 0.5, rl.Vector3{}, 0.5)
	require.True(t, ok)
	assert.InDelta(t, 0.5, push.X, 1e-5)

	_, ok = sphereSphere(rl.Vector3{X: 2}, 0.5, rl.Vector3{}, 0.5)
	assert.False(t, ok)

	floor := NewAABBasOBB(rl.Vector3{}, rl.Vector3{X: 10, Y: 0.2, Z: 10})
	push, ok = sphereBox(rl.Vector3{Y: 0.5}, 0.5, floor)
	require.True(t, ok)
	assert.InDelta(t, 0.1, push.Y, 1e-5)

	// center buried in the box still resolves upward
	push, ok = sphereBox(rl.Vector3{Y: 0.05}, 0.5, floor)
	require.True(t, ok)
	assert.Greater(t, push.Y, float32(0))
}
