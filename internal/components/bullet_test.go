package components

import (
	"testing"

	"demos3d/internal/engine"
	"demos3d/internal/engine/enginetest"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulletStepMovesUntilExpired(t *testing.T) {
	g := engine.NewGameObject("Bullet")
	b := NewBullet(rl.Vector3{X: 2})
	g.AddComponent(b)

	require.True(t, b.Step(1))
	assert.InDelta(t, 25, g.Transform.Position.X, 1e-4)
	assert.InDelta(t, 0.5, b.Lifetime, 1e-6)

	assert.False(t, b.Step(0.5))
	assert.InDelta(t, 25, g.Transform.Position.X, 1e-4, "expired bullets do not move")
}

func TestBulletImpactPushesDynamicBody(t *testing.T) {
	w := enginetest.New()
	bullet := engine.NewGameObject("Bullet")
	b := NewBullet(rl.Vector3{Z: -1})
	bullet.AddComponent(b)
	w.Add(bullet)

	crate := engine.NewGameObject("Crate")
	rb := NewRigidbody()
	rb.Mass = 2
	crate.AddComponent(rb)

	b.OnCollisionEnter(crate)

	assert.InDelta(t, -2, rb.Velocity.Z, 1e-4)
	assert.True(t, b.Spent)
	assert.True(t, w.WasDestroyed(bullet))

	// A second contact in the same frame does nothing more.
	b.OnCollisionEnter(crate)
	assert.InDelta(t, -2, rb.Velocity.Z, 1e-4)
	assert.Len(t, w.Destroyed, 1)
}

func TestBulletPassesThroughPlayerAndBullets(t *testing.T) {
	w := enginetest.New()
	bullet := engine.NewGameObject("Bullet")
	b := NewBullet(rl.Vector3{Z: -1})
	bullet.AddComponent(b)
	w.Add(bullet)

	player := engine.NewGameObject("Player")
	player.AddTag(engine.TagPlayer)
	other := engine.NewGameObject("Bullet2")
	other.AddTag(engine.TagBullet)

	b.OnCollisionEnter(player)
	b.OnCollisionEnter(other)

	assert.False(t, b.Spent)
	assert.Empty(t, w.Destroyed)
}
