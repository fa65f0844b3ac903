package combat

import (
	"testing"

	"github.com/automoto/shmup/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestIsCollidingFollowsRadiusLaw(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := NewGameObject(gamemath.V(
			rapid.Float64Range(-1000, 1000).Draw(t, "ax"),
			rapid.Float64Range(-1000, 1000).Draw(t, "ay"),
		), rapid.Float64Range(0, 100).Draw(t, "ar"))
		b := NewGameObject(gamemath.V(
			rapid.Float64Range(-1000, 1000).Draw(t, "bx"),
			rapid.Float64Range(-1000, 1000).Draw(t, "by"),
		), rapid.Float64Range(0, 100).Draw(t, "br"))

		r := a.Size + b.Size
		want := a.Position.DistSq(b.Position) <= r*r
		if got := a.IsColliding(&b); got != want {
			t.Fatalf("a.IsColliding(b) = %v, want %v", got, want)
		}
		if a.IsColliding(&b) != b.IsColliding(&a) {
			t.Fatalf("collision is not symmetric")
		}
	})
}

func TestIsCollidingTouchingCircles(t *testing.T) {
	a := NewGameObject(gamemath.V(0, 0), 5)
	b := NewGameObject(gamemath.V(10, 0), 5)
	c := NewGameObject(gamemath.V(10.01, 0), 5)
	assert.True(t, a.IsColliding(&b))
	assert.False(t, a.IsColliding(&c))
}

func TestTakeDamageSubtractsExactly(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		health := rapid.IntRange(-1000, 1000).Draw(t, "health")
		n := rapid.IntRange(0, 1000).Draw(t, "damage")
		e := Entity{Health: health, MaxHealth: 100}
		e.TakeDamage(n)
		if e.Health != health-n {
			t.Fatalf("health = %d, want %d", e.Health, health-n)
		}
		if e.Alive() != (e.Health > 0) {
			t.Fatalf("Alive() = %v with health %d", e.Alive(), e.Health)
		}
	})
}

func TestImpulseAppliesAndDecays(t *testing.T) {
	o := NewGameObject(gamemath.V(0, 0), 1)
	o.ForcePush(gamemath.V(10, 0))
	o.Update(1)
	assert.InDelta(t, 10, o.Position.X, 1e-9)
	assert.InDelta(t, 5, o.Impulse().X, 1e-9)

	small := NewGameObject(gamemath.V(0, 0), 1)
	small.ForcePush(gamemath.V(0.05, 0))
	small.Update(1)
	assert.Equal(t, gamemath.V(0, 0), small.Position)
}

func TestMarkForRemovalIsIdempotent(t *testing.T) {
	o := NewGameObject(gamemath.V(1, 1), 1)
	assert.True(t, o.Active())
	o.MarkForRemoval()
	o.MarkForRemoval()
	assert.False(t, o.Active())
}

func TestArena(t *testing.T) {
	assert.Equal(t, gamemath.V(400, 300), testArena.Center())
	assert.Equal(t, gamemath.V(10, 590), testArena.Clamp(gamemath.V(-50, 900), 10))
	assert.True(t, testArena.Overlaps(gamemath.V(-4, 300), 5))
	assert.False(t, testArena.Overlaps(gamemath.V(-6, 300), 5))
	assert.False(t, testArena.Overlaps(gamemath.V(400, 606), 5))
}
