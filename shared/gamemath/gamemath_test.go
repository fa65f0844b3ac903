package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeZeroVector(t *testing.T) {
	assert.Equal(t, Vec{}, Vec{}.Normalize())
	assert.Equal(t, Vec{}, V(3, 4).DirTo(V(3, 4)))
}

func TestNormalizeUnitLength(t *testing.T) {
	n := V(3, 4).Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)
	assert.InDelta(t, 1.0, n.Len(), 1e-9)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"below", -5, 0, 10, 0},
		{"inside", 5, 0, 10, 5},
		{"above", 15, 0, 10, 10},
		{"edge", 10, 0, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.v, tt.lo, tt.hi))
		})
	}
	assert.Equal(t, 2, ClampInt(7, 0, 2))
}

func TestEaseTowardNeverOvershoots(t *testing.T) {
	pos := V(0, 0)
	target := V(100, 0)
	assert.Equal(t, V(50, 0), EaseToward(pos, target, 0.5, 1))
	// rate*dt above one snaps to the target instead of passing it
	assert.Equal(t, target, EaseToward(pos, target, 0.5, 10))
}

func TestDecayAndSnap(t *testing.T) {
	v := Decay(V(10, 0), 1, 1)
	assert.InDelta(t, 5, v.X, 1e-9)
	assert.Equal(t, Vec{}, SnapToZero(V(0.05, 0.05), 0.1))
	assert.Equal(t, V(1, 0), SnapToZero(V(1, 0), 0.1))
}

func TestHomingVelocity(t *testing.T) {
	v := HomingVelocity(V(0, 0), V(0, 10), 200)
	assert.InDelta(t, 0, v.X, 1e-9)
	assert.InDelta(t, 200, v.Y, 1e-9)
	assert.Equal(t, Vec{}, HomingVelocity(V(1, 1), V(1, 1), 200))
}

func TestPointsAroundCircle(t *testing.T) {
	center := V(400, 300)
	points := PointsAroundCircle(center, 70, 32)
	assert.Len(t, points, 32)
	for _, p := range points {
		assert.InDelta(t, 70, center.Dist(p), 1e-9)
	}
	assert.InDelta(t, 470, points[0].X, 1e-9)
	assert.InDelta(t, 300, points[0].Y, 1e-9)
	assert.InDelta(t, 370, points[8].Y, 1e-9)
	assert.Nil(t, PointsAroundCircle(center, 10, 0))
}

func TestNearest(t *testing.T) {
	points := []Vec{V(10, 0), V(2, 0), V(-2, 0)}
	assert.Equal(t, 1, Nearest(V(0, 0), points))
	assert.Equal(t, -1, Nearest(V(0, 0), nil))
	assert.False(t, math.IsNaN(V(0, 0).Dist(V(1, 1))))
}

func TestDotAndPerp(t *testing.T) {
	v := V(3, 4)
	assert.Equal(t, V(-4, 3), v.Perp())
	assert.Zero(t, v.Dot(v.Perp()))
	assert.Equal(t, 25.0, v.Dot(v))
}
