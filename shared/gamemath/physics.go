package gamemath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Decay divides v by (1 + rate*dt), the per-frame damping used for impulses
// and player velocity.
func Decay(v Vec, rate, dt float64) Vec {
	return v.Scale(1 / (1 + rate*dt))
}

// SnapToZero returns zero when v's length is at or below threshold.
func SnapToZero(v Vec, threshold float64) Vec {
	if v.Len() <= threshold {
		return Vec{}
	}
	return v
}

// EaseToward blends pos toward target by min(1, rate*dt). It never overshoots.
func EaseToward(pos, target Vec, rate, dt float64) Vec {
	return pos.Lerp(target, math.Min(1, rate*dt))
}
