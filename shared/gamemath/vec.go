// Package gamemath holds the small pieces of 2D math shared by the simulation
// core, the front-end, and the headless runner. It has no dependencies on
// ebitengine, donburi, or resolv.
package gamemath

import "math"

// Vec is a 2D vector in arena space (pixels, y grows downward).
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

func (v Vec) Neg() Vec {
	return Vec{-v.X, -v.Y}
}

func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// IsZero reports whether both components are exactly zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector in the direction of v.
// A zero-length vector normalizes to the zero vector.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Dist returns the Euclidean distance between v and o.
func (v Vec) Dist(o Vec) float64 {
	return o.Sub(v).Len()
}

// DistSq returns the squared Euclidean distance between v and o.
func (v Vec) DistSq(o Vec) float64 {
	return o.Sub(v).LenSq()
}

// Lerp moves v toward target by fraction t.
func (v Vec) Lerp(target Vec, t float64) Vec {
	return v.Add(target.Sub(v).Scale(t))
}

// DirTo returns the unit vector from v to o, or zero if they coincide.
func (v Vec) DirTo(o Vec) Vec {
	return o.Sub(v).Normalize()
}

func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Perp returns v rotated a quarter turn counter-clockwise.
func (v Vec) Perp() Vec {
	return Vec{-v.Y, v.X}
}
