package gamemath

import "math"

// HomingVelocity returns a velocity of the given speed pointing from pos to
// target. Coincident points yield a zero velocity.
func HomingVelocity(pos, target Vec, speed float64) Vec {
	return pos.DirTo(target).Scale(speed)
}

// PointsAroundCircle returns n points evenly spaced on a circle of the given
// radius, starting at angle zero and going clockwise in screen space.
func PointsAroundCircle(center Vec, radius float64, n int) []Vec {
	if n <= 0 {
		return nil
	}
	points := make([]Vec, n)
	step := 2 * math.Pi / float64(n)
	for i := range points {
		angle := step * float64(i)
		points[i] = Vec{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return points
}

// Nearest returns the index of the point closest to from, or -1 for an empty
// slice. Ties keep the earliest point.
func Nearest(from Vec, points []Vec) int {
	best := -1
	bestDist := math.Inf(1)
	for i, p := range points {
		if d := from.DistSq(p); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
