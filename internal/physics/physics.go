// Package physics provides projectile kinematics and collision detection
// against axis-aligned level geometry.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Vec) float64 {
	return b.Sub(a).Len()
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b Vec) float64 {
	d := b.Sub(a)
	return d.X*d.X + d.Y*d.Y
}

// Arc returns the magnitude and direction of a component velocity.
// The angle is in radians unless degrees is set.
func Arc(v Vec, degrees bool) (mag, angle float64) {
	mag = v.Len()
	angle = v.Angle()
	if degrees {
		angle *= 180 / math.Pi
	}
	return mag, angle
}

// Heading returns the direction of travel from prev to curr, for drawing a
// projectile rotated along its path. A zero displacement yields 0.
func Heading(prev, curr Vec) float64 {
	d := curr.Sub(prev)
	if d.IsZero() {
		return 0
	}
	return d.Angle()
}
