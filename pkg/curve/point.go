package curve

import "fmt"

// Point is an affine point on a short-Weierstrass curve, or the point at
// infinity (the group identity). Coordinates of points produced by the
// group operations are always in [0, M). Points are values: operations
// return new points and never modify their operands.
type Point struct {
	X, Y int64

	infinity bool
}

// NewPoint returns the affine point (x, y).
func NewPoint(x, y int64) Point {
	return Point{X: x, Y: y}
}

// Infinity returns the point at infinity, the identity of the group.
func Infinity() Point {
	return Point{infinity: true}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.infinity
}

// Equal reports whether p and q are the same group element. Coordinates
// are ignored when both points are at infinity.
func (p Point) Equal(q Point) bool {
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.X == q.X && p.Y == q.Y
}

// Neg returns the additive inverse of p modulo m, the reflection (x, m-y).
// The identity and points with y == 0 are their own inverses.
func (p Point) Neg(m int64) Point {
	if p.infinity || p.Y == 0 {
		return p
	}
	return Point{X: p.X, Y: m - p.Y}
}

// String renders the point as "(x, y)", or "infinity" for the identity.
func (p Point) String() string {
	if p.infinity {
		return "infinity"
	}
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
