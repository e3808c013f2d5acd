// Package curve implements the affine group law on short-Weierstrass
// curves y² = x³ + ax + b over word-sized moduli.
//
// The modulus should be prime for the group law to be total; with a
// composite modulus an operation can hit a slope denominator that is not
// invertible, in which case ErrNotInvertible from internal/math is
// returned. Primality and non-singularity of the parameters are the
// caller's responsibility and are not checked.
package curve

import (
	"github.com/smallcurve/weierstrass/internal/math"
)

// Params describes a short-Weierstrass curve y² = x³ + ax + b over the
// integers modulo M.
type Params struct {
	// A and B are the curve coefficients, reduced into [0, M).
	A, B int64

	// M is the modulus, in (0, math.MaxModulus].
	M int64

	// Name is an optional label for the curve.
	Name string
}

// NewParams builds curve parameters, validating the modulus bound and
// reducing the coefficients into [0, m).
func NewParams(a, b, m int64) (*Params, error) {
	if m <= 0 || m > math.MaxModulus {
		return nil, ErrInvalidModulus
	}
	return &Params{
		A: math.Reduce(a, m),
		B: math.Reduce(b, m),
		M: m,
	}, nil
}

// Polynomial returns the curve equation's right-hand side, x³ + ax + b mod M.
func (c *Params) Polynomial(x int64) int64 {
	x = math.Reduce(x, c.M)
	x3 := math.Mul(math.Mul(x, x, c.M), x, c.M)
	return math.Add(math.Add(x3, math.Mul(c.A, x, c.M), c.M), c.B, c.M)
}

// IsOnCurve reports whether p satisfies the curve equation. The point at
// infinity is on every curve by convention.
func (c *Params) IsOnCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}
	return math.Mul(p.Y, p.Y, c.M) == c.Polynomial(p.X)
}

// Add returns p + q under the chord-tangent group law.
//
// The case order matters. The identity cases come first, then the
// vertical-line case (mutual inverses, and doubling a point with y == 0
// whose tangent is vertical), and only then the slope computation. Moving
// the vertical-line check after the doubling split would attempt to
// invert 2·0 at 2-torsion points.
func (c *Params) Add(p, q Point) (Point, error) {
	if p.IsInfinity() {
		return q, nil
	}
	if q.IsInfinity() {
		return p, nil
	}
	if p.X == q.X && (p.Y != q.Y || p.Y == 0) {
		return Infinity(), nil
	}

	x1, y1 := math.Reduce(p.X, c.M), math.Reduce(p.Y, c.M)
	x2, y2 := math.Reduce(q.X, c.M), math.Reduce(q.Y, c.M)

	var lambda int64
	if x1 == x2 && y1 == y2 {
		// Tangent slope (3x₁² + a) / 2y₁.
		num := math.Add(math.Mul(3, math.Mul(x1, x1, c.M), c.M), c.A, c.M)
		denom, err := math.Inverse(math.Mul(2, y1, c.M), c.M)
		if err != nil {
			return Point{}, err
		}
		lambda = math.Mul(num, denom, c.M)
	} else {
		// Secant slope (y₂ - y₁) / (x₂ - x₁). The denominator must be
		// reduced into [0, M) before inversion.
		num := math.Sub(y2, y1, c.M)
		denom, err := math.Inverse(math.Sub(x2, x1, c.M), c.M)
		if err != nil {
			return Point{}, err
		}
		lambda = math.Mul(num, denom, c.M)
	}

	x3 := math.Sub(math.Sub(math.Mul(lambda, lambda, c.M), x1, c.M), x2, c.M)
	y3 := math.Sub(math.Mul(lambda, math.Sub(x1, x3, c.M), c.M), y1, c.M)

	return Point{X: x3, Y: y3}, nil
}

// Double returns 2p.
func (c *Params) Double(p Point) (Point, error) {
	return c.Add(p, p)
}

// ScalarMult returns n·p by binary double-and-add, processing the scalar's
// bits least-significant first. The accumulator starts at the identity, so
// a zero scalar yields the identity. O(log n) group operations.
func (c *Params) ScalarMult(n int64, p Point) (Point, error) {
	if n < 0 {
		return Point{}, ErrNegativeScalar
	}

	result := Infinity()
	addend := p

	var err error
	for n > 0 {
		if n&1 == 1 {
			result, err = c.Add(result, addend)
			if err != nil {
				return Point{}, err
			}
		}
		addend, err = c.Add(addend, addend)
		if err != nil {
			return Point{}, err
		}
		n >>= 1
	}

	return result, nil
}

// ScalarMultNaive returns n·p by repeated addition. It is O(n) and exists
// as an independent reference for cross-checking ScalarMult.
func (c *Params) ScalarMultNaive(n int64, p Point) (Point, error) {
	if n < 0 {
		return Point{}, ErrNegativeScalar
	}

	result := Infinity()
	var err error
	for i := int64(0); i < n; i++ {
		result, err = c.Add(result, p)
		if err != nil {
			return Point{}, err
		}
	}
	return result, nil
}
