// Package math provides word-sized modular arithmetic for curve operations.
//
// All values are int64. Moduli up to MaxModulus are supported: with both
// operands reduced into [0, m), every pairwise product fits in an int64, so
// no arbitrary-precision arithmetic is needed.
package math

// MaxModulus is the largest supported modulus. The product of two residues
// below this bound always fits in an int64.
const MaxModulus = 1<<31 - 1

// Reduce returns the canonical residue of a modulo m, in [0, m).
// Unlike the native % operator, the result is never negative.
func Reduce(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// Add returns (a + b) mod m. Operands need not be reduced.
func Add(a, b, m int64) int64 {
	return Reduce(Reduce(a, m)+Reduce(b, m), m)
}

// Sub returns (a - b) mod m, always in [0, m).
func Sub(a, b, m int64) int64 {
	return Reduce(Reduce(a, m)-Reduce(b, m), m)
}

// Mul returns (a * b) mod m. Operands are reduced first so the product
// fits in an int64 for any modulus up to MaxModulus.
func Mul(a, b, m int64) int64 {
	return Reduce(Reduce(a, m)*Reduce(b, m), m)
}

// GCD returns the non-negative greatest common divisor of a and b.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Inverse returns t such that (a * t) mod m == 1, with 0 <= t < m.
//
// It runs the iterative extended Euclidean algorithm, tracking the Bézout
// coefficient of a alongside the remainder. When the final remainder is
// greater than one, a and m share a factor and ErrNotInvertible is
// returned: a non-unit has no inverse.
func Inverse(a, m int64) (int64, error) {
	if m <= 0 {
		return 0, ErrInvalidModulus
	}

	t, newT := int64(0), int64(1)
	r, newR := m, Reduce(a, m)

	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}

	if r > 1 {
		return 0, ErrNotInvertible
	}
	if t < 0 {
		t += m
	}
	return t, nil
}
