package math

import "errors"

var (
	// ErrInvalidModulus is returned when the modulus is not positive
	ErrInvalidModulus = errors.New("modulus must be positive")

	// ErrNotInvertible is returned when gcd(a, m) > 1 and no modular inverse exists
	ErrNotInvertible = errors.New("value has no modular inverse")
)
