package curve

import "errors"

var (
	// ErrInvalidModulus is returned when the modulus is not in (0, MaxModulus]
	ErrInvalidModulus = errors.New("modulus must be positive and at most 2^31 - 1")

	// ErrNegativeScalar is returned when a scalar multiplier is negative
	ErrNegativeScalar = errors.New("scalar must be non-negative")
)
