package calculation

import "errors"

var (
	// ErrInvalidCalibration is returned when the lognormal cannot be fitted
	// (mean must exceed median, both positive).
	ErrInvalidCalibration = errors.New("invalid income distribution calibration")

	// ErrInvalidGrid is returned for an unusable quadrature grid.
	ErrInvalidGrid = errors.New("invalid integration grid")

	// ErrInvalidScale is returned when an income scale factor is not a
	// positive finite number.
	ErrInvalidScale = errors.New("invalid income scale")
)
