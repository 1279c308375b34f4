package colorramp

import "errors"

var (
	// ErrInsufficientStops is returned when a ramp with fewer than two stops
	// is evaluated, baked, or compiled.
	ErrInsufficientStops = errors.New("colorramp: at least two color stops are required")

	// ErrChannelKeyMismatch is returned when the red, green and blue curves
	// of a curve group do not have the same number of keys.
	ErrChannelKeyMismatch = errors.New("colorramp: curve channel key-count mismatch")

	// ErrInvalidOwner is returned when an operation needs a curve resource
	// and none is attached.
	ErrInvalidOwner = errors.New("colorramp: curve owner is nil or invalid")

	// ErrInvalidNumericInput is returned when text committed to a numeric
	// field does not parse as a number.
	ErrInvalidNumericInput = errors.New("colorramp: input is not numeric")

	// ErrInvalidColor is returned when a hex color is malformed.
	ErrInvalidColor = errors.New("colorramp: color is not #rrggbb or #rrggbbaa")

	// ErrInvalidResolution is returned when a texture resolution is not positive.
	ErrInvalidResolution = errors.New("colorramp: texture resolution must be positive")

	// ErrInvalidCurve is returned when the private curve of a ramp node could
	// not be read back into a stop set.
	ErrInvalidCurve = errors.New("colorramp: private curve was invalid, try recreating the node")
)
