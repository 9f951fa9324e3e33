package vessel

import "errors"

// Errors reported by the geometry engine. All constructors and mutators
// fail fast: a returned error means no state was changed.
var (
	// ErrInvalidGeometry reports degenerate construction inputs: coincident
	// endpoints, non-positive widths, or reuse of a consumed End.
	ErrInvalidGeometry = errors.New("vessel: invalid geometry")

	// ErrOutOfRange reports a parameter outside its documented domain, such
	// as a probe position or narrowing scale outside [0, 1].
	ErrOutOfRange = errors.New("vessel: parameter out of range")

	// ErrInvalidDimensions reports non-positive canvas dimensions.
	ErrInvalidDimensions = errors.New("vessel: invalid canvas dimensions")
)
