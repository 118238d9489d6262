package creator

import "errors"

var (
	// ErrNodeOutOfRange indicates a pair referencing a node that was never added.
	ErrNodeOutOfRange = errors.New("creator: node index out of range")

	// ErrNoBuilder indicates a pair whose tags match no registered builder.
	ErrNoBuilder = errors.New("creator: no builder for pair tags")

	// ErrDegeneratePair indicates a pair whose two nodes coincide.
	ErrDegeneratePair = errors.New("creator: pair endpoints coincide")

	// ErrBelowGround indicates a node placed below the world's ground plane.
	ErrBelowGround = errors.New("creator: node below ground")

	// ErrZeroAxis indicates a rotation about a zero-length axis.
	ErrZeroAxis = errors.New("creator: rotation axis has zero length")

	// ErrInvalidBuilder indicates an empty tag or nil builder registration.
	ErrInvalidBuilder = errors.New("creator: invalid builder registration")
)
