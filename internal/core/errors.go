package core

import "errors"

// Domain errors for model lifecycle operations.
var (
	// ErrInvalidArgument indicates an argument outside its valid domain,
	// such as a non-positive time step.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrAlreadySetup indicates Setup was called on a model that is built.
	ErrAlreadySetup = errors.New("core: model already set up")

	// ErrNotSetup indicates an operation that needs a built model.
	ErrNotSetup = errors.New("core: model not set up")

	// ErrNilWorld indicates Setup was called without a world.
	ErrNilWorld = errors.New("core: nil world")
)
