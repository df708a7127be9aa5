package botblock

import "github.com/goliatone/go-errors"

// ErrValidation is a sentinel error used to mark validation failures.
// Wrappers can compare errors with errors.Is(err, ErrValidation) to
// propagate validation intent through additional layers.
var ErrValidation = errors.New("validation error", errors.CategoryValidation).
	WithTextCode("VALIDATION_FAILED")

// ErrNilInput marks precondition violations where a caller handed a nil
// or empty-shape value to a function that requires a real block. The
// legacy migration path never guesses a contract for missing input; it
// reports it.
var ErrNilInput = errors.New("nil block input", errors.CategoryBadInput).
	WithTextCode("MIGRATE_NIL_INPUT")

// ErrUnknownTarget marks an unrecognized compile target mode.
var ErrUnknownTarget = errors.New("unknown compile target", errors.CategoryBadInput).
	WithTextCode("UNKNOWN_TARGET")

// ErrNoContainer marks a document compile with no flex container root.
var ErrNoContainer = errors.New("no flex container in message graph", errors.CategoryBadInput).
	WithTextCode("NO_FLEX_CONTAINER")
