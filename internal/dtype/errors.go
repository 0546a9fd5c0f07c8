package dtype

import "errors"

// Common errors.
var (
	ErrInvalidDType     = errors.New("invalid dtype")
	ErrNoPromotionPath  = errors.New("no implicit dtype promotion path")
	ErrCycleDetected    = errors.New("cycle detected in type promotion lattice")
	ErrIllFormedLattice = errors.New("ill-formed type promotion lattice")
	ErrInvalidArgument  = errors.New("invalid argument")
)
