package sim

import "errors"

// Domain errors for simulation operations.
var (
	// ErrInvalidParameter indicates a request or process parameter outside
	// its valid range. Returned only by processes built with validation.
	ErrInvalidParameter = errors.New("sim: invalid parameter")

	// ErrNoVarianceSurface indicates a process that does not expose a
	// variance grid alongside its price paths.
	ErrNoVarianceSurface = errors.New("sim: process has no variance surface")
)
