package domain

import "errors"

var (
	// ErrInvalidDampingFactor rejects damping factors outside (0, 1).
	ErrInvalidDampingFactor = errors.New("damping factor must be in (0, 1)")
	// ErrInvalidMaxIterations rejects non-positive iteration caps.
	ErrInvalidMaxIterations = errors.New("max iterations must be positive")
	// ErrInvalidThreshold rejects non-positive convergence thresholds.
	ErrInvalidThreshold = errors.New("convergence threshold must be positive")
)
