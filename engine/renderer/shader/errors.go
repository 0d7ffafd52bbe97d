package shader

import "errors"

var (
	// ErrCompile wraps every stage compilation failure; the error text carries the stage log.
	ErrCompile = errors.New("shader compilation failed")

	// ErrLink wraps every program link failure; the error text carries the link log.
	ErrLink = errors.New("shader program link failed")

	// ErrNoStages is returned when a program is built from an empty stage list.
	ErrNoStages = errors.New("shader program has no stages")
)
