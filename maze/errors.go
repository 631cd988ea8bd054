package maze

import "errors"

var (
	// ErrInvalidDimension is returned when a width or height is not positive.
	ErrInvalidDimension = errors.New("invalid maze dimensions")

	// ErrOutOfRange is returned for coordinates or indices outside the grid.
	ErrOutOfRange = errors.New("cell out of range")

	// ErrEmptyFrontier signals a draw from an empty frontier.
	ErrEmptyFrontier = errors.New("draw from empty frontier")

	// ErrEmptyCandidates signals a draw from an empty candidate list.
	ErrEmptyCandidates = errors.New("draw from empty candidate list")

	// ErrGridInUse is returned when a grid is already attached to a running carver.
	ErrGridInUse = errors.New("grid is already being carved")

	// ErrCorruptGrid is returned when wall masks break the boundary or symmetry rules.
	ErrCorruptGrid = errors.New("corrupt wall grid")
)
