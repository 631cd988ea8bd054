package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidParams = errors.New("invalid maze parameters")

// MazeParams are the inputs of one generation request.
type MazeParams struct {
	Width      int
	Height     int
	Seed       int64
	Iterations int
}

// Normalize checks the dimensions against maxDimension and brings the
// iteration budget into [0, width*height]. Zero keeps the per-cell default.
func (p MazeParams) Normalize(maxDimension int) (MazeParams, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return p, fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidParams, p.Width, p.Height)
	}
	if maxDimension > 0 && (p.Width > maxDimension || p.Height > maxDimension) {
		return p, fmt.Errorf("%w: dimensions above %d, got %dx%d", ErrInvalidParams, maxDimension, p.Width, p.Height)
	}

	cells := p.Width * p.Height
	if p.Iterations < 0 {
		p.Iterations = 0
	}
	if p.Iterations > cells {
		p.Iterations = cells
	}
	return p, nil
}

// Key identifies the maze these parameters produce.
func (p MazeParams) Key() string {
	return fmt.Sprintf("maze:%dx%d:%d:%d", p.Width, p.Height, p.Seed, p.Iterations)
}
