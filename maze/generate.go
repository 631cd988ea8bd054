package maze

import "context"

// Result is the outcome of a carving run.
type Result struct {
	Width      int
	Height     int
	Seed       int64
	Iterations int     // effective iteration budget
	Walls      []Walls // wall mask per cell, in index order
	WallCounts []int   // walls present per cell, in index order
	Untouched  int     // cells that still have all four walls
	Steps      int
	Reason     Reason
}

// Complete reports whether the run stopped because nothing was left to carve,
// rather than because it ran out of budget.
func (r *Result) Complete() bool {
	return r.Reason == ReasonExhausted
}

// Grid rebuilds a grid from the result's wall masks.
func (r *Result) Grid() (*Grid, error) {
	return LoadGrid(r.Width, r.Height, r.Walls)
}

// String renders the result as ASCII art.
func (r *Result) String() string {
	g, err := r.Grid()
	if err != nil {
		return err.Error()
	}
	return g.String()
}

// Generate carves a width x height maze from seed and returns its walls.
// A non-positive iterations value budgets one event per cell.
func Generate(ctx context.Context, width, height int, seed int64, iterations int, opts ...Option) (*Result, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	c := NewCarver(grid, seed, iterations, opts...)
	budget := c.Budget()
	if err := c.Run(ctx); err != nil {
		return nil, err
	}

	return newResult(c, seed, budget), nil
}

func newResult(c *Carver, seed int64, budget int) *Result {
	g := c.Grid()
	r := &Result{
		Width:      g.Width(),
		Height:     g.Height(),
		Seed:       seed,
		Iterations: budget,
		Walls:      g.Masks(),
		WallCounts: make([]int, g.Len()),
		Steps:      c.Steps(),
		Reason:     c.Reason(),
	}
	for i, w := range r.Walls {
		r.WallCounts[i] = w.Count()
		if w == AllWalls {
			r.Untouched++
		}
	}
	return r
}
