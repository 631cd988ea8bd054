/*
Package maze carves mazes on rectangular grids of walled cells.

A Grid stores one Walls mask per cell. A Carver owns a grid, a Frontier of
untouched cells and a seeded Random, and removes walls one step at a time:
it walks from the current cell towards the neighbor with the most walls left,
smooths away one-cell alcoves while doing so, and jumps to a random frontier
cell whenever the walk reaches a dead end.

Generate runs the whole process and returns the final wall masks. The same
dimensions, seed and iteration budget always produce the same maze.
*/
package maze

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Grid is a rectangular array of cells, each surrounded by up to four walls.
//
// Cells are addressed by index = x + width*y. Walls between neighbors are
// stored on both cells; callers of SetWall are responsible for keeping the
// two sides in agreement.
type Grid struct {
	width  int
	height int
	walls  []Walls
	busy   atomic.Bool
}

// NewGrid allocates a width x height grid with every wall present.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}

	walls := make([]Walls, width*height)
	for i := range walls {
		walls[i] = AllWalls
	}

	return &Grid{
		width:  width,
		height: height,
		walls:  walls,
	}, nil
}

// LoadGrid rebuilds a grid from previously produced wall masks and checks
// that they respect the boundary and symmetry rules.
func LoadGrid(width, height int, masks []Walls) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	if len(masks) != len(g.walls) {
		return nil, fmt.Errorf("%w: %d masks for %d cells", ErrCorruptGrid, len(masks), len(g.walls))
	}
	for i, m := range masks {
		g.walls[i] = m & AllWalls
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.walls)
}

// Index maps a coordinate to its cell index.
func (g *Grid) Index(x, y int) (int, error) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfRange, x, y, g.width, g.height)
	}
	return g.index(x, y), nil
}

// XY maps a cell index to its coordinate.
func (g *Grid) XY(index int) (x, y int, err error) {
	if err := g.check(index); err != nil {
		return 0, 0, err
	}
	x, y = g.xy(index)
	return x, y, nil
}

// Wall reports whether the wall on side s of the cell is present.
func (g *Grid) Wall(index int, s Side) (bool, error) {
	if err := g.check(index); err != nil {
		return false, err
	}
	return g.walls[index].Has(s), nil
}

// SetWall sets or clears the wall on side s of a single cell. Clearing a
// wall that faces the outside of the grid is silently ignored.
func (g *Grid) SetWall(index int, s Side, present bool) error {
	if err := g.check(index); err != nil {
		return err
	}
	if !s.IsValid() {
		return fmt.Errorf("%w: side %d", ErrOutOfRange, s)
	}
	g.setWall(index, s, present)
	return nil
}

// WallCount returns the number of walls present around the cell.
func (g *Grid) WallCount(index int) (int, error) {
	if err := g.check(index); err != nil {
		return 0, err
	}
	return g.walls[index].Count(), nil
}

// Mask returns the wall mask of the cell.
func (g *Grid) Mask(index int) (Walls, error) {
	if err := g.check(index); err != nil {
		return 0, err
	}
	return g.walls[index], nil
}

// Masks returns a copy of every cell's wall mask, in index order.
func (g *Grid) Masks() []Walls {
	out := make([]Walls, len(g.walls))
	copy(out, g.walls)
	return out
}

// Neighbor returns the index of the cell on side s, if it lies inside the grid.
func (g *Grid) Neighbor(index int, s Side) (int, bool) {
	if g.check(index) != nil {
		return 0, false
	}
	return g.neighbor(index, s)
}

// Validate checks that every outward wall is present and that every shared
// wall is recorded identically on both cells.
func (g *Grid) Validate() error {
	for i, w := range g.walls {
		for _, s := range Sides {
			n, ok := g.neighbor(i, s)
			if !ok {
				if !w.Has(s) {
					x, y := g.xy(i)
					return fmt.Errorf("%w: boundary wall %s of (%d,%d) missing", ErrCorruptGrid, s, x, y)
				}
				continue
			}
			if w.Has(s) != g.walls[n].Has(s.Opposite()) {
				x, y := g.xy(i)
				return fmt.Errorf("%w: wall %s of (%d,%d) is one-sided", ErrCorruptGrid, s, x, y)
			}
		}
	}
	return nil
}

// String renders the grid as ASCII art.
func (g *Grid) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+")
	for x := 0; x < g.width; x++ {
		if g.walls[g.index(x, 0)].Has(Top) {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteString("\n")

	for y := 0; y < g.height; y++ {
		// Cell row
		if g.walls[g.index(0, y)].Has(Left) {
			b.WriteString("|")
		} else {
			b.WriteString(" ")
		}
		for x := 0; x < g.width; x++ {
			if g.walls[g.index(x, y)].Has(Right) {
				b.WriteString("   |")
			} else {
				b.WriteString("    ")
			}
		}
		b.WriteString("\n")

		// Wall row
		b.WriteString("+")
		for x := 0; x < g.width; x++ {
			if g.walls[g.index(x, y)].Has(Bottom) {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (g *Grid) check(index int) error {
	if index < 0 || index >= len(g.walls) {
		return fmt.Errorf("%w: index %d outside [0,%d)", ErrOutOfRange, index, len(g.walls))
	}
	return nil
}

func (g *Grid) index(x, y int) int {
	return x + g.width*y
}

func (g *Grid) xy(index int) (int, int) {
	return index % g.width, index / g.width
}

func (g *Grid) neighbor(index int, s Side) (int, bool) {
	x, y := g.xy(index)
	dx, dy := s.Delta()
	nx, ny := x+dx, y+dy
	if nx < 0 || nx >= g.width || ny < 0 || ny >= g.height || (dx == 0 && dy == 0) {
		return 0, false
	}
	return g.index(nx, ny), true
}

func (g *Grid) setWall(index int, s Side, present bool) {
	if !present {
		if _, ok := g.neighbor(index, s); !ok {
			return
		}
	}
	g.walls[index] = g.walls[index].with(s, present)
}

func (g *Grid) acquire() bool {
	return g.busy.CompareAndSwap(false, true)
}

func (g *Grid) release() {
	g.busy.Store(false)
}
