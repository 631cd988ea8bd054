package maze

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// interiorWalls counts the walls shared by two cells of a width x height grid.
func interiorWalls(width, height int) int {
	return width*(height-1) + height*(width-1)
}

// carvedComponents counts the connected groups of carved cells, moving only
// through open walls.
func carvedComponents(g *Grid) int {
	seen := make([]bool, g.Len())
	components := 0
	for start := 0; start < g.Len(); start++ {
		if seen[start] || g.walls[start] == AllWalls {
			continue
		}
		components++
		queue := []int{start}
		seen[start] = true
		for len(queue) > 0 {
			c := queue[0]
			queue = queue[1:]
			for _, s := range Sides {
				n, ok := g.neighbor(c, s)
				if !ok || g.walls[c].Has(s) || seen[n] {
					continue
				}
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return components
}

// undiscovered returns the fully walled cells that border a carved cell but
// are missing from f.
func undiscovered(g *Grid, f *Frontier) []int {
	var missing []int
	for i := 0; i < g.Len(); i++ {
		if g.walls[i] != AllWalls || f.Has(i) {
			continue
		}
		for _, s := range Sides {
			n, ok := g.neighbor(i, s)
			if ok && g.walls[n] != AllWalls {
				missing = append(missing, i)
				break
			}
		}
	}
	return missing
}

func TestCarverScenarios(t *testing.T) {
	t.Run("3x1 row is fully joined", func(t *testing.T) {
		res, err := Generate(context.Background(), 3, 1, 1, 0)
		require.NoError(t, err)

		assert.Equal(t, []Walls{
			Left.Bit() | Top.Bit() | Bottom.Bit(),
			Top.Bit() | Bottom.Bit(),
			Top.Bit() | Right.Bit() | Bottom.Bit(),
		}, res.Walls)
		assert.True(t, res.Complete())
		assert.Equal(t, 0, res.Untouched)
	})

	t.Run("1x1 returns immediately", func(t *testing.T) {
		res, err := Generate(context.Background(), 1, 1, 42, 0)
		require.NoError(t, err)

		assert.Equal(t, []Walls{AllWalls}, res.Walls)
		assert.Equal(t, 0, res.Steps)
		assert.Equal(t, ReasonExhausted, res.Reason)
		assert.Equal(t, 1, res.Untouched)
	})
}

func TestCarverDeterminism(t *testing.T) {
	params := []struct {
		w, h       int
		seed       int64
		iterations int
	}{
		{7, 5, 99, 0},
		{12, 12, 1700000000, 0},
		{9, 3, 5, 10},
	}

	for _, p := range params {
		t.Run(fmt.Sprintf("%dx%d seed %d", p.w, p.h, p.seed), func(t *testing.T) {
			a, err := Generate(context.Background(), p.w, p.h, p.seed, p.iterations)
			require.NoError(t, err)
			b, err := Generate(context.Background(), p.w, p.h, p.seed, p.iterations)
			require.NoError(t, err)

			assert.Equal(t, a.Walls, b.Walls)
			assert.Equal(t, a.Steps, b.Steps)
			assert.Equal(t, a.Reason, b.Reason)
		})
	}
}

func TestCarverInvariants(t *testing.T) {
	for _, dims := range [][2]int{{2, 2}, {3, 4}, {5, 3}, {6, 6}, {10, 4}} {
		for seed := int64(0); seed < 12; seed++ {
			w, h := dims[0], dims[1]
			t.Run(fmt.Sprintf("%dx%d seed %d", w, h, seed), func(t *testing.T) {
				g, err := NewGrid(w, h)
				require.NoError(t, err)
				c := NewCarver(g, seed, 0)

				limit := interiorWalls(w, h) + c.Budget() + 1
				for i := 0; c.State() != Done; i++ {
					require.Less(t, i, limit, "run did not terminate")
					require.NoError(t, c.Step())

					// Boundary and symmetry hold at every step boundary.
					require.NoError(t, g.Validate())
					for _, m := range c.Frontier().Members() {
						assert.Equal(t, AllWalls, g.walls[m], "frontier cell %d was carved", m)
					}
					for _, u := range undiscovered(g, c.Frontier()) {
						assert.Fail(t, "untouched cell next to a carved cell is not in the frontier", "cell %d", u)
					}
				}

				assert.LessOrEqual(t, c.Steps(), interiorWalls(w, h)+g.Len())
				assert.Equal(t, 1, carvedComponents(g))
				assert.Equal(t, ReasonExhausted, c.Reason())
				assert.Zero(t, c.Frontier().Size())
				for i, m := range g.Masks() {
					assert.NotEqual(t, AllWalls, m, "cell %d untouched", i)
				}
			})
		}
	}
}

func TestCarverCoverage(t *testing.T) {
	sizes := [][2]int{
		{2, 2}, {1, 6}, {6, 1}, {1, 2}, {2, 1},
		{3, 4}, {5, 3}, {6, 6}, {10, 4}, {8, 9}, {11, 12},
	}
	for _, dims := range sizes {
		for seed := int64(0); seed < 60; seed++ {
			w, h := dims[0], dims[1]
			t.Run(fmt.Sprintf("%dx%d seed %d", w, h, seed), func(t *testing.T) {
				res, err := Generate(context.Background(), w, h, seed, 0)
				require.NoError(t, err)

				assert.Equal(t, 0, res.Untouched)
				assert.True(t, res.Complete())
				for i, n := range res.WallCounts {
					assert.Less(t, n, 4, "cell %d untouched", i)
				}
			})
		}
	}
}

func TestCarverBudget(t *testing.T) {
	t.Run("Non-positive iterations use the cell count", func(t *testing.T) {
		g, err := NewGrid(4, 5)
		require.NoError(t, err)
		assert.Equal(t, 20, NewCarver(g, 1, 0).Budget())
		assert.Equal(t, 20, NewCarver(g, 1, -3).Budget())
		assert.Equal(t, 7, NewCarver(g, 1, 7).Budget())
	})

	t.Run("Budget of one stops after the first carve", func(t *testing.T) {
		res, err := Generate(context.Background(), 10, 10, 3, 1)
		require.NoError(t, err)

		assert.Equal(t, ReasonBudget, res.Reason)
		assert.False(t, res.Complete())
		assert.Equal(t, 1, res.Steps)
		assert.GreaterOrEqual(t, res.Untouched, 100-4)
	})
}

func TestCarverRun(t *testing.T) {
	t.Run("Cancelled context stops before the first step", func(t *testing.T) {
		g, err := NewGrid(4, 4)
		require.NoError(t, err)
		c := NewCarver(g, 1, 0)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, c.Run(ctx), context.Canceled)
		assert.Equal(t, NoCurrent, c.State())
		assert.Equal(t, []Walls{
			AllWalls, AllWalls, AllWalls, AllWalls,
			AllWalls, AllWalls, AllWalls, AllWalls,
			AllWalls, AllWalls, AllWalls, AllWalls,
			AllWalls, AllWalls, AllWalls, AllWalls,
		}, g.Masks())
	})

	t.Run("Interrupted run resumes to the same maze", func(t *testing.T) {
		want, err := Generate(context.Background(), 8, 6, 11, 0)
		require.NoError(t, err)

		g, err := NewGrid(8, 6)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		yields := 0
		c := NewCarver(g, 11, 0, WithYield(func(context.Context) error {
			yields++
			if yields == 3 {
				cancel()
			}
			return nil
		}))

		assert.ErrorIs(t, c.Run(ctx), context.Canceled)
		assert.Equal(t, 3, c.Steps())
		require.NoError(t, g.Validate())

		require.NoError(t, c.Run(context.Background()))
		assert.Equal(t, want.Walls, g.Masks())
		assert.Equal(t, want.Steps, c.Steps())
	})

	t.Run("Yield error stops the run", func(t *testing.T) {
		stop := errors.New("stop")
		_, err := Generate(context.Background(), 5, 5, 1, 0, WithYield(func(context.Context) error {
			return stop
		}))
		assert.ErrorIs(t, err, stop)
	})

	t.Run("Yield runs between steps", func(t *testing.T) {
		yields := 0
		res, err := Generate(context.Background(), 6, 4, 8, 0, WithYield(func(context.Context) error {
			yields++
			return nil
		}))
		require.NoError(t, err)

		if res.Complete() {
			assert.Equal(t, res.Steps, yields)
		} else {
			assert.Equal(t, res.Steps-1, yields)
		}
	})

	t.Run("A grid cannot be carved twice at once", func(t *testing.T) {
		g, err := NewGrid(4, 4)
		require.NoError(t, err)
		other := NewCarver(g, 2, 0)

		var inner error
		first := NewCarver(g, 1, 0, WithYield(func(context.Context) error {
			if inner == nil {
				inner = other.Step()
			}
			return nil
		}))
		require.NoError(t, first.Run(context.Background()))
		assert.ErrorIs(t, inner, ErrGridInUse)
		assert.Equal(t, 0, other.Steps())

		// Released once the first run is over.
		assert.NoError(t, other.Step())
	})
}

type recordingSink struct {
	masks    []Walls
	frontier map[int]bool
	currents []int
}

func newRecordingSink(n int) *recordingSink {
	masks := make([]Walls, n)
	for i := range masks {
		masks[i] = AllWalls
	}
	return &recordingSink{masks: masks, frontier: map[int]bool{}}
}

func (s *recordingSink) CellChanged(index int, walls Walls) {
	s.masks[index] = walls
}

func (s *recordingSink) FrontierChanged(index int, member bool) {
	if member {
		s.frontier[index] = true
	} else {
		delete(s.frontier, index)
	}
}

func (s *recordingSink) CurrentChanged(index int) {
	s.currents = append(s.currents, index)
}

func TestCarverSink(t *testing.T) {
	g, err := NewGrid(7, 7)
	require.NoError(t, err)
	sink := newRecordingSink(g.Len())
	c := NewCarver(g, 31337, 20, WithSink(sink))

	require.NoError(t, c.Run(context.Background()))

	assert.Equal(t, g.Masks(), sink.masks, "replaying cell events rebuilds the grid")

	members := map[int]bool{}
	for _, m := range c.Frontier().Members() {
		members[m] = true
	}
	assert.Equal(t, members, sink.frontier, "replaying frontier events rebuilds the frontier")

	require.NotEmpty(t, sink.currents)
	cur, ok := c.Current()
	assert.False(t, ok, "no current cell once done")
	assert.Equal(t, cur, sink.currents[len(sink.currents)-1])
}
