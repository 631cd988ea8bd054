package maze

import "context"

// State is the phase of a carving run.
type State int

const (
	// NoCurrent is the initial state: no cell has been chosen yet.
	NoCurrent State = iota
	// HaveCurrent means the carver is walking from a current cell.
	HaveCurrent
	// Done is terminal.
	Done
)

func (s State) String() string {
	switch s {
	case NoCurrent:
		return "NoCurrent"
	case HaveCurrent:
		return "HaveCurrent"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}

// Reason tells why a run reached Done.
type Reason int

const (
	ReasonNone Reason = iota
	// ReasonExhausted: the current cell had no candidate and the frontier was empty.
	ReasonExhausted
	// ReasonBudget: the iteration budget reached zero.
	ReasonBudget
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonExhausted:
		return "exhausted"
	case ReasonBudget:
		return "budget"
	default:
		return "unknown"
	}
}

type candidate struct {
	index int
	side  Side
}

// Carver carves a single grid. It bundles everything one run needs: the
// grid, the frontier and the random stream. A Carver is not safe for
// concurrent use, and a grid can only be carved by one Carver at a time.
type Carver struct {
	grid     *Grid
	frontier *Frontier
	rand     *Random

	sink   Sink
	cursor CursorSink
	yield  YieldFunc

	state   State
	reason  Reason
	current int
	budget  int
	steps   int
}

// NewCarver prepares a run over grid. A non-positive iterations value
// budgets one event per cell.
func NewCarver(grid *Grid, seed int64, iterations int, opts ...Option) *Carver {
	if iterations <= 0 {
		iterations = grid.Len()
	}

	c := &Carver{
		grid:     grid,
		frontier: NewFrontier(),
		rand:     NewRandom(seed),
		sink:     nopSink{},
		budget:   iterations,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Grid returns the grid being carved.
func (c *Carver) Grid() *Grid {
	return c.grid
}

// Frontier returns the frontier of the run.
func (c *Carver) Frontier() *Frontier {
	return c.frontier
}

// State returns the current phase.
func (c *Carver) State() State {
	return c.state
}

// Reason returns why the run finished, or ReasonNone while it is running.
func (c *Carver) Reason() Reason {
	return c.reason
}

// Current returns the current cell index and whether there is one.
func (c *Carver) Current() (int, bool) {
	return c.current, c.state == HaveCurrent
}

// Budget returns the remaining iteration budget.
func (c *Carver) Budget() int {
	return c.budget
}

// Steps returns the number of merge and jump steps taken so far.
func (c *Carver) Steps() int {
	return c.steps
}

// Step performs one iteration of the algorithm. It is a no-op once Done.
func (c *Carver) Step() error {
	if !c.grid.acquire() {
		return ErrGridInUse
	}
	defer c.grid.release()
	return c.step()
}

// Run steps until Done, calling the yield function between steps.
// If ctx is cancelled the run stops between two steps and the grid is left
// in a consistent state; the same Carver may be run again to continue.
func (c *Carver) Run(ctx context.Context) error {
	if !c.grid.acquire() {
		return ErrGridInUse
	}
	defer c.grid.release()

	for c.state != Done {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.step(); err != nil {
			return err
		}
		if c.state != Done && c.yield != nil {
			if err := c.yield(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Carver) step() error {
	if c.state == Done {
		return nil
	}

	if c.state == NoCurrent {
		x := c.rand.UniformInt(0, c.grid.width-1)
		y := c.rand.UniformInt(0, c.grid.height-1)
		c.state = HaveCurrent
		c.setCurrent(c.grid.index(x, y))
	}

	// The cell being visited is no longer a frontier cell.
	c.mark(c.current, false)

	candidates := c.discover(c.current)
	if len(candidates) == 0 {
		if c.frontier.Size() == 0 {
			c.finish(ReasonExhausted)
			return nil
		}

		next, err := c.frontier.Pick(c.rand)
		if err != nil {
			return err
		}
		c.setCurrent(next)
		c.connect(next)
		c.budget--
	} else {
		next, err := c.choose(candidates)
		if err != nil {
			return err
		}
		if c.grid.walls[next.index] == AllWalls {
			c.budget--
		}
		c.merge(c.current, next.side, next.index)
		c.setCurrent(next.index)
	}

	c.steps++
	if c.budget <= 0 {
		c.finish(ReasonBudget)
	}
	return nil
}

// discover refreshes the frontier around a and returns the neighbors whose
// shared wall with a is still standing on both sides, in side order.
func (c *Carver) discover(a int) []candidate {
	candidates := make([]candidate, 0, len(Sides))
	for _, s := range Sides {
		b, ok := c.grid.neighbor(a, s)
		if !ok {
			continue
		}
		c.mark(b, c.grid.walls[b] == AllWalls)
		if c.grid.walls[a].Has(s) && c.grid.walls[b].Has(s.Opposite()) {
			candidates = append(candidates, candidate{index: b, side: s})
		}
	}
	return candidates
}

// choose keeps the candidates with the highest wall count and draws one.
func (c *Carver) choose(candidates []candidate) (candidate, error) {
	if len(candidates) == 0 {
		return candidate{}, ErrEmptyCandidates
	}

	most := 0
	for _, cd := range candidates {
		if n := c.grid.walls[cd.index].Count(); n > most {
			most = n
		}
	}

	survivors := make([]candidate, 0, len(candidates))
	for _, cd := range candidates {
		if c.grid.walls[cd.index].Count() >= most {
			survivors = append(survivors, cd)
		}
	}

	return survivors[c.rand.UniformInt(0, len(survivors)-1)], nil
}

func (c *Carver) setCurrent(index int) {
	c.current = index
	if c.cursor != nil {
		c.cursor.CurrentChanged(index)
	}
}

func (c *Carver) mark(index int, fullyWalled bool) {
	if c.frontier.Mark(index, fullyWalled) {
		c.sink.FrontierChanged(index, fullyWalled)
	}
}

func (c *Carver) finish(r Reason) {
	c.state = Done
	c.reason = r
}
