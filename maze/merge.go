package maze

// merge joins a to its neighbor b on side s of a.
//
// Before opening the shared wall it also opens the walls of a that run
// perpendicular to s, wherever both a and the cell behind that wall still
// have it. This keeps the walk from leaving one-cell alcoves on either side.
func (c *Carver) merge(a int, s Side, b int) {
	for _, p := range s.Perpendicular() {
		n, ok := c.grid.neighbor(a, p)
		if !ok {
			continue
		}
		if c.grid.walls[a].Has(p) && c.grid.walls[n].Has(p.Opposite()) {
			c.open(a, p, n)
		}
	}
	c.open(a, s, b)
}

// connect joins a freshly jumped-to cell to the first already carved
// neighbor, trying sides in priority order. Only that one wall is opened.
// It reports whether a connection was made.
func (c *Carver) connect(a int) bool {
	for _, s := range Sides {
		n, ok := c.grid.neighbor(a, s)
		if !ok || c.grid.walls[n] == AllWalls {
			continue
		}
		c.open(a, s, n)
		return true
	}
	return false
}

// open clears the wall between a and b on both cells.
func (c *Carver) open(a int, s Side, b int) {
	c.grid.setWall(a, s, false)
	c.grid.setWall(b, s.Opposite(), false)
	c.touch(a)
	c.touch(b)
}

// touch reports a changed cell and refreshes the frontier around it. Cells
// carved by smoothing never become current, so their untouched neighbors are
// discovered here.
func (c *Carver) touch(index int) {
	w := c.grid.walls[index]
	c.sink.CellChanged(index, w)
	c.mark(index, w == AllWalls)
	for _, s := range Sides {
		if n, ok := c.grid.neighbor(index, s); ok {
			c.mark(n, c.grid.walls[n] == AllWalls)
		}
	}
}
