package main

import (
	"context"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-carver/maze"
	"github.com/gdamore/tcell/v2"
)

var (
	styleWall      = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleFrontier  = tcell.StyleDefault.Background(tcell.ColorNavy)
	styleUntouched = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCurrent   = tcell.StyleDefault.Background(tcell.ColorRed)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// viewer mirrors the carver's grid from sink events and draws it on a tcell
// screen between steps.
type viewer struct {
	screen   tcell.Screen
	width    int
	height   int
	walls    []maze.Walls
	frontier []bool
	current  int
	steps    int
}

func newViewer(screen tcell.Screen, width, height int) *viewer {
	walls := make([]maze.Walls, width*height)
	for i := range walls {
		walls[i] = maze.AllWalls
	}
	return &viewer{
		screen:   screen,
		width:    width,
		height:   height,
		walls:    walls,
		frontier: make([]bool, width*height),
		current:  -1,
	}
}

func (v *viewer) CellChanged(index int, walls maze.Walls) {
	v.walls[index] = walls
}

func (v *viewer) FrontierChanged(index int, member bool) {
	v.frontier[index] = member
}

func (v *viewer) CurrentChanged(index int) {
	v.current = index
}

// yield draws the finished step, then waits d.
func (v *viewer) yield(d time.Duration) maze.YieldFunc {
	wait := maze.Delay(d)
	return func(ctx context.Context) error {
		v.steps++
		v.draw("carving, esc to stop")
		return wait(ctx)
	}
}

func (v *viewer) draw(status string) {
	v.screen.Clear()

	g, err := maze.LoadGrid(v.width, v.height, v.walls)
	if err != nil {
		drawText(v.screen, 0, 0, err.Error(), styleStatus)
		v.screen.Show()
		return
	}

	lines := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	for y, line := range lines {
		drawText(v.screen, 0, y, line, styleWall)
	}

	for i, w := range v.walls {
		style, fill := tcell.StyleDefault, ' '
		switch {
		case i == v.current:
			style = styleCurrent
		case v.frontier[i]:
			style = styleFrontier
		case w == maze.AllWalls:
			style, fill = styleUntouched, '░'
		default:
			continue
		}
		x, y := i%v.width, i/v.width
		for dx := 0; dx < cellWidth-1; dx++ {
			v.screen.SetContent(1+x*cellWidth+dx, 1+2*y, fill, nil, style)
		}
	}

	drawText(v.screen, 0, len(lines), status, styleStatus)
	v.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// listen cancels ctx on Esc, q or Ctrl-C, and signals any key on keys.
func listen(screen tcell.Screen, cancel context.CancelFunc, keys chan<- struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				cancel()
			}
			select {
			case keys <- struct{}{}:
			default:
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// watchCarve carves on a full screen view and waits for a key once done.
func watchCarve(ctx context.Context, width, height int, seed int64, iterations int, d time.Duration) (*maze.Result, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	defer screen.Fini()

	return carveOn(ctx, screen, width, height, seed, iterations, d)
}

func carveOn(ctx context.Context, screen tcell.Screen, width, height int, seed int64, iterations int, d time.Duration) (*maze.Result, error) {
	if width <= 0 || height <= 0 {
		return nil, maze.ErrInvalidDimension
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan struct{}, 1)
	go listen(screen, cancel, keys)

	v := newViewer(screen, width, height)
	res, err := maze.Generate(ctx, width, height, seed, iterations,
		maze.WithSink(v),
		maze.WithYield(v.yield(d)),
	)
	if err != nil {
		return nil, err
	}

	v.current = -1
	v.draw("done (" + res.Reason.String() + "), press any key")
	select {
	case <-keys:
	case <-ctx.Done():
	}
	return res, nil
}
