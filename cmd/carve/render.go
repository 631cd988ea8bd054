package main

import (
	"os"
	"strings"

	"github.com/beka-birhanu/vinom-carver/maze"
	"github.com/gookit/color"
	"golang.org/x/term"
)

const (
	cellWidth     = 4
	untouchedFill = "░░░"
)

var (
	colorWall      = color.Style{color.FgCyan}
	colorUntouched = color.Style{color.FgDarkGray}
)

// drawingWidth is the number of columns the ASCII drawing of a maze uses.
func drawingWidth(cells int) int {
	return cells*cellWidth + 1
}

// fitsTerminal reports whether columns fit stdout. Unknown sizes fit.
func fitsTerminal(columns int) bool {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return true
	}
	return columns <= w
}

// render draws the result as ASCII art. When colored, walls are tinted and
// cells the carver never reached are shaded.
func render(res *maze.Result, colored bool) string {
	plain := res.String()
	if !colored {
		return plain
	}

	lines := strings.Split(strings.TrimSuffix(plain, "\n"), "\n")
	var b strings.Builder
	for row, line := range lines {
		if row%2 == 0 {
			b.WriteString(colorWall.Sprint(line))
			b.WriteByte('\n')
			continue
		}

		y := row / 2
		// Cell rows alternate a wall column with a three character interior.
		b.WriteString(colorWall.Sprint(line[:1]))
		for x := 0; x < res.Width; x++ {
			start := 1 + x*cellWidth
			if res.Walls[x+res.Width*y] == maze.AllWalls {
				b.WriteString(colorUntouched.Sprint(untouchedFill))
			} else {
				b.WriteString(line[start : start+cellWidth-1])
			}
			b.WriteString(colorWall.Sprint(line[start+cellWidth-1 : start+cellWidth]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
