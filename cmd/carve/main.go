// Command carve generates a maze in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/beka-birhanu/vinom-carver/maze"
	log "github.com/sirupsen/logrus"
)

var (
	width      = flag.Int("width", 16, "maze width in cells")
	height     = flag.Int("height", 12, "maze height in cells")
	seed       = flag.Int64("seed", 0, "random seed, picked from the clock when not given")
	iterations = flag.Int("iterations", 0, "carving budget, 0 for one per cell")
	watch      = flag.Bool("watch", false, "animate the carving")
	delay      = flag.Duration("delay", 30*time.Millisecond, "pause between steps when watching")
	colored    = flag.Bool("color", true, "colour the output")
)

func main() {
	flag.Parse()
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	s := *seed
	if !isSet(flag.CommandLine, "seed") {
		s = time.Now().UnixNano()
		log.Infof("Using seed %d", s)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		res *maze.Result
		err error
	)
	if *watch {
		res, err = watchCarve(ctx, *width, *height, s, *iterations, *delay)
	} else {
		res, err = maze.Generate(ctx, *width, *height, s, *iterations)
	}
	if errors.Is(err, context.Canceled) {
		log.Warn("Carving aborted")
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("Carving failed: %v", err)
	}

	if w := drawingWidth(res.Width); !fitsTerminal(w) {
		log.Warnf("Maze is %d columns wide and will wrap in this terminal", w)
	}
	fmt.Print(render(res, *colored))

	log.WithFields(log.Fields{
		"seed":      res.Seed,
		"steps":     res.Steps,
		"reason":    res.Reason,
		"untouched": res.Untouched,
	}).Info("Carved")
}

// isSet reports whether the named flag was given on the command line.
func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
