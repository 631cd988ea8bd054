package maze

import (
	"context"
	"time"
)

// Sink receives every change the carver makes, in order, for progressive display.
// Implementations must not call back into the carver.
type Sink interface {
	// CellChanged is called after the wall mask of a cell changed.
	CellChanged(index int, walls Walls)

	// FrontierChanged is called after a cell entered or left the frontier.
	FrontierChanged(index int, member bool)
}

// CursorSink is an optional extension of Sink notified when the current cell moves.
type CursorSink interface {
	CurrentChanged(index int)
}

// YieldFunc is called once after every completed step. It may block to pace
// the run and must not touch the carver. A non-nil error stops the run.
type YieldFunc func(ctx context.Context) error

// Delay returns a YieldFunc that waits d between steps, or until ctx is done.
func Delay(d time.Duration) YieldFunc {
	return func(ctx context.Context) error {
		if d <= 0 {
			return ctx.Err()
		}
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			return nil
		}
	}
}

// Option configures a Carver.
type Option func(*Carver)

// WithSink reports every wall and frontier change to s.
func WithSink(s Sink) Option {
	return func(c *Carver) {
		if s == nil {
			return
		}
		c.sink = s
		if cs, ok := s.(CursorSink); ok {
			c.cursor = cs
		}
	}
}

// WithYield calls y between steps of Run.
func WithYield(y YieldFunc) Option {
	return func(c *Carver) {
		c.yield = y
	}
}

type nopSink struct{}

func (nopSink) CellChanged(int, Walls)    {}
func (nopSink) FrontierChanged(int, bool) {}
