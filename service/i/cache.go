package i

import (
	"context"

	"github.com/beka-birhanu/vinom-carver/maze"
)

// MazeCache keeps generation results keyed by their parameters.
type MazeCache interface {
	// Get returns the cached result for key. ok is false on a miss.
	Get(ctx context.Context, key string) (res *maze.Result, ok bool, err error)

	// Put stores res under key.
	Put(ctx context.Context, key string, res *maze.Result) error

	// Lock takes a lock on key shared by every instance. The returned func releases it.
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// SortedIndex keeps members ordered by score under a key.
type SortedIndex interface {
	// Add inserts or rescores member under key.
	Add(ctx context.Context, key string, score float64, member string) error

	// Top returns up to limit members with the highest scores, highest first.
	Top(ctx context.Context, key string, limit int64) ([]string, error)

	// Count returns the number of members under key.
	Count(ctx context.Context, key string) int64
}
