package i

import (
	"context"
	"time"

	dmn "github.com/beka-birhanu/vinom-carver/domain"
	"github.com/beka-birhanu/vinom-carver/maze"
	"github.com/google/uuid"
)

// MazeGenerator generates, stores and replays mazes.
type MazeGenerator interface {
	Generate(ctx context.Context, owner uuid.UUID, p dmn.MazeParams) (*dmn.Maze, error)
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error)
	Recent(ctx context.Context, owner uuid.UUID) ([]*dmn.Maze, error)

	// Stream carves p while reporting every change to sink, waiting delay between steps.
	Stream(ctx context.Context, p dmn.MazeParams, sink maze.Sink, delay time.Duration) (*maze.Result, error)
}
