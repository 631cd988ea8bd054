package domain

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-carver/maze"
	"github.com/google/uuid"
)

var (
	ErrNilResult    = errors.New("nil generation result")
	ErrMazeNotFound = errors.New("maze not found")
)

// Maze is a generated maze as it is stored and served.
type Maze struct {
	ID         uuid.UUID `bson:"_id"`
	OwnerID    uuid.UUID `bson:"ownerID"`
	Width      int       `bson:"width"`
	Height     int       `bson:"height"`
	Seed       int64     `bson:"seed"`
	Iterations int       `bson:"iterations"`
	Walls      []byte    `bson:"walls"` // one wall mask per cell, in index order
	Steps      int       `bson:"steps"`
	Complete   bool      `bson:"complete"`
	CreatedAt  time.Time `bson:"createdAt"`
}

// NewMaze builds a record for a finished generation run owned by owner.
func NewMaze(owner uuid.UUID, res *maze.Result) (*Maze, error) {
	if res == nil {
		return nil, ErrNilResult
	}

	walls := make([]byte, len(res.Walls))
	for i, w := range res.Walls {
		walls[i] = byte(w)
	}

	return &Maze{
		ID:         uuid.New(),
		OwnerID:    owner,
		Width:      res.Width,
		Height:     res.Height,
		Seed:       res.Seed,
		Iterations: res.Iterations,
		Walls:      walls,
		Steps:      res.Steps,
		Complete:   res.Complete(),
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// Grid rebuilds the stored walls into a validated grid.
func (m *Maze) Grid() (*maze.Grid, error) {
	masks := make([]maze.Walls, len(m.Walls))
	for i, b := range m.Walls {
		masks[i] = maze.Walls(b)
	}
	return maze.LoadGrid(m.Width, m.Height, masks)
}
