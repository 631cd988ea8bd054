package domain

import (
	"context"
	"testing"

	"github.com/beka-birhanu/vinom-carver/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMaze(t *testing.T) {
	t.Run("Nil result", func(t *testing.T) {
		_, err := NewMaze(uuid.New(), nil)
		assert.ErrorIs(t, err, ErrNilResult)
	})

	t.Run("Copies the result and rebuilds the grid", func(t *testing.T) {
		res, err := maze.Generate(context.Background(), 5, 4, 9, 0)
		require.NoError(t, err)

		owner := uuid.New()
		m, err := NewMaze(owner, res)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, m.ID)
		assert.Equal(t, owner, m.OwnerID)
		assert.Equal(t, 5, m.Width)
		assert.Equal(t, 4, m.Height)
		assert.Equal(t, int64(9), m.Seed)
		assert.Equal(t, res.Iterations, m.Iterations)
		assert.Equal(t, res.Steps, m.Steps)
		assert.Equal(t, res.Complete(), m.Complete)
		assert.False(t, m.CreatedAt.IsZero())

		g, err := m.Grid()
		require.NoError(t, err)
		assert.Equal(t, res.Walls, g.Masks())
	})

	t.Run("Corrupt walls are rejected", func(t *testing.T) {
		m := &Maze{Width: 2, Height: 1, Walls: []byte{byte(maze.AllWalls), 0}}
		_, err := m.Grid()
		assert.ErrorIs(t, err, maze.ErrCorruptGrid)
	})
}
