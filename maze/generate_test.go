package maze

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("Invalid dimensions", func(t *testing.T) {
		_, err := Generate(context.Background(), 0, 5, 1, 0)
		assert.ErrorIs(t, err, ErrInvalidDimension)

		_, err = Generate(context.Background(), 5, -1, 1, 0)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("Result describes the grid", func(t *testing.T) {
		res, err := Generate(context.Background(), 6, 4, 77, 0)
		require.NoError(t, err)

		assert.Equal(t, 6, res.Width)
		assert.Equal(t, 4, res.Height)
		assert.Equal(t, int64(77), res.Seed)
		assert.Equal(t, 24, res.Iterations)
		require.Len(t, res.Walls, 24)
		require.Len(t, res.WallCounts, 24)

		untouched := 0
		for i, w := range res.Walls {
			assert.Equal(t, w.Count(), res.WallCounts[i])
			if w == AllWalls {
				untouched++
			}
		}
		assert.Equal(t, untouched, res.Untouched)

		g, err := res.Grid()
		require.NoError(t, err)
		assert.Equal(t, g.String(), res.String())
	})

	t.Run("Explicit budget is reported", func(t *testing.T) {
		res, err := Generate(context.Background(), 6, 4, 77, 5)
		require.NoError(t, err)
		assert.Equal(t, 5, res.Iterations)
	})
}

func TestDelay(t *testing.T) {
	t.Run("Waits for the duration", func(t *testing.T) {
		start := time.Now()
		require.NoError(t, Delay(5*time.Millisecond)(context.Background()))
		assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
	})

	t.Run("Returns early when cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, Delay(time.Hour)(ctx), context.Canceled)
	})

	t.Run("Zero delay does not block", func(t *testing.T) {
		assert.NoError(t, Delay(0)(context.Background()))
	})
}
