package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandom(t *testing.T) {
	t.Run("First draw from seed 1", func(t *testing.T) {
		r := NewRandom(1)
		// t = 1103515245*1 + 12345 = 1103527590, 1103527590 mod 65536 = 32422
		assert.Equal(t, 32422, r.UniformInt(0, 0xFFFF))
	})

	t.Run("Same seed gives same sequence", func(t *testing.T) {
		a := NewRandom(20240601)
		b := NewRandom(20240601)
		for i := 0; i < 1000; i++ {
			assert.Equal(t, a.UniformInt(0, 99), b.UniformInt(0, 99))
		}
	})

	t.Run("Seed resets the state", func(t *testing.T) {
		r := NewRandom(7)
		first := []int{r.UniformInt(0, 1000), r.UniformInt(0, 1000), r.UniformInt(0, 1000)}

		r.Seed(7)
		again := []int{r.UniformInt(0, 1000), r.UniformInt(0, 1000), r.UniformInt(0, 1000)}
		assert.Equal(t, first, again)
	})

	t.Run("Only the low 32 bits of the seed matter", func(t *testing.T) {
		a := NewRandom(-1)
		b := NewRandom(0xFFFFFFFF)
		c := NewRandom(1<<32 + 5)
		d := NewRandom(5)
		for i := 0; i < 100; i++ {
			assert.Equal(t, a.UniformInt(0, 500), b.UniformInt(0, 500))
			assert.Equal(t, c.UniformInt(0, 500), d.UniformInt(0, 500))
		}
	})

	t.Run("Draws stay within bounds", func(t *testing.T) {
		r := NewRandom(42)
		ranges := []struct{ min, max int }{{0, 0}, {0, 3}, {-5, 5}, {10, 11}, {0, 1 << 20}}
		for _, rg := range ranges {
			for i := 0; i < 2000; i++ {
				v := r.UniformInt(rg.min, rg.max)
				assert.GreaterOrEqual(t, v, rg.min)
				assert.LessOrEqual(t, v, rg.max)
			}
		}
	})

	t.Run("Small range is covered", func(t *testing.T) {
		r := NewRandom(42)
		seen := map[int]bool{}
		for i := 0; i < 1000; i++ {
			seen[r.UniformInt(0, 3)] = true
		}
		assert.Len(t, seen, 4)
	})

	t.Run("Empty range panics", func(t *testing.T) {
		r := NewRandom(1)
		assert.Panics(t, func() { r.UniformInt(3, 2) })
	})
}
