package maze

import "fmt"

const (
	randMultiplier = 1103515245
	randModulus    = 0x10000
	randCarry      = 12345
)

// Random is a multiply-with-carry generator with a 16-bit output.
// Every carving run owns its own Random; two runs never share one.
type Random struct {
	x uint64
	c uint64
}

// NewRandom returns a generator seeded with seed.
func NewRandom(seed int64) *Random {
	r := &Random{}
	r.Seed(seed)
	return r
}

// Seed resets the generator. Only the low 32 bits of seed are used.
func (r *Random) Seed(seed int64) {
	r.x = uint64(uint32(seed))
	r.c = randCarry
}

// next advances the state and returns the new running value in [0, randModulus).
func (r *Random) next() uint64 {
	t := randMultiplier*r.x + r.c
	r.x = t % randModulus
	r.c = t / randModulus
	return r.x
}

// UniformInt returns an integer in [min, max], both inclusive.
// It panics if max < min.
func (r *Random) UniformInt(min, max int) int {
	if max < min {
		panic(fmt.Sprintf("maze: UniformInt called with empty range [%d, %d]", min, max))
	}
	n := uint64(max - min + 1)
	return min + int((r.next()*n)>>16)
}
