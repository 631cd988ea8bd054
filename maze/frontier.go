package maze

import (
	"math/bits"

	"github.com/zyedidia/generic/mapset"
)

// Frontier is the set of discovered cells that still have all four walls.
//
// Members keep their insertion order so that a draw with the same Random
// state always returns the same cell. Removal leaves a tombstone in the
// order; a Fenwick tree over the live slots finds the k-th member in
// O(log n).
type Frontier struct {
	members mapset.Set[int]
	slot    map[int]int
	order   []int
	live    []int // Fenwick tree over order slots; live[i-1] is node i
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		members: mapset.New[int](),
		slot:    map[int]int{},
	}
}

// Mark adds index when fullyWalled and removes it otherwise.
// It reports whether membership changed.
func (f *Frontier) Mark(index int, fullyWalled bool) bool {
	if fullyWalled {
		if f.members.Has(index) {
			return false
		}
		f.members.Put(index)
		f.slot[index] = len(f.order)
		f.order = append(f.order, index)
		f.appendLive()
		return true
	}

	if !f.members.Has(index) {
		return false
	}
	f.members.Remove(index)
	f.addLive(f.slot[index], -1)
	delete(f.slot, index)
	if len(f.order) > 64 && 2*f.members.Size() < len(f.order) {
		f.compact()
	}
	return true
}

// Has reports whether index is a member.
func (f *Frontier) Has(index int) bool {
	return f.members.Has(index)
}

// Size returns the number of members.
func (f *Frontier) Size() int {
	return f.members.Size()
}

// Members returns the members in insertion order.
func (f *Frontier) Members() []int {
	out := make([]int, 0, f.members.Size())
	for i, m := range f.order {
		if s, ok := f.slot[m]; ok && s == i {
			out = append(out, m)
		}
	}
	return out
}

// Pick draws a member uniformly at random.
func (f *Frontier) Pick(r *Random) (int, error) {
	n := f.members.Size()
	if n == 0 {
		return 0, ErrEmptyFrontier
	}
	return f.order[f.nth(r.UniformInt(0, n-1))], nil
}

// Clear removes every member.
func (f *Frontier) Clear() {
	f.members = mapset.New[int]()
	f.slot = map[int]int{}
	f.order = f.order[:0]
	f.live = f.live[:0]
}

// appendLive extends the tree with a live slot at the end of order.
func (f *Frontier) appendLive() {
	i := len(f.live) + 1
	v := 1
	for j := i - 1; j > i-(i&-i); j -= j & -j {
		v += f.live[j-1]
	}
	f.live = append(f.live, v)
}

func (f *Frontier) addLive(slot, delta int) {
	for i := slot + 1; i <= len(f.live); i += i & -i {
		f.live[i-1] += delta
	}
}

// nth returns the order slot of the k-th live member, counting from zero.
func (f *Frontier) nth(k int) int {
	pos, rem := 0, k+1
	for step := 1 << (bits.Len(uint(len(f.live))) - 1); step > 0; step >>= 1 {
		if next := pos + step; next <= len(f.live) && f.live[next-1] < rem {
			pos = next
			rem -= f.live[next-1]
		}
	}
	return pos
}

// compact drops tombstones, keeping the live members in order.
func (f *Frontier) compact() {
	kept := f.Members()
	f.order = f.order[:0]
	f.live = f.live[:0]
	for i, m := range kept {
		f.slot[m] = i
		f.order = append(f.order, m)
		f.appendLive()
	}
}
