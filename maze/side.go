package maze

import "math/bits"

// Side identifies one of the four walls of a cell.
// The numeric value of a side is also its bit position in a Walls mask.
type Side uint8

const (
	Left Side = iota
	Top
	Right
	Bottom
)

// Sides lists every side in the fixed priority order used by the carver.
var Sides = [...]Side{Left, Top, Right, Bottom}

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case Left:
		return "Left"
	case Top:
		return "Top"
	case Right:
		return "Right"
	case Bottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the side is one of the four cell sides.
func (s Side) IsValid() bool {
	return s <= Bottom
}

// Opposite returns the side facing s across a shared wall (Left<->Right, Top<->Bottom).
func (s Side) Opposite() Side {
	return (s + 2) % 4
}

// Delta returns the column and row offsets of the neighbor on this side.
func (s Side) Delta() (dx, dy int) {
	switch s {
	case Left:
		return -1, 0
	case Top:
		return 0, -1
	case Right:
		return 1, 0
	case Bottom:
		return 0, 1
	default:
		return 0, 0
	}
}

// Perpendicular returns the two sides at right angles to s, in priority order.
func (s Side) Perpendicular() [2]Side {
	if s == Left || s == Right {
		return [2]Side{Top, Bottom}
	}
	return [2]Side{Left, Right}
}

// Bit returns the mask bit of the side.
func (s Side) Bit() Walls {
	return 1 << s
}

// Walls is a 4-bit mask of the walls present around a cell.
type Walls uint8

// AllWalls is the mask of a cell nobody has carved yet.
const AllWalls Walls = 1<<Left | 1<<Top | 1<<Right | 1<<Bottom

// Has reports whether the wall on side s is present.
func (w Walls) Has(s Side) bool {
	return w&s.Bit() != 0
}

// Count returns the number of walls present.
func (w Walls) Count() int {
	return bits.OnesCount8(uint8(w & AllWalls))
}

func (w Walls) with(s Side, present bool) Walls {
	if present {
		return w | s.Bit()
	}
	return w &^ s.Bit()
}
