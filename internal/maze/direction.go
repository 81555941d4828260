package maze

// Direction represents a cardinal direction. Its value is the wall bit it
// controls in a cell mask.
type Direction uint8

const (
	North Direction = 1
	East  Direction = 2
	South Direction = 4
	West  Direction = 8
)

// AllWalls is the mask of a fully closed cell.
const AllWalls uint8 = uint8(North | East | South | West)

// AllDirections returns the four cardinal directions in enumeration order.
// Neighbor ordering depends on it, so seeded runs stay reproducible.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// Bit returns the wall bit for this direction
func (d Direction) Bit() uint8 {
	return uint8(d)
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	}
	return d
}

// Delta returns the (dx, dy) unit step. North is up (y decreases).
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Letter returns the single-letter code used in path strings
func (d Direction) Letter() byte {
	switch d {
	case North:
		return 'N'
	case East:
		return 'E'
	case South:
		return 'S'
	case West:
		return 'W'
	}
	return '?'
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}

// DirectionFromLetter maps a path letter (either case) back to its direction.
func DirectionFromLetter(c byte) (Direction, bool) {
	switch c {
	case 'N', 'n':
		return North, true
	case 'E', 'e':
		return East, true
	case 'S', 's':
		return South, true
	case 'W', 'w':
		return West, true
	}
	return 0, false
}

// directionBetween returns the direction that leads from a to b when the two
// points are 4-adjacent.
func directionBetween(a, b Point) (Direction, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	for _, dir := range AllDirections() {
		ddx, ddy := dir.Delta()
		if ddx == dx && ddy == dy {
			return dir, true
		}
	}
	return 0, false
}
