package mazegen

// Direction identifies one of the four cardinal directions a cell wall
// can face. The numeric values double as wall bit positions in a cell,
// so the hex encoding of a maze map is stable across versions.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Wall bits of a cell value. Bit i set means the wall toward Direction(i)
// is present. flagOnWalk marks a cell as part of the random walk currently
// being carved; it never survives into a finished map.
const (
	wallNorth = uint8(1) << North
	wallEast  = uint8(1) << East
	wallSouth = uint8(1) << South
	wallWest  = uint8(1) << West

	allWalls = wallNorth | wallEast | wallSouth | wallWest

	flagOnWalk = uint8(1) << 4
)

var directionSymbols = map[Direction]byte{
	North: 'N',
	East:  'E',
	South: 'S',
	West:  'W',
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Symbol returns the single-character representation used in path
// direction strings.
func (d Direction) Symbol() byte {
	return directionSymbols[d]
}

// bit returns the wall bit for the direction.
func (d Direction) bit() uint8 {
	return uint8(1) << d
}
