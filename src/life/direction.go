package life

//Direction is one of the 8 compass directions a cell can have a neighbor in
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest

	numDirections = 8
)

var (
	directionNames = [numDirections]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

	//compass offsets, y grows to the north
	directionOffsets = [numDirections][2]int{
		North:     {0, +1},
		NorthEast: {+1, +1},
		East:      {+1, 0},
		SouthEast: {+1, -1},
		South:     {0, -1},
		SouthWest: {-1, -1},
		West:      {-1, 0},
		NorthWest: {-1, +1},
	}

	allDirections = [numDirections]Direction{
		North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest,
	}
)

//Directions returns the fixed set of compass directions in clockwise order
func Directions() [numDirections]Direction {
	return allDirections
}

//Valid reports whether d is one of the 8 defined compass directions
func (d Direction) Valid() bool {
	return d >= North && d < numDirections
}

//Offset returns the coordinate delta of the direction
func (d Direction) Offset() (dx int, dy int) {
	return directionOffsets[d][0], directionOffsets[d][1]
}

//Opposite returns the reverse compass direction
func (d Direction) Opposite() Direction {
	return (d + numDirections/2) % numDirections
}

func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return directionNames[d]
}
