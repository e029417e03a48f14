package game

import "fmt"

// Position is an axial coordinate on the hex lattice.
type Position struct {
	X int
	Y int
}

func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the six lattice axes.
type Direction int

const (
	N Direction = iota
	NE
	SE
	S
	SW
	NW
)

// Directions lists every direction a ring can travel in.
var Directions = [6]Direction{N, NE, SE, S, SW, NW}

// LineAxes are the three directions a line of markers can run along; the
// other three are their opposites.
var LineAxes = [3]Direction{N, NE, SE}

var directionVectors = [6]Position{
	N:  {0, 1},
	NE: {1, 1},
	SE: {1, 0},
	S:  {0, -1},
	SW: {-1, -1},
	NW: {-1, 0},
}

var directionNames = [6]string{"N", "NE", "SE", "S", "SW", "NW"}

func (d Direction) Vector() Position {
	return directionVectors[d]
}

func (d Direction) Opposite() Direction {
	return (d + 3) % 6
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}
