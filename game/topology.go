package game

import (
	"fmt"
	"sync"
)

// boardRadiusSquared bounds the valid cells: a cell (x, y) is on the board
// when its cartesian distance to the centre is at most 4.7 lattice units,
// which in integer form is 3x² + (2y - x)² <= 88.
const boardRadiusSquared = 88

// boardExtent is the largest |x| or |y| a valid cell can have.
const boardExtent = 5

// Topology is the static geometry of the board: the valid cells and, for each
// cell and direction, the ordered cells up to the board edge.
type Topology struct {
	positions []Position
	index     map[Position]int
	rays      [][6][]Position
}

var (
	standardTopology *Topology
	once             sync.Once
)

// StandardTopology returns the 85-cell YINSH board. It is built on first use
// and shared afterwards; Topology is never mutated after construction.
func StandardTopology() *Topology {
	once.Do(func() {
		standardTopology = NewTopology()
	})
	return standardTopology
}

// NewTopology builds the board geometry and precomputes all rays.
func NewTopology() *Topology {
	t := &Topology{
		index: make(map[Position]int),
	}

	// Column by column, bottom to top
	for x := -boardExtent; x <= boardExtent; x++ {
		for y := -boardExtent; y <= boardExtent; y++ {
			p := Pos(x, y)
			if onBoard(p) {
				t.index[p] = len(t.positions)
				t.positions = append(t.positions, p)
			}
		}
	}

	t.rays = make([][6][]Position, len(t.positions))
	for i, p := range t.positions {
		for _, d := range Directions {
			var ray []Position
			for next := p.Add(d.Vector()); onBoard(next); next = next.Add(d.Vector()) {
				ray = append(ray, next)
			}
			t.rays[i][d] = ray
		}
	}
	return t
}

func onBoard(p Position) bool {
	dx := 2*p.Y - p.X
	return 3*p.X*p.X+dx*dx <= boardRadiusSquared
}

// Len returns the number of valid cells.
func (t *Topology) Len() int {
	return len(t.positions)
}

// Positions returns a copy of all valid cells in a fixed order.
func (t *Topology) Positions() []Position {
	out := make([]Position, len(t.positions))
	copy(out, t.positions)
	return out
}

func (t *Topology) Contains(p Position) bool {
	_, ok := t.index[p]
	return ok
}

// mustIndex panics for positions off the lattice.
func (t *Topology) mustIndex(p Position) int {
	i, ok := t.index[p]
	if !ok {
		panic(fmt.Sprintf("position %v is not on the board", p))
	}
	return i
}

// Ray returns the cells reached by walking from p in direction d, closest
// first, ending at the board edge. The returned slice is shared and must not
// be modified.
func (t *Topology) Ray(p Position, d Direction) []Position {
	return t.rays[t.mustIndex(p)][d]
}

// DirectionTo reports the direction and number of steps from one cell to
// another lying on one of its rays.
func (t *Topology) DirectionTo(from, to Position) (Direction, int, bool) {
	for _, d := range Directions {
		for i, p := range t.Ray(from, d) {
			if p == to {
				return d, i + 1, true
			}
		}
	}
	return 0, 0, false
}
