package game

import "fmt"

// Color identifies a player and the pieces they own.
type Color int

const (
	NoColor Color = iota
	White
	Black
)

// Colors lists both players in turn order of a standard game.
var Colors = [2]Color{White, Black}

func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		panic(fmt.Sprintf("color %d has no opponent", int(c)))
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Piece is the kind of token resting on a cell.
type Piece int

const (
	Empty Piece = iota
	Ring
	Marker
)

func (p Piece) String() string {
	switch p {
	case Ring:
		return "Ring"
	case Marker:
		return "Marker"
	default:
		return "Empty"
	}
}

// Cell is the content of one board position. Color is NoColor for empty cells.
type Cell struct {
	Piece Piece
	Color Color
}

func RingOf(c Color) Cell {
	return Cell{Piece: Ring, Color: c}
}

func MarkerOf(c Color) Cell {
	return Cell{Piece: Marker, Color: c}
}

func (c Cell) IsEmpty() bool {
	return c.Piece == Empty
}

func (c Cell) String() string {
	if c.Piece == Empty {
		return "Empty"
	}
	return fmt.Sprintf("%s(%s)", c.Piece, c.Color)
}

// Square pairs a position with its content, for read-only board views.
type Square struct {
	Pos  Position
	Cell Cell
}
