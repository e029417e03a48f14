package game

// Board maps every cell of a topology to its content.
type Board struct {
	topo  *Topology
	cells []Cell // Indexed like topo.positions
}

// NewBoard returns an empty board on the given topology.
func NewBoard(topo *Topology) *Board {
	return &Board{
		topo:  topo,
		cells: make([]Cell, topo.Len()),
	}
}

func (b *Board) Topology() *Topology {
	return b.topo
}

// Copy returns an independent board sharing the immutable topology.
func (b *Board) Copy() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{topo: b.topo, cells: cells}
}

func (b *Board) Get(p Position) Cell {
	return b.cells[b.topo.mustIndex(p)]
}

func (b *Board) set(p Position, c Cell) {
	b.cells[b.topo.mustIndex(p)] = c
}

func (b *Board) clear(p Position) {
	b.set(p, Cell{})
}

func (b *Board) IsEmpty(p Position) bool {
	return b.Get(p).IsEmpty()
}

// RingAt returns the owner of the ring at p, if any.
func (b *Board) RingAt(p Position) (Color, bool) {
	c := b.Get(p)
	if c.Piece != Ring {
		return NoColor, false
	}
	return c.Color, true
}

// MarkerAt returns the face-up color of the marker at p, if any.
func (b *Board) MarkerAt(p Position) (Color, bool) {
	c := b.Get(p)
	if c.Piece != Marker {
		return NoColor, false
	}
	return c.Color, true
}

func (b *Board) hasMarker(p Position, color Color) bool {
	c, ok := b.MarkerAt(p)
	return ok && c == color
}

// flip turns the marker at p over. It reports false if p holds no marker.
func (b *Board) flip(p Position) bool {
	i := b.topo.mustIndex(p)
	if b.cells[i].Piece != Marker {
		return false
	}
	b.cells[i].Color = b.cells[i].Color.Other()
	return true
}

func (b *Board) filter(piece Piece, color Color) []Position {
	var out []Position
	for i, c := range b.cells {
		if c.Piece == piece && (color == NoColor || c.Color == color) {
			out = append(out, b.topo.positions[i])
		}
	}
	return out
}

// Rings returns the positions of color's rings, or of all rings for NoColor.
func (b *Board) Rings(color Color) []Position {
	return b.filter(Ring, color)
}

// Markers returns the positions of color's markers, or of all markers for NoColor.
func (b *Board) Markers(color Color) []Position {
	return b.filter(Marker, color)
}

func (b *Board) Count(piece Piece, color Color) int {
	n := 0
	for _, c := range b.cells {
		if c.Piece == piece && (color == NoColor || c.Color == color) {
			n++
		}
	}
	return n
}

// Snapshot lists every cell with its content in topology order.
func (b *Board) Snapshot() []Square {
	out := make([]Square, len(b.cells))
	for i, c := range b.cells {
		out[i] = Square{Pos: b.topo.positions[i], Cell: c}
	}
	return out
}
