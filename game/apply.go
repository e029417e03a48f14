package game

import "fmt"

// placeRing puts a ring of color on an empty cell.
func (b *Board) placeRing(p Position, color Color) {
	if !b.IsEmpty(p) {
		panic(fmt.Sprintf("placeRing: %v is occupied", p))
	}
	b.set(p, RingOf(color))
}

// moveRing moves color's ring from one cell to a reachable destination. The
// vacated origin receives a marker of color and every marker strictly between
// the two cells is flipped. It returns the positions whose marker was created
// or changed (origin first) and, separately, the flipped ones.
//
// All preconditions are checked before the board is touched.
func (b *Board) moveRing(from, to Position, color Color) (changed, flipped []Position) {
	if owner, ok := b.RingAt(from); !ok || owner != color {
		panic(fmt.Sprintf("moveRing: no %s ring at %v", color, from))
	}
	d, steps, ok := b.topo.DirectionTo(from, to)
	if !ok || !b.IsEmpty(to) {
		panic(fmt.Sprintf("moveRing: %v is not a destination of %v", to, from))
	}

	b.set(from, MarkerOf(color))
	changed = append(changed, from)
	for _, p := range b.topo.Ray(from, d)[:steps-1] {
		if b.flip(p) {
			flipped = append(flipped, p)
		}
	}
	changed = append(changed, flipped...)
	b.set(to, RingOf(color))
	return changed, flipped
}

// removeLine takes the markers of a line off the board.
func (b *Board) removeLine(l Line) {
	for _, p := range l.Cells {
		if !b.hasMarker(p, l.Color) {
			panic(fmt.Sprintf("removeLine: no %s marker at %v", l.Color, p))
		}
		b.clear(p)
	}
}

func (b *Board) removeRing(p Position, color Color) {
	if owner, ok := b.RingAt(p); !ok || owner != color {
		panic(fmt.Sprintf("removeRing: no %s ring at %v", color, p))
	}
	b.clear(p)
}
