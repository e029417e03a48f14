package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// nextResolution decides what happens after a move or a resolved line: the
// mover resolves their own lines first, then the opponent resolves theirs,
// then the turn passes.
func (g *Game) nextResolution() ([]Effect, error) {
	if len(g.pending[g.mover]) > 0 {
		return nil, g.enterResolution(g.mover, ResolveOwnLines)
	}
	opponent := g.mover.Other()
	if len(g.pending[opponent]) > 0 {
		return nil, g.enterResolution(opponent, ResolveOpponentLines)
	}
	return g.passTurn(), nil
}

func (g *Game) enterResolution(c Color, step Step) error {
	g.current = c
	g.step = step
	if g.board.Count(Ring, c) == 0 {
		return fmt.Errorf("%w: %s must resolve %d line(s) without a ring on the board", ErrNoRemovableRing, c, len(g.pending[c]))
	}
	return nil
}

func (g *Game) playResolveLine(line Line, ring Position) ([]Effect, error) {
	c := g.current
	g.board.removeLine(line)
	g.board.removeRing(ring, c)
	g.players[c].RingsOnBoard--
	g.players[c].RingsRemoved++

	markers := make([]Position, len(line.Cells))
	copy(markers, line.Cells[:])
	effects := []Effect{{Type: LineResolved, Player: c, Markers: markers, Ring: ring}}

	g.prunePending()

	if g.players[c].RingsRemoved >= g.rules.RingsToWin() {
		return append(effects, g.finish(c)...), nil
	}

	more, err := g.nextResolution()
	return append(effects, more...), err
}

// prunePending drops pending lines that lost a marker to a resolution.
func (g *Game) prunePending() {
	for _, c := range Colors {
		valid := g.pending[c][:0]
		for _, l := range g.pending[c] {
			if g.board.isLine(l) {
				valid = append(valid, l)
			}
		}
		g.pending[c] = valid
	}
}

func (g *Game) isPending(line Line) bool {
	return slices.Contains(g.pending[line.Color], line)
}
