package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// layout places pieces on a fresh board.
type layout map[Position]Cell

func markers(c Color, ps ...Position) layout {
	l := layout{}
	for _, p := range ps {
		l[p] = MarkerOf(c)
	}
	return l
}

func rings(c Color, ps ...Position) layout {
	l := layout{}
	for _, p := range ps {
		l[p] = RingOf(c)
	}
	return l
}

func merge(layouts ...layout) layout {
	out := layout{}
	for _, l := range layouts {
		for p, c := range l {
			out[p] = c
		}
	}
	return out
}

func row(y int, xs ...int) []Position {
	out := make([]Position, len(xs))
	for i, x := range xs {
		out[i] = Pos(x, y)
	}
	return out
}

func column(x int, ys ...int) []Position {
	out := make([]Position, len(ys))
	for i, y := range ys {
		out[i] = Pos(x, y)
	}
	return out
}

func boardWith(t *testing.T, l layout) *Board {
	t.Helper()
	b := NewBoard(StandardTopology())
	for p, c := range l {
		require.True(t, b.topo.Contains(p), "layout position %v should be on the board", p)
		b.set(p, c)
	}
	return b
}

// movementGame returns a game in the movement phase with White to choose a
// ring, on a board holding exactly the given pieces.
func movementGame(t *testing.T, l layout, options ...Option) *Game {
	t.Helper()
	g := NewGame(options...)
	g.board = boardWith(t, l)
	for _, c := range Colors {
		g.players[c] = PlayerState{
			Color:        c,
			RingsOnBoard: g.board.Count(Ring, c),
		}
	}
	g.phase = MovementPhase
	g.step = ChooseRingToMove
	g.current = White
	g.mover = White
	return g
}

func lineOf(c Color, ps ...Position) Line {
	l := Line{Color: c}
	copy(l.Cells[:], ps)
	return l
}

func mustApply(t *testing.T, g *Game, a Action) []Effect {
	t.Helper()
	effects, err := g.Apply(a)
	require.NoError(t, err, "action %v should be legal", a)
	return effects
}

func effectOf(effects []Effect, typ EffectType) (Effect, bool) {
	for _, e := range effects {
		if e.Type == typ {
			return e, true
		}
	}
	return Effect{}, false
}
