package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Destinations returns every cell the ring at from may move to.
//
// Along each direction a ring slides over empty cells; it may jump a
// contiguous run of markers but must then stop on the first empty cell after
// them. A ring blocks the rest of the ray.
func (b *Board) Destinations(from Position) []Position {
	var out []Position
	for _, d := range Directions {
		out = append(out, b.destinationsInDir(from, d)...)
	}
	return out
}

func (b *Board) destinationsInDir(from Position, d Direction) []Position {
	var out []Position
	jumped := false
	for _, p := range b.topo.Ray(from, d) {
		switch c := b.Get(p); c.Piece {
		case Ring:
			return out
		case Marker:
			jumped = true
		default:
			out = append(out, p)
			if jumped {
				return out
			}
		}
	}
	return out
}

// CanMove reports whether the ring at from has at least one destination.
func (b *Board) CanMove(from Position) bool {
	for _, d := range Directions {
		if len(b.destinationsInDir(from, d)) > 0 {
			return true
		}
	}
	return false
}

// IsDestination reports whether a ring at from may legally stop at to.
func (b *Board) IsDestination(from, to Position) bool {
	if !b.topo.Contains(to) {
		return false
	}
	d, _, ok := b.topo.DirectionTo(from, to)
	if !ok {
		return false
	}
	return slices.Contains(b.destinationsInDir(from, d), to)
}

// movableRings lists color's rings that have somewhere to go.
func (b *Board) movableRings(color Color) []Position {
	var out []Position
	for _, p := range b.Rings(color) {
		if b.CanMove(p) {
			out = append(out, p)
		}
	}
	return out
}

// LegalActions returns every action the current player may take.
func (g *Game) LegalActions() []Action {
	switch g.phase {
	case PlacementPhase:
		return g.placementActions()
	case MovementPhase:
		switch g.step {
		case ChooseRingToMove:
			return g.selectActions()
		case ChooseDestination:
			return append(g.moveActions(), g.selectActions()...)
		case ResolveOwnLines, ResolveOpponentLines:
			return g.resolveActions()
		default:
			panic(fmt.Sprintf("unknown movement step %v", g.step))
		}
	case GameOverPhase:
		return nil
	default:
		panic("Unknown game phase")
	}
}

func (g *Game) placementActions() []Action {
	if g.players[g.current].RingsToPlace == 0 {
		return nil
	}
	var actions []Action
	for _, sq := range g.board.Snapshot() {
		if sq.Cell.IsEmpty() {
			actions = append(actions, PlaceRing(sq.Pos))
		}
	}
	return actions
}

func (g *Game) selectActions() []Action {
	var actions []Action
	for _, p := range g.board.movableRings(g.current) {
		if g.step == ChooseDestination && p == g.selected {
			continue
		}
		actions = append(actions, SelectRing(p))
	}
	return actions
}

func (g *Game) moveActions() []Action {
	var actions []Action
	for _, to := range g.board.Destinations(g.selected) {
		actions = append(actions, MoveRing(g.selected, to))
	}
	return actions
}

func (g *Game) resolveActions() []Action {
	var actions []Action
	rings := g.board.Rings(g.current)
	for _, line := range g.pending[g.current] {
		for _, r := range rings {
			actions = append(actions, ResolveLine(line, r))
		}
	}
	return actions
}

// Validate checks an action against the current state without applying it.
// Failures wrap ErrIllegalMove or ErrInvalidLineSelection.
func (g *Game) Validate(a Action) error {
	if g.phase == GameOverPhase {
		return fmt.Errorf("%w: %w", ErrIllegalMove, ErrGameOver)
	}
	switch a.Type {
	case PlaceRingAction:
		return g.validatePlaceRing(a.To)
	case SelectRingAction:
		return g.validateSelectRing(a.From)
	case MoveRingAction:
		return g.validateMoveRing(a.From, a.To)
	case ResolveLineAction:
		return g.validateResolveLine(a.Line, a.Ring)
	default:
		return fmt.Errorf("%w: unknown action type %d", ErrIllegalMove, int(a.Type))
	}
}

func (g *Game) validatePlaceRing(p Position) error {
	if g.phase != PlacementPhase {
		return fmt.Errorf("%w: cannot place ring: not in placement phase", ErrIllegalMove)
	}
	if !g.board.topo.Contains(p) {
		return fmt.Errorf("%w: cannot place ring: %v is not on the board", ErrIllegalMove, p)
	}
	if !g.board.IsEmpty(p) {
		return fmt.Errorf("%w: cannot place ring: %v is occupied", ErrIllegalMove, p)
	}
	if g.players[g.current].RingsToPlace == 0 {
		return fmt.Errorf("%w: cannot place ring: %s has no rings left to place", ErrIllegalMove, g.current)
	}
	return nil
}

func (g *Game) validateSelectRing(p Position) error {
	if g.phase != MovementPhase || (g.step != ChooseRingToMove && g.step != ChooseDestination) {
		return fmt.Errorf("%w: cannot select ring: not choosing a ring to move", ErrIllegalMove)
	}
	if !g.board.topo.Contains(p) {
		return fmt.Errorf("%w: cannot select ring: %v is not on the board", ErrIllegalMove, p)
	}
	if owner, ok := g.board.RingAt(p); !ok || owner != g.current {
		return fmt.Errorf("%w: cannot select ring: no %s ring at %v", ErrIllegalMove, g.current, p)
	}
	if g.step == ChooseDestination && p == g.selected {
		return fmt.Errorf("%w: cannot select ring: %v is already selected", ErrIllegalMove, p)
	}
	if !g.board.CanMove(p) {
		return fmt.Errorf("%w: cannot select ring: ring at %v cannot move", ErrIllegalMove, p)
	}
	return nil
}

func (g *Game) validateMoveRing(from, to Position) error {
	if g.phase != MovementPhase || g.step != ChooseDestination {
		return fmt.Errorf("%w: cannot move ring: no ring selected", ErrIllegalMove)
	}
	if from != g.selected {
		return fmt.Errorf("%w: cannot move ring: %v is not the selected ring", ErrIllegalMove, from)
	}
	if owner, ok := g.board.RingAt(from); !ok || owner != g.current {
		return fmt.Errorf("%w: cannot move ring: no %s ring at %v", ErrIllegalMove, g.current, from)
	}
	if !g.board.IsDestination(from, to) {
		return fmt.Errorf("%w: cannot move ring: %v is not reachable from %v", ErrIllegalMove, to, from)
	}
	return nil
}

func (g *Game) validateResolveLine(line Line, ring Position) error {
	if g.phase != MovementPhase || (g.step != ResolveOwnLines && g.step != ResolveOpponentLines) {
		return fmt.Errorf("%w: cannot resolve line: no lines to resolve", ErrIllegalMove)
	}
	if line.Color != g.current {
		return fmt.Errorf("%w: cannot resolve line: %s is resolving, line is %s", ErrIllegalMove, g.current, line.Color)
	}
	if !g.isPending(line) || !g.board.isLine(line) {
		return fmt.Errorf("%w: %v is not a pending line", ErrInvalidLineSelection, line)
	}
	if !g.board.topo.Contains(ring) {
		return fmt.Errorf("%w: cannot remove ring: %v is not on the board", ErrIllegalMove, ring)
	}
	if owner, ok := g.board.RingAt(ring); !ok || owner != g.current {
		return fmt.Errorf("%w: cannot remove ring: no %s ring at %v", ErrIllegalMove, g.current, ring)
	}
	return nil
}
