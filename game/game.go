package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

type Phase int

const (
	PlacementPhase Phase = iota
	MovementPhase
	GameOverPhase
)

func (p Phase) String() string {
	switch p {
	case PlacementPhase:
		return "Placement"
	case MovementPhase:
		return "Movement"
	case GameOverPhase:
		return "GameOver"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Step is the sub-state of a turn during the movement phase.
type Step int

const (
	NoStep Step = iota
	ChooseRingToMove
	ChooseDestination
	ResolveOwnLines
	ResolveOpponentLines
)

func (s Step) String() string {
	switch s {
	case NoStep:
		return "None"
	case ChooseRingToMove:
		return "ChooseRingToMove"
	case ChooseDestination:
		return "ChooseDestination"
	case ResolveOwnLines:
		return "ResolveOwnLines"
	case ResolveOpponentLines:
		return "ResolveOpponentLines"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// PlayerState tracks one player's rings.
type PlayerState struct {
	Color        Color
	RingsToPlace int
	RingsOnBoard int
	RingsRemoved int
}

// Game is the turn and phase state machine. It exclusively owns the board and
// the player records; all mutation goes through Apply.
type Game struct {
	rules    Rules
	board    *Board
	players  [3]PlayerState // Indexed by Color
	pending  [3][]Line      // Pending lines, indexed by Color
	phase    Phase
	step     Step
	first    Color    // Places first and moves first
	current  Color    // The player expected to act
	mover    Color    // The player whose turn it is
	selected Position // Ring chosen in ChooseRingToMove
	winner   Color
}

type Option func(g *Game)

func WithRules(rules Rules) Option {
	return func(g *Game) {
		if rules != nil {
			g.rules = rules
		}
	}
}

func WithFirstPlayer(c Color) Option {
	return func(g *Game) {
		if c == White || c == Black {
			g.first = c
		}
	}
}

// NewGame returns a game in the placement phase on an empty board.
func NewGame(options ...Option) *Game {
	g := &Game{ // Default values
		rules: NewStandardRules(),
		first: White,
	}
	for _, option := range options {
		option(g)
	}
	if g.rules.RingsPerPlayer() <= 0 || g.rules.RingsToWin() <= 0 {
		panic("rules must give each player rings and a positive winning score")
	}

	g.board = NewBoard(StandardTopology())
	for _, c := range Colors {
		g.players[c] = PlayerState{Color: c, RingsToPlace: g.rules.RingsPerPlayer()}
	}
	g.phase = PlacementPhase
	g.current = g.first
	g.mover = g.first
	return g
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Step() Step {
	return g.step
}

// CurrentPlayer returns the player expected to act next. While the opponent
// resolves lines formed by the mover's move, this is the opponent.
func (g *Game) CurrentPlayer() Color {
	return g.current
}

// Mover returns the player whose turn it is.
func (g *Game) Mover() Color {
	return g.mover
}

// Selected returns the ring chosen for the current move, if any.
func (g *Game) Selected() (Position, bool) {
	return g.selected, g.phase == MovementPhase && g.step == ChooseDestination
}

func (g *Game) Player(c Color) PlayerState {
	return g.players[c]
}

// Scores returns the number of rings each player has removed.
func (g *Game) Scores() map[Color]int {
	return map[Color]int{
		White: g.players[White].RingsRemoved,
		Black: g.players[Black].RingsRemoved,
	}
}

// Board returns a copy of the board.
func (g *Game) Board() *Board {
	return g.board.Copy()
}

func (g *Game) BoardSnapshot() []Square {
	return g.board.Snapshot()
}

// PendingLines returns color's lines awaiting resolution.
func (g *Game) PendingLines(c Color) []Line {
	out := make([]Line, len(g.pending[c]))
	copy(out, g.pending[c])
	return out
}

// Winner returns the winning color once the game is over; NoColor otherwise
// or for a drawn game.
func (g *Game) Winner() Color {
	return g.winner
}

func (g *Game) IsOver() bool {
	return g.phase == GameOverPhase
}

// Apply validates and performs an action, returning the resulting effects.
// A rejected action leaves the game unchanged. ErrNoRemovableRing is fatal.
func (g *Game) Apply(a Action) ([]Effect, error) {
	if err := g.Validate(a); err != nil {
		return nil, err
	}

	switch a.Type {
	case PlaceRingAction:
		return g.playPlaceRing(a.To), nil
	case SelectRingAction:
		return g.playSelectRing(a.From), nil
	case MoveRingAction:
		return g.playMoveRing(a.From, a.To)
	case ResolveLineAction:
		return g.playResolveLine(a.Line, a.Ring)
	default:
		panic(fmt.Sprintf("Invalid action type %v", a.Type))
	}
}

func (g *Game) playPlaceRing(p Position) []Effect {
	c := g.current
	g.board.placeRing(p, c)
	g.players[c].RingsToPlace--
	g.players[c].RingsOnBoard++
	effects := []Effect{{Type: RingPlaced, Player: c, To: p}}

	if g.players[White].RingsToPlace > 0 || g.players[Black].RingsToPlace > 0 {
		g.current = c.Other()
		g.mover = g.current
		return append(effects, Effect{Type: TurnPassed, Player: g.current})
	}

	// Every ring is on the board
	g.phase = MovementPhase
	g.step = ChooseRingToMove
	g.current = g.first
	g.mover = g.first
	effects = append(effects,
		Effect{Type: PhaseChanged, Phase: MovementPhase},
		Effect{Type: TurnPassed, Player: g.current},
	)
	return append(effects, g.checkStalemate()...)
}

func (g *Game) playSelectRing(p Position) []Effect {
	g.selected = p
	g.step = ChooseDestination
	return []Effect{{Type: RingSelected, Player: g.current, From: p}}
}

func (g *Game) playMoveRing(from, to Position) ([]Effect, error) {
	c := g.current
	changed, flipped := g.board.moveRing(from, to, c)
	g.selected = Position{}
	effects := []Effect{{Type: RingMoved, Player: c, From: from, To: to, Flipped: flipped}}

	lines := g.board.findLines(changed)
	for _, color := range Colors {
		g.pending[color] = nil
	}
	for _, l := range lines {
		g.pending[l.Color] = append(g.pending[l.Color], l)
	}
	if len(lines) > 0 {
		effects = append(effects, Effect{Type: LinesFormed, Player: c, Lines: lines})
	}

	more, err := g.nextResolution()
	return append(effects, more...), err
}

// passTurn hands the move to the mover's opponent.
func (g *Game) passTurn() []Effect {
	g.mover = g.mover.Other()
	g.current = g.mover
	g.step = ChooseRingToMove
	g.selected = Position{}
	effects := []Effect{{Type: TurnPassed, Player: g.current}}
	return append(effects, g.checkStalemate()...)
}

// checkStalemate ends the game when the player to move cannot move any ring.
// The player with more removed rings wins; equal scores draw.
func (g *Game) checkStalemate() []Effect {
	if len(g.board.movableRings(g.current)) > 0 {
		return nil
	}
	white, black := g.players[White].RingsRemoved, g.players[Black].RingsRemoved
	switch {
	case white > black:
		return g.finish(White)
	case black > white:
		return g.finish(Black)
	default:
		return g.finish(NoColor)
	}
}

func (g *Game) finish(winner Color) []Effect {
	g.phase = GameOverPhase
	g.step = NoStep
	g.winner = winner
	g.selected = Position{}
	for _, c := range Colors {
		g.pending[c] = nil
	}
	return []Effect{
		{Type: PhaseChanged, Phase: GameOverPhase},
		{Type: GameOver, Winner: winner},
	}
}

// Copy returns an independent copy of the game.
func (g *Game) Copy() *Game {
	cp := *g
	cp.board = g.board.Copy()
	for c := range g.pending {
		cp.pending[c] = append([]Line(nil), g.pending[c]...)
	}
	return &cp
}

type StateHash uint64

// Hash fingerprints the full game state.
func (g *Game) Hash() StateHash {
	hasher := fnv.New64a()

	// Turn state
	for _, v := range []int{int(g.phase), int(g.step), int(g.current), int(g.mover), g.selected.X, g.selected.Y, int(g.winner)} {
		binary.Write(hasher, binary.LittleEndian, int64(v))
	}

	// Player records
	for _, c := range Colors {
		p := g.players[c]
		binary.Write(hasher, binary.LittleEndian, int64(p.RingsToPlace))
		binary.Write(hasher, binary.LittleEndian, int64(p.RingsOnBoard))
		binary.Write(hasher, binary.LittleEndian, int64(p.RingsRemoved))
	}

	// Cells
	for _, cell := range g.board.cells {
		binary.Write(hasher, binary.LittleEndian, int8(cell.Piece))
		binary.Write(hasher, binary.LittleEndian, int8(cell.Color))
	}

	return StateHash(hasher.Sum64())
}
