package game

import "fmt"

// EffectType enumerates the observable consequences of an applied action.
type EffectType int

const (
	RingPlaced EffectType = iota
	RingSelected
	RingMoved
	LinesFormed
	LineResolved
	PhaseChanged
	TurnPassed
	GameOver
)

func (t EffectType) String() string {
	switch t {
	case RingPlaced:
		return "RingPlaced"
	case RingSelected:
		return "RingSelected"
	case RingMoved:
		return "RingMoved"
	case LinesFormed:
		return "LinesFormed"
	case LineResolved:
		return "LineResolved"
	case PhaseChanged:
		return "PhaseChanged"
	case TurnPassed:
		return "TurnPassed"
	case GameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("EffectType(%d)", int(t))
	}
}

// Effect describes one state change. Only the fields relevant to Type are set.
type Effect struct {
	Type    EffectType
	Player  Color
	From    Position   // RingSelected, RingMoved
	To      Position   // RingPlaced, RingMoved
	Flipped []Position // RingMoved: markers turned over, in travel order
	Lines   []Line     // LinesFormed
	Markers []Position // LineResolved: markers removed
	Ring    Position   // LineResolved: ring removed
	Phase   Phase      // PhaseChanged
	Winner  Color      // GameOver; NoColor for a draw
}
