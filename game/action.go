package game

import "fmt"

// ActionType represents the type of action a player can perform.
type ActionType int

const (
	PlaceRingAction ActionType = iota
	SelectRingAction
	MoveRingAction
	ResolveLineAction
)

func (t ActionType) String() string {
	switch t {
	case PlaceRingAction:
		return "PlaceRing"
	case SelectRingAction:
		return "SelectRing"
	case MoveRingAction:
		return "MoveRing"
	case ResolveLineAction:
		return "ResolveLine"
	default:
		return fmt.Sprintf("ActionType(%d)", int(t))
	}
}

// Action represents an action taken by the current player. Only the fields
// relevant to Type are set; Action values are comparable.
type Action struct {
	Type ActionType
	From Position // SelectRing, MoveRing
	To   Position // PlaceRing, MoveRing
	Line Line     // ResolveLine
	Ring Position // ResolveLine: the ring given up
}

func PlaceRing(p Position) Action {
	return Action{Type: PlaceRingAction, To: p}
}

func SelectRing(p Position) Action {
	return Action{Type: SelectRingAction, From: p}
}

func MoveRing(from, to Position) Action {
	return Action{Type: MoveRingAction, From: from, To: to}
}

func ResolveLine(line Line, ring Position) Action {
	return Action{Type: ResolveLineAction, Line: line, Ring: ring}
}

func (a Action) String() string {
	switch a.Type {
	case PlaceRingAction:
		return fmt.Sprintf("PlaceRing%v", a.To)
	case SelectRingAction:
		return fmt.Sprintf("SelectRing%v", a.From)
	case MoveRingAction:
		return fmt.Sprintf("MoveRing%v->%v", a.From, a.To)
	case ResolveLineAction:
		return fmt.Sprintf("ResolveLine%v ring%v", a.Line, a.Ring)
	default:
		return a.Type.String()
	}
}
