package game

import "errors"

var (
	// ErrIllegalMove is returned for actions that break the movement or
	// placement rules. The game state is left unchanged.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidLineSelection is returned when the chosen line is not (or no
	// longer) a pending line of the resolving player.
	ErrInvalidLineSelection = errors.New("invalid line selection")

	// ErrNoRemovableRing means a player must resolve a line but has no ring on
	// the board. Correct rule enforcement never reaches it; the game cannot
	// continue.
	ErrNoRemovableRing = errors.New("no removable ring")

	ErrGameOver = errors.New("game is over")
)
