package game

// Rules parameterises the ring counts of a game variant.
type Rules interface {
	RingsPerPlayer() int
	RingsToWin() int
}
