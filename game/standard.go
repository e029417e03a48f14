package game

type StandardRules struct {
	Rings int
	ToWin int
}

// NewStandardRules returns the tournament rules: five rings each, the first
// player to remove three wins.
func NewStandardRules() *StandardRules {
	return &StandardRules{
		Rings: 5,
		ToWin: 3,
	}
}

// NewBlitzRules returns the blitz variant, where a single completed line wins.
func NewBlitzRules() *StandardRules {
	return &StandardRules{
		Rings: 5,
		ToWin: 1,
	}
}

func (sr *StandardRules) RingsPerPlayer() int {
	return sr.Rings
}

func (sr *StandardRules) RingsToWin() int {
	return sr.ToWin
}
