package metrics

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a batch of games.
type Summary struct {
	Games             int
	WhiteWins         int
	BlackWins         int
	Draws             int // Finished without a winner
	Truncated         int
	MeanActions       float64
	StdActions        float64
	MeanRingMoves     float64
	MeanFlips         float64
	MeanLinesResolved float64
}

func Summarize(games []GameMetric) Summary {
	s := Summary{Games: len(games)}
	if len(games) == 0 {
		return s
	}

	actions := make([]float64, len(games))
	moves := make([]float64, len(games))
	flips := make([]float64, len(games))
	resolved := make([]float64, len(games))
	for i, g := range games {
		switch {
		case g.Truncated:
			s.Truncated++
		case g.Winner == "White":
			s.WhiteWins++
		case g.Winner == "Black":
			s.BlackWins++
		default:
			s.Draws++
		}
		actions[i] = float64(g.TotalActions)
		moves[i] = float64(g.RingMoves)
		flips[i] = float64(g.Flips)
		resolved[i] = float64(g.LinesResolved)
	}

	s.MeanActions, s.StdActions = stat.MeanStdDev(actions, nil)
	if len(games) < 2 {
		s.StdActions = 0 // Undefined for a single sample
	}
	s.MeanRingMoves = stat.Mean(moves, nil)
	s.MeanFlips = stat.Mean(flips, nil)
	s.MeanLinesResolved = stat.Mean(resolved, nil)
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d games: White %d, Black %d, draws %d, truncated %d; actions %.1f±%.1f, ring moves %.1f, flips %.1f, lines resolved %.1f",
		s.Games, s.WhiteWins, s.BlackWins, s.Draws, s.Truncated,
		s.MeanActions, s.StdActions, s.MeanRingMoves, s.MeanFlips, s.MeanLinesResolved)
}
