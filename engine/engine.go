package engine

import (
	"yinsh/experiments/metrics"
	"yinsh/game"
)

// Chooser picks the next action for the player to act. legal is never empty.
type Chooser interface {
	Choose(g *game.Game, legal []game.Action) game.Action
}

type Engine interface {
	// Run plays a game until it is over or the action cap is reached
	Run() (winner game.Color, gameMetric metrics.GameMetric, actionMetrics []metrics.ActionMetric, err error)
}
