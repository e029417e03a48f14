package engine

import (
	"fmt"

	"yinsh/experiments/metrics"
	"yinsh/game"
	"yinsh/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Option func(e *LocalEngine)

// Observer is called after every applied action.
type Observer func(g *game.Game, action game.Action, effects []game.Effect)

func WithSeed(seed uint64) Option {
	return func(e *LocalEngine) {
		e.seed = seed
	}
}

func WithMaxActions(actions int) Option {
	return func(e *LocalEngine) {
		if actions > 0 {
			e.maxActions = actions
		}
	}
}

func WithMetrics() Option {
	return func(e *LocalEngine) {
		e.metrics = metrics.NewCollector()
	}
}

func WithGameOptions(options ...game.Option) Option {
	return func(e *LocalEngine) {
		e.gameOptions = append(e.gameOptions, options...)
	}
}

func WithObserver(observer Observer) Option {
	return func(e *LocalEngine) {
		if observer != nil {
			e.observers = append(e.observers, observer)
		}
	}
}

// WithChoosers sets the chooser for each color. Colors without one use a
// random chooser seeded from the engine seed.
func WithChoosers(white, black Chooser) Option {
	return func(e *LocalEngine) {
		e.choosers[game.White] = white
		e.choosers[game.Black] = black
	}
}

var _ Engine = (*LocalEngine)(nil)

type LocalEngine struct {
	State       *game.Game
	seed        uint64
	maxActions  int
	gameOptions []game.Option
	choosers    [3]Chooser // Indexed by game.Color
	observers   []Observer
	metrics     metrics.Collector
}

func NewLocalEngine(options ...Option) *LocalEngine {
	e := &LocalEngine{ // Default values
		maxActions: meta.MAX_ACTIONS,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	for i, c := range game.Colors {
		if e.choosers[c] == nil {
			e.choosers[c] = NewRandomChooser(2*e.seed + uint64(i))
		}
	}
	e.State = game.NewGame(e.gameOptions...)
	return e
}

func rulesName(r game.Rules) string {
	return fmt.Sprintf("rings=%d,win=%d", r.RingsPerPlayer(), r.RingsToWin())
}

// Run executes the game loop until the game is over or the action cap is
// reached. A chooser returning an action outside the legal set falls back to
// the first legal action.
func (e *LocalEngine) Run() (game.Color, metrics.GameMetric, []metrics.ActionMetric, error) {
	e.metrics.Start(e.seed, rulesName(e.State.Rules()), e.State.CurrentPlayer())
	log.Debug().Msgf("seed %d: %s is starting", e.seed, e.State.CurrentPlayer())

	step := 0
	for !e.State.IsOver() && step < e.maxActions {
		player := e.State.CurrentPlayer()
		legal := e.State.LegalActions()
		if len(legal) == 0 {
			return game.NoColor, metrics.GameMetric{}, nil,
				fmt.Errorf("no legal actions for %s in %s/%s", player, e.State.Phase(), e.State.Step())
		}

		action := e.choosers[player].Choose(e.State, legal)
		if !slices.Contains(legal, action) {
			log.Warn().Msgf("%s chose illegal action %v, falling back to %v", player, action, legal[0])
			action = legal[0]
		}

		effects, err := e.State.Apply(action)
		if err != nil {
			return game.NoColor, metrics.GameMetric{}, nil, fmt.Errorf("failed to apply %v at step %d: %w", action, step, err)
		}
		step++
		e.metrics.Record(step, player, action, effects)
		for _, observe := range e.observers {
			observe(e.State, action, effects)
		}
	}

	truncated := !e.State.IsOver()
	if truncated {
		log.Info().Msgf("seed %d: stopped after %d actions without a winner", e.seed, step)
	} else {
		log.Debug().Msgf("seed %d: game over after %d actions, winner: %s", e.seed, step, e.State.Winner())
	}

	gameMetric, actionMetrics := e.metrics.Complete(e.State, truncated)
	return e.State.Winner(), gameMetric, actionMetrics, nil
}
