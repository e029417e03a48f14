package gamemaster

import (
	"errors"
	"fmt"
	"sync"

	"yinsh/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var ErrNothingToUndo = errors.New("nothing to undo")

// Update is one applied action and the state it produced.
type Update struct {
	Action  game.Action
	Effects []game.Effect
	State   *game.Game // Copy owned by the caller
}

// UpdateGetter returns the oldest unread update, if any. It never blocks so
// it can be polled once per frame.
type UpdateGetter func() (Update, bool)

// Engine is what an input/render loop talks to.
type Engine interface {
	Init(options ...game.Option) (*game.Game, UpdateGetter)
	Play(game.Action) error
	Undo() error
	Restart() error
	State() *game.Game
}

var _ Engine = (*localEngine)(nil)

type localEngine struct {
	mu       sync.Mutex
	options  []game.Option
	state    *game.Game
	history  []*game.Game // State before each applied action
	updates  []Update
	gameOver bool
}

var (
	singleLocalEngine *localEngine
	once              sync.Once
)

func NewLocalEngine() *localEngine {
	return &localEngine{}
}

// GetLocalEngine returns the process-wide engine shared by the frontend.
func GetLocalEngine() *localEngine {
	once.Do(func() {
		singleLocalEngine = &localEngine{}
	})
	return singleLocalEngine
}

// Init starts a new game and returns a copy of its initial state together
// with the update poller.
func (e *localEngine) Init(options ...game.Option) (*game.Game, UpdateGetter) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.options = options
	e.reset()
	log.Info().Msgf("new game started, %s to place first", e.state.CurrentPlayer())

	return e.state.Copy(), e.nextUpdate
}

func (e *localEngine) reset() {
	e.state = game.NewGame(e.options...)
	e.history = nil
	e.updates = nil
	e.gameOver = false
}

func (e *localEngine) nextUpdate() (Update, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.updates) == 0 {
		return Update{}, false
	}
	u := e.updates[0]
	e.updates = e.updates[1:]
	return u, true
}

func (e *localEngine) State() *game.Game {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		return nil
	}
	return e.state.Copy()
}

// Play applies an action for the current player if it is among the legal
// actions, and queues the resulting update.
func (e *localEngine) Play(action game.Action) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		return fmt.Errorf("game not initialized")
	}
	if e.gameOver {
		return fmt.Errorf("%w: no actions allowed", game.ErrGameOver)
	}

	if !slices.Contains(e.state.LegalActions(), action) {
		// Let the game explain why
		err := e.state.Validate(action)
		if err == nil {
			err = fmt.Errorf("%w: %v", game.ErrIllegalMove, action)
		}
		log.Warn().Err(err).Msgf("rejected %v from %s", action, e.state.CurrentPlayer())
		return err
	}

	before := e.state.Copy()
	effects, err := e.state.Apply(action)
	if err != nil {
		// The game cannot continue past a fatal rules error
		log.Error().Err(err).Msgf("failed to apply %v", action)
		e.gameOver = true
		return err
	}
	e.history = append(e.history, before)
	log.Debug().Msgf("%s played %v", before.CurrentPlayer(), action)

	e.updates = append(e.updates, Update{
		Action:  action,
		Effects: effects,
		State:   e.state.Copy(),
	})

	if e.state.IsOver() {
		e.gameOver = true
		log.Info().Msgf("game over, winner: %s, scores: %v", e.state.Winner(), e.state.Scores())
	}
	return nil
}

// Undo reverts the most recently applied action. Unread updates are dropped
// since they describe states that no longer exist.
func (e *localEngine) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.history) == 0 {
		return ErrNothingToUndo
	}
	last := len(e.history) - 1
	e.state = e.history[last]
	e.history = e.history[:last]
	e.updates = nil
	e.gameOver = e.state.IsOver()
	log.Debug().Msgf("undo, %s to play", e.state.CurrentPlayer())
	return nil
}

// Restart discards the current game and starts a new one with the options
// given to Init.
func (e *localEngine) Restart() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		return fmt.Errorf("game not initialized")
	}
	e.reset()
	log.Info().Msg("game restarted")
	return nil
}
