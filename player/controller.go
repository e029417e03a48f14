package player

import (
	"fmt"

	"yinsh/engine"
	"yinsh/game"
	"yinsh/gamemaster"

	"github.com/rs/zerolog/log"
)

// Controller plays one color through a gamemaster engine, the way a
// frontend does: it follows the published updates and acts when its color
// is to play.
type Controller struct {
	color   game.Color
	chooser engine.Chooser
	engine  gamemaster.Engine
	state   *game.Game // Latest observed state
	seen    int
}

func NewController(color game.Color, chooser engine.Chooser, eng gamemaster.Engine) *Controller {
	return &Controller{
		color:   color,
		chooser: chooser,
		engine:  eng,
	}
}

func (c *Controller) Observe(u gamemaster.Update) {
	c.state = u.State
	c.seen++
}

// Seen returns the number of updates observed.
func (c *Controller) Seen() int {
	return c.seen
}

// Step plays one action if the latest observed state has this color to act.
// It reports whether an action was played.
func (c *Controller) Step() (bool, error) {
	if c.state == nil {
		c.state = c.engine.State()
	}
	if c.state.IsOver() || c.state.CurrentPlayer() != c.color {
		return false, nil
	}

	action := c.chooser.Choose(c.state, c.state.LegalActions())
	err := c.engine.Play(action)
	if err != nil {
		return false, fmt.Errorf("%s failed to play %v: %w", c.color, action, err)
	}
	return true, nil
}

// RunMatch runs a frame loop: each frame hands every pending update to both
// controllers, then lets each of them act. It returns the final state once
// the game is over.
func RunMatch(eng gamemaster.Engine, getUpdate gamemaster.UpdateGetter, white, black *Controller, maxFrames int) (*game.Game, error) {
	controllers := []*Controller{white, black}
	for frame := 0; frame < maxFrames; frame++ {
		for u, ok := getUpdate(); ok; u, ok = getUpdate() {
			for _, c := range controllers {
				c.Observe(u)
			}
		}

		state := eng.State()
		if state.IsOver() {
			log.Info().Msgf("match over after %d frames, winner: %s", frame, state.Winner())
			return state, nil
		}

		for _, c := range controllers {
			if _, err := c.Step(); err != nil {
				return state, err
			}
		}
	}
	return eng.State(), fmt.Errorf("match not over after %d frames", maxFrames)
}
