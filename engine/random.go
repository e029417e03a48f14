package engine

import (
	"yinsh/game"

	"golang.org/x/exp/rand"
)

// RandomChooser picks uniformly among the legal actions. The same seed
// replays the same game.
type RandomChooser struct {
	rng *rand.Rand
}

func NewRandomChooser(seed uint64) *RandomChooser {
	return &RandomChooser{rng: rand.New(rand.NewSource(seed))}
}

func (c *RandomChooser) Choose(g *game.Game, legal []game.Action) game.Action {
	return legal[c.rng.Intn(len(legal))]
}
