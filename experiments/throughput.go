package experiments

import (
	"time"

	"yinsh/game"

	"github.com/rs/zerolog/log"
)

type Throughput struct {
	Goroutines     int
	Games          int
	Duration       time.Duration
	GamesPerSecond float64
}

// RunThroughputExperiment measures how fast random games are played for each
// goroutine count.
func RunThroughputExperiment(games int, goroutines []int, seed uint64) ([]Throughput, error) {
	var out []Throughput
	for _, g := range goroutines {
		config := Config{Name: "throughput", Games: games, Seed: seed, Rules: game.NewStandardRules(), Goroutines: g}.withDefaults()

		start := time.Now()
		for _, r := range runGames(config) {
			if r.err != nil {
				return out, r.err
			}
		}
		elapsed := time.Since(start)

		t := Throughput{
			Goroutines:     config.Goroutines,
			Games:          config.Games,
			Duration:       elapsed,
			GamesPerSecond: float64(config.Games) / elapsed.Seconds(),
		}
		log.Info().Msgf("%d goroutine(s): %d games in %s (%.1f games/s)", t.Goroutines, t.Games, t.Duration, t.GamesPerSecond)
		out = append(out, t)
	}
	return out, nil
}
