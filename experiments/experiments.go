package experiments

import (
	"fmt"
	"sync"

	"yinsh/engine"
	"yinsh/experiments/metrics"
	"yinsh/game"
	"yinsh/meta"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Name       string
	Games      int
	Seed       uint64 // Game i is played with Seed+i
	Rules      game.Rules
	Goroutines int
	OutDir     string // Records are written only when set
}

func (c Config) withDefaults() Config {
	if c.Name == "" {
		c.Name = "self_play"
	}
	if c.Games <= 0 {
		c.Games = meta.GAMES
	}
	if c.Rules == nil {
		c.Rules = game.NewStandardRules()
	}
	if c.Goroutines <= 0 {
		c.Goroutines = 1
	}
	return c
}

type result struct {
	game    metrics.GameRecord
	actions []metrics.ActionRecord
	err     error
}

// RunSelfPlay plays random games, optionally stores their records and
// returns the summary.
func RunSelfPlay(config Config) (metrics.Summary, error) {
	config = config.withDefaults()
	log.Info().Msgf("starting %s experiment: %d games on %d goroutine(s)...", config.Name, config.Games, config.Goroutines)

	results := runGames(config)

	gameRecords := make([]metrics.GameRecord, 0, len(results))
	actionRecords := []metrics.ActionRecord{}
	gameMetrics := make([]metrics.GameMetric, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			return metrics.Summary{}, fmt.Errorf("game %d (seed %d): %w", r.game.ID, r.game.Seed, r.err)
		}
		gameRecords = append(gameRecords, r.game)
		actionRecords = append(actionRecords, r.actions...)
		gameMetrics = append(gameMetrics, r.game.GameMetric)
	}

	summary := metrics.Summarize(gameMetrics)
	log.Info().Msgf("completed %s experiment: %s", config.Name, summary)

	if config.OutDir == "" {
		return summary, nil
	}

	writer, err := metrics.NewWriter(config.OutDir, config.Name)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return summary, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteActionRecords(actionRecords)
	if err != nil {
		return summary, fmt.Errorf("failed to write action records: %w", err)
	}
	log.Info().Msg("stored action records")

	err = writer.WriteSummary(summary)
	if err != nil {
		return summary, fmt.Errorf("failed to write summary: %w", err)
	}
	log.Info().Msgf("stored summary in %s", writer.Dir())
	return summary, nil
}

// runGames plays config.Games games on a pool of goroutines. Results are
// indexed by game so the outcome does not depend on scheduling.
func runGames(config Config) []result {
	results := make([]result, config.Games)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < config.Goroutines; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = runGame(i+1, config.Seed+uint64(i), config.Rules)
			}
		}()
	}
	for i := 0; i < config.Games; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

// runGame executes a single seeded game between two random choosers
func runGame(id int, seed uint64, rules game.Rules) result {
	e := engine.NewLocalEngine(
		engine.WithSeed(seed),
		engine.WithGameOptions(game.WithRules(rules)),
		engine.WithMetrics(),
	)

	winner, gameMetric, actionMetrics, err := e.Run()
	r := result{
		game: metrics.GameRecord{ID: id, GameMetric: gameMetric},
		err:  err,
	}
	r.game.Seed = seed
	for _, am := range actionMetrics {
		r.actions = append(r.actions, metrics.ActionRecord{Game: id, ActionMetric: am})
	}

	log.Debug().Msgf("completed game %d with winner: %s", id, winner)
	return r
}
