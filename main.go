package main

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"yinsh/experiments"
	"yinsh/game"
	"yinsh/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	games := flag.Int("games", meta.GAMES, "Number of self-play games")
	seed := flag.Uint64("seed", 1, "Seed of the first game")
	blitz := flag.Bool("blitz", false, "Play the blitz variant (one line wins)")
	goroutines := flag.Int("goroutines", 1, "Number of games played in parallel")
	out := flag.String("out", meta.OUT_DIR, "Directory for experiment records, empty to skip")
	level := flag.String("level", "info", "Log level")
	throughput := flag.String("throughput", "", "Comma-separated goroutine counts for a throughput run")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	if *throughput != "" {
		runThroughput(*games, *throughput, *seed)
		return
	}

	var rules game.Rules = game.NewStandardRules()
	name := "self_play"
	if *blitz {
		rules = game.NewBlitzRules()
		name = "self_play_blitz"
	}

	summary, err := experiments.RunSelfPlay(experiments.Config{
		Name:       name,
		Games:      *games,
		Seed:       *seed,
		Rules:      rules,
		Goroutines: *goroutines,
		OutDir:     *out,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("self-play failed")
	}
	log.Info().Msg(summary.String())
}

func runThroughput(games int, counts string, seed uint64) {
	var goroutines []int
	for _, field := range strings.Split(counts, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n <= 0 {
			log.Fatal().Msgf("invalid goroutine count %q", field)
		}
		goroutines = append(goroutines, n)
	}

	if _, err := experiments.RunThroughputExperiment(games, goroutines, seed); err != nil {
		log.Fatal().Err(err).Msg("throughput run failed")
	}
}
