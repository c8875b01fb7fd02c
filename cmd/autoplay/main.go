// Demo driver for the self-play harness: plays the two solver sides
// against each other and prints aggregate results.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mlopes/searchlab/automatic"
	"github.com/mlopes/searchlab/config"
)

func main() {
	fs := flag.NewFlagSetWithEnvPrefix("autoplay", "SEARCHLAB", flag.ContinueOnError)
	numGames := fs.Int("games", 10, "number of games to play")
	prefill := fs.Int("prefill", 0, "random squares to block before each game")
	rows := fs.Int("board-rows", 4, "number of rows")
	cols := fs.Int("board-cols", 4, "number of columns")
	plies := fs.Int("search-plies", 3, "search depth for both sides")
	debug := fs.Bool("debug", false, "enable debug logging")
	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("parsing flags")
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	if *debug {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	}

	cfg := config.DefaultConfig()
	cfg.BoardRows = *rows
	cfg.BoardCols = *cols
	cfg.SearchPlies = *plies

	r := automatic.NewGameRunner(cfg)
	r.SetPrefill(*prefill)

	start := time.Now()
	if err := r.Run(context.Background(), *numGames); err != nil {
		log.Fatal().Err(err).Msg("autoplay")
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("autoplay-done")
	fmt.Println(r.Summary())
}
