// Demo driver for the adversarial search engine: sets up the dominoes
// board from the scenario, runs the alpha-beta solver and reports the
// chosen move.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mlopes/searchlab/config"
	"github.com/mlopes/searchlab/endgame/alphabeta"
	"github.com/mlopes/searchlab/game"
	"github.com/mlopes/searchlab/move"
	"github.com/mlopes/searchlab/movegen"
	"github.com/mlopes/searchlab/scenario"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	logger := zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	if cfg.Debug {
		logger = logger.Level(zerolog.DebugLevel)
	}
	log.Logger = logger

	sc, err := scenario.Load(cfg.ScenarioPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading scenario")
	}

	fmt.Println("=== Adversarial Search Demo: Dominoes ===")

	g := game.NewGame(sc.Dominoes.Rows, sc.Dominoes.Cols)
	for i, p := range sc.Dominoes.Opening {
		orient := move.Horizontal
		if p.Vertical {
			orient = move.Vertical
		}
		if i == 0 {
			if err = g.SetPlayerOnTurn(orient); err != nil {
				log.Fatal().Err(err).Msg("setting opening player")
			}
		}
		if err = g.PlayMove(move.NewPlacement(p.Row, p.Col, orient)); err != nil {
			log.Fatal().Err(err).Msg("playing opening move")
		}
	}

	fmt.Println("Current board state:")
	fmt.Print(g.Board())
	fmt.Printf("%v to move, thinking %d plies deep...\n",
		g.PlayerOnTurn(), sc.Dominoes.Plies)

	s := &alphabeta.Solver{}
	if err = s.Init(movegen.NewPlacementGenerator(), g); err != nil {
		log.Fatal().Err(err).Msg("initializing solver")
	}
	start := time.Now()
	m, v, err := s.Solve(context.Background(), sc.Dominoes.Plies)
	if err != nil {
		log.Fatal().Err(err).Msg("solving")
	}
	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("totalNodes", s.TotalNodes()).
		Int("leafNodes", s.LeafNodes()).
		Msg("search-finished")

	if m == nil {
		fmt.Printf("No move to make; position value: %v\n", v)
		return
	}
	fmt.Printf("Selected move: %v\n", m.ShortDescription())
	fmt.Printf("Heuristic score: %v\n", v)
	fmt.Printf("Leaf nodes evaluated: %d\n", s.LeafNodes())
}
