// Demo driver for the A* pathfinder: builds the obstacle grid from the
// scenario and finds the shortest 8-directional path.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mlopes/searchlab/board"
	"github.com/mlopes/searchlab/config"
	"github.com/mlopes/searchlab/pathfind"
	"github.com/mlopes/searchlab/scenario"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	if cfg.Debug {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	}

	sc, err := scenario.Load(cfg.ScenarioPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading scenario")
	}

	fmt.Println("=== Heuristic Search Demo: A* Pathfinding ===")

	grid := board.NewGrid(sc.Pathfinding.Rows, sc.Pathfinding.Cols)
	for _, o := range sc.Pathfinding.Obstacles {
		grid.SetOccupied(o.Row, o.Col, true)
	}
	start := pathfind.Position{Row: sc.Pathfinding.Start.Row, Col: sc.Pathfinding.Start.Col}
	goal := pathfind.Position{Row: sc.Pathfinding.Goal.Row, Col: sc.Pathfinding.Goal.Col}

	fmt.Printf("Start: %v, Goal: %v\n", start, goal)
	fmt.Print(grid)
	fmt.Println("Calculating path around obstacles...")

	path, err := pathfind.ShortestPath(grid, start, goal)
	if errors.Is(err, pathfind.ErrUnreachable) {
		fmt.Println("No path found.")
		os.Exit(1)
	} else if err != nil {
		log.Fatal().Err(err).Msg("pathfinding")
	}

	fmt.Printf("Path found (%d steps, cost %.3f, %d cells expanded):\n",
		path.Steps(), path.Cost, path.Expanded)
	for _, p := range path.Positions {
		fmt.Printf("  (%d, %d)\n", p.Row, p.Col)
	}
}
