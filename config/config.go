// Package config holds the knobs shared by the demo drivers. Flags can
// also be set through environment variables (SEARCHLAB_BOARD_ROWS and
// so on), courtesy of namsral/flag.
package config

import "github.com/namsral/flag"

type Config struct {
	BoardRows        int
	BoardCols        int
	SearchPlies      int
	EvaluationBudget int
	ScenarioPath     string
	Debug            bool
}

// DefaultConfig mirrors the flag defaults for callers that skip Load.
func DefaultConfig() *Config {
	return &Config{
		BoardRows:        3,
		BoardCols:        3,
		SearchPlies:      4,
		EvaluationBudget: 500000,
	}
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSetWithEnvPrefix("searchlab", "SEARCHLAB", flag.ContinueOnError)
	fs.IntVar(&c.BoardRows, "board-rows", 3, "number of rows on the dominoes board")
	fs.IntVar(&c.BoardCols, "board-cols", 3, "number of columns on the dominoes board")
	fs.IntVar(&c.SearchPlies, "search-plies", 4, "depth limit for the adversarial search")
	fs.IntVar(&c.EvaluationBudget, "evaluation-budget", 500000, "candidate evaluation cutoff for the scheduler")
	fs.StringVar(&c.ScenarioPath, "scenario-path", "", "optional YAML scenario file overriding the built-in demos")
	fs.BoolVar(&c.Debug, "debug", false, "enable debug logging")
	err := fs.Parse(args)
	return err
}
