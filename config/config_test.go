package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.Equal(c.BoardRows, 3)
	is.Equal(c.BoardCols, 3)
	is.Equal(c.SearchPlies, 4)
	is.Equal(c.EvaluationBudget, 500000)
	is.Equal(c.ScenarioPath, "")
	is.Equal(c.Debug, false)
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{
		"-board-rows", "5",
		"-board-cols", "6",
		"-search-plies", "2",
		"-debug",
	}))
	is.Equal(c.BoardRows, 5)
	is.Equal(c.BoardCols, 6)
	is.Equal(c.SearchPlies, 2)
	is.Equal(c.Debug, true)
}
