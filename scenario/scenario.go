// Package scenario loads the demonstration scenarios that the demo
// drivers run. With no file given, the built-in defaults reproduce the
// original classroom demos; a YAML file can override any part of them.
package scenario

import (
	"github.com/spf13/viper"

	"github.com/mlopes/searchlab/scheduler"
)

// Placement is a tile laid on the board before the search starts.
type Placement struct {
	Row      int
	Col      int
	Vertical bool
}

// Dominoes describes the adversarial search demo: the board, the moves
// already played and the search depth.
type Dominoes struct {
	Rows    int
	Cols    int
	Plies   int
	Opening []Placement
}

// Deliveries describes the scheduler demo.
type Deliveries struct {
	StartX  float64
	StartY  float64
	Ordered bool
	Tasks   []scheduler.Delivery
}

// Cell is a single coordinate in the pathfinding demo.
type Cell struct {
	Row int
	Col int
}

// Pathfinding describes the A* demo: grid dimensions, obstacle cells
// and the endpoints.
type Pathfinding struct {
	Rows      int
	Cols      int
	Obstacles []Cell
	Start     Cell
	Goal      Cell
}

// Scenario bundles the three demos.
type Scenario struct {
	Dominoes    Dominoes
	Deliveries  Deliveries
	Pathfinding Pathfinding
}

// Load reads a scenario from the given YAML file, with the built-in
// defaults filling any keys the file leaves out. An empty path returns
// the defaults as is.
func Load(path string) (*Scenario, error) {
	v := viper.New()
	setDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	sc := &Scenario{}
	if err := v.Unmarshal(sc); err != nil {
		return nil, err
	}
	return sc, nil
}

// Default returns the built-in scenario: the 3x3 blocked-center
// dominoes board, the three-delivery schedule and the 10x10 walled
// grid.
func Default() *Scenario {
	sc, err := Load("")
	if err != nil {
		// The defaults always unmarshal.
		panic(err)
	}
	return sc
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dominoes.rows", 3)
	v.SetDefault("dominoes.cols", 3)
	v.SetDefault("dominoes.plies", 4)
	v.SetDefault("dominoes.opening", []map[string]any{
		{"row": 1, "col": 1, "vertical": false},
	})

	v.SetDefault("deliveries.startx", 0.0)
	v.SetDefault("deliveries.starty", 0.0)
	v.SetDefault("deliveries.ordered", true)
	v.SetDefault("deliveries.tasks", []map[string]any{
		{"x": 2.0, "y": 2.0, "deadline": 5.0},
		{"x": 10.0, "y": 10.0, "deadline": 50.0},
		{"x": 1.0, "y": 5.0, "deadline": 12.0},
	})

	v.SetDefault("pathfinding.rows", 10)
	v.SetDefault("pathfinding.cols", 10)
	wall := make([]map[string]any, 0, 8)
	for r := 0; r < 8; r++ {
		wall = append(wall, map[string]any{"row": r, "col": 5})
	}
	v.SetDefault("pathfinding.obstacles", wall)
	v.SetDefault("pathfinding.start", map[string]any{"row": 0, "col": 0})
	v.SetDefault("pathfinding.goal", map[string]any{"row": 0, "col": 8})
}
