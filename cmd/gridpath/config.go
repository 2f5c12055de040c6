package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/idastar"
)

// config mirrors the YAML solver settings. Every field is optional; the
// zero value falls back to the library defaults.
type config struct {
	Heuristic string  `yaml:"heuristic"`  // manhattan|euclidean|octile|chebyshev
	Weight    float64 `yaml:"weight"`     // ≥ 1
	Diagonal  string  `yaml:"diagonal"`   // never|if-at-most-one-obstacle|only-when-no-obstacles|always
	TimeLimit string  `yaml:"time_limit"` // Go duration string, e.g. "2s"
}

// loadConfig reads the YAML file at path; an empty path yields the zero config.
func loadConfig(path string) (config, error) {
	var c config
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}

	return c, nil
}

var heuristics = map[string]heuristic.Func{
	"manhattan": heuristic.Manhattan,
	"euclidean": heuristic.Euclidean,
	"octile":    heuristic.Octile,
	"chebyshev": heuristic.Chebyshev,
}

var diagonals = map[string]grid.DiagonalMovement{
	"never":                   grid.Never,
	"if-at-most-one-obstacle": grid.IfAtMostOneObstacle,
	"only-when-no-obstacles":  grid.OnlyWhenNoObstacles,
	"always":                  grid.Always,
}

// options translates the config into idastar functional options.
func (c config) options() ([]idastar.Option, error) {
	var opts []idastar.Option
	if c.Heuristic != "" {
		h, ok := heuristics[c.Heuristic]
		if !ok {
			return nil, fmt.Errorf("unknown heuristic %q", c.Heuristic)
		}
		opts = append(opts, idastar.WithHeuristic(h))
	}
	if c.Diagonal != "" {
		dm, ok := diagonals[c.Diagonal]
		if !ok {
			return nil, fmt.Errorf("unknown diagonal policy %q", c.Diagonal)
		}
		opts = append(opts, idastar.WithDiagonalMovement(dm))
	}
	if c.Weight != 0 {
		if c.Weight < 1 {
			return nil, fmt.Errorf("weight %v below 1", c.Weight)
		}
		opts = append(opts, idastar.WithWeight(c.Weight))
	}
	if c.TimeLimit != "" {
		d, err := time.ParseDuration(c.TimeLimit)
		if err != nil {
			return nil, fmt.Errorf("parse time_limit: %w", err)
		}
		opts = append(opts, idastar.WithTimeLimit(d))
	}

	return opts, nil
}
