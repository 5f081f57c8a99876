// Package config loads the scenario for a comparison run.  Precedence, low
// to high: built-in defaults, an optional YAML file, then CIFSIM_-prefixed
// environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/glemaitre/hazardous/competing"
)

// Cause mirrors one competing.CauseSpec in the scenario file.
type Cause struct {
	EventID int     `koanf:"event_id"`
	Shape   float64 `koanf:"shape"`
	Scale   float64 `koanf:"scale"`
}

// Boosting mirrors the predictive estimator's configuration surface.
type Boosting struct {
	LearningRate     float64 `koanf:"learning_rate"`
	Iterations       int     `koanf:"iterations"`
	MaxLeafNodes     int     `koanf:"max_leaf_nodes"`
	HardZeroFraction float64 `koanf:"hard_zero_fraction"`
	Loss             string  `koanf:"loss"`
	ShowProgress     bool    `koanf:"show_progress"`
	Seed             uint64  `koanf:"seed"`
}

// Config describes one scenario.
type Config struct {

	// N is the number of simulated subjects.
	N int `koanf:"n"`

	// Seed feeds the single random source of the run.
	Seed uint64 `koanf:"seed"`

	// Horizon is the last time point of both grids.
	Horizon float64 `koanf:"horizon"`

	// CensorHigh is the uniform censoring upper bound; 0 means
	// 1.2 * Horizon.
	CensorHigh float64 `koanf:"censor_high"`

	// FinePoints sizes the integration grid, CoarsePoints the reporting
	// grid.  Coarsening FinePoints trades accuracy for speed; the causes
	// with shape < 1 suffer first.
	FinePoints   int `koanf:"fine_points"`
	CoarsePoints int `koanf:"coarse_points"`

	// Causes lists the competing causes in sampling order.
	Causes []Cause `koanf:"causes"`

	// Boosting is forwarded to the predictive estimator.
	Boosting Boosting `koanf:"boosting"`
}

// Default returns the canonical three-cause scenario: one decreasing-hazard
// cause, one constant, one sharply increasing, times in units of 1000.
func Default() *Config {
	return &Config{
		N:            5000,
		Seed:         0,
		Horizon:      3000,
		CensorHigh:   0,
		FinePoints:   100000,
		CoarsePoints: 100,
		Causes: []Cause{
			{EventID: 1, Shape: 0.5, Scale: 10000},
			{EventID: 2, Shape: 1, Scale: 3000},
			{EventID: 3, Shape: 5, Scale: 2000},
		},
		Boosting: Boosting{
			LearningRate:     0.03,
			Iterations:       300,
			MaxLeafNodes:     8,
			HardZeroFraction: 0.1,
			Loss:             "ibs",
			ShowProgress:     false,
			Seed:             0,
		},
	}
}

// Load builds a Config by layering defaults, an optional YAML file, and
// CIFSIM_-prefixed environment variables (CIFSIM_SEED, CIFSIM_N, ...).
func Load(path string) (*Config, error) {
	cfg := *Default()

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	envProvider := env.Provider("CIFSIM_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "cifsim_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.N <= 0 {
		return nil, fmt.Errorf("config: n must be positive")
	}
	if cfg.Horizon <= 0 {
		return nil, fmt.Errorf("config: horizon must be positive")
	}
	if len(cfg.Causes) == 0 {
		return nil, fmt.Errorf("config: at least one cause is required")
	}

	return &cfg, nil
}

// Registry builds the competing-cause registry from the scenario.
func (c *Config) Registry() (*competing.Registry, error) {
	specs := make([]competing.CauseSpec, len(c.Causes))
	for i, cs := range c.Causes {
		specs[i] = competing.CauseSpec{EventID: cs.EventID, Shape: cs.Shape, Scale: cs.Scale}
	}
	return competing.NewRegistry(specs...)
}
