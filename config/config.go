// SPDX-License-Identifier: MIT

// Package config holds the cross-validation harness settings, read from YAML
// with defaults for every field and environment overrides on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Environment overrides applied by Load.
const (
	EnvConcurrency = "ELV_CONCURRENCY"
	EnvLogLevel    = "ELV_LOG_LEVEL"
)

// Config is the harness configuration.
type Config struct {
	// Concurrency bounds the number of suites running at once.
	Concurrency int `yaml:"concurrency"`

	Logging LoggingConfig `yaml:"logging"`

	GreedyVsSmart   RangeSuite `yaml:"greedy_vs_smart"`
	PrimeTimesPrime PrimeSuite `yaml:"prime_times_prime"`
	PrimePowers     PowerSuite `yaml:"prime_powers"`
	P1SquaredP2     PrimeSuite `yaml:"p1_squared_p2"`
	P1P2P3          PrimeSuite `yaml:"p1_p2_p3"`
	CubeSolver      PrimeSuite `yaml:"cube_solver"`
	GridVsOracle    GridSuite  `yaml:"grid_vs_oracle"`
	Growth          GrowthRun  `yaml:"growth"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // console encoder
}

// RangeSuite checks every n in [From, To].
type RangeSuite struct {
	Enabled bool `yaml:"enabled"`
	From    int  `yaml:"from"`
	To      int  `yaml:"to"`
}

// PrimeSuite checks combinations drawn from Primes.
type PrimeSuite struct {
	Enabled bool  `yaml:"enabled"`
	Primes  []int `yaml:"primes"`
}

// PowerSuite checks p^k for p in Primes, k in Powers.
type PowerSuite struct {
	Enabled bool  `yaml:"enabled"`
	Primes  []int `yaml:"primes"`
	Powers  []int `yaml:"powers"`
}

// GridSuite checks p1^a·p2^b for prime pairs from Primes, 0 ≤ a ≤ MaxA,
// 0 ≤ b ≤ MaxB, where n stays within MaxN.
type GridSuite struct {
	Enabled bool  `yaml:"enabled"`
	Primes  []int `yaml:"primes"`
	MaxA    int   `yaml:"max_a"`
	MaxB    int   `yaml:"max_b"`
	MaxN    int   `yaml:"max_n"`
}

// GrowthRun prints lattice totals for p1^i·p2^i, 1 ≤ i ≤ UpTo.
type GrowthRun struct {
	Enabled bool `yaml:"enabled"`
	P1      int  `yaml:"p1"`
	P2      int  `yaml:"p2"`
	UpTo    int  `yaml:"up_to"`
}

// Default returns the stock suite set.
func Default() *Config {
	return &Config{
		Concurrency: 4,
		Logging: LoggingConfig{
			Level: "info",
		},
		GreedyVsSmart: RangeSuite{Enabled: true, From: 10, To: 30},
		PrimeTimesPrime: PrimeSuite{
			Enabled: true,
			Primes:  []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43},
		},
		PrimePowers: PowerSuite{
			Enabled: true,
			Primes:  []int{3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43},
			Powers:  []int{1, 2, 3},
		},
		P1SquaredP2: PrimeSuite{Enabled: true, Primes: []int{2, 3, 5, 7, 11, 13, 17}},
		P1P2P3:      PrimeSuite{Enabled: true, Primes: []int{2, 3, 5, 7, 11, 13}},
		CubeSolver:  PrimeSuite{Enabled: true, Primes: []int{3, 5, 7, 11, 13, 17, 19, 23}},
		GridVsOracle: GridSuite{
			Enabled: true,
			Primes:  []int{2, 3, 5},
			MaxA:    2,
			MaxB:    2,
			MaxN:    4096,
		},
		Growth: GrowthRun{Enabled: true, P1: 3, P2: 5, UpTo: 5},
	}
}

// Load reads path over Default. A missing file yields the defaults.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cfg.applyEnvOverrides()
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvConcurrency); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvConcurrency, v, ErrInvalidConfig)
		}
		c.Concurrency = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}

	return nil
}

// Level parses Logging.Level; an empty level means info.
func (c *Config) Level() (zapcore.Level, error) {
	if c.Logging.Level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return lvl, fmt.Errorf("logging.level %q: %w", c.Logging.Level, ErrInvalidConfig)
	}

	return lvl, nil
}

// Validate checks ranges and prime lists.
func (c *Config) Validate() error {
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency %d < 1: %w", c.Concurrency, ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if s := c.GreedyVsSmart; s.Enabled && (s.From < 1 || s.To < s.From) {
		return fmt.Errorf("greedy_vs_smart range [%d,%d]: %w", s.From, s.To, ErrInvalidConfig)
	}
	lists := map[string][]int{
		"prime_times_prime": c.PrimeTimesPrime.Primes,
		"prime_powers":      c.PrimePowers.Primes,
		"p1_squared_p2":     c.P1SquaredP2.Primes,
		"p1_p2_p3":          c.P1P2P3.Primes,
		"cube_solver":       c.CubeSolver.Primes,
		"grid_vs_oracle":    c.GridVsOracle.Primes,
	}
	for name, ps := range lists {
		for _, p := range ps {
			if p < 2 {
				return fmt.Errorf("%s: prime %d: %w", name, p, ErrInvalidConfig)
			}
		}
	}
	for _, k := range c.PrimePowers.Powers {
		if k < 1 {
			return fmt.Errorf("prime_powers: power %d: %w", k, ErrInvalidConfig)
		}
	}
	if g := c.GridVsOracle; g.Enabled && (g.MaxA < 0 || g.MaxB < 0 || g.MaxN < 1) {
		return fmt.Errorf("grid_vs_oracle bounds a=%d b=%d n=%d: %w", g.MaxA, g.MaxB, g.MaxN, ErrInvalidConfig)
	}
	if g := c.Growth; g.Enabled && (g.P1 < 2 || g.P2 < 2 || g.P1 == g.P2 || g.UpTo < 1) {
		return fmt.Errorf("growth p1=%d p2=%d up_to=%d: %w", g.P1, g.P2, g.UpTo, ErrInvalidConfig)
	}

	return nil
}
