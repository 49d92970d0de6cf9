// SPDX-License-Identifier: MIT

// Package config loads the bmad command configuration.
//
// Precedence (highest first):
//  1. BMAD_* environment variables (BMAD_DECOMPOSITION_SIZE → decomposition.size)
//  2. the YAML file passed to Load
//  3. built-in defaults
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/bmad/bmd"
	"github.com/katalvlaran/bmad/internal/logging"
	"github.com/katalvlaran/bmad/mlc"
)

// EnvPrefix marks the environment variables read by Load.
const EnvPrefix = "BMAD_"

// Defaults.
const (
	DefaultNeighbours = 3
	DefaultLogLevel   = "info"
	DefaultLogFormat  = logging.FormatConsole
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the complete bmad configuration.
type Config struct {
	Decomposition DecompositionConfig `koanf:"decomposition"`
	Scorer        ScorerConfig        `koanf:"scorer"`
	Log           LogConfig           `koanf:"log"`
}

// DecompositionConfig holds the label compression knobs.
type DecompositionConfig struct {
	Size      int     `koanf:"size"`
	Threshold float64 `koanf:"threshold"`
	Bonus     float64 `koanf:"bonus"`
	Penalty   float64 `koanf:"penalty"`
}

// ScorerConfig holds the nearest-neighbour scorer settings.
type ScorerConfig struct {
	Neighbours int `koanf:"neighbours"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Load reads the YAML file at path (skipped when path is empty), overlays
// BMAD_* environment variables, applies defaults and validates.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()

	return &cfg
}

// envKey maps BMAD_SECTION_FIELD_NAME to section.field_name.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower
	}

	return parts[0] + "." + parts[1]
}

func (c *Config) applyDefaults() {
	if c.Decomposition.Size == 0 {
		c.Decomposition.Size = mlc.DefaultSize
	}
	if c.Decomposition.Threshold == 0 {
		c.Decomposition.Threshold = mlc.DefaultThreshold
	}
	if c.Decomposition.Bonus == 0 {
		c.Decomposition.Bonus = bmd.DefaultBonus
	}
	if c.Decomposition.Penalty == 0 {
		c.Decomposition.Penalty = bmd.DefaultPenalty
	}
	if c.Scorer.Neighbours == 0 {
		c.Scorer.Neighbours = DefaultNeighbours
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

// Validate checks every field against its domain.
func (c *Config) Validate() error {
	if c.Decomposition.Size < mlc.MinSize {
		return fmt.Errorf("decomposition.size %d below %d: %w", c.Decomposition.Size, mlc.MinSize, ErrInvalidConfig)
	}
	if err := bmd.ValidateThreshold(c.Decomposition.Threshold); err != nil {
		return fmt.Errorf("decomposition.threshold: %v: %w", err, ErrInvalidConfig)
	}
	if !positiveFinite(c.Decomposition.Bonus) {
		return fmt.Errorf("decomposition.bonus %v: %w", c.Decomposition.Bonus, ErrInvalidConfig)
	}
	if !positiveFinite(c.Decomposition.Penalty) {
		return fmt.Errorf("decomposition.penalty %v: %w", c.Decomposition.Penalty, ErrInvalidConfig)
	}
	if c.Scorer.Neighbours < 1 {
		return fmt.Errorf("scorer.neighbours %d: %w", c.Scorer.Neighbours, ErrInvalidConfig)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalidConfig)
	}
	if c.Log.Format != logging.FormatJSON && c.Log.Format != logging.FormatConsole {
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalidConfig)
	}

	return nil
}

// AssoOptions returns the cover weights as bmd options.
func (c *Config) AssoOptions() []bmd.Option {
	return []bmd.Option{bmd.WithBonus(c.Decomposition.Bonus), bmd.WithPenalty(c.Decomposition.Penalty)}
}

func positiveFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
