// Package config loads run configuration from defaults, an optional YAML
// file and environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/freeeve/vscc-rating/internal/report"
	"github.com/freeeve/vscc-rating/internal/scenario"
	"github.com/freeeve/vscc-rating/pkg/scoring"
)

// DefaultPath is read when no config file is given; it may be absent.
const DefaultPath = "vscc.yml"

// Config holds everything needed to evaluate a batch of scenarios.
type Config struct {
	Normalization string           `yaml:"normalization"`
	RatingPool    float64          `yaml:"rating_pool"`
	ImpunityGap   float64          `yaml:"impunity_gap"`
	Strategies    []StrategyConfig `yaml:"strategies"`
	Workers       int              `yaml:"workers"`
	LabelPrefix   string           `yaml:"label_prefix"`
	Format        string           `yaml:"format"`
	Source        string           `yaml:"source"`
	Set           string           `yaml:"set"`
}

// StrategyConfig describes one scoring strategy. Omitted fields take the
// defaults of the strategy kind; ClusterBonus and Participation may be set
// to 0 to drop those terms.
type StrategyConfig struct {
	Kind            string   `yaml:"kind"` // current | proposed
	Exponent        float64  `yaml:"exponent,omitempty"`
	Multiplier      float64  `yaml:"multiplier,omitempty"`
	PerformancePool float64  `yaml:"performance_pool,omitempty"`
	ClusterBonus    *float64 `yaml:"cluster_bonus,omitempty"`
	Participation   *float64 `yaml:"participation,omitempty"`
	ImpunityFloor   *float64 `yaml:"impunity_floor,omitempty"`
}

// Default returns the configuration that compares Current against Proposed
// with exponents 1.5 and 2.0.
func Default() *Config {
	return &Config{
		Normalization: "distance",
		RatingPool:    scoring.RatingPoolPerGame,
		ImpunityGap:   scoring.DefaultImpunityGap,
		Strategies: []StrategyConfig{
			{Kind: "current"},
			{Kind: "proposed", Exponent: 1.5},
			{Kind: "proposed", Exponent: 2.0},
		},
		Workers:     1,
		LabelPrefix: scenario.DefaultLabelPrefix,
		Format:      "text",
		Set:         "default",
	}
}

// Load builds a Config. An explicit path must exist; with an empty path
// DefaultPath is used when present.
func Load(path string) (*Config, error) {
	cfg := Default()

	useDefault := path == ""
	if useDefault {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && useDefault:
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Normalization = envOrDefault("VSCC_NORMALIZATION", c.Normalization)
	c.LabelPrefix = envOrDefault("VSCC_LABEL_PREFIX", c.LabelPrefix)
	c.Format = envOrDefault("VSCC_FORMAT", c.Format)
	c.Source = envOrDefault("VSCC_SOURCE", c.Source)
	c.Set = envOrDefault("VSCC_SET", c.Set)

	if v := os.Getenv("VSCC_RATING_POOL"); v != "" {
		pool, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("VSCC_RATING_POOL: %w", err)
		}
		c.RatingPool = pool
	}
	if v := os.Getenv("VSCC_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("VSCC_WORKERS: %w", err)
		}
		c.Workers = n
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Validate checks the configuration before any scenario is evaluated.
func (c *Config) Validate() error {
	if _, err := scoring.ParseNormalization(c.Normalization); err != nil {
		return err
	}
	if !(c.RatingPool > 0) {
		return fmt.Errorf("rating_pool must be positive, got %v", c.RatingPool)
	}
	if c.ImpunityGap < 0 {
		return fmt.Errorf("impunity_gap must not be negative, got %v", c.ImpunityGap)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if len(c.Strategies) == 0 {
		return errors.New("no strategies configured")
	}
	for i, s := range c.Strategies {
		switch strings.ToLower(s.Kind) {
		case "current":
		case "proposed":
			if !(s.Exponent > 0) {
				return fmt.Errorf("strategy %d: proposed exponent must be positive, got %v", i, s.Exponent)
			}
		default:
			return fmt.Errorf("strategy %d: unknown kind %q", i, s.Kind)
		}
		if (s.ClusterBonus != nil && *s.ClusterBonus < 0) || (s.Participation != nil && *s.Participation < 0) {
			return fmt.Errorf("strategy %d: cluster_bonus and participation must not be negative", i)
		}
	}
	if _, err := report.ForFormat(c.Format); err != nil {
		return err
	}
	return nil
}

// Evaluator builds the scoring pipeline described by the configuration.
func (c *Config) Evaluator() (*scoring.Evaluator, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	n, _ := scoring.ParseNormalization(c.Normalization)

	strategies := make([]scoring.Strategy, len(c.Strategies))
	for i, sc := range c.Strategies {
		strategies[i] = sc.build(c.ImpunityGap)
	}
	return scoring.NewEvaluator(n, scoring.Allocator{Pool: c.RatingPool}, strategies...), nil
}

func (sc StrategyConfig) build(gap float64) scoring.Strategy {
	if strings.ToLower(sc.Kind) == "current" {
		s := scoring.NewCurrent()
		s.Grouping.Gap = gap
		setIfPositive(&s.Multiplier, sc.Multiplier)
		setIfNotNil(&s.ClusterBonus, sc.ClusterBonus)
		setIfNotNil(&s.Participation, sc.Participation)
		setIfNotNil(&s.Grouping.Floor, sc.ImpunityFloor)
		return s
	}

	s := scoring.NewProposed(sc.Exponent)
	s.Grouping.Gap = gap
	setIfPositive(&s.Multiplier, sc.Multiplier)
	setIfPositive(&s.PerformancePool, sc.PerformancePool)
	setIfNotNil(&s.ClusterBonus, sc.ClusterBonus)
	setIfNotNil(&s.Participation, sc.Participation)
	setIfNotNil(&s.Grouping.Floor, sc.ImpunityFloor)
	return s
}

func setIfPositive(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

func setIfNotNil(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
