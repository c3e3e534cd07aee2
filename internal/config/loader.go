package config

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const weightSumTolerance = 1e-9

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if VOLMATCH_CONFIG is set
//  3. env (prefix VOLMATCH_)
func Load(_ context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("VOLMATCH_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: VOLMATCH_ADDR, VOLMATCH_SKILL_WEIGHT, ...
	// Map env keys like VOLMATCH_SKILL_WEIGHT -> skill_weight (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("VOLMATCH_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "volmatch_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.DefaultSuggestLimit < 1 {
		return fmt.Errorf("%w: default_suggest_limit must be >= 1", ErrInvalidConfig)
	}
	if c.MaxSuggestLimit < c.DefaultSuggestLimit {
		return fmt.Errorf("%w: max_suggest_limit must be >= default_suggest_limit", ErrInvalidConfig)
	}
	if c.SimilarLimit < 1 {
		return fmt.Errorf("%w: similar_limit must be >= 1", ErrInvalidConfig)
	}

	weights := []float64{c.SkillWeight, c.AvailabilityWeight, c.DistanceWeight, c.CauseWeight}
	sum := 0.0
	for _, w := range weights {
		if w < 0 {
			return fmt.Errorf("%w: scoring weights must be non-negative", ErrInvalidConfig)
		}
		sum += w
	}
	if math.Abs(sum-1) > weightSumTolerance {
		return fmt.Errorf("%w: scoring weights must sum to 1, got %v", ErrInvalidConfig, sum)
	}

	if c.FullScoreDistanceKM < 0 || c.ZeroScoreDistanceKM <= c.FullScoreDistanceKM {
		return fmt.Errorf("%w: distance thresholds must satisfy 0 <= full < zero", ErrInvalidConfig)
	}
	if c.PartialOverlapCredit < 0 || c.PartialOverlapCredit > 1 {
		return fmt.Errorf("%w: partial_overlap_credit must be within [0,1]", ErrInvalidConfig)
	}
	return nil
}
