// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load layers file/env on top.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DefaultSuggestLimit is used when GET /matching/suggest omits limit.
	DefaultSuggestLimit int `koanf:"default_suggest_limit"`

	// MaxSuggestLimit caps GET /matching/suggest?limit.
	MaxSuggestLimit int `koanf:"max_suggest_limit"`

	// SimilarLimit is the default cap for GET /events/{id}/similar.
	SimilarLimit int `koanf:"similar_limit"`

	// SeedDemoData loads the bundled sample volunteers and events on startup.
	SeedDemoData bool `koanf:"seed_demo_data"`

	// Scoring weights. Must be non-negative and sum to 1.
	SkillWeight        float64 `koanf:"skill_weight"`
	AvailabilityWeight float64 `koanf:"availability_weight"`
	DistanceWeight     float64 `koanf:"distance_weight"`
	CauseWeight        float64 `koanf:"cause_weight"`

	// Distance thresholds in kilometers. Full > zero is invalid.
	FullScoreDistanceKM float64 `koanf:"full_score_distance_km"`
	ZeroScoreDistanceKM float64 `koanf:"zero_score_distance_km"`

	// PartialOverlapCredit scales availability when an event overruns a window.
	PartialOverlapCredit float64 `koanf:"partial_overlap_credit"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		Addr:                 ":9080",
		DefaultSuggestLimit:  10,
		MaxSuggestLimit:      100,
		SimilarLimit:         5,
		SeedDemoData:         true,
		SkillWeight:          0.5,
		AvailabilityWeight:   0.2,
		DistanceWeight:       0.2,
		CauseWeight:          0.1,
		FullScoreDistanceKM:  5,
		ZeroScoreDistanceKM:  50,
		PartialOverlapCredit: 0.7,
	}
}
