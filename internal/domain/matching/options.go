package matching

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithWeights sets the composite score weights. Weights are expected to be
// non-negative and sum to 1; config validation enforces that upstream.
func WithWeights(w Weights) Option {
	return func(e *Engine) {
		if w.Skill >= 0 && w.Availability >= 0 && w.Distance >= 0 && w.Cause >= 0 {
			e.weights = w
		}
	}
}

// WithDistanceThresholds sets the full-score and zero-score distances in
// kilometers.
func WithDistanceThresholds(fullKM, zeroKM float64) Option {
	return func(e *Engine) {
		if fullKM >= 0 && zeroKM > fullKM {
			e.fullScoreDistanceKM = fullKM
			e.zeroScoreDistanceKM = zeroKM
		}
	}
}

// WithPartialOverlapCredit sets the availability credit applied when an
// event starts inside a window but overruns it.
func WithPartialOverlapCredit(credit float64) Option {
	return func(e *Engine) {
		if credit >= 0 && credit <= 1 {
			e.partialOverlapCredit = credit
		}
	}
}
