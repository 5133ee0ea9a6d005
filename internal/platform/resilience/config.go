package resilience

import "time"

// ImportFetchFanOut is the number of upstream calls one league import makes
// concurrently (league, rosters, users).
const ImportFetchFanOut = 3

type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
	OnStateChange    StateChangeFunc
}

// DefaultCircuitBreakerConfig is sized for provider imports. Half-open
// admits one whole import so none of its fetches is rejected for lack of a
// slot, and the threshold is two failed imports.
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2 * ImportFetchFanOut,
		OpenTimeout:      30 * time.Second,
		HalfOpenMaxReq:   ImportFetchFanOut,
	}
}

// NormalizeCircuitBreakerConfig fills unset fields from the defaults.
func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	if cfg.HalfOpenMaxReq < 1 {
		cfg.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	return cfg
}
