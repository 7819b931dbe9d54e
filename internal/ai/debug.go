package ai

import (
	"log/slog"
	"sync/atomic"
)

// debugLoggingEnabled gates the per-candidate decision logs. Scoring every
// move of every battler each turn is too chatty to leave to the slog level alone.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging turns the decision logs on or off. Call it once at startup
// from the configured log level.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled reports whether decision logs are on.
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}

func logCandidate(c candidate, noisy float64) {
	if !IsDebugEnabled() {
		return
	}
	slog.Debug("ai candidate", "action", c.action, "score", c.score, "noisy", noisy)
}
