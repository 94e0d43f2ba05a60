package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		// Global logger: this can run before logger.Configure.
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ProgressPercent returns completed/total as a whole percentage rounded half up,
// and 0 when total is 0.
func ProgressPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return (completed*200 + total) / (total * 2)
}
