package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returning the default on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// DateOnly is the wire format for date fields (admission date of birth,
// exam date, activity date).
const DateOnly = "2006-01-02"

// ParseDate parses a yyyy-mm-dd string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateOnly, value)
}
