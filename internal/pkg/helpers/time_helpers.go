// Package helpers holds small time formatting and parsing utilities shared
// across layers.
package helpers

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses raw as a time.Duration, falling back to fallback when
// raw is empty or malformed. Configuration strings go through here so a typo
// degrades to a sane default instead of aborting startup.
func ParseDuration(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Warn().Err(err).Str("value", raw).Dur("fallback", fallback).Msg("Invalid duration, using fallback")
		return fallback
	}
	return d
}

// ClockTime renders minutes since midnight in HH:MM form, e.g. 480 -> "08:00".
func ClockTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
