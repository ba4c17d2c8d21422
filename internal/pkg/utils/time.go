package utils

import (
	"staffportal-service/internal/pkg/constvars"
	"time"
)

// CurrentDateString returns today's date the way the portal stores visit and
// record dates, e.g. "2026-08-28".
func CurrentDateString() string {
	return time.Now().Format(constvars.DateLayout)
}

// CurrentTimeString returns the wall-clock time used for vitals and nursing
// note timestamps, e.g. "14:05".
func CurrentTimeString() string {
	return time.Now().Format(constvars.TimeLayout)
}
