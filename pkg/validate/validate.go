// Package validate gates timestamp candidates against a plausibility window.
//
// This is the single sanity check standing between corrupt filenames, corrupt
// metadata or corrupt filesystem clocks and a wrong correction.
package validate

import (
	"time"

	"github.com/rs/zerolog"
)

// minCaptureEpoch is Jan 1, 1995: roughly the advent of consumer digital
// photography. Anything earlier cannot be a real capture time.
const minCaptureEpoch = 788936400

// slack beyond "now" tolerated for clock skew and timezone edge effects.
const futureSlack = 7 * 24 * time.Hour

// Window is the epoch range within which a timestamp is considered a
// credible photo capture time. It is computed once per run.
type Window struct {
	Min time.Time
	Max time.Time
}

// NewWindow builds the plausibility window for a run starting at now.
func NewWindow(now time.Time) Window {
	return Window{
		Min: time.Unix(minCaptureEpoch, 0),
		Max: now.Add(futureSlack),
	}
}

// Check reports whether t falls inside the window. On failure it logs an
// error naming the candidate's source; the caller must discard the candidate
// and skip the file.
func (w Window) Check(t time.Time, source string, logger zerolog.Logger) bool {
	if t.Before(w.Min) || t.After(w.Max) {
		logger.Error().
			Str("source", source).
			Time("value", t).
			Msgf("invalid %s: %s", source, t.Format("2006-01-02 15:04:05"))
		return false
	}
	return true
}
