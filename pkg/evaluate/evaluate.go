// Package evaluate decides whether a timestamp discrepancy warrants
// correcting the file's modification time.
//
// Discrepancies that are an almost-whole number of hours are usually a
// timezone offset, not a timestamp error, so they are forgiven up to a
// configurable residual.
package evaluate

import (
	"math"
	"time"
)

// Tolerance holds the two per-run thresholds, in seconds.
//
// MaxDiff is the largest absolute discrepancy ignored outright; 0 makes any
// nonzero difference eligible. MaxTZDiff is the residual below which a
// discrepancy is attributed to a timezone offset; 0 disables the allowance.
type Tolerance struct {
	MaxDiff   int64
	MaxTZDiff int64
}

// DefaultTolerance mirrors the CLI defaults.
var DefaultTolerance = Tolerance{MaxDiff: 60, MaxTZDiff: 60}

// Outcome is the evaluator's verdict plus the raw difference for reporting.
type Outcome struct {
	NeedsCorrection bool
	Diff            int64 // absolute difference in whole seconds
}

// Evaluate compares a validated true capture time against the file's
// validated modification time.
//
// Both inputs are assumed to have passed the plausibility window already.
// Rounding ties (both the sub-second rounding of the difference and the
// half-hour boundary when snapping to whole hours) round away from zero.
func Evaluate(trueTime, modTime time.Time, tol Tolerance) Outcome {
	d := trueTime.Sub(modTime)
	if d < 0 {
		d = -d
	}
	diff := int64(math.Round(d.Seconds()))

	snapped := int64(math.Round(float64(diff)/3600)) * 3600
	tzSlack := diff - snapped
	if tzSlack < 0 {
		tzSlack = -tzSlack
	}

	return Outcome{
		NeedsCorrection: diff > tol.MaxDiff && tzSlack >= tol.MaxTZDiff,
		Diff:            diff,
	}
}
