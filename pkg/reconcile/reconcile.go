// Package reconcile drives the per-file timestamp reconciliation: extract a
// ground-truth capture time, validate it, evaluate the discrepancy against
// the file's modification time, and correct it when warranted.
//
// Filename extraction strictly precedes metadata extraction; metadata is
// consulted only when no filename rule yields a usable time. Filenames are
// considered the more reliable source when both conventions coexist in the
// same directory.
package reconcile

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/djherbis/times"
	"github.com/rs/zerolog"

	"github.com/quidome/timefix/pkg/correct"
	"github.com/quidome/timefix/pkg/evaluate"
	"github.com/quidome/timefix/pkg/pattern"
	"github.com/quidome/timefix/pkg/validate"
)

// Source describes where a timestamp candidate came from. The strings double
// as the human-readable descriptions used in validation diagnostics.
type Source string

const (
	SourceFilename Source = "filename timestamp"
	SourceMetadata Source = "EXIF timestamp"
	SourceModTime  Source = "date modified"
)

// MetadataSource extracts an embedded capture time for a path, returning
// false when none is available. A disabled capability simply always returns
// false.
type MetadataSource interface {
	Extract(path string) (time.Time, bool)
}

// Config is the immutable per-run configuration, built once by the CLI and
// passed down. No component keeps state across files.
type Config struct {
	Tolerance evaluate.Tolerance
	Simulate  bool
	Window    validate.Window

	// Location interprets wall-clock times from filenames and metadata.
	// Defaults to time.Local.
	Location *time.Location

	// Metadata may be nil when no metadata capability exists at all.
	Metadata MetadataSource

	// Out receives the unconditional correction report lines.
	Out    io.Writer
	Logger zerolog.Logger
}

// Run processes the file list sequentially. Per-file failures are terminal
// for that file only; the run always completes the whole list. It returns
// the number of files whose discrepancy was reported.
func Run(paths []string, cfg Config) int {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}

	reported := 0
	for _, path := range paths {
		if processFile(path, cfg) {
			reported++
		}
	}
	return reported
}

// processFile runs the reconciliation state machine for one path. It returns
// true when a discrepancy was reported.
func processFile(path string, cfg Config) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		// Missing paths are a user typo, not a data problem: skip silently.
		return false
	}
	name := filepath.Base(path)

	trueTime, ok := extractTrueTime(path, name, cfg)
	if !ok {
		return false
	}

	ts, err := times.Stat(path)
	if err != nil {
		return false
	}
	modTime := ts.ModTime()
	if !cfg.Window.Check(modTime, string(SourceModTime), cfg.Logger) {
		return false
	}

	outcome := evaluate.Evaluate(trueTime, modTime, cfg.Tolerance)
	if !outcome.NeedsCorrection {
		return false
	}

	res := correct.Apply(cfg.Out, path, trueTime, outcome.Diff, correct.Options{Simulate: cfg.Simulate})
	if res.Error != nil {
		cfg.Logger.Error().Err(res.Error).Str("file", name).Msgf("could not correct %s", name)
	}
	return true
}

// extractTrueTime resolves the ground-truth capture time for a file, or
// false when the file should be skipped. Validation failures are already
// logged by the window check.
func extractTrueTime(path, name string, cfg Config) (time.Time, bool) {
	if t, ok := pattern.Extract(name, cfg.Location); ok {
		if !cfg.Window.Check(t, string(SourceFilename), cfg.Logger) {
			return time.Time{}, false
		}
		return t, true
	}

	if cfg.Metadata != nil {
		if t, ok := cfg.Metadata.Extract(path); ok {
			if !cfg.Window.Check(t, string(SourceMetadata), cfg.Logger) {
				return time.Time{}, false
			}
			return t, true
		}
	}

	if !pattern.Ignored(name) {
		cfg.Logger.Error().Str("file", name).Msgf("unrecognized name format & no EXIF: %s", name)
	}
	return time.Time{}, false
}
