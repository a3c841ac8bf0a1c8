// Package correct reports confirmed timestamp discrepancies and rewrites the
// file's access and modification times to the true capture time.
package correct

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Options configures the corrector behavior.
type Options struct {
	// Simulate reports discrepancies but performs no filesystem mutation.
	Simulate bool
}

// Result contains the outcome of one correction.
type Result struct {
	Path    string
	Applied bool
	Error   error
}

// Apply reports the discrepancy for path and, unless simulating, sets both
// the access and modification times to trueTime.
//
// The report line goes to out unconditionally so simulation runs preview the
// exact same output. The mutation is irreversible: the original modification
// time is not recorded anywhere.
func Apply(out io.Writer, path string, trueTime time.Time, diff int64, opts Options) Result {
	fmt.Fprintf(out, "%s: discrepancy of %s (%d)\n",
		filepath.Base(path), time.Duration(diff)*time.Second, diff)

	if opts.Simulate {
		return Result{Path: path}
	}

	if err := os.Chtimes(path, trueTime, trueTime); err != nil {
		return Result{Path: path, Error: fmt.Errorf("set times: %w", err)}
	}

	return Result{Path: path, Applied: true}
}
