package main

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/quidome/timefix/pkg/evaluate"
	"github.com/quidome/timefix/pkg/metadata"
	"github.com/quidome/timefix/pkg/reconcile"
	"github.com/quidome/timefix/pkg/scan"
	"github.com/quidome/timefix/pkg/validate"
)

const version = "0.1.0"

type options struct {
	noEdit    bool
	quiet     bool
	verbose   bool
	maxDiff   int64
	maxTZDiff int64
	maxDepth  int
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "timefix [flags] file.jpg ...",
		Short: "Set the modification time of media files to their capture time",
		Long: "Timefix compares the capture timestamp encoded in a media file's name (or its EXIF\n" +
			"metadata) with the file's date modified, and sets the date modified to the capture\n" +
			"time when they differ. Differences likely due to time zones (an even number of\n" +
			"hours) are ignored.",
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	rootCmd.Flags().BoolVarP(&opts.noEdit, "no-edit", "n", false, "simulation: don't make any modifications")
	rootCmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "print no diagnostics, only actual changes made")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "print all diagnostics, including metadata parse problems")
	rootCmd.Flags().Int64VarP(&opts.maxDiff, "max-diff", "d", 60, "maximum allowed discrepancy between the capture time and the date modified, in seconds; 0 allows no discrepancy")
	rootCmd.Flags().Int64VarP(&opts.maxTZDiff, "max-tz-diff", "D", 60, "tolerance in seconds when attributing a discrepancy to a timezone difference; 0 turns the allowance off")
	rootCmd.Flags().IntVar(&opts.maxDepth, "max-depth", -1, "recursion depth for directory arguments (0 = no recursion)")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	if opts.maxDiff < 0 || opts.maxTZDiff < 0 {
		return errors.New("tolerances must be non-negative")
	}

	logger := newLogger(cmd, opts)

	extractor := metadata.NewExtractor(time.Local, logger)
	defer extractor.Close()

	paths, err := expandArgs(args, opts.maxDepth)
	if err != nil {
		return err
	}

	cfg := reconcile.Config{
		Tolerance: evaluate.Tolerance{MaxDiff: opts.maxDiff, MaxTZDiff: opts.maxTZDiff},
		Simulate:  opts.noEdit,
		Window:    validate.NewWindow(time.Now()),
		Location:  time.Local,
		Metadata:  extractor,
		Out:       cmd.OutOrStdout(),
		Logger:    logger,
	}

	reported := reconcile.Run(paths, cfg)

	if opts.verbose {
		logger.Info().Msgf("processed %d files, %d discrepancies reported", len(paths), reported)
	}
	return nil
}

// newLogger maps the quiet/verbose flags onto diagnostic severities: quiet
// silences everything, the default shows warnings and errors, verbose adds
// informational output. Correction reports go to stdout and are unaffected.
func newLogger(cmd *cobra.Command, opts *options) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case opts.quiet:
		level = zerolog.Disabled
	case opts.verbose:
		level = zerolog.InfoLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        cmd.ErrOrStderr(),
		NoColor:    true,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
	}
	return zerolog.New(writer).Level(level)
}

// expandArgs replaces directory arguments with the media files beneath them.
// File arguments pass through untouched, existing or not: missing files are
// the driver's silent-skip case, not a CLI error.
func expandArgs(args []string, maxDepth int) ([]string, error) {
	scanOpts := scan.DefaultOptions()
	scanOpts.MaxDepth = maxDepth

	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		found, err := scan.Media(os.DirFS(arg), ".", scanOpts)
		if err != nil {
			return nil, err
		}
		for _, rel := range found {
			paths = append(paths, filepath.Join(arg, filepath.FromSlash(rel)))
		}
	}
	return paths, nil
}
