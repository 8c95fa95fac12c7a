// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchchart draws bar charts summarizing a directory of load-test
// results.
//
// Usage:
//
//	benchchart [flags] <report-dir>
//
// The report directory holds one CSV file per scenario, named
// results_<scenario>.csv, each with "rps" and "p95" columns.
// Benchchart averages both columns per scenario and writes
// rps_comparison.png and latency_comparison.png into the report
// directory, one bar per scenario in name order.
//
// Files with a header but no rows are skipped. If there are no
// results files with data, benchchart says so and exits successfully.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gonum.org/v1/plot/vg"

	"golang.org/x/benchcmp/benchseries"
)

var exit = os.Exit // replaced during testing

func main() {
	exit(benchchart(context.Background(), os.Stdout, os.Stderr, os.Args[1:]))
}

type options struct {
	titlePrefix   string
	width, height float64 // centimeters
	dpi           int
	jobs          int
	verbose       bool
}

func benchchart(ctx context.Context, stdout, stderr io.Writer, args []string) int {
	defaults := benchseries.DefaultChartOptions()
	o := &options{
		titlePrefix: defaults.TitlePrefix,
		width:       float64(defaults.Width / vg.Centimeter),
		height:      float64(defaults.Height / vg.Centimeter),
		dpi:         defaults.DPI,
		jobs:        4,
	}
	log := zap.NewNop()

	cmd := &cobra.Command{
		Use:           "benchchart <report-dir>",
		Short:         "Chart average RPS and p95 latency per scenario",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.width <= 0 || o.height <= 0 || o.dpi <= 0 {
				return errors.New("width, height and dpi must be positive")
			}
			log = newLogger(stderr, o.verbose)
			if err := run(cmd.Context(), stdout, log, o, args[0]); err != nil {
				return &runError{err}
			}
			return nil
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	fs := cmd.Flags()
	fs.StringVar(&o.titlePrefix, "title-prefix", o.titlePrefix, "`prefix` of each chart title")
	fs.Float64Var(&o.width, "width", o.width, "chart width in `cm`")
	fs.Float64Var(&o.height, "height", o.height, "chart height in `cm`")
	fs.IntVar(&o.dpi, "dpi", o.dpi, "PNG resolution in dots per inch")
	fs.IntVar(&o.jobs, "jobs", o.jobs, "read up to `n` CSV files at once")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log progress to standard error")

	cmd.SetArgs(args)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	err := cmd.ExecuteContext(ctx)
	defer log.Sync()
	var re *runError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &re):
		log.Error("charting failed", zap.Error(re.err))
		fmt.Fprintf(stderr, "benchchart: %v\n", re.err)
		return 1
	}
	fmt.Fprintf(stderr, "benchchart: %v\n", err)
	fmt.Fprint(stderr, cmd.UsageString())
	return 2
}

// A runError is a failure after the command line was accepted.
type runError struct {
	err error
}

func (e *runError) Error() string { return e.err.Error() }
func (e *runError) Unwrap() error { return e.err }

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), level)
	return zap.New(core).Named("benchchart")
}

func run(ctx context.Context, stdout io.Writer, log *zap.Logger, o *options, dir string) error {
	if st, err := os.Stat(dir); err != nil {
		return err
	} else if !st.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	scenarios, err := benchseries.Load(ctx, dir, o.jobs)
	if err != nil {
		return err
	}
	if len(scenarios) == 0 {
		fmt.Fprintf(stdout, "No CSV files found in %s\n", dir)
		return nil
	}
	for _, s := range scenarios {
		log.Debug("scenario",
			zap.String("name", s.Name),
			zap.Int("rows", s.Rows),
			zap.Float64("avg_rps", s.AvgRPS),
			zap.Float64("p95", s.P95))
	}

	opts := &benchseries.ChartOptions{
		TitlePrefix: o.titlePrefix,
		Width:       vg.Length(o.width) * vg.Centimeter,
		Height:      vg.Length(o.height) * vg.Centimeter,
		DPI:         o.dpi,
	}
	files, err := benchseries.Chart(scenarios, dir, opts)
	for _, f := range files {
		fmt.Fprintf(stdout, "Created %s in %s\n", f, dir)
	}
	return err
}
