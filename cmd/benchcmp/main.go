// Copyright 2015 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchcmp computes statistics about benchmark samples and tests
// whether two samples differ.
//
// Usage:
//
//	benchcmp [-v] calculate_statistics < sample.txt
//	benchcmp [-v] check_normality < sample.txt
//	benchcmp [-v] hypothesis_test [-format line|html] < pair.txt
//
// A sample is a list of decimal numbers separated by white space. The
// input of hypothesis_test is two samples separated by a line
// containing "---".
//
// calculate_statistics prints
//
//	mean|median|stdev|min|max|p90|p95|p99|ci_lower|ci_upper|variance
//
// where p90, p95 and p99 are nearest-rank percentiles and ci_lower and
// ci_upper bound the 95% confidence interval of the mean.
//
// check_normality prints
//
//	status|skew=<skewness>|kurt=<excess kurtosis>
//
// where status is approximately_normal, non_normal, or
// insufficient_data for samples of fewer than 20 values.
//
// hypothesis_test runs Welch's t-test if both samples are
// approximately normal and the Mann-Whitney U-test otherwise, and
// prints
//
//	test|stat1|stat2|p_value|status|effect_size|sample1_normality|sample2_normality
//
// test is welch or mann_whitney. For welch, stat1 and stat2 are the t
// statistic and degrees of freedom and effect_size is Cohen's d. For
// mann_whitney, they are U and its z-score and effect_size is the
// rank-biserial correlation. p_value is one of a fixed set of bands,
// not an exact probability. With -format html, hypothesis_test prints
// an HTML page describing both samples and the test instead.
//
// Malformed input prints "ERROR|<message>" and exits with status 1.
// A missing or unknown command prints usage and exits with status 2.
//
// The -v flag logs the test selection and errors to standard error.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"golang.org/x/benchcmp/benchfmt"
	"golang.org/x/benchcmp/benchmath"
	"golang.org/x/benchcmp/benchstat"
)

var exit = os.Exit // replaced during testing

// stdinName names standard input in error messages.
const stdinName = "stdin"

func main() {
	exit(benchcmp(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]))
}

// A dataError is a failure caused by the input. It is reported on
// standard output as an error line.
type dataError struct {
	err error
}

func (e *dataError) Error() string { return e.err.Error() }
func (e *dataError) Unwrap() error { return e.err }

var errMissingCommand = errors.New("missing command")

type command struct {
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	log     *zap.Logger
	verbose bool
	format  string
}

// benchcmp runs the command line args and returns the exit status.
func benchcmp(stdin io.Reader, stdout, stderr io.Writer, args []string) int {
	c := &command{stdin: stdin, stdout: stdout, stderr: stderr, log: zap.NewNop()}
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stderr)
	root.SetErr(stderr)

	cmd, err := root.ExecuteC()
	if cmd == nil {
		cmd = root
	}
	defer c.log.Sync()

	var de *dataError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &de):
		c.log.Warn("invalid input", zap.String("command", cmd.Name()), zap.Error(de.err))
		var buf bytes.Buffer
		benchstat.FormatError(&buf, de.err)
		stdout.Write(buf.Bytes())
		return 1
	}
	fmt.Fprintf(stderr, "benchcmp: %v\n", err)
	fmt.Fprint(stderr, cmd.UsageString())
	return 2
}

func (c *command) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "benchcmp",
		Short:         "Compute statistics about benchmark samples and compare them",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errMissingCommand
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.log = newLogger(c.stderr, c.verbose)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log test selection and errors to standard error")

	stats := &cobra.Command{
		Use:   "calculate_statistics",
		Short: "Describe one sample read from standard input",
		Args:  cobra.NoArgs,
		RunE:  c.calculateStatistics,
	}
	normality := &cobra.Command{
		Use:   "check_normality",
		Short: "Classify the shape of one sample read from standard input",
		Args:  cobra.NoArgs,
		RunE:  c.checkNormality,
	}
	test := &cobra.Command{
		Use:   "hypothesis_test",
		Short: "Test whether two \"---\"-separated samples read from standard input differ",
		Args:  cobra.NoArgs,
		RunE:  c.hypothesisTest,
	}
	test.Flags().StringVar(&c.format, "format", "line", "output `format`: line or html")

	root.AddCommand(stats, normality, test)
	return root
}

// newLogger returns a console logger writing to w at Warn level, or
// Debug level if verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), level)
	return zap.New(core).Named("benchcmp")
}

func (c *command) readSample() (*benchmath.Sample, error) {
	values, err := benchfmt.ReadSample(c.stdin, stdinName)
	if err != nil {
		return nil, &dataError{err}
	}
	c.log.Debug("read sample", zap.Int("n", len(values)))
	return benchmath.NewSample(values, nil), nil
}

func (c *command) write(buf *bytes.Buffer) error {
	_, err := c.stdout.Write(buf.Bytes())
	return err
}

func (c *command) calculateStatistics(cmd *cobra.Command, args []string) error {
	s, err := c.readSample()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	benchstat.FormatStats(&buf, s.Describe())
	return c.write(&buf)
}

func (c *command) checkNormality(cmd *cobra.Command, args []string) error {
	s, err := c.readSample()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	benchstat.FormatNormality(&buf, s.CheckNormality())
	return c.write(&buf)
}

func (c *command) hypothesisTest(cmd *cobra.Command, args []string) error {
	if c.format != "line" && c.format != "html" {
		return fmt.Errorf("unknown format %q", c.format)
	}
	xs, ys, err := benchfmt.ReadPair(c.stdin, stdinName)
	if err != nil {
		return &dataError{err}
	}
	s1, s2 := benchmath.NewSample(xs, nil), benchmath.NewSample(ys, nil)

	var buf bytes.Buffer
	var cmp benchmath.Comparison
	if c.format == "html" {
		r := benchstat.NewReport(s1, s2)
		cmp = r.Comparison
		benchstat.FormatHTML(&buf, r)
	} else {
		cmp = benchmath.Compare(s1, s2)
		benchstat.FormatComparison(&buf, cmp)
	}
	c.log.Debug("compared samples",
		zap.Stringer("test", cmp.Test),
		zap.Int("n1", cmp.N1), zap.Int("n2", cmp.N2),
		zap.Stringer("normality1", cmp.Normality1.Status),
		zap.Stringer("normality2", cmp.Normality2.Status),
		zap.Stringer("status", cmp.Status))
	return c.write(&buf)
}
