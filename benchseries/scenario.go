// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchseries summarizes and charts load-test results for a
// series of scenarios.
//
// A report directory holds one CSV file per scenario, named
// results_<scenario>.csv. Each file has a header row naming at least
// an "rps" (requests per second) and a "p95" (95th percentile latency
// in milliseconds) column, followed by one row per measurement.
package benchseries

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"golang.org/x/sync/errgroup"
)

const (
	filePrefix = "results_"
	fileSuffix = ".csv"

	colScenario = "scenario"
	colRPS      = "rps"
	colP95      = "p95"
)

// A Scenario is the summary of one results file.
type Scenario struct {
	// Name is taken from the file name, results_<Name>.csv.
	Name string

	// AvgRPS and P95 are the means of the rps and p95 columns.
	AvgRPS, P95 float64

	// Rows is the number of measurements in the file.
	Rows int
}

// Files returns the results files in dir, sorted by name.
func Files(dir string) ([]string, error) {
	return filepath.Glob(filepath.Join(dir, filePrefix+"*"+fileSuffix))
}

// ScenarioName returns the scenario name of a results file path.
func ScenarioName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(strings.TrimPrefix(base, filePrefix), fileSuffix)
}

// Load reads every results file in dir and returns one Scenario per
// file that has at least one measurement, sorted by name. Files are
// read by up to jobs goroutines at a time; jobs <= 0 means no limit.
//
// A file that is missing the rps or p95 column, or has a non-numeric
// value in one, is an error.
func Load(ctx context.Context, dir string, jobs int) ([]Scenario, error) {
	files, err := Files(dir)
	if err != nil {
		return nil, err
	}

	tables := make([]*table.Table, len(files))
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := readFile(path)
			if err != nil {
				return err
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var nonEmpty []table.Grouping
	for _, t := range tables {
		if t != nil {
			nonEmpty = append(nonEmpty, t)
		}
	}
	if len(nonEmpty) == 0 {
		return nil, nil
	}
	return summarize(table.Concat(nonEmpty...)), nil
}

// summarize computes the per-scenario means of the rows in g.
func summarize(g table.Grouping) []Scenario {
	rows := table.GroupBy(g, colScenario)
	counts := make(map[string]int)
	for _, gid := range rows.Tables() {
		counts[gid.Label().(string)] = rows.Table(gid).Len()
	}

	agg := ggstat.Agg(colScenario)(ggstat.AggMean(colRPS, colP95)).F(g)
	t := table.Flatten(agg)
	names := t.MustColumn(colScenario).([]string)
	rps := t.MustColumn("mean " + colRPS).([]float64)
	p95 := t.MustColumn("mean " + colP95).([]float64)

	out := make([]Scenario, len(names))
	for i, name := range names {
		out[i] = Scenario{Name: name, AvgRPS: rps[i], P95: p95[i], Rows: counts[name]}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// readFile reads one results file into a table with scenario, rps and
// p95 columns. It returns a nil table if the file has no
// measurements.
func readFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readCSV(f, path)
}

func readCSV(r io.Reader, path string) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rpsCol, p95Col := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case colRPS:
			rpsCol = i
		case colP95:
			p95Col = i
		}
	}
	var missing []string
	if rpsCol < 0 {
		missing = append(missing, colRPS)
	}
	if p95Col < 0 {
		missing = append(missing, colP95)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s: missing column %s", path, strings.Join(missing, ", "))
	}

	var rps, p95 []float64
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		line, _ := cr.FieldPos(0)
		x, err := field(rec, rpsCol)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %s: %w", path, line, colRPS, err)
		}
		y, err := field(rec, p95Col)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %s: %w", path, line, colP95, err)
		}
		rps = append(rps, x)
		p95 = append(p95, y)
	}
	if len(rps) == 0 {
		return nil, nil
	}

	name := ScenarioName(path)
	names := make([]string, len(rps))
	for i := range names {
		names[i] = name
	}
	var b table.Builder
	b.Add(colScenario, names).Add(colRPS, rps).Add(colP95, p95)
	return b.Done(), nil
}

var errShortRow = errors.New("row has too few fields")

func field(rec []string, col int) (float64, error) {
	if col >= len(rec) {
		return 0, errShortRow
	}
	return strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
}
