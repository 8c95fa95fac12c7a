// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"bytes"
	"strconv"

	"github.com/google/safehtml/template"

	"golang.org/x/benchcmp/benchmath"
)

var htmlTemplate = template.Must(template.New("").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>benchcmp</title>
<style>
.benchcmp { border-collapse: collapse; font-family: sans-serif; }
.benchcmp td, .benchcmp th { padding: 2px 8px; text-align: right; }
.benchcmp th.label { text-align: left; }
.benchcmp tr.verdict td { font-weight: bold; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<table class="benchcmp">
<tr><th></th>{{range .Names}}<th>{{.}}</th>{{end}}</tr>
{{range .SampleRows -}}
<tr><th class="label">{{.Label}}</th>{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
{{end -}}
</table>
<h2>{{.TestName}}</h2>
<table class="benchcmp">
{{range .TestRows -}}
<tr><th class="label">{{.Label}}</th>{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
{{end -}}
<tr class="verdict"><th class="label">verdict</th><td>{{.Verdict}}</td></tr>
</table>
</body>
</html>
`))

// A Report is a side-by-side comparison of two samples.
type Report struct {
	// Title is the page heading. It defaults to "Benchmark comparison".
	Title string

	// Names labels the two samples. They default to "sample 1" and
	// "sample 2".
	Names [2]string

	// Stats describes each sample.
	Stats [2]benchmath.Stats

	// Comparison is the result of benchmath.Compare on the samples.
	Comparison benchmath.Comparison
}

// NewReport returns a Report for s1 and s2.
func NewReport(s1, s2 *benchmath.Sample) *Report {
	return &Report{
		Stats:      [2]benchmath.Stats{s1.Describe(), s2.Describe()},
		Comparison: benchmath.Compare(s1, s2),
	}
}

// SignificanceLevel is the p-value at or below which a Report calls a
// difference significant.
const SignificanceLevel = 0.05

type htmlRow struct {
	Label string
	Cells []string
}

type htmlReport struct {
	Title      string
	Names      [2]string
	SampleRows []htmlRow
	TestName   string
	TestRows   []htmlRow
	Verdict    string
}

func (r *Report) view() *htmlReport {
	v := &htmlReport{Title: r.Title, Names: r.Names}
	if v.Title == "" {
		v.Title = "Benchmark comparison"
	}
	for i, def := range [2]string{"sample 1", "sample 2"} {
		if v.Names[i] == "" {
			v.Names[i] = def
		}
	}

	c := r.Comparison
	s1, s2 := r.Stats[0], r.Stats[1]
	pair := func(label string, f func(st benchmath.Stats) float64) htmlRow {
		return htmlRow{label, []string{num(f(s1)), num(f(s2))}}
	}
	v.SampleRows = []htmlRow{
		{"n", []string{strconv.Itoa(c.N1), strconv.Itoa(c.N2)}},
		pair("mean", func(st benchmath.Stats) float64 { return st.Mean }),
		pair("median", func(st benchmath.Stats) float64 { return st.Median }),
		pair("stdev", func(st benchmath.Stats) float64 { return st.StdDev }),
		pair("min", func(st benchmath.Stats) float64 { return st.Min }),
		pair("max", func(st benchmath.Stats) float64 { return st.Max }),
		pair("p90", func(st benchmath.Stats) float64 { return st.P90 }),
		pair("p95", func(st benchmath.Stats) float64 { return st.P95 }),
		pair("p99", func(st benchmath.Stats) float64 { return st.P99 }),
		{"95% CI", []string{ci(s1), ci(s2)}},
		{"normality", []string{c.Normality1.Status.String(), c.Normality2.Status.String()}},
		{"skewness", []string{fixed(c.Normality1.Skewness, 4), fixed(c.Normality2.Skewness, 4)}},
		{"kurtosis", []string{fixed(c.Normality1.Kurtosis, 4), fixed(c.Normality2.Kurtosis, 4)}},
	}

	stat1, stat2 := c.Stats()
	effect := "rank-biserial r"
	v.TestName = "Mann-Whitney U-test"
	v.TestRows = []htmlRow{{"U", []string{num(stat1)}}, {"z", []string{num(stat2)}}}
	if c.Test == benchmath.Welch {
		effect = "Cohen's d"
		v.TestName = "Welch's t-test"
		v.TestRows = []htmlRow{{"t", []string{num(stat1)}}, {"degrees of freedom", []string{num(stat2)}}}
	}
	v.TestRows = append(v.TestRows,
		htmlRow{"p", []string{num(c.P)}},
		htmlRow{"status", []string{c.Status.String()}},
		htmlRow{effect, []string{num(c.Effect), benchmath.InterpretEffect(c.Effect).String()}},
	)

	switch {
	case c.Status != benchmath.Success:
		v.Verdict = "inconclusive (" + c.Status.String() + ")"
	case c.P <= SignificanceLevel:
		v.Verdict = "significant difference"
	default:
		v.Verdict = "no significant difference"
	}
	return v
}

func ci(st benchmath.Stats) string {
	return "[" + num(st.Lo) + ", " + num(st.Hi) + "]"
}

// FormatHTML appends an HTML page for r to buf.
func FormatHTML(buf *bytes.Buffer, r *Report) {
	err := htmlTemplate.Execute(buf, r.view())
	if err != nil {
		// Only possible errors here are template not matching data structure.
		// Don't make caller check - it's our fault.
		panic(err)
	}
}
