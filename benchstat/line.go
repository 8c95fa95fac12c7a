// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchstat formats the results of package benchmath.
//
// The line formats write a single line of fields separated by "|".
// Numeric fields have six decimal places, except the moments in a
// normality line, which have four. Status and test names are written
// as plain words. These lines are meant to be read by scripts, so
// their field order is fixed.
package benchstat

import (
	"bytes"
	"strconv"
	"strings"

	"golang.org/x/benchcmp/benchmath"
)

// FieldSep separates the fields of a line.
const FieldSep = "|"

// FormatStats appends the line for st to buf. The fields are
//
//	mean|median|stdev|min|max|p90|p95|p99|ci_lower|ci_upper|variance
func FormatStats(buf *bytes.Buffer, st benchmath.Stats) {
	writeLine(buf,
		num(st.Mean), num(st.Median), num(st.StdDev),
		num(st.Min), num(st.Max),
		num(st.P90), num(st.P95), num(st.P99),
		num(st.Lo), num(st.Hi),
		num(st.Variance))
}

// FormatNormality appends the line for n to buf. The fields are
//
//	status|skew=<skewness>|kurt=<excess kurtosis>
func FormatNormality(buf *bytes.Buffer, n benchmath.Normality) {
	writeLine(buf,
		n.Status.String(),
		"skew="+fixed(n.Skewness, 4),
		"kurt="+fixed(n.Kurtosis, 4))
}

// FormatComparison appends the line for c to buf. The fields are
//
//	test|stat1|stat2|p_value|status|effect_size|sample1_normality|sample2_normality
//
// where test is "welch" or "mann_whitney" and stat1 and stat2 are t
// and the degrees of freedom, or U and z, respectively.
func FormatComparison(buf *bytes.Buffer, c benchmath.Comparison) {
	s1, s2 := c.Stats()
	writeLine(buf,
		c.Test.String(),
		num(s1), num(s2),
		num(c.P),
		c.Status.String(),
		num(c.Effect),
		c.Normality1.Status.String(),
		c.Normality2.Status.String())
}

// FormatError appends an error line, "ERROR|<message>", to buf. Line
// breaks in the message are replaced with spaces so the result is a
// single line.
func FormatError(buf *bytes.Buffer, err error) {
	msg := strings.Join(strings.Fields(err.Error()), " ")
	writeLine(buf, "ERROR", msg)
}

func writeLine(buf *bytes.Buffer, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteString(FieldSep)
		}
		buf.WriteString(f)
	}
	buf.WriteByte('\n')
}

func num(x float64) string {
	return fixed(x, 6)
}

// fixed formats x with prec decimal places. Values that round to zero
// are written without a sign.
func fixed(x float64, prec int) string {
	s := strconv.FormatFloat(x, 'f', prec, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}
	return s
}
