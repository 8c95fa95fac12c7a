// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import "math"

// A TTestResult is the result of Welch's two-sample t-test.
type TTestResult struct {
	// T is the t statistic, (mean1 - mean2) / standard error.
	T float64

	// DoF is the Welch–Satterthwaite approximation of the degrees
	// of freedom.
	DoF float64

	// Status is Success, InsufficientData, or ZeroVariance. T and
	// DoF are 0 unless Status is Success.
	Status Status
}

// fallbackDoF is used when the Welch–Satterthwaite denominator
// vanishes.
const fallbackDoF = 30

// WelchTTest performs Welch's t-test for a difference in the means of
// s1 and s2 without assuming equal variances.
func WelchTTest(s1, s2 *Sample) TTestResult {
	n1, n2 := float64(s1.N()), float64(s2.N())
	if s1.N() < s1.Thresholds.MinWelchSize || s2.N() < s2.Thresholds.MinWelchSize {
		return TTestResult{Status: InsufficientData}
	}

	v1, v2 := s1.Variance()/n1, s2.Variance()/n2
	se := math.Sqrt(v1 + v2)
	if se == 0 {
		return TTestResult{Status: ZeroVariance}
	}

	t := (s1.Mean() - s2.Mean()) / se
	dof := float64(fallbackDoF)
	if den := v1*v1/(n1-1) + v2*v2/(n2-1); den > 0 {
		dof = (v1 + v2) * (v1 + v2) / den
	}
	return TTestResult{T: t, DoF: dof, Status: Success}
}
