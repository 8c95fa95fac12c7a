// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import "math"

// Stats are the descriptive statistics of a Sample.
//
// For an empty sample every field is 0. For a sample of one value
// StdDev and Variance are 0.
type Stats struct {
	Mean, Median     float64
	StdDev, Variance float64
	Min, Max         float64

	// P90, P95 and P99 are nearest-rank percentiles: the value at
	// zero-based index floor(q*(n-1)) of the sorted sample.
	P90, P95, P99 float64

	// Lo and Hi bound the confidence interval around Mean, computed
	// as Mean ± CIZ*StdDev/sqrt(n).
	Lo, Hi float64
}

// Describe computes the descriptive statistics of s.
func (s *Sample) Describe() Stats {
	n := len(s.Values)
	if n == 0 {
		return Stats{}
	}

	var st Stats
	st.Mean = s.Mean()
	st.Median = s.median()
	st.StdDev, st.Variance = s.StdDev(), s.Variance()
	st.Min, st.Max = s.sample().Bounds()
	st.P90 = s.nearestRank(0.90)
	st.P95 = s.nearestRank(0.95)
	st.P99 = s.nearestRank(0.99)

	margin := s.Thresholds.CIZ * st.StdDev / math.Sqrt(float64(n))
	st.Lo, st.Hi = st.Mean-margin, st.Mean+margin
	return st
}

func (s *Sample) median() float64 {
	n := len(s.Values)
	if n%2 == 1 {
		return s.Values[n/2]
	}
	return (s.Values[n/2-1] + s.Values[n/2]) / 2
}

// nearestRank returns the value at index floor(q*(n-1)) of the sorted
// sample. Unlike stats.Sample.Quantile, it never interpolates.
func (s *Sample) nearestRank(q float64) float64 {
	i := int(q * float64(len(s.Values)-1))
	return s.Values[i]
}
