// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath provides tools for computing statistics over
// distributions of benchmark measurements and for deciding whether
// two distributions differ.
//
// This package is opinionated. Callers don't pick a statistical test.
// Instead, Compare classifies the shape of both samples and chooses
// Welch's t-test when both look approximately normal and the
// Mann-Whitney U-test otherwise.
//
// Conditions such as "too few measurements" or "all measurements are
// equal" are not errors. They are reported as a Status alongside
// sentinel numeric results, and callers must check the Status before
// trusting those numbers.
//
// Every function in this package is a pure function of its inputs
// and is safe to call concurrently.
package benchmath

import (
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A Sample is a set of repeated measurements of a given benchmark.
type Sample struct {
	// Values are the measured values, in ascending order.
	Values []float64

	// Thresholds stores the thresholds used by tests on this
	// sample.
	Thresholds *Thresholds
}

// NewSample constructs a Sample from a set of measurements. values is
// not modified. If t is nil, NewSample uses DefaultThresholds.
func NewSample(values []float64, t *Thresholds) *Sample {
	if t == nil {
		t = &DefaultThresholds
	}
	// Sort a copy for fast order statistics. Everything below is
	// computed from the sorted values, so results don't depend on
	// the order measurements were taken in.
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return &Sample{sorted, t}
}

// N returns the number of measurements in s.
func (s *Sample) N() int {
	return len(s.Values)
}

func (s *Sample) sample() stats.Sample {
	return stats.Sample{Xs: s.Values, Sorted: true}
}

// Mean returns the arithmetic mean of s, or 0 if s is empty.
func (s *Sample) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return s.sample().Mean()
}

// Variance returns the sample variance of s (with an n-1
// denominator), or 0 if s has fewer than two values.
func (s *Sample) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	return s.sample().Variance()
}

// StdDev returns the sample standard deviation of s, or 0 if s has
// fewer than two values.
func (s *Sample) StdDev() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	return s.sample().StdDev()
}

// A Thresholds configures the fixed constants used by the tests in
// this package.
//
// This should be initialized to DefaultThresholds because it may be
// extended with other fields in the future.
type Thresholds struct {
	// MinNormalitySize is the smallest sample that
	// CheckNormality will classify.
	MinNormalitySize int

	// MaxSkewness and MaxKurtosis bound the absolute skewness and
	// excess kurtosis of a sample that CheckNormality considers
	// approximately normal.
	//
	// These are design constants, not critical values derived
	// from the sampling distribution of skewness or kurtosis.
	MaxSkewness, MaxKurtosis float64

	// MinWelchSize is the smallest sample size, per sample, for
	// which WelchTTest computes a statistic.
	MinWelchSize int

	// MinUTestSize is the smallest sample size, per sample, for
	// which MannWhitneyUTest computes a statistic.
	MinUTestSize int

	// CIZ is the standard normal quantile used for the confidence
	// interval around the mean. 1.96 gives a 95% interval.
	CIZ float64
}

// DefaultThresholds contains the thresholds used by the benchcmp
// command. Changing them changes its output.
var DefaultThresholds = Thresholds{
	MinNormalitySize: 20,
	MaxSkewness:      1.0,
	MaxKurtosis:      2.0,
	MinWelchSize:     2,
	MinUTestSize:     3,
	CIZ:              1.96,
}
