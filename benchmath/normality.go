// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import "math"

// A Normality classifies the shape of a Sample.
type Normality struct {
	// Status is InsufficientData, ZeroVariance,
	// ApproximatelyNormal, or NonNormal.
	Status Status

	// Skewness is the mean cubed z-score of the sample.
	Skewness float64

	// Kurtosis is the excess kurtosis of the sample: the mean
	// fourth power of the z-scores, minus 3.
	Kurtosis float64
}

// IsNormal reports whether the sample was classified as approximately
// normal.
func (n Normality) IsNormal() bool {
	return n.Status == ApproximatelyNormal
}

// CheckNormality classifies s as approximately normal or not, based
// on its skewness and excess kurtosis.
//
// This is a coarse shape check against the fixed bounds in
// s.Thresholds, not a normality test. Samples smaller than
// MinNormalitySize are reported as InsufficientData and samples with
// no spread as ZeroVariance. In both cases the moments are 0.
func (s *Sample) CheckNormality() Normality {
	t := s.Thresholds
	n := len(s.Values)
	if n < t.MinNormalitySize {
		return Normality{Status: InsufficientData}
	}
	mean, sd := s.Mean(), s.StdDev()
	if sd == 0 {
		return Normality{Status: ZeroVariance}
	}

	var m3, m4 float64
	for _, x := range s.Values {
		z := (x - mean) / sd
		z2 := z * z
		m3 += z2 * z
		m4 += z2 * z2
	}
	res := Normality{
		Skewness: m3 / float64(n),
		Kurtosis: m4/float64(n) - 3,
	}
	if math.Abs(res.Skewness) <= t.MaxSkewness && math.Abs(res.Kurtosis) <= t.MaxKurtosis {
		res.Status = ApproximatelyNormal
	} else {
		res.Status = NonNormal
	}
	return res
}
