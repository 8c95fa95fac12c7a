// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import "math"

// A UTestResult is the result of a Mann-Whitney U-test.
type UTestResult struct {
	// U1 is the U statistic of the first sample, R1 - n1(n1+1)/2,
	// where R1 is its rank sum in the merged sample. U2 is
	// n1*n2 - U1.
	U1, U2 float64

	// U is min(U1, U2).
	U float64

	// Z is the standardized U under the large-sample normal
	// approximation.
	Z float64

	// Status is Success, InsufficientData, or ZeroVariance. U and
	// Z are 0 when Status is InsufficientData.
	Status Status
}

// MannWhitneyUTest performs a Mann-Whitney U-test (also known as the
// Wilcoxon rank-sum test) of whether s1 and s2 come from the same
// distribution.
//
// Tied values in the merged sample all receive the mean of the ranks
// they span.
func MannWhitneyUTest(s1, s2 *Sample) UTestResult {
	n1, n2 := s1.N(), s2.N()
	if n1 < s1.Thresholds.MinUTestSize || n2 < s2.Thresholds.MinUTestSize {
		return UTestResult{Status: InsufficientData}
	}

	r1 := rankSum(s1.Values, s2.Values)
	fn1, fn2 := float64(n1), float64(n2)
	res := UTestResult{U1: r1 - fn1*(fn1+1)/2}
	res.U2 = fn1*fn2 - res.U1
	res.U = math.Min(res.U1, res.U2)

	mu := fn1 * fn2 / 2
	sigma := math.Sqrt(fn1 * fn2 * (fn1 + fn2 + 1) / 12)
	if sigma == 0 {
		res.Status = ZeroVariance
		return res
	}
	res.Z = (res.U - mu) / sigma
	res.Status = Success
	return res
}

// rankSum returns the sum of the 1-based ranks of xs in the merged
// sample xs ∪ ys, with tied values assigned their midrank. xs and ys
// must be sorted.
func rankSum(xs, ys []float64) float64 {
	var sum float64
	i, j := 0, 0
	rank := 0 // ranks assigned so far
	for i < len(xs) || j < len(ys) {
		// The next tie group is every remaining value equal to
		// the smallest head.
		fromX := j == len(ys) || (i < len(xs) && xs[i] <= ys[j])
		v := ys[j:]
		if fromX {
			v = xs[i:]
		}
		if math.IsNaN(v[0]) {
			// NaN never ties. Rank it alone.
			rank++
			if fromX {
				sum += float64(rank)
				i++
			} else {
				j++
			}
			continue
		}
		ti := i
		for i < len(xs) && xs[i] == v[0] {
			i++
		}
		tj := j
		for j < len(ys) && ys[j] == v[0] {
			j++
		}
		k := (i - ti) + (j - tj)
		// The group spans ranks rank+1 .. rank+k.
		mid := float64(2*rank+k+1) / 2
		sum += float64(i-ti) * mid
		rank += k
	}
	return sum
}
