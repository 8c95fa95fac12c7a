// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import "fmt"

// A Test identifies the statistical test Compare selected.
type Test int

const (
	// Welch is Welch's unequal-variances t-test. Compare uses it
	// when both samples are approximately normal.
	Welch Test = iota
	// MannWhitney is the Mann-Whitney U-test. Compare uses it
	// otherwise.
	MannWhitney
)

func (t Test) String() string {
	switch t {
	case Welch:
		return "welch"
	case MannWhitney:
		return "mann_whitney"
	}
	return fmt.Sprintf("Test(%d)", int(t))
}

// ZeroVarianceDoF is the degrees of freedom reported by Compare when
// Welch's test finds both samples have no spread. It is an
// out-of-band marker, not a statistically meaningful value.
const ZeroVarianceDoF = 999

// A Comparison is the result of comparing two samples to test if they
// come from distributions with the same location.
type Comparison struct {
	// Test is the test that produced this comparison. It determines
	// which statistic fields are set.
	Test Test

	// T and DoF are the t statistic and degrees of freedom, set
	// when Test is Welch.
	T, DoF float64

	// U and Z are the U statistic and its z-score, set when Test
	// is MannWhitney.
	U, Z float64

	// P is the coarse p-value band of the statistic. See TToP and
	// ZToP.
	P float64

	// Status is Success, InsufficientData, or ZeroVariance.
	Status Status

	// Effect is Cohen's d for Welch and the rank-biserial
	// correlation for MannWhitney.
	Effect float64

	// N1 and N2 are the sizes of the two samples.
	N1, N2 int

	// Normality1 and Normality2 are the shape classifications of
	// the two samples that decided which test to run.
	Normality1, Normality2 Normality
}

// Stats returns the two test statistics in report order: T and DoF
// for Welch, U and Z for MannWhitney.
func (c Comparison) Stats() (float64, float64) {
	if c.Test == Welch {
		return c.T, c.DoF
	}
	return c.U, c.Z
}

// Compare tests whether s1 and s2 differ in location.
//
// It classifies both samples with CheckNormality. If both are
// approximately normal, it runs WelchTTest and reports Cohen's d.
// Otherwise it runs MannWhitneyUTest and reports the rank-biserial
// correlation.
func Compare(s1, s2 *Sample) Comparison {
	c := Comparison{
		N1:         s1.N(),
		N2:         s2.N(),
		Normality1: s1.CheckNormality(),
		Normality2: s2.CheckNormality(),
	}

	if c.Normality1.IsNormal() && c.Normality2.IsNormal() {
		r := WelchTTest(s1, s2)
		c.Test, c.Status = Welch, r.Status
		c.T, c.DoF = r.T, r.DoF
		if r.Status == ZeroVariance {
			c.DoF = ZeroVarianceDoF
		}
		c.P = TToP(c.T, c.DoF)
		c.Effect = CohensD(s1.Mean(), s2.Mean(), s1.Variance(), s2.Variance(), c.N1, c.N2)
		return c
	}

	r := MannWhitneyUTest(s1, s2)
	c.Test, c.Status = MannWhitney, r.Status
	c.U, c.Z = r.U, r.Z
	c.P = ZToP(c.Z)
	c.Effect = RankBiserial(c.U, c.N1, c.N2)
	return c
}
