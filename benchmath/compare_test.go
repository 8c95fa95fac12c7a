// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import "testing"

func TestCompare(t *testing.T) {
	check := func(xs, ys []float64, want Comparison) {
		t.Helper()
		got := Compare(NewSample(xs, nil), NewSample(ys, nil))
		s1, s2 := got.Stats()
		w1, w2 := want.Stats()
		if got.Test != want.Test || got.Status != want.Status ||
			!aeqAbs(s1, w1) || !aeqAbs(s2, w2) ||
			got.P != want.P || !aeqAbs(got.Effect, want.Effect) ||
			got.N1 != want.N1 || got.N2 != want.N2 ||
			got.Normality1.Status != want.Normality1.Status ||
			got.Normality2.Status != want.Normality2.Status {
			t.Errorf("for %v vs %v\ngot  %+v\nwant %+v", xs, ys, got, want)
		}
	}
	insufficient := Normality{Status: InsufficientData}
	normal := Normality{Status: ApproximatelyNormal}

	// Small samples can't be classified, so they get the U-test.
	check([]float64{1, 2, 3, 4, 5}, []float64{10, 20, 30, 40, 50}, Comparison{
		Test: MannWhitney, U: 0, Z: -2.6111648393354674, P: 0.01,
		Status: Success, Effect: 1, N1: 5, N2: 5,
		Normality1: insufficient, Normality2: insufficient,
	})

	// Identical normal samples.
	check(welchA, welchA, Comparison{
		Test: Welch, T: 0, DoF: 48, P: 0.20,
		Status: Success, Effect: 0, N1: 25, N2: 25,
		Normality1: normal, Normality2: normal,
	})

	// Shifted normal samples.
	check(welchA, welchB, Comparison{
		Test: Welch, T: -8.118988160479113, DoF: 48, P: 0.001,
		Status: Success, Effect: -2.296396633859229, N1: 25, N2: 25,
		Normality1: normal, Normality2: normal,
	})

	// A single measurement still routes on normality, but the
	// U-test has too little data. The rank-biserial of U=0 is 1.
	check([]float64{5}, []float64{1, 2, 3}, Comparison{
		Test: MannWhitney, P: 0.50,
		Status: InsufficientData, Effect: 1, N1: 1, N2: 3,
		Normality1: insufficient, Normality2: insufficient,
	})

	// An empty sample.
	check(nil, []float64{1, 2, 3}, Comparison{
		Test: MannWhitney, P: 0.50,
		Status: InsufficientData, Effect: 0, N1: 0, N2: 3,
		Normality1: insufficient, Normality2: insufficient,
	})

	check([]float64{1, 2, 2, 3, 3, 3}, []float64{2, 3, 3, 4, 5}, Comparison{
		Test: MannWhitney, U: 7, Z: -1.4605934866804429, P: 0.20,
		Status: Success, Effect: 0.5333333333333333, N1: 6, N2: 5,
		Normality1: insufficient, Normality2: insufficient,
	})
}

func TestCompareNonNormal(t *testing.T) {
	// One skewed sample is enough to route to the U-test.
	skewed := make([]float64, 25)
	for i := range skewed {
		skewed[i] = 10
	}
	skewed[0], skewed[1] = 1000, 11
	c := Compare(NewSample(welchA, nil), NewSample(skewed, nil))
	if c.Test != MannWhitney {
		t.Fatalf("got test %v, want %v", c.Test, MannWhitney)
	}
	if c.Normality1.Status != ApproximatelyNormal || c.Normality2.Status != NonNormal {
		t.Errorf("got normality %v/%v, want approximately_normal/non_normal", c.Normality1.Status, c.Normality2.Status)
	}
	if c.Status != Success {
		t.Errorf("got status %v, want success", c.Status)
	}
	if c.U < 0 || c.U > float64(25*25)/2 {
		t.Errorf("U=%v out of range", c.U)
	}
}

func TestComparisonStats(t *testing.T) {
	c := Comparison{Test: Welch, T: 1.5, DoF: ZeroVarianceDoF, U: 3, Z: 4}
	if s1, s2 := c.Stats(); s1 != 1.5 || s2 != ZeroVarianceDoF {
		t.Errorf("welch stats = %v, %v", s1, s2)
	}
	c.Test = MannWhitney
	if s1, s2 := c.Stats(); s1 != 3 || s2 != 4 {
		t.Errorf("mann_whitney stats = %v, %v", s1, s2)
	}
}

func TestTestString(t *testing.T) {
	if Welch.String() != "welch" || MannWhitney.String() != "mann_whitney" {
		t.Errorf("got %q, %q", Welch, MannWhitney)
	}
	if s := Test(7).String(); s != "Test(7)" {
		t.Errorf("Test(7).String() = %q", s)
	}
}
