// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestTToP(t *testing.T) {
	check := func(tstat, dof, want float64) {
		t.Helper()
		if got := TToP(tstat, dof); got != want {
			t.Errorf("TToP(%v, %v) = %v, want %v", tstat, dof, got, want)
		}
	}
	check(2.0, 40, 0.05)
	check(-2.0, 40, 0.05)
	check(3.6, 40, 0.001)
	check(3.5, 40, 0.01) // Bands are strict.
	check(2.6, 40, 0.01)
	check(1.7, 40, 0.10)
	check(1.645, 40, 0.20)
	check(0, 48, 0.20)
	check(0, ZeroVarianceDoF, 0.20)

	check(3.6, 30, 0.01)
	check(3.0, 30, 0.05)
	check(2.5, 10, 0.05)
	check(-2.5, 10, 0.05)
	check(2.0, 10, 0.20)
	check(1.9, 4.08, 0.20)
}

func TestZToP(t *testing.T) {
	check := func(z, want float64) {
		t.Helper()
		if got := ZToP(z); got != want {
			t.Errorf("ZToP(%v) = %v, want %v", z, got, want)
		}
	}
	check(2.0, 0.05)
	check(0.5, 0.50)
	check(-3.3, 0.001)
	check(3.291, 0.01)
	check(-2.6111648393354674, 0.01)
	check(1.7, 0.10)
	check(-1.4605934866804429, 0.20)
	check(1.28, 0.50)
	check(0, 0.50)
}

func TestZToPBracketsNormal(t *testing.T) {
	// Each band's p-value is (to within 1%) an upper bound on the
	// exact two-sided p-value of any z past its critical value.
	for _, b := range zBands {
		for _, z := range []float64{b.crit + 1e-9, b.crit + 0.1, b.crit + 1} {
			exact := 2 * distuv.UnitNormal.CDF(-z)
			got := ZToP(z)
			if got > b.p {
				t.Errorf("ZToP(%v) = %v, want <= %v", z, got, b.p)
			}
			if exact > got*1.01 {
				t.Errorf("z=%v: exact two-sided p %v exceeds band %v", z, exact, got)
			}
		}
	}
	// The fallback band is loose but still above the exact value
	// at its edge.
	if exact := 2 * distuv.UnitNormal.CDF(-1.28); exact > zOtherwise {
		t.Errorf("exact p at z=1.28 is %v, above fallback %v", exact, zOtherwise)
	}
}

func TestPBandsMonotone(t *testing.T) {
	// Larger statistics never get larger p-values.
	prevT, prevZ := math.Inf(1), math.Inf(1)
	for x := 0.0; x < 5; x += 0.01 {
		if p := TToP(x, 40); p > prevT {
			t.Fatalf("TToP not monotone at %v", x)
		} else {
			prevT = p
		}
		if p := ZToP(x); p > prevZ {
			t.Fatalf("ZToP not monotone at %v", x)
		} else {
			prevZ = p
		}
	}
}
