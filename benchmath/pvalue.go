// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import "math"

// The p-values reported by this package are coarse bands, not tail
// integrals of the t or normal distribution. A statistic is mapped to
// the p-value of the first band whose critical value it strictly
// exceeds. The bands are kept fixed so that reports stay comparable
// with earlier results.

type pBand struct {
	crit, p float64
}

var (
	// tBandsLarge apply to t statistics with more than 30 degrees
	// of freedom.
	tBandsLarge = []pBand{{3.5, 0.001}, {2.576, 0.01}, {1.96, 0.05}, {1.645, 0.10}}
	tBandsSmall = []pBand{{3.0, 0.01}, {2.0, 0.05}}
	tOtherwise  = 0.20

	zBands     = []pBand{{3.291, 0.001}, {2.576, 0.01}, {1.96, 0.05}, {1.645, 0.10}, {1.28, 0.20}}
	zOtherwise = 0.50
)

func lookupP(stat float64, bands []pBand, otherwise float64) float64 {
	abs := math.Abs(stat)
	for _, b := range bands {
		if abs > b.crit {
			return b.p
		}
	}
	return otherwise
}

// TToP returns the coarse two-sided p-value band for t statistic t
// with dof degrees of freedom.
func TToP(t, dof float64) float64 {
	if dof > 30 {
		return lookupP(t, tBandsLarge, tOtherwise)
	}
	return lookupP(t, tBandsSmall, tOtherwise)
}

// ZToP returns the coarse two-sided p-value band for standard normal
// statistic z.
func ZToP(z float64) float64 {
	return lookupP(z, zBands, zOtherwise)
}
