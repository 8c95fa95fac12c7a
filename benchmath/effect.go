// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"fmt"
	"math"
)

// CohensD returns Cohen's d, the difference of two means in units of
// their pooled standard deviation. v1 and v2 are sample variances and
// n1 and n2 sample sizes. It returns 0 if the pooled standard
// deviation is 0 or undefined.
func CohensD(m1, m2, v1, v2 float64, n1, n2 int) float64 {
	if n1+n2 <= 2 {
		return 0
	}
	pooled := (float64(n1-1)*v1 + float64(n2-1)*v2) / float64(n1+n2-2)
	sd := math.Sqrt(pooled)
	if !(sd > 0) {
		return 0
	}
	return (m1 - m2) / sd
}

// RankBiserial returns the rank-biserial correlation for a
// Mann-Whitney U statistic u over samples of size n1 and n2. It
// returns 0 if either sample is empty.
func RankBiserial(u float64, n1, n2 int) float64 {
	if n1 == 0 || n2 == 0 {
		return 0
	}
	return 1 - 2*u/float64(n1*n2)
}

// An EffectSize is a qualitative magnitude of an effect.
type EffectSize int

const (
	Negligible EffectSize = iota
	Small
	Medium
	Large
)

func (e EffectSize) String() string {
	switch e {
	case Negligible:
		return "negligible"
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	}
	return fmt.Sprintf("EffectSize(%d)", int(e))
}

// InterpretEffect classifies the magnitude of a standardized effect
// such as Cohen's d or a rank-biserial correlation using the
// conventional 0.2/0.5/0.8 cutoffs.
func InterpretEffect(effect float64) EffectSize {
	switch e := math.Abs(effect); {
	case e < 0.2:
		return Negligible
	case e < 0.5:
		return Small
	case e < 0.8:
		return Medium
	}
	return Large
}
