// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import "fmt"

// A Status reports whether a test produced a usable result, and if
// not, why. Numeric results that accompany a Status other than
// Success or a normality classification are sentinels.
type Status int

const (
	// Success means the test statistic was computed.
	Success Status = iota
	// InsufficientData means a sample was too small.
	InsufficientData
	// ZeroVariance means the measurements have no spread, so the
	// statistic is undefined.
	ZeroVariance
	// ApproximatelyNormal is a normality classification.
	ApproximatelyNormal
	// NonNormal is a normality classification.
	NonNormal
)

var statusNames = [...]string{
	Success:             "success",
	InsufficientData:    "insufficient_data",
	ZeroVariance:        "zero_variance",
	ApproximatelyNormal: "approximately_normal",
	NonNormal:           "non_normal",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}
