// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt reads benchmark samples in the plain text format
// consumed by benchcmp.
//
// A sample is a sequence of decimal numbers separated by any amount
// of white space, including newlines. A pair of samples is two such
// sequences separated by the literal token "---":
//
//	12.1 11.9 12.4
//	12.0
//	---
//	10.2 10.8 10.5
//
// The separator does not need surrounding white space.
package benchfmt

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Separator separates the two samples of a pair.
const Separator = "---"

// A SyntaxError represents a syntax error in a sample input.
type SyntaxError struct {
	FileName string
	// Line is the 1-based line of the offending token, or 0 if
	// the error concerns the input as a whole.
	Line int
	Msg  string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.FileName, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// ReadSample reads a single sample from r. fileName is used in error
// messages; it is purely diagnostic.
//
// An input with no numbers is an empty sample, not an error.
func ReadSample(r io.Reader, fileName string) ([]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fileName, err)
	}
	return parseValues(string(data), fileName, 1)
}

// ReadPair reads two samples separated by Separator from r. It is an
// error for the input to contain no separator or more than one.
func ReadPair(r io.Reader, fileName string) (s1, s2 []float64, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", fileName, err)
	}
	text := string(data)
	parts := strings.Split(text, Separator)
	switch {
	case len(parts) < 2:
		return nil, nil, &SyntaxError{fileName, 0, fmt.Sprintf("missing %q separator between samples", Separator)}
	case len(parts) > 2:
		line := 1 + strings.Count(parts[0]+Separator+parts[1], "\n")
		return nil, nil, &SyntaxError{fileName, line, fmt.Sprintf("unexpected %q: want exactly two samples", Separator)}
	}

	s1, err = parseValues(parts[0], fileName, 1)
	if err != nil {
		return nil, nil, err
	}
	// parts[1] starts on the line holding the separator.
	s2, err = parseValues(parts[1], fileName, 1+strings.Count(parts[0], "\n"))
	if err != nil {
		return nil, nil, err
	}
	return s1, s2, nil
}

// parseValues parses the numbers in text. line is the line number
// text starts on.
func parseValues(text, fileName string, line int) ([]float64, error) {
	var values []float64
	for _, l := range strings.Split(text, "\n") {
		for _, tok := range strings.Fields(l) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, &SyntaxError{fileName, line, fmt.Sprintf("invalid number %q", tok)}
			}
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return nil, &SyntaxError{fileName, line, fmt.Sprintf("non-finite value %q", tok)}
			}
			values = append(values, v)
		}
		line++
	}
	return values, nil
}
