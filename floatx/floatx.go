// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package floatx provides small helpers for slices of float64 values.
package floatx

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

type Error string

func (err Error) Error() string { return string(err) }

const (
	ErrZeroLength = Error("floatx: zero length in slice definition")
	ErrLength     = Error("floatx: length mismatch")
)

// ApplyFunc is an elementwise transformation. The first argument is the
// element index.
type ApplyFunc func(n int, v float64) float64

// Elementwise transformations.
var Log = func(r int, v float64) float64 { return math.Log(v) }
var Exp = func(r int, v float64) float64 { return math.Exp(v) }
var Sq = func(r int, v float64) float64 { return v * v }

// SetValueFunc returns an ApplyFunc that sets every element to f.
func SetValueFunc(f float64) ApplyFunc {
	return func(r int, v float64) float64 { return f }
}

// ScaleFunc returns an ApplyFunc that multiplies every element by f.
func ScaleFunc(f float64) ApplyFunc {
	return func(r int, v float64) float64 { return v * f }
}

// Apply applies fn to the in slice. If out is empty, the function is applied
// in place.
func Apply(fn ApplyFunc, in, out []float64) []float64 {

	n := len(in)
	if n == 0 {
		panic(ErrZeroLength)
	}
	if len(out) == 0 {
		out = in
	}
	if len(out) != n {
		panic(ErrLength)
	}
	for i := 0; i < n; i++ {
		out[i] = fn(i, in[i])
	}

	return out
}

// MakeFloat2D allocates a 2D slice of float64 values.
func MakeFloat2D(n1, n2 int) [][]float64 {

	s := make([][]float64, n1)
	for i := 0; i < n1; i++ {
		s[i] = make([]float64, n2)
	}

	return s
}

// MakeInt2D allocates a 2D slice of int values.
func MakeInt2D(n1, n2 int) [][]int {

	s := make([][]int, n1)
	for i := 0; i < n1; i++ {
		s[i] = make([]int, n2)
	}

	return s
}

// Clear sets all values to zero.
func Clear(s []float64) {

	Apply(SetValueFunc(0), s, nil)
}

// Normalize scales s in place so it sums to one and returns the original
// sum. A zero-sum slice is left untouched so that impossible events stay at
// zero instead of becoming NaN.
func Normalize(s []float64) float64 {

	sum := floats.Sum(s)
	if sum == 0 {
		return 0
	}
	floats.Scale(1.0/sum, s)
	return sum
}
