// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dhmm

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// Comparef64 returns true if |f2-f1| / (avg+1) < tol.
func Comparef64(f1, f2, tol float64) bool {
	avg := math.Abs(f1+f2) / 2.0
	sErr := math.Abs(f2-f1) / (avg + 1)
	return sErr < tol
}

// CompareFloats compares floats using Comparef64.
func CompareFloats(t *testing.T, expected, actual float64, message string, tol float64) {
	if !Comparef64(expected, actual, tol) {
		t.Errorf("[%s]. Expected: [%f], Got: [%f]", message, expected, actual)
	}
}

// CompareSliceFloat compares slices elementwise using Comparef64.
func CompareSliceFloat(t *testing.T, expected, actual []float64, message string, tol float64) {
	if len(expected) != len(actual) {
		t.Fatalf("[%s]. Length mismatch. Expected: [%d], Got: [%d]",
			message, len(expected), len(actual))
	}
	for i := range expected {
		if !Comparef64(expected[i], actual[i], tol) {
			t.Errorf("[%s]. Expected: [%f], Got: [%f]",
				message, expected[i], actual[i])
		}
	}
}

// CompareSliceInt compares two slices of ints elementwise.
func CompareSliceInt(t *testing.T, expected, actual []int, message string) {
	if len(expected) != len(actual) {
		t.Fatalf("[%s]. Length mismatch. Expected: [%d], Got: [%d]",
			message, len(expected), len(actual))
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Errorf("[%s]. Expected: [%d], Got: [%d]",
				message, expected[i], actual[i])
		}
	}
}

// CompareMatrix compares a dense matrix against expected rows using Comparef64.
func CompareMatrix(t *testing.T, expected [][]float64, actual *mat.Dense, message string, tol float64) {
	r, c := actual.Dims()
	if r != len(expected) {
		t.Fatalf("[%s]. Row mismatch. Expected: [%d], Got: [%d]", message, len(expected), r)
	}
	for i := range expected {
		if c != len(expected[i]) {
			t.Fatalf("[%s]. Col mismatch in row %d. Expected: [%d], Got: [%d]",
				message, i, len(expected[i]), c)
		}
		for j := range expected[i] {
			if !Comparef64(expected[i][j], actual.At(i, j), tol) {
				t.Errorf("[%s]. At (%d,%d). Expected: [%f], Got: [%f]",
					message, i, j, expected[i][j], actual.At(i, j))
			}
		}
	}
}

// CheckError calls Fatal if error is not nil.
func CheckError(t *testing.T, e error) {

	if e != nil {
		t.Fatal(e)
	}
}
