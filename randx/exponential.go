// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/akualab/dhmm"
)

// Exponential draws samples from an exponential distribution with the given
// rate by inverting uniform draws.
type Exponential struct {
	rate float64
	r    *rand.Rand
}

// NewExponential creates a sampler with its own uniform source.
// The rate must be positive.
func NewExponential(rate float64, seed int64) (*Exponential, error) {

	if rate <= 0 {
		return nil, fmt.Errorf("rate must be positive, got [%g]: %w", rate, dhmm.ErrInvalidArgument)
	}
	return &Exponential{
		rate: rate,
		r:    New(seed),
	}, nil
}

// Next draws a fresh uniform value u in [0,1) and returns -ln(u)/rate.
func (e *Exponential) Next() float64 {
	return -math.Log(e.r.Float64()) / e.rate
}

// Mean returns 1/rate.
func (e *Exponential) Mean() float64 {
	return 1.0 / e.rate
}

// Variance returns 1/rate^2.
func (e *Exponential) Variance() float64 {
	return 1.0 / (e.rate * e.rate)
}

// Reseed replaces the underlying uniform source with a freshly seeded
// instance, discarding any prior state.
func (e *Exponential) Reseed(seed int64) {
	e.r = New(seed)
}
