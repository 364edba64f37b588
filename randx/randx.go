// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides explicitly seeded random sources and samplers.
// Sources are constructed and owned by the caller; there is no package-level
// generator, which keeps randomized code reproducible in tests.
package randx

import (
	"fmt"
	"math/rand"

	"github.com/akualab/dhmm"
)

// DefaultSeed is used when the caller does not provide a source.
const DefaultSeed = 33

// New returns a uniform source seeded with the given value.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// IntFromDist draws an index from a discrete probability distribution.
func IntFromDist(dist []float64, r *rand.Rand) (int, error) {

	n := len(dist)
	if n == 0 {
		return -1, fmt.Errorf("empty distribution: %w", dhmm.ErrInvalidArgument)
	}
	ran := r.Float64()
	cum := 0.0
	for i := 0; i < n; i++ {
		cum += dist[i]
		if ran < cum {
			return i, nil
		}
	}
	// Mass can fall slightly short of one due to rounding.
	return n - 1, nil
}
