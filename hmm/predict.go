// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"fmt"
	"math"

	"github.com/akualab/dhmm"
	"github.com/akualab/dhmm/floatx"
	"gonum.org/v1/gonum/floats"
)

// Predict forecasts the next symbols following the observed prefix. It
// returns the predicted symbols, the per-step probability distributions over
// the alphabet and the aggregate path probability (log probability with
// logarithm set).
//
// The forecast is greedy: at each step the state belief is propagated one
// step through A, every candidate symbol s gets the weight
//
//	w(s) = sum_i b(i,s) sum_j belief(j) a(j,i)
//
// and the symbol with the maximum weight is committed (ties keep the first
// index). The belief carried into the next step is conditioned on that choice
// only, so the result is a sequence of locally best symbols, not a joint
// maximum over the horizon.
//
// A zero horizon returns empty slices and the evaluation probability of the
// prefix.
func (m *Model) Predict(seq []int, next int, logarithm bool) ([]int, [][]float64, float64, error) {

	if next < 0 {
		return nil, nil, 0, fmt.Errorf("horizon must not be negative, got [%d]: %w",
			next, dhmm.ErrInvalidArgument)
	}

	N := m.ns
	M := m.symbols

	// Seed the state belief with the final scaled forward row of the
	// prefix. An empty prefix starts from the initial distribution with
	// probability one.
	belief := make([]float64, N)
	var logProb float64
	if len(seq) == 0 {
		copy(belief, m.pi)
	} else {
		α, lp, err := m.alpha(seq)
		if err != nil {
			return nil, nil, 0, err
		}
		copy(belief, α.RawRowView(len(seq)-1))
		logProb = lp
	}

	predictions := make([]int, next)
	probs := floatx.MakeFloat2D(next, M)
	prop := make([]float64, N)

	for t := 0; t < next; t++ {

		// One-step propagation through A, independent of the symbol.
		for i := 0; i < N; i++ {
			var sum float64
			for j := 0; j < N; j++ {
				sum += belief[j] * m.a.At(j, i)
			}
			prop[i] = sum
		}

		// Weight every candidate symbol.
		weights := probs[t]
		for s := 0; s < M; s++ {
			var w float64
			for i := 0; i < N; i++ {
				w += m.b.At(i, s) * prop[i]
			}
			weights[s] = w
		}
		best := floats.MaxIdx(weights)
		predictions[t] = best

		// Condition the belief on having emitted the chosen symbol.
		w := weights[best]
		if w > 0 {
			for i := 0; i < N; i++ {
				belief[i] = m.b.At(i, best) * prop[i] / w
			}
		} else {
			floatx.Clear(belief)
		}

		floatx.Normalize(weights)
		logProb += math.Log(w)
	}

	if logarithm {
		return predictions, probs, logProb, nil
	}
	return predictions, probs, math.Exp(logProb), nil
}
