// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"math"

	"github.com/akualab/dhmm/floatx"
)

// The viterbi algorithm computes the most probable sequence of states for an
// observation sequence. It runs in cost space, cost = -log(prob), which turns
// products into sums and maximization into minimization, so no scaling is
// needed. These are the equations:
//
// cost(i,0) = -log π(i) - log b(i,o(0))                      for i in [0, N-1]
// cost(j,t) = min_i [cost(i,t-1) - log a(i,j)] - log b(j,o(t))
// index(j,t) = argmin_i [cost(i,t-1) - log a(i,j)]
//
// Decoding z* is the output sequence [T x 1]
// z*(T-1) = argmin_j cost(j,T-1)
// z*(t) = index(z*(t+1), t+1)  t in [0, T-2]
//
// Ties keep the lowest state index (strict < comparison). A zero probability
// yields an infinite cost and can only be chosen when no finite-cost
// alternative exists.

// Decode returns the most likely state path for the observation sequence and
// its probability. With logarithm, the log probability (-cost) is returned
// instead. An empty sequence decodes to an empty path with probability 0.
func (m *Model) Decode(seq []int, logarithm bool) ([]int, float64, error) {

	T := len(seq)
	if T == 0 {
		return []int{}, 0.0, nil
	}
	if err := m.checkSeq(seq); err != nil {
		return nil, 0, err
	}

	N := m.ns
	cost := floatx.MakeFloat2D(T, N)
	index := floatx.MakeInt2D(T, N)

	// Init cost.
	for i := 0; i < N; i++ {
		cost[0][i] = -math.Log(m.pi[i]) - math.Log(m.b.At(i, seq[0]))
	}

	// Recursion.
	for t := 1; t < T; t++ {
		for j := 0; j < N; j++ {
			// Computing min in i to define cost(j,t), init with i=0.
			min := cost[t-1][0] - math.Log(m.a.At(0, j))
			argmin := 0
			for i := 1; i < N; i++ {
				v := cost[t-1][i] - math.Log(m.a.At(i, j))
				if v < min {
					min = v
					argmin = i
				}
			}
			cost[t][j] = min - math.Log(m.b.At(j, seq[t]))
			index[t][j] = argmin
		}
	}

	// Termination.
	min := cost[T-1][0]
	argmin := 0
	for i := 1; i < N; i++ {
		if cost[T-1][i] < min {
			min = cost[T-1][i]
			argmin = i
		}
	}

	// Backtrace.
	path := make([]int, T)
	path[T-1] = argmin
	for t := T - 2; t >= 0; t-- {
		path[t] = index[t+1][path[t+1]]
	}

	if logarithm {
		return path, -min, nil
	}
	return path, math.Exp(-min), nil
}
