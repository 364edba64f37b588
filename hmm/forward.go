// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"math"

	"github.com/akualab/dhmm/floatx"
	"github.com/golang/glog"
	"gonum.org/v1/gonum/mat"
)

// Compute scaled alphas. Indices are: α(time, state)
//
// 1. Initialization: α(0,i) =  π(i) b(i,o(0)); 0<=i<N
// 2. Induction:      α(t,j) =  [sum_{i=0}^{N-1} α(t-1,i) a(i,j)] b(j,o(t)); 1<=t<T; 0<=j<N
// 3. Termination:    log P(O|Φ) = sum_{t=0}^{T-1} log c(t)
//
// Each row is scaled by its sum c(t), so rows are probability distributions
// over states and can be read directly as state beliefs. Accumulating log c(t)
// instead of multiplying keeps long sequences from underflowing. For scaling
// details see Rabiner/Juang.
//
// A zero-length sequence has probability one: logProb is 0 and α is nil.
func (m *Model) alpha(seq []int) (α *mat.Dense, logProb float64, e error) {

	T := len(seq)
	if T == 0 {
		return nil, 0, nil
	}
	if e = m.checkSeq(seq); e != nil {
		return nil, 0, e
	}

	N := m.ns
	α = mat.NewDense(T, N, nil)

	// 1. Initialization.
	row := α.RawRowView(0)
	for i := 0; i < N; i++ {
		row[i] = m.pi[i] * m.b.At(i, seq[0])
	}
	c := floatx.Normalize(row)
	logProb = math.Log(c)

	// 2. Induction.
	for t := 1; t < T; t++ {
		prev := α.RawRowView(t - 1)
		row = α.RawRowView(t)
		for j := 0; j < N; j++ {
			var sum float64
			for i := 0; i < N; i++ {
				sum += prev[i] * m.a.At(i, j)
			}
			row[j] = sum * m.b.At(j, seq[t])
		}
		c = floatx.Normalize(row)
		if glog.V(4) {
			glog.Infof("t: %4d | c: %e | logProb: %e", t, c, logProb)
		}
		logProb += math.Log(c)
	}

	return
}
