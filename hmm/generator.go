// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"fmt"
	"math/rand"

	"github.com/akualab/dhmm"
	"github.com/akualab/dhmm/randx"
)

// Sample generates a random observation sequence of the given length from
// the model, drawing the state path from π and A and the symbols from B.
// It returns the symbols and the hidden state path. A nil source falls back
// to one seeded with randx.DefaultSeed; pass an owned source for
// reproducible sequences.
func (m *Model) Sample(length int, r *rand.Rand) ([]int, []int, error) {

	if length < 0 {
		return nil, nil, fmt.Errorf("length must not be negative, got [%d]: %w",
			length, dhmm.ErrInvalidArgument)
	}
	if r == nil {
		r = randx.New(randx.DefaultSeed)
	}

	symbols := make([]int, length)
	states := make([]int, length)

	cur := 0
	for t := 0; t < length; t++ {
		var e error
		if t == 0 {
			cur, e = randx.IntFromDist(m.pi, r)
		} else {
			cur, e = randx.IntFromDist(m.a.RawRowView(cur), r)
		}
		if e != nil {
			return nil, nil, e
		}
		s, e := randx.IntFromDist(m.b.RawRowView(cur), r)
		if e != nil {
			return nil, nil, e
		}
		states[t] = cur
		symbols[t] = s
	}

	return symbols, states, nil
}
