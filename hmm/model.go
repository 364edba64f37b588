// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hmm implements a discrete-output hidden Markov model.

The complete model is Φ = (A, B, π):

	q(t) is the hidden state at time t, states are labeled {0,1,...,N-1}
	o(t) is the observed symbol at time t, symbols are labeled {0,1,...,M-1}
	a(i,j) = P[q(t+1) = j | q(t) = i]           [N x N]
	b(i,s) = P[o(t) = s | q(t) = i]             [N x M]
	π(i)   = P[q(0) = i]                        [N x 1]

The package answers the three classic inference queries: Decode finds the
most likely state path (Viterbi), Evaluate computes the sequence probability
(scaled forward pass) and Predict forecasts the most probable next symbols.
All parameters are stored in the linear domain and are immutable for the
lifetime of the model; every inference method is read-only.
*/
package hmm

import (
	"fmt"
	"math"

	"github.com/akualab/dhmm"
	"github.com/golang/glog"
	"gonum.org/v1/gonum/mat"
)

// Model is a discrete hidden Markov model.
type Model struct {

	// Model name.
	name string

	// Number of hidden states.
	// N
	ns int

	// Alphabet size.
	// M
	symbols int

	// State-transition probability distribution matrix. [ns x ns]
	a *mat.Dense

	// Symbol emission probability distribution matrix. [ns x symbols]
	b *mat.Dense

	// Initial state distribution. [ns x 1]
	pi []float64
}

type settings struct {
	name string
	topo Topology
	b    *mat.Dense
}

// Option type is used to pass options to NewModel().
type Option func(*settings)

// Name is an option to set the model name.
func Name(name string) Option {
	return func(s *settings) { s.name = name }
}

// Topo is an option to set the transition topology. The default is Ergodic.
func Topo(topo Topology) Option {
	return func(s *settings) { s.topo = topo }
}

// Emissions is an option to set the emission probability matrix
// [states x symbols]. The default is uniform emissions.
func Emissions(b *mat.Dense) Option {
	return func(s *settings) { s.b = b }
}

// NewModel creates a new discrete HMM with the given number of states and
// symbols. Validation is eager; inference methods assume stochastic rows and
// perform no defensive re-validation.
func NewModel(states, symbols int, options ...Option) (*Model, error) {

	if states < 1 {
		return nil, fmt.Errorf("num states must be positive, got [%d]: %w",
			states, dhmm.ErrInvalidArgument)
	}
	if symbols < 1 {
		return nil, fmt.Errorf("num symbols must be positive, got [%d]: %w",
			symbols, dhmm.ErrInvalidArgument)
	}

	s := settings{name: "HMM", topo: Ergodic()}
	for _, option := range options {
		option(&s)
	}

	a, pi, err := s.topo.Build(states)
	if err != nil {
		return nil, err
	}

	b := s.b
	if b == nil {
		b = mat.NewDense(states, symbols, nil)
		p := 1.0 / float64(symbols)
		for i := 0; i < states; i++ {
			for j := 0; j < symbols; j++ {
				b.Set(i, j, p)
			}
		}
	} else {
		r, c := b.Dims()
		if r != states || c != symbols {
			return nil, fmt.Errorf("emit probs are [%dx%d], expected [%dx%d]: %w",
				r, c, states, symbols, dhmm.ErrInvalidArgument)
		}
	}

	glog.V(1).Infof("new model [%s] - states:%d, symbols:%d", s.name, states, symbols)

	return &Model{
		name:    s.name,
		ns:      states,
		symbols: symbols,
		a:       a,
		b:       b,
		pi:      pi,
	}, nil
}

// Evaluate returns the probability that the model generated the observation
// sequence, summed over all state paths (scaled forward pass). An empty
// sequence evaluates to 0. With logarithm, the log probability is returned
// instead.
func (m *Model) Evaluate(seq []int, logarithm bool) (float64, error) {

	if len(seq) == 0 {
		return 0.0, nil
	}
	_, logProb, err := m.alpha(seq)
	if err != nil {
		return 0, err
	}
	if logarithm {
		return logProb, nil
	}
	return math.Exp(logProb), nil
}

// checkSeq validates the observation symbols against the model alphabet.
func (m *Model) checkSeq(seq []int) error {

	for t, s := range seq {
		if s < 0 || s >= m.symbols {
			return fmt.Errorf("symbol [%d] at t=%d is outside the alphabet [0,%d): %w",
				s, t, m.symbols, dhmm.ErrInvalidArgument)
		}
	}
	return nil
}

// Name returns the name of the model.
func (m *Model) Name() string { return m.name }

// NStates returns the number of hidden states.
func (m *Model) NStates() int { return m.ns }

// NSymbols returns the alphabet size.
func (m *Model) NSymbols() int { return m.symbols }

// TransProbs returns the transition probability matrix. The matrix is owned
// by the model and must be treated as read-only.
func (m *Model) TransProbs() *mat.Dense { return m.a }

// EmitProbs returns the emission probability matrix. The matrix is owned by
// the model and must be treated as read-only.
func (m *Model) EmitProbs() *mat.Dense { return m.b }

// InitProbs returns the initial state distribution. The slice is owned by
// the model and must be treated as read-only.
func (m *Model) InitProbs() []float64 { return m.pi }
