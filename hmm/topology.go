// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"fmt"
	"math/rand"

	"github.com/akualab/dhmm"
	"github.com/akualab/dhmm/floatx"
	"github.com/akualab/dhmm/randx"
	"gonum.org/v1/gonum/mat"
)

// TopologyKind enumerates the supported transition topologies.
type TopologyKind int

const (
	// ForwardTopo allows only non-decreasing state transitions within a
	// bounded distance (the deepness).
	ForwardTopo TopologyKind = iota
	// ErgodicTopo connects every state to every state.
	ErgodicTopo
	// CustomTopo uses caller-supplied matrices verbatim.
	CustomTopo
)

// Topology is a stateless factory for a transition matrix and an initial
// state distribution. A topology is built once, at model construction time;
// the returned matrices are owned by the caller.
type Topology struct {
	kind      TopologyKind
	deepness  int
	randomize bool
	r         *rand.Rand
	a         *mat.Dense
	pi        []float64
}

// Forward returns a forward-chain topology. Row i spreads its mass uniformly
// across the states [i, i+min(deepness, N-i)); chains always start in state 0.
func Forward(deepness int) Topology {
	return Topology{kind: ForwardTopo, deepness: deepness}
}

// RandomForward is like Forward but draws the transition weights from the
// uniform source r, normalized per row. A nil source falls back to one seeded
// with randx.DefaultSeed.
func RandomForward(deepness int, r *rand.Rand) Topology {
	return Topology{kind: ForwardTopo, deepness: deepness, randomize: true, r: r}
}

// Ergodic returns a fully-connected topology with uniform transition rows
// and a uniform initial state distribution.
func Ergodic() Topology {
	return Topology{kind: ErgodicTopo}
}

// Custom returns a topology that yields the given transition matrix and
// initial state distribution unchanged. The builder does not check that the
// rows are stochastic.
func Custom(a *mat.Dense, pi []float64) Topology {
	return Topology{kind: CustomTopo, a: a, pi: pi}
}

// Kind returns the topology kind.
func (topo Topology) Kind() TopologyKind { return topo.kind }

// Build creates the transition matrix [states x states] and the initial
// state distribution [states] for this topology.
func (topo Topology) Build(states int) (*mat.Dense, []float64, error) {

	if states < 1 {
		return nil, nil, fmt.Errorf("num states must be positive, got [%d]: %w",
			states, dhmm.ErrInvalidArgument)
	}

	switch topo.kind {

	case ForwardTopo:
		return topo.buildForward(states)

	case ErgodicTopo:
		a := mat.NewDense(states, states, nil)
		pi := make([]float64, states)
		p := 1.0 / float64(states)
		for i := 0; i < states; i++ {
			pi[i] = p
			for j := 0; j < states; j++ {
				a.Set(i, j, p)
			}
		}
		return a, pi, nil

	default:
		return topo.buildCustom(states)
	}
}

func (topo Topology) buildForward(states int) (*mat.Dense, []float64, error) {

	d := topo.deepness
	if d < 1 {
		return nil, nil, fmt.Errorf("deepness must be at least one, got [%d]: %w",
			d, dhmm.ErrInvalidArgument)
	}
	if d > states {
		return nil, nil, fmt.Errorf("deepness [%d] exceeds num states [%d]: %w",
			d, states, dhmm.ErrInvalidArgument)
	}

	r := topo.r
	if topo.randomize && r == nil {
		r = randx.New(randx.DefaultSeed)
	}

	a := mat.NewDense(states, states, nil)
	for i := 0; i < states; i++ {
		window := d
		if states-i < window {
			window = states - i
		}
		row := a.RawRowView(i)
		if topo.randomize {
			for j := i; j < i+window; j++ {
				row[j] = r.Float64()
			}
			floatx.Normalize(row[i : i+window])
		} else {
			p := 1.0 / float64(window)
			for j := i; j < i+window; j++ {
				row[j] = p
			}
		}
	}

	// Chains always start in state 0.
	pi := make([]float64, states)
	pi[0] = 1.0
	return a, pi, nil
}

func (topo Topology) buildCustom(states int) (*mat.Dense, []float64, error) {

	if topo.a == nil || topo.pi == nil {
		return nil, nil, fmt.Errorf("custom topology needs both matrices: %w",
			dhmm.ErrInvalidArgument)
	}
	r, c := topo.a.Dims()
	if r != states || c != states {
		return nil, nil, fmt.Errorf("trans probs are [%dx%d], expected [%dx%d]: %w",
			r, c, states, states, dhmm.ErrInvalidArgument)
	}
	if len(topo.pi) != states {
		return nil, nil, fmt.Errorf("init probs have [%d] states, expected [%d]: %w",
			len(topo.pi), states, dhmm.ErrInvalidArgument)
	}
	return topo.a, topo.pi, nil
}
