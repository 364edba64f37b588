// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"fmt"

	"github.com/akualab/dhmm"
	"github.com/akualab/dhmm/randx"
	"gonum.org/v1/gonum/mat"
)

// FromConfig builds a model from a decoded model description. The topology
// field selects the builder; an empty topology means ergodic.
func FromConfig(c dhmm.ModelConfig) (*Model, error) {

	options := []Option{Name(c.Name)}

	switch c.Topology {

	case "forward":
		// An unset deepness means a full window.
		if c.Deepness == 0 {
			c.Deepness = c.States
		}
		if c.Randomize {
			seed := c.Seed
			if seed == 0 {
				seed = randx.DefaultSeed
			}
			options = append(options, Topo(RandomForward(c.Deepness, randx.New(seed))))
		} else {
			options = append(options, Topo(Forward(c.Deepness)))
		}

	case "ergodic", "":
		options = append(options, Topo(Ergodic()))

	case "custom":
		a, e := denseFromRows(c.TransProbs)
		if e != nil {
			return nil, e
		}
		options = append(options, Topo(Custom(a, c.InitProbs)))

	default:
		return nil, fmt.Errorf("unknown topology [%s]: %w", c.Topology, dhmm.ErrInvalidArgument)
	}

	if c.EmitProbs != nil {
		b, e := denseFromRows(c.EmitProbs)
		if e != nil {
			return nil, e
		}
		options = append(options, Emissions(b))
	}

	return NewModel(c.States, c.Symbols, options...)
}

func denseFromRows(rows [][]float64) (*mat.Dense, error) {

	if len(rows) == 0 {
		return nil, fmt.Errorf("empty matrix in model config: %w", dhmm.ErrInvalidArgument)
	}
	c := len(rows[0])
	d := mat.NewDense(len(rows), c, nil)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("ragged matrix row [%d] in model config: %w",
				i, dhmm.ErrInvalidArgument)
		}
		d.SetRow(i, row)
	}
	return d, nil
}
