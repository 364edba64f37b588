// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dhmm

// Config is the top-level schema for dhmm TOML files.
type Config struct {
	Model ModelConfig `toml:"model"`
}

// ModelConfig describes a discrete hidden Markov model. The topology field
// selects how the transition matrix and initial state distribution are
// produced: "forward" and "ergodic" use the corresponding builders, "custom"
// takes trans_probs and init_probs verbatim. Emission probabilities are
// uniform unless emit_probs is set.
type ModelConfig struct {
	Name       string      `toml:"name"`
	States     int         `toml:"states"`
	Symbols    int         `toml:"symbols"`
	Topology   string      `toml:"topology"`
	Deepness   int         `toml:"deepness,omitempty"`
	Randomize  bool        `toml:"randomize,omitempty"`
	Seed       int64       `toml:"seed,omitempty"`
	TransProbs [][]float64 `toml:"trans_probs,omitempty"`
	EmitProbs  [][]float64 `toml:"emit_probs,omitempty"`
	InitProbs  []float64   `toml:"init_probs,omitempty"`
}
