// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dhmm runs discrete hidden Markov model inference from the command
// line. Models are described in TOML files, observation sequences are passed
// as comma-separated symbol indices.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/akualab/dhmm"
	"github.com/akualab/dhmm/hmm"
	"github.com/akualab/dhmm/randx"
	"github.com/golang/glog"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	appName    = "dhmm"
	appVersion = "0.1"
)

var (
	app         = kingpin.New(appName, "Discrete HMM inference command-line tool.")
	logToStderr = app.Flag("log-stderr", "Logs are written to standard error instead of files.").Default("true").Bool()
	vLevel      = app.Flag("log-level", "Enable V-leveled logging at the specified level.").Default("0").Short('v').String()
	modelFile   = app.Flag("model", "Model TOML file.").Short('m').Required().String()

	eval    = app.Command("eval", "Compute the probability of an observation sequence.")
	evalSeq = eval.Arg("sequence", "Comma-separated symbol indices.").Required().String()
	evalLog = eval.Flag("log", "Report the log probability.").Bool()

	decode    = app.Command("decode", "Find the most likely state path for an observation sequence.")
	decodeSeq = decode.Arg("sequence", "Comma-separated symbol indices.").Required().String()
	decodeLog = decode.Flag("log", "Report the log probability.").Bool()

	predict     = app.Command("predict", "Forecast the most probable next symbols.")
	predictSeq  = predict.Arg("sequence", "Comma-separated symbol indices, may be empty (\"\").").String()
	predictNext = predict.Flag("next", "Number of symbols to forecast.").Default("1").Int()
	predictLog  = predict.Flag("log", "Report the log probability.").Bool()

	sample       = app.Command("sample", "Generate a random observation sequence from the model.")
	sampleLength = sample.Flag("length", "Length of the generated sequence.").Default("10").Int()
	sampleSeed   = sample.Flag("seed", "Seed for the random number generator.").Default("33").Int64()
)

func main() {
	app.Version(appVersion)
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	initGlog()
	defer glog.Flush()

	m := loadModel(*modelFile)

	switch cmd {

	case eval.FullCommand():
		glog.V(3).Info("start eval command")
		seq := parseSeq(*evalSeq)
		p, e := m.Evaluate(seq, *evalLog)
		dhmm.Fatal(e)
		fmt.Printf("%e\n", p)

	case decode.FullCommand():
		glog.V(3).Info("start decode command")
		seq := parseSeq(*decodeSeq)
		path, p, e := m.Decode(seq, *decodeLog)
		dhmm.Fatal(e)
		fmt.Printf("%v %e\n", path, p)

	case predict.FullCommand():
		glog.V(3).Info("start predict command")
		seq := parseSeq(*predictSeq)
		predictions, probs, p, e := m.Predict(seq, *predictNext, *predictLog)
		dhmm.Fatal(e)
		fmt.Printf("%v %e\n", predictions, p)
		for t, dist := range probs {
			fmt.Printf("t=%d: %v\n", t, dist)
		}

	case sample.FullCommand():
		glog.V(3).Info("start sample command")
		symbols, states, e := m.Sample(*sampleLength, randx.New(*sampleSeed))
		dhmm.Fatal(e)
		fmt.Printf("symbols: %v\nstates:  %v\n", symbols, states)

	default:
		app.Usage(os.Args[1:])
	}
}

func loadModel(fn string) *hmm.Model {

	dat, e := ioutil.ReadFile(fn)
	dhmm.Fatal(e)
	var config dhmm.Config
	_, e = toml.Decode(string(dat), &config)
	dhmm.Fatal(e)
	m, e := hmm.FromConfig(config.Model)
	dhmm.Fatal(e)
	return m
}

// parseSeq parses a comma-separated list of symbol indices. An empty string
// yields an empty sequence.
func parseSeq(s string) []int {

	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return []int{}
	}
	fields := strings.Split(s, ",")
	seq := make([]int, len(fields))
	for i, f := range fields {
		v, e := strconv.Atoi(strings.TrimSpace(f))
		dhmm.Fatal(e)
		seq[i] = v
	}
	return seq
}

func initGlog() {
	if *logToStderr {
		flag.Set("alsologtostderr", "true")
	}
	flag.Set("v", *vLevel)
}
