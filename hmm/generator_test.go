package hmm

import (
	"errors"
	"testing"

	"github.com/akualab/dhmm"
	"github.com/akualab/dhmm/randx"
)

func TestSampleInvalidLength(t *testing.T) {

	m := makeTrainedModel(t)
	if _, _, err := m.Sample(-1, nil); !errors.Is(err, dhmm.ErrInvalidArgument) {
		t.Errorf("negative length: expected invalid argument error, got %v", err)
	}
}

func TestSampleZeroLength(t *testing.T) {

	m := makeTrainedModel(t)
	symbols, states, err := m.Sample(0, nil)
	dhmm.CheckError(t, err)
	if len(symbols) != 0 || len(states) != 0 {
		t.Errorf("zero length must return empty sequences, got %v %v", symbols, states)
	}
}

func TestSampleReproducible(t *testing.T) {

	m := makeTrainedModel(t)
	s1, q1, err := m.Sample(50, randx.New(7))
	dhmm.CheckError(t, err)
	s2, q2, err := m.Sample(50, randx.New(7))
	dhmm.CheckError(t, err)
	dhmm.CompareSliceInt(t, s1, s2, "Same seed must reproduce the symbols")
	dhmm.CompareSliceInt(t, q1, q2, "Same seed must reproduce the state path")
}

func TestSampleRespectsModel(t *testing.T) {

	m, err := NewModel(4, 2, Topo(Forward(2)))
	dhmm.CheckError(t, err)

	symbols, states, err := m.Sample(200, randx.New(99))
	dhmm.CheckError(t, err)

	if states[0] != 0 {
		t.Errorf("forward chains start in state 0, got %d", states[0])
	}
	for t0 := 0; t0 < len(states); t0++ {
		if symbols[t0] < 0 || symbols[t0] >= m.NSymbols() {
			t.Fatalf("symbol [%d] at t=%d is outside the alphabet", symbols[t0], t0)
		}
		if t0 == 0 {
			continue
		}
		// States never go backward and never jump past the window.
		d := states[t0] - states[t0-1]
		if d < 0 || d > 1 {
			t.Fatalf("illegal transition %d -> %d at t=%d", states[t0-1], states[t0], t0)
		}
	}
}
