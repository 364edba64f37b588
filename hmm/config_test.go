package hmm

import (
	"errors"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/akualab/dhmm"
)

const modelData string = `
[model]
name = "chain"
states = 3
symbols = 2
topology = "forward"
`

const customModelData string = `
[model]
name = "trained"
states = 3
symbols = 2
topology = "custom"
trans_probs = [[0.0, 1.0, 0.0], [0.0, 0.02, 0.98], [0.0, 0.0, 1.0]]
emit_probs = [[1.0, 0.0], [0.001, 0.999], [0.0425, 0.9575]]
init_probs = [1.0, 0.0, 0.0]
`

func TestFromConfigForward(t *testing.T) {

	var config dhmm.Config
	_, err := toml.Decode(modelData, &config)
	dhmm.CheckError(t, err)

	m, err := FromConfig(config.Model)
	dhmm.CheckError(t, err)
	if m.Name() != "chain" || m.NStates() != 3 || m.NSymbols() != 2 {
		t.Fatalf("wrong model: %s %d %d", m.Name(), m.NStates(), m.NSymbols())
	}
	expected := [][]float64{
		{1.0 / 3.0, 1.0 / 3.0, 1.0 / 3.0},
		{0, 0.5, 0.5},
		{0, 0, 1},
	}
	dhmm.CompareMatrix(t, expected, m.TransProbs(), "Wrong trans probs", 1e-12)
}

func TestFromConfigCustom(t *testing.T) {

	var config dhmm.Config
	_, err := toml.Decode(customModelData, &config)
	dhmm.CheckError(t, err)

	m, err := FromConfig(config.Model)
	dhmm.CheckError(t, err)

	// The decoded model must behave like the hand-built fixture.
	p, err := m.Evaluate([]int{0, 1, 1, 1}, false)
	dhmm.CheckError(t, err)
	expected, err := makeTrainedModel(t).Evaluate([]int{0, 1, 1, 1}, false)
	dhmm.CheckError(t, err)
	dhmm.CompareFloats(t, expected, p, "Decoded model disagrees with fixture", 1e-12)
}

func TestFromConfigInvalid(t *testing.T) {

	bad := []dhmm.ModelConfig{
		{Name: "x", States: 2, Symbols: 2, Topology: "spiral"},
		{Name: "x", States: 2, Symbols: 2, Topology: "custom"},
		{Name: "x", States: 2, Symbols: 2, Topology: "custom",
			TransProbs: [][]float64{{1, 0}, {0.5}}, InitProbs: []float64{1, 0}},
		{Name: "x", States: 2, Symbols: 2, Topology: "forward", Deepness: 3},
	}
	for i, c := range bad {
		if _, err := FromConfig(c); !errors.Is(err, dhmm.ErrInvalidArgument) {
			t.Errorf("config %d: expected invalid argument error, got %v", i, err)
		}
	}
}
