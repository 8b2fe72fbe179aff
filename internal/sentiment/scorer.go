// Package sentiment maps cleaned text to a polarity score in [-1, 1].
// Two interchangeable strategies are provided: a lexicon scorer tuned for
// short informal text (negation handling, intensifiers) and a general
// statistical polarity scorer. Both are deterministic.
package sentiment

import (
	_ "embed"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Strategy selects a scorer implementation for a pipeline run.
type Strategy string

const (
	StrategyLexicon     Strategy = "lexicon"
	StrategyStatistical Strategy = "statistical"
)

// Scorer is the capability interface the pipeline holds; callers never
// branch on the strategy name.
type Scorer interface {
	// Score returns a polarity in [-1, 1]; empty or whitespace-only input
	// scores 0. It never fails.
	Score(text string) float64
}

// ForStrategy returns the scorer for a configured strategy name.
func ForStrategy(s Strategy) (Scorer, error) {
	switch s {
	case StrategyLexicon, "":
		return NewLexiconScorer(), nil
	case StrategyStatistical:
		return NewStatisticalScorer(), nil
	default:
		return nil, fmt.Errorf("unknown sentiment strategy: %q", s)
	}
}

//go:embed data/lexicon.yaml
var lexiconYAML []byte

type wordEntry struct {
	Valence  float64 `yaml:"valence"`  // social-media scale, roughly [-4, 4]
	Polarity float64 `yaml:"polarity"` // general scale, [-1, 1]
}

type lexiconData struct {
	Boosters  map[string]float64   `yaml:"boosters"`
	Negations []string             `yaml:"negations"`
	Words     map[string]wordEntry `yaml:"words"`
}

var (
	lex       lexiconData
	negations map[string]struct{}
)

func init() {
	if err := yaml.Unmarshal(lexiconYAML, &lex); err != nil {
		panic(fmt.Sprintf("sentiment: bad embedded lexicon: %v", err))
	}
	negations = make(map[string]struct{}, len(lex.Negations))
	for _, n := range lex.Negations {
		negations[n] = struct{}{}
	}
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
