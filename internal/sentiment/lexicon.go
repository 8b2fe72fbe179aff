package sentiment

import (
	"math"
	"strings"
)

// LexiconScorer scores short informal text with a weighted word lexicon.
// A sentiment-bearing token is adjusted by booster words up to three
// positions back and flipped (damped) when a negation appears in that
// window, then the token sum is squashed into [-1, 1].
type LexiconScorer struct{}

func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{}
}

// Boosters lose a little influence the further they sit from the word
// they modify.
var boosterDistanceScale = [...]float64{1.0, 0.95, 0.9}

func (s *LexiconScorer) Score(text string) float64 {
	tokens := strings.Fields(strings.ToLower(text))
	if len(tokens) == 0 {
		return 0
	}
	var sum float64
	hits := 0
	for i, tok := range tokens {
		e, ok := lex.Words[tok]
		if !ok || e.Valence == 0 {
			continue
		}
		v := e.Valence
		var boost float64
		negated := false
		for j := 1; j <= 3 && i-j >= 0; j++ {
			prev := tokens[i-j]
			if b, ok := lex.Boosters[prev]; ok {
				boost += b * boosterDistanceScale[j-1]
			}
			if _, ok := negations[prev]; ok {
				negated = true
			}
		}
		if v > 0 {
			v += boost
		} else {
			v -= boost
		}
		if negated {
			v *= -0.74
		}
		sum += v
		hits++
	}
	if hits == 0 {
		return 0
	}
	// Squash the raw valence sum so a handful of strong words saturates
	// toward ±1 without ever crossing it.
	return clamp(sum / math.Sqrt(sum*sum+15))
}
