package sentiment

import "strings"

// StatisticalScorer averages per-word polarities over the matched tokens,
// the way general-purpose polarity models behave on longer prose. An
// immediately preceding booster scales a word's polarity; an immediately
// preceding negation inverts and halves it.
type StatisticalScorer struct{}

func NewStatisticalScorer() *StatisticalScorer {
	return &StatisticalScorer{}
}

func (s *StatisticalScorer) Score(text string) float64 {
	tokens := strings.Fields(strings.ToLower(text))
	if len(tokens) == 0 {
		return 0
	}
	var total float64
	hits := 0
	for i, tok := range tokens {
		e, ok := lex.Words[tok]
		if !ok || e.Polarity == 0 {
			continue
		}
		p := e.Polarity
		if i > 0 {
			prev := tokens[i-1]
			if b, ok := lex.Boosters[prev]; ok {
				p *= 1 + b
			} else if _, ok := negations[prev]; ok {
				p *= -0.5
			}
		}
		total += p
		hits++
	}
	if hits == 0 {
		return 0
	}
	return clamp(total / float64(hits))
}
