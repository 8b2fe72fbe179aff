package sentiment

import "testing"

func scorers(t *testing.T) map[Strategy]Scorer {
	t.Helper()
	out := make(map[Strategy]Scorer)
	for _, s := range []Strategy{StrategyLexicon, StrategyStatistical} {
		sc, err := ForStrategy(s)
		if err != nil {
			t.Fatalf("ForStrategy(%s): %v", s, err)
		}
		out[s] = sc
	}
	return out
}

func TestForStrategyUnknown(t *testing.T) {
	if _, err := ForStrategy("vibes"); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestEmptyInputScoresZero(t *testing.T) {
	for name, sc := range scorers(t) {
		if got := sc.Score(""); got != 0 {
			t.Errorf("%s: Score(\"\") = %v, want 0", name, got)
		}
		if got := sc.Score("   \t  "); got != 0 {
			t.Errorf("%s: whitespace input = %v, want 0", name, got)
		}
	}
}

func TestScoreWithinRange(t *testing.T) {
	texts := []string{
		"great news for ai",
		"terrible awful horrible worst garbage hate hate hate",
		"love love love amazing awesome best great wonderful perfect",
		"neutral words about nothing in particular",
		"mixed good and bad feelings",
	}
	for name, sc := range scorers(t) {
		for _, txt := range texts {
			got := sc.Score(txt)
			if got < -1 || got > 1 {
				t.Errorf("%s: Score(%q) = %v, outside [-1, 1]", name, txt, got)
			}
		}
	}
}

func TestPolarityDirection(t *testing.T) {
	for name, sc := range scorers(t) {
		if got := sc.Score("great news for ai"); got <= 0 {
			t.Errorf("%s: positive text scored %v", name, got)
		}
		if got := sc.Score("this update is terrible"); got >= 0 {
			t.Errorf("%s: negative text scored %v", name, got)
		}
		if got := sc.Score("words with no opinion"); got != 0 {
			t.Errorf("%s: neutral text scored %v, want 0", name, got)
		}
	}
}

func TestNegationFlips(t *testing.T) {
	for name, sc := range scorers(t) {
		plain := sc.Score("good")
		negated := sc.Score("not good")
		if negated >= 0 {
			t.Errorf("%s: negated positive scored %v, want negative", name, negated)
		}
		if negated >= plain {
			t.Errorf("%s: negation did not lower score: plain %v, negated %v", name, plain, negated)
		}
	}
}

func TestBoosterStrengthens(t *testing.T) {
	for name, sc := range scorers(t) {
		plain := sc.Score("good")
		boosted := sc.Score("very good")
		damped := sc.Score("slightly good")
		if boosted <= plain {
			t.Errorf("%s: booster did not raise score: plain %v, boosted %v", name, plain, boosted)
		}
		if damped >= plain {
			t.Errorf("%s: dampener did not lower score: plain %v, damped %v", name, plain, damped)
		}
	}
}

func TestDeterministic(t *testing.T) {
	text := "really great release but slightly buggy and somewhat slow"
	for name, sc := range scorers(t) {
		first := sc.Score(text)
		for i := 0; i < 5; i++ {
			if got := sc.Score(text); got != first {
				t.Fatalf("%s: score changed across calls: %v then %v", name, first, got)
			}
		}
	}
}

func TestStatisticalAveraging(t *testing.T) {
	sc := NewStatisticalScorer()
	// good=0.5 and bad=-0.7 average to -0.1
	got := sc.Score("good bad")
	want := (0.5 + -0.7) / 2
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Score(\"good bad\") = %v, want %v", got, want)
	}
}
