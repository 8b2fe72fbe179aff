package engagement

import "testing"

func TestScore(t *testing.T) {
	cases := []struct {
		name              string
		upvotes, comments int
		want              int
	}{
		{"typical", 10, 2, 14},
		{"zero", 0, 0, 0},
		{"upvotes only", 5, 0, 5},
		{"comments weighted double", 0, 3, 6},
		{"negative upvotes clamped", -5, 2, 4},
		{"negative comments clamped", 3, -1, 3},
		{"both negative", -1, -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(tc.upvotes, tc.comments); got != tc.want {
				t.Errorf("Score(%d, %d) = %d, want %d", tc.upvotes, tc.comments, got, tc.want)
			}
		})
	}
}

func TestScoreNonNegative(t *testing.T) {
	for u := -3; u <= 3; u++ {
		for c := -3; c <= 3; c++ {
			if got := Score(u, c); got < 0 {
				t.Fatalf("Score(%d, %d) = %d, want >= 0", u, c, got)
			}
		}
	}
}
