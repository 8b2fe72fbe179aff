// Package engagement folds raw interaction counters into one popularity
// scalar. Comments weigh double: leaving a comment signals deeper
// engagement than a passive upvote.
package engagement

// Score computes upvotes + 2*comments. Negative counters are clamped to
// zero rather than rejected, so the score is always non-negative.
func Score(upvotes, comments int) int {
	if upvotes < 0 {
		upvotes = 0
	}
	if comments < 0 {
		comments = 0
	}
	return upvotes + 2*comments
}
