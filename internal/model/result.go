package model

import "time"

// NoticeKind identifies a non-fatal condition attached to a run.
type NoticeKind string

const (
	// NoticeInvalidDate counts records whose created timestamp failed to
	// parse; they are excluded from daily aggregation but still scored.
	NoticeInvalidDate NoticeKind = "invalid_date"
	// NoticeDegenerateCorpus means topic modeling preconditions were unmet
	// and the run returned an empty topic list.
	NoticeDegenerateCorpus NoticeKind = "degenerate_corpus"
	// NoticeEmptyBatch means the run received zero input records.
	NoticeEmptyBatch NoticeKind = "empty_batch"
)

// Notice is a structured condition reported alongside a run's output.
type Notice struct {
	Kind   NoticeKind `json:"kind"`
	Detail string     `json:"detail,omitempty"`
	Count  int        `json:"count,omitempty"`
}

// Result is the immutable output bundle of one pipeline run. It is safe to
// read from multiple consumers concurrently; nothing mutates it after the
// run returns.
type Result struct {
	RunID       string         `json:"run_id"`
	Source      string         `json:"source,omitempty"`
	GeneratedAt time.Time      `json:"generated_at"`
	Enriched    []EnrichedPost `json:"enriched"`
	Topics      []Topic        `json:"topics"`
	Daily       []DailyStat    `json:"daily"`
	TopPositive []EnrichedPost `json:"top_positive"`
	TopNegative []EnrichedPost `json:"top_negative"`
	Notices     []Notice       `json:"notices,omitempty"`
}

// HasNotice reports whether the run recorded a notice of the given kind.
func (r *Result) HasNotice(kind NoticeKind) bool {
	for _, n := range r.Notices {
		if n.Kind == kind {
			return true
		}
	}
	return false
}
