// Package timeseries buckets enriched posts by calendar day and computes
// per-bucket summary statistics.
package timeseries

import (
	"sort"
	"time"

	"reddit-pulse/internal/model"
)

// day truncates a timestamp to its UTC calendar date.
func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Aggregate groups records by the calendar date of Created (time of day
// discarded) and returns one DailyStat per distinct date, ascending.
// Records without a usable date are skipped; the pipeline reports those
// separately.
func Aggregate(records []model.EnrichedPost) []model.DailyStat {
	type bucket struct {
		sum   float64
		count int
	}
	buckets := make(map[time.Time]*bucket)
	for _, r := range records {
		if !r.HasDate() {
			continue
		}
		d := day(r.Created)
		b, ok := buckets[d]
		if !ok {
			b = &bucket{}
			buckets[d] = b
		}
		b.sum += r.Sentiment
		b.count++
	}
	out := make([]model.DailyStat, 0, len(buckets))
	for d, b := range buckets {
		out = append(out, model.DailyStat{
			Date:          d,
			MeanSentiment: b.sum / float64(b.count),
			PostCount:     b.count,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// AggregateDense is like Aggregate but emits one DailyStat for every
// calendar day in the closed [from, to] interval, with zero count and
// zero mean sentiment for days absent from the input. Callers that need
// continuous time-series output request this mode explicitly.
func AggregateDense(records []model.EnrichedPost, from, to time.Time) []model.DailyStat {
	sparse := Aggregate(records)
	byDate := make(map[time.Time]model.DailyStat, len(sparse))
	for _, s := range sparse {
		byDate[s.Date] = s
	}
	start, end := day(from), day(to)
	if end.Before(start) {
		start, end = end, start
	}
	var out []model.DailyStat
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if s, ok := byDate[d]; ok {
			out = append(out, s)
		} else {
			out = append(out, model.DailyStat{Date: d})
		}
	}
	return out
}
