// Package pipeline composes normalization, scoring, topic modeling, and
// daily aggregation over one bounded batch of posts. A run owns its inputs
// and returns an immutable result bundle; nothing is shared across runs.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"reddit-pulse/internal/engagement"
	"reddit-pulse/internal/model"
	"reddit-pulse/internal/sentiment"
	"reddit-pulse/internal/textnorm"
	"reddit-pulse/internal/timeseries"
	"reddit-pulse/internal/topics"
)

// Config is the run-scoped configuration. The sentiment strategy is chosen
// once per run, never per record.
type Config struct {
	SentimentStrategy sentiment.Strategy
	EnableTopics      bool
	TopicCount        int
	TopicTerms        int
	TopicSeed         int64
	TopicIterations   int
	DateRange         *model.DateRange
	Subreddits        []string
	TopN              int // size of the top/bottom sentiment views
	DenseRange        bool
	Workers           int // per-record enrichment parallelism
}

// Pipeline runs batches under one fixed configuration.
type Pipeline struct {
	scorer sentiment.Scorer
	cfg    Config
}

// New validates the configuration and resolves the sentiment strategy.
func New(cfg Config) (*Pipeline, error) {
	scorer, err := sentiment.ForStrategy(cfg.SentimentStrategy)
	if err != nil {
		return nil, err
	}
	if cfg.EnableTopics && cfg.TopicCount < 1 {
		return nil, fmt.Errorf("topic count must be >= 1, got %d", cfg.TopicCount)
	}
	if cfg.TopN <= 0 {
		cfg.TopN = 3
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.DenseRange && cfg.DateRange == nil {
		return nil, errors.New("dense-range aggregation requires an explicit date range")
	}
	return &Pipeline{scorer: scorer, cfg: cfg}, nil
}

// Run processes one batch: filter, per-record enrichment (parallel), then
// the two corpus-level reductions. An empty batch yields empty collections
// and a notice, never an error; a degenerate topic corpus yields an empty
// topic list and a notice.
func (p *Pipeline) Run(ctx context.Context, posts []model.Post) (*model.Result, error) {
	res := &model.Result{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Enriched:    []model.EnrichedPost{},
		Topics:      []model.Topic{},
		Daily:       []model.DailyStat{},
		TopPositive: []model.EnrichedPost{},
		TopNegative: []model.EnrichedPost{},
	}

	filtered := p.filter(posts)
	if len(filtered) == 0 {
		res.Notices = append(res.Notices, model.Notice{Kind: model.NoticeEmptyBatch})
		return res, nil
	}

	enriched := p.enrich(ctx, filtered)
	res.Enriched = enriched

	undated := 0
	for _, e := range enriched {
		if !e.HasDate() {
			undated++
		}
	}
	if undated > 0 {
		res.Notices = append(res.Notices, model.Notice{
			Kind:   model.NoticeInvalidDate,
			Detail: "records without a parsable date were excluded from daily aggregation",
			Count:  undated,
		})
	}

	// The two corpus-level reductions are independent; run them
	// concurrently once all per-record work has finished.
	var (
		wg       sync.WaitGroup
		topicErr error
	)
	if p.cfg.EnableTopics {
		wg.Add(1)
		go func() {
			defer wg.Done()
			corpus := make([]string, 0, len(enriched))
			for _, e := range enriched {
				if e.CleanContent != "" {
					corpus = append(corpus, e.CleanContent)
				}
			}
			fitted, err := topics.Fit(corpus, p.cfg.TopicCount, topics.Options{
				TopTerms:   p.cfg.TopicTerms,
				Seed:       p.cfg.TopicSeed,
				Iterations: p.cfg.TopicIterations,
			})
			if err != nil {
				topicErr = err
				return
			}
			res.Topics = fitted
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		if p.cfg.DenseRange {
			res.Daily = timeseries.AggregateDense(enriched, p.cfg.DateRange.From, p.cfg.DateRange.To)
		} else {
			res.Daily = timeseries.Aggregate(enriched)
		}
	}()
	wg.Wait()

	if topicErr != nil {
		if !errors.Is(topicErr, topics.ErrDegenerateCorpus) {
			return nil, fmt.Errorf("topic modeling: %w", topicErr)
		}
		res.Notices = append(res.Notices, model.Notice{
			Kind:   model.NoticeDegenerateCorpus,
			Detail: topicErr.Error(),
		})
	}

	res.TopPositive, res.TopNegative = extremes(enriched, p.cfg.TopN)
	return res, nil
}

// filter applies the subreddit and date-range selection. Records without a
// parsable date cannot be evaluated against a date range and are dropped
// when one is configured.
func (p *Pipeline) filter(posts []model.Post) []model.Post {
	var subs map[string]struct{}
	if len(p.cfg.Subreddits) > 0 {
		subs = make(map[string]struct{}, len(p.cfg.Subreddits))
		for _, s := range p.cfg.Subreddits {
			subs[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
		}
	}
	out := make([]model.Post, 0, len(posts))
	for _, post := range posts {
		if subs != nil {
			if _, ok := subs[strings.ToLower(post.Subreddit)]; !ok {
				continue
			}
		}
		if r := p.cfg.DateRange; r != nil {
			if !post.HasDate() {
				continue
			}
			d := post.Created.UTC()
			if d.Before(dayStart(r.From)) || !d.Before(dayStart(r.To).AddDate(0, 0, 1)) {
				continue
			}
		}
		out = append(out, post)
	}
	return out
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// enrich fans per-record work out over a bounded worker pool. Each record's
// enrichment is a pure function of its own fields, so workers share no
// mutable state and output order matches input order.
func (p *Pipeline) enrich(ctx context.Context, posts []model.Post) []model.EnrichedPost {
	out := make([]model.EnrichedPost, len(posts))
	workers := p.cfg.Workers
	if workers > len(posts) {
		workers = len(posts)
	}
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = p.enrichOne(posts[i])
			}
		}()
	}
	for i := range posts {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return out
}

func (p *Pipeline) enrichOne(post model.Post) model.EnrichedPost {
	cleanContent := textnorm.NormalizeNullable(post.Content)
	return model.EnrichedPost{
		Post:         post,
		CleanTitle:   textnorm.Normalize(post.Title),
		CleanContent: cleanContent,
		Sentiment:    p.scorer.Score(cleanContent),
		Popularity:   engagement.Score(post.Upvotes, post.Comments),
	}
}

// extremes returns the top-N most positive and most negative records by
// sentiment. Equal scores keep their original input order.
func extremes(enriched []model.EnrichedPost, n int) (top, bottom []model.EnrichedPost) {
	if n > len(enriched) {
		n = len(enriched)
	}
	top = make([]model.EnrichedPost, len(enriched))
	copy(top, enriched)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Sentiment > top[j].Sentiment })

	bottom = make([]model.EnrichedPost, len(enriched))
	copy(bottom, enriched)
	sort.SliceStable(bottom, func(i, j int) bool { return bottom[i].Sentiment < bottom[j].Sentiment })

	return top[:n], bottom[:n]
}
