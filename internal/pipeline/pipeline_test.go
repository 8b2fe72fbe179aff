package pipeline

import (
	"context"
	"testing"
	"time"

	"reddit-pulse/internal/model"
	"reddit-pulse/internal/sentiment"
)

func strptr(s string) *string { return &s }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustNew(t *testing.T, cfg Config) *Pipeline {
	t.Helper()
	if cfg.SentimentStrategy == "" {
		cfg.SentimentStrategy = sentiment.StrategyLexicon
	}
	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func TestNewValidation(t *testing.T) {
	if _, err := New(Config{SentimentStrategy: "vibes"}); err == nil {
		t.Error("expected error for unknown sentiment strategy")
	}
	if _, err := New(Config{SentimentStrategy: sentiment.StrategyLexicon, EnableTopics: true}); err == nil {
		t.Error("expected error for topics enabled with zero topic count")
	}
	if _, err := New(Config{SentimentStrategy: sentiment.StrategyLexicon, DenseRange: true}); err == nil {
		t.Error("expected error for dense range without a date range")
	}
}

func TestRunEnrichment(t *testing.T) {
	posts := []model.Post{
		{
			Subreddit: "technology",
			Title:     "Great news for AI!!",
			Content:   strptr("This is really good stuff"),
			Upvotes:   10,
			Comments:  2,
			Created:   time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			Subreddit: "technology",
			Title:     "Empty body post",
			Created:   time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC),
		},
		{
			Subreddit: "technology",
			Title:     "No date here",
			Content:   strptr("whatever"),
			Upvotes:   3,
			Comments:  1,
		},
	}
	p := mustNew(t, Config{})
	res, err := p.Run(context.Background(), posts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(res.Enriched) != 3 {
		t.Fatalf("got %d enriched records, want 3", len(res.Enriched))
	}
	first := res.Enriched[0]
	if first.CleanTitle != "great news for ai" {
		t.Errorf("clean title = %q", first.CleanTitle)
	}
	if first.CleanContent != "this is really good stuff" {
		t.Errorf("clean content = %q", first.CleanContent)
	}
	if first.Sentiment <= 0 {
		t.Errorf("positive content scored %v", first.Sentiment)
	}
	if first.Popularity != 14 {
		t.Errorf("popularity = %d, want 14", first.Popularity)
	}
	second := res.Enriched[1]
	if second.CleanContent != "" || second.Sentiment != 0 || second.Popularity != 0 {
		t.Errorf("nil-content record enriched as %+v", second)
	}

	// The undated record is reported and excluded from daily buckets, but
	// the dated empty-content record still counts toward its day.
	if !res.HasNotice(model.NoticeInvalidDate) {
		t.Error("missing invalid date notice")
	}
	if len(res.Daily) != 1 {
		t.Fatalf("got %d daily stats, want 1", len(res.Daily))
	}
	if res.Daily[0].PostCount != 2 {
		t.Errorf("daily post count = %d, want 2", res.Daily[0].PostCount)
	}
	if res.RunID == "" {
		t.Error("run id not set")
	}
}

func TestRunEmptyBatch(t *testing.T) {
	p := mustNew(t, Config{})
	res, err := p.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.HasNotice(model.NoticeEmptyBatch) {
		t.Error("missing empty batch notice")
	}
	if len(res.Enriched) != 0 || len(res.Daily) != 0 || len(res.Topics) != 0 {
		t.Errorf("empty batch produced non-empty collections: %+v", res)
	}
	if len(res.TopPositive) != 0 || len(res.TopNegative) != 0 {
		t.Errorf("empty batch produced sentiment views")
	}
}

func TestRunDegenerateTopicsIsNotice(t *testing.T) {
	posts := []model.Post{
		{Subreddit: "tech", Title: "one", Content: strptr("solitary words here"), Created: date(2024, 1, 1)},
		{Subreddit: "tech", Title: "two", Created: date(2024, 1, 2)},
	}
	p := mustNew(t, Config{EnableTopics: true, TopicCount: 2})
	res, err := p.Run(context.Background(), posts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.HasNotice(model.NoticeDegenerateCorpus) {
		t.Error("missing degenerate corpus notice")
	}
	if len(res.Topics) != 0 {
		t.Errorf("degenerate corpus produced topics: %+v", res.Topics)
	}
	// The rest of the run is unaffected.
	if len(res.Enriched) != 2 || len(res.Daily) != 2 {
		t.Errorf("degenerate topics disturbed other outputs: %d enriched, %d daily",
			len(res.Enriched), len(res.Daily))
	}
}

func TestRunTopics(t *testing.T) {
	bodies := []string{
		"pasta sauce tomato basil",
		"pasta sauce tomato garlic",
		"pasta basil garlic olive",
		"sauce tomato basil olive",
		"compiler parser lexer tokens",
		"compiler parser syntax tokens",
		"compiler lexer syntax errors",
		"parser lexer tokens errors",
	}
	posts := make([]model.Post, len(bodies))
	for i, b := range bodies {
		posts[i] = model.Post{Subreddit: "tech", Title: "t", Content: strptr(b), Created: date(2024, 1, 1)}
	}
	p := mustNew(t, Config{EnableTopics: true, TopicCount: 2, TopicTerms: 4})
	res, err := p.Run(context.Background(), posts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Topics) != 2 {
		t.Fatalf("got %d topics, want 2", len(res.Topics))
	}
	for i, topic := range res.Topics {
		if topic.Index != i || len(topic.TopTerms) != 4 {
			t.Errorf("topic %d malformed: %+v", i, topic)
		}
	}
}

func TestRunSentimentViews(t *testing.T) {
	posts := []model.Post{
		{Subreddit: "tech", Title: "a", Content: strptr("great"), Created: date(2024, 1, 1)},
		{Subreddit: "tech", Title: "b", Content: strptr("terrible"), Created: date(2024, 1, 1)},
		{Subreddit: "tech", Title: "c", Content: strptr("good"), Created: date(2024, 1, 1)},
		{Subreddit: "tech", Title: "d", Content: strptr("bad"), Created: date(2024, 1, 1)},
	}
	p := mustNew(t, Config{TopN: 2})
	res, err := p.Run(context.Background(), posts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.TopPositive) != 2 || len(res.TopNegative) != 2 {
		t.Fatalf("view sizes: %d positive, %d negative, want 2 each",
			len(res.TopPositive), len(res.TopNegative))
	}
	if res.TopPositive[0].Title != "a" || res.TopPositive[1].Title != "c" {
		t.Errorf("top positive order: %q, %q", res.TopPositive[0].Title, res.TopPositive[1].Title)
	}
	if res.TopNegative[0].Title != "b" || res.TopNegative[1].Title != "d" {
		t.Errorf("top negative order: %q, %q", res.TopNegative[0].Title, res.TopNegative[1].Title)
	}
}

func TestRunSentimentViewsStableTies(t *testing.T) {
	posts := make([]model.Post, 5)
	for i := range posts {
		posts[i] = model.Post{
			Subreddit: "tech",
			Title:     string(rune('a' + i)),
			Created:   date(2024, 1, 1),
		}
	}
	p := mustNew(t, Config{TopN: 3})
	res, err := p.Run(context.Background(), posts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Every record scores zero, so both views keep input order.
	for i, want := range []string{"a", "b", "c"} {
		if res.TopPositive[i].Title != want {
			t.Errorf("top positive[%d] = %q, want %q", i, res.TopPositive[i].Title, want)
		}
		if res.TopNegative[i].Title != want {
			t.Errorf("top negative[%d] = %q, want %q", i, res.TopNegative[i].Title, want)
		}
	}
}

func TestRunSubredditFilter(t *testing.T) {
	posts := []model.Post{
		{Subreddit: "Technology", Title: "keep", Created: date(2024, 1, 1)},
		{Subreddit: "gaming", Title: "drop", Created: date(2024, 1, 1)},
	}
	p := mustNew(t, Config{Subreddits: []string{"technology"}})
	res, err := p.Run(context.Background(), posts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Enriched) != 1 || res.Enriched[0].Title != "keep" {
		t.Fatalf("subreddit filter kept %+v", res.Enriched)
	}
}

func TestRunDateRangeFilter(t *testing.T) {
	posts := []model.Post{
		{Subreddit: "tech", Title: "before", Created: date(2023, 12, 31)},
		{Subreddit: "tech", Title: "inside", Created: time.Date(2024, 1, 2, 23, 59, 0, 0, time.UTC)},
		{Subreddit: "tech", Title: "after", Created: date(2024, 1, 4)},
		{Subreddit: "tech", Title: "undated"},
	}
	rng := &model.DateRange{From: date(2024, 1, 1), To: date(2024, 1, 3)}
	p := mustNew(t, Config{DateRange: rng})
	res, err := p.Run(context.Background(), posts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Enriched) != 1 || res.Enriched[0].Title != "inside" {
		t.Fatalf("date filter kept %+v", res.Enriched)
	}
}

func TestRunDenseRange(t *testing.T) {
	posts := []model.Post{
		{Subreddit: "tech", Title: "a", Created: date(2024, 1, 1)},
	}
	rng := &model.DateRange{From: date(2024, 1, 1), To: date(2024, 1, 3)}
	p := mustNew(t, Config{DateRange: rng, DenseRange: true})
	res, err := p.Run(context.Background(), posts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Daily) != 3 {
		t.Fatalf("got %d daily stats, want 3 dense days", len(res.Daily))
	}
	if res.Daily[0].PostCount != 1 || res.Daily[1].PostCount != 0 || res.Daily[2].PostCount != 0 {
		t.Errorf("dense counts = %d, %d, %d",
			res.Daily[0].PostCount, res.Daily[1].PostCount, res.Daily[2].PostCount)
	}
}

func TestRunParallelismMatchesSequentialOrder(t *testing.T) {
	posts := make([]model.Post, 100)
	for i := range posts {
		posts[i] = model.Post{
			Subreddit: "tech",
			Title:     "post",
			Content:   strptr("good"),
			Upvotes:   i,
			Created:   date(2024, 1, 1),
		}
	}
	p := mustNew(t, Config{Workers: 8})
	res, err := p.Run(context.Background(), posts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, e := range res.Enriched {
		if e.Upvotes != i {
			t.Fatalf("record %d out of order: upvotes %d", i, e.Upvotes)
		}
	}
}
