package worker

import (
	"context"
	"log/slog"
	"time"

	"reddit-pulse/internal/ai"
	"reddit-pulse/internal/csvio"
	"reddit-pulse/internal/events"
	"reddit-pulse/internal/pipeline"
	"reddit-pulse/internal/storage"
)

// Analyzer watches the dataset file and keeps the cached analysis current.
// A run only happens when the file's identity (path, size, mtime) has no
// cached result, so unchanged data never triggers recomputation.
type Analyzer struct {
	Store       *storage.RedisStore
	Pipeline    *pipeline.Pipeline
	DatasetPath string
	Interval    time.Duration
	CacheTTL    time.Duration
	Labeler     ai.Labeler        // optional
	Events      *events.Publisher // optional
}

func (w *Analyzer) Start(ctx context.Context) error {
	if w.Interval <= 0 {
		w.Interval = 5 * time.Minute
	}
	if w.CacheTTL <= 0 {
		w.CacheTTL = 7 * 24 * time.Hour
	}

	// initial run
	w.runOnce(ctx)

	t := time.NewTicker(w.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.runOnce(ctx)
		}
	}
}

func (w *Analyzer) runOnce(ctx context.Context) {
	source, err := storage.SourceKey(w.DatasetPath)
	if err != nil {
		slog.Error("analyzer: dataset unavailable", "path", w.DatasetPath, "err", err)
		return
	}
	cached, err := w.Store.GetResult(ctx, source)
	if err != nil {
		slog.Error("analyzer: cache lookup failed", "err", err)
		return
	}
	if cached != nil {
		return
	}

	posts, err := csvio.ReadPosts(w.DatasetPath)
	if err != nil {
		slog.Error("analyzer: read dataset", "path", w.DatasetPath, "err", err)
		return
	}
	res, err := w.Pipeline.Run(ctx, posts)
	if err != nil {
		slog.Error("analyzer: pipeline run failed", "err", err)
		return
	}
	res.Source = source
	if w.Labeler != nil && len(res.Topics) > 0 {
		res.Topics = ai.LabelTopics(ctx, w.Labeler, res.Topics)
	}

	if err := w.Store.SaveResult(ctx, source, res, w.CacheTTL); err != nil {
		slog.Error("analyzer: cache result", "err", err)
		return
	}
	if err := w.Events.RunCompleted(res); err != nil {
		slog.Error("analyzer: publish run event", "err", err)
	}
	slog.Info("analyzer: run completed",
		"run_id", res.RunID,
		"posts", len(res.Enriched),
		"topics", len(res.Topics),
		"days", len(res.Daily),
		"notices", len(res.Notices))
}
