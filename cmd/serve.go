package cmd

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reddit-pulse/internal/ai"
	"reddit-pulse/internal/events"
	"reddit-pulse/internal/pipeline"
	"reddit-pulse/internal/redisclient"
	"reddit-pulse/internal/sentiment"
	"reddit-pulse/internal/server"
	"reddit-pulse/internal/storage"
	"reddit-pulse/worker"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analyzer worker and the results API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := storage.NewRedisStore(rdb)

		p, err := pipeline.New(pipeline.Config{
			SentimentStrategy: sentiment.Strategy(cfg.Analytics.SentimentStrategy),
			EnableTopics:      cfg.Analytics.EnableTopics,
			TopicCount:        cfg.Analytics.TopicCount,
			TopicTerms:        cfg.Analytics.TopicTerms,
			TopicSeed:         cfg.Analytics.TopicSeed,
			TopicIterations:   cfg.Analytics.TopicIterations,
			Subreddits:        cfg.Analytics.Subreddits,
			TopN:              cfg.Analytics.TopN,
			Workers:           cfg.Analytics.Workers,
		})
		if err != nil {
			return err
		}

		interval, err := time.ParseDuration(cfg.Dataset.RefreshInterval)
		if err != nil {
			return err
		}
		cacheTTL, err := time.ParseDuration(cfg.Dataset.CacheTTL)
		if err != nil {
			return err
		}

		var labeler ai.Labeler
		if cfg.OpenAI.APIKey != "" {
			labeler = ai.NewOpenAI(ai.Config{APIKey: cfg.OpenAI.APIKey, Model: cfg.OpenAI.Model, BaseURL: cfg.OpenAI.BaseURL})
		}

		var publisher *events.Publisher
		if cfg.NATS.URL != "" {
			nc, err := nats.Connect(cfg.NATS.URL)
			if err != nil {
				return err
			}
			defer nc.Close()
			publisher = events.NewPublisher(nc, cfg.NATS.Subject)
		}

		analyzer := &worker.Analyzer{
			Store:       store,
			Pipeline:    p,
			DatasetPath: cfg.Dataset.Path,
			Interval:    interval,
			CacheTTL:    cacheTTL,
			Labeler:     labeler,
			Events:      publisher,
		}

		srv, err := server.New(cfg.Server, store)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Signal handling for systemd
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			s := <-sigc
			log.Printf("received signal: %s, shutting down", s)
			cancel()
		}()

		go func() {
			slog.Info("starting results API", "addr", cfg.Server.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				slog.Error("results API failed", "err", err)
				cancel()
			}
		}()

		slog.Info("starting dataset analyzer", "path", cfg.Dataset.Path, "interval", interval)
		mgr := worker.NewManager(analyzer)
		err = mgr.Start(ctx)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if serr := srv.Shutdown(shutdownCtx); serr != nil {
			slog.Error("server shutdown", "err", serr)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
