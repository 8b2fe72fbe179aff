package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"reddit-pulse/internal/ai"
	"reddit-pulse/internal/csvio"
	"reddit-pulse/internal/model"
	"reddit-pulse/internal/pipeline"
	"reddit-pulse/internal/report"
	"reddit-pulse/internal/sentiment"

	"github.com/spf13/cobra"
)

var (
	analyzeInput      string
	analyzeOutput     string
	analyzeReportPath string
	analyzeStrategy   string
	analyzeTopics     bool
	analyzeTopicCount int
	analyzeSubreddits []string
	analyzeFrom       string
	analyzeTo         string
	analyzeDense      bool
	analyzeTopN       int
)

// analyzeCmd runs the pipeline once over a post file and writes the
// enriched batch plus a markdown report.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the analytics pipeline over a post file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		input := analyzeInput
		if input == "" {
			input = cfg.Dataset.Path
		}

		pcfg := pipeline.Config{
			SentimentStrategy: sentiment.Strategy(cfg.Analytics.SentimentStrategy),
			EnableTopics:      cfg.Analytics.EnableTopics,
			TopicCount:        cfg.Analytics.TopicCount,
			TopicTerms:        cfg.Analytics.TopicTerms,
			TopicSeed:         cfg.Analytics.TopicSeed,
			TopicIterations:   cfg.Analytics.TopicIterations,
			Subreddits:        cfg.Analytics.Subreddits,
			TopN:              cfg.Analytics.TopN,
			Workers:           cfg.Analytics.Workers,
		}
		if cmd.Flags().Changed("strategy") {
			pcfg.SentimentStrategy = sentiment.Strategy(analyzeStrategy)
		}
		if cmd.Flags().Changed("topics") {
			pcfg.EnableTopics = analyzeTopics
		}
		if cmd.Flags().Changed("topic-count") {
			pcfg.TopicCount = analyzeTopicCount
		}
		if cmd.Flags().Changed("subreddits") {
			pcfg.Subreddits = analyzeSubreddits
		}
		if cmd.Flags().Changed("top-n") {
			pcfg.TopN = analyzeTopN
		}
		if analyzeFrom != "" || analyzeTo != "" {
			if analyzeFrom == "" || analyzeTo == "" {
				return fmt.Errorf("both --from and --to are required for a date range")
			}
			from, err := time.Parse(time.DateOnly, analyzeFrom)
			if err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
			to, err := time.Parse(time.DateOnly, analyzeTo)
			if err != nil {
				return fmt.Errorf("invalid --to: %w", err)
			}
			pcfg.DateRange = &model.DateRange{From: from, To: to}
		}
		pcfg.DenseRange = analyzeDense || (cfg.Analytics.DenseRange && pcfg.DateRange != nil)

		p, err := pipeline.New(pcfg)
		if err != nil {
			return err
		}
		posts, err := csvio.ReadPosts(input)
		if err != nil {
			return err
		}

		ctx := context.Background()
		res, err := p.Run(ctx, posts)
		if err != nil {
			return err
		}
		res.Source = input

		if cfg.OpenAI.APIKey != "" && len(res.Topics) > 0 {
			labeler := ai.NewOpenAI(ai.Config{APIKey: cfg.OpenAI.APIKey, Model: cfg.OpenAI.Model, BaseURL: cfg.OpenAI.BaseURL})
			res.Topics = ai.LabelTopics(ctx, labeler, res.Topics)
		}

		if analyzeOutput != "" {
			if err := csvio.WriteEnriched(analyzeOutput, res.Enriched); err != nil {
				return fmt.Errorf("write enriched file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d enriched posts to %s\n", len(res.Enriched), analyzeOutput)
		}

		md, err := report.Render(res)
		if err != nil {
			return err
		}
		if analyzeReportPath != "" {
			if err := os.WriteFile(analyzeReportPath, []byte(md), 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote report to %s\n", analyzeReportPath)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "post file to analyze (default: dataset.path from config)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "optional path for the enriched CSV")
	analyzeCmd.Flags().StringVar(&analyzeReportPath, "report", "", "optional path for the markdown report (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeStrategy, "strategy", "", "sentiment strategy: lexicon or statistical")
	analyzeCmd.Flags().BoolVar(&analyzeTopics, "topics", false, "enable topic modeling")
	analyzeCmd.Flags().IntVar(&analyzeTopicCount, "topic-count", 0, "number of topics to fit")
	analyzeCmd.Flags().StringSliceVar(&analyzeSubreddits, "subreddits", nil, "restrict analysis to these subreddits")
	analyzeCmd.Flags().StringVar(&analyzeFrom, "from", "", "start date (YYYY-MM-DD)")
	analyzeCmd.Flags().StringVar(&analyzeTo, "to", "", "end date (YYYY-MM-DD)")
	analyzeCmd.Flags().BoolVar(&analyzeDense, "dense", false, "emit one daily stat per day in the date range, zero-filled")
	analyzeCmd.Flags().IntVar(&analyzeTopN, "top-n", 0, "size of the top/bottom sentiment views")
}
