package cmd

import (
	"context"
	"fmt"
	"time"

	"reddit-pulse/internal/redisclient"
	"reddit-pulse/internal/storage"

	"github.com/spf13/cobra"
)

var invalidateKey string

// invalidateCmd drops the cached result for a dataset so the next analyzer
// pass recomputes it.
var invalidateCmd = &cobra.Command{
	Use:   "invalidate [dataset-path]",
	Short: "Invalidate the cached analysis for a dataset",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		source := invalidateKey
		if source == "" {
			path := cfg.Dataset.Path
			if len(args) == 1 {
				path = args[0]
			}
			key, err := storage.SourceKey(path)
			if err != nil {
				return err
			}
			source = key
		}

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := storage.NewRedisStore(rdb)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := store.Invalidate(ctx, source); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Invalidated: %s\n", source)
		return nil
	},
}

func init() {
	redisCmd.AddCommand(invalidateCmd)
	invalidateCmd.Flags().StringVar(&invalidateKey, "key", "", "raw source key to invalidate (bypasses file identity lookup)")
}
