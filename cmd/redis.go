package cmd

import "github.com/spf13/cobra"

// redisCmd groups cache-related subcommands.
var redisCmd = &cobra.Command{
	Use:   "redis",
	Short: "Result cache utilities",
}

func init() {
	rootCmd.AddCommand(redisCmd)
}
