// Command bracelet searches for 52-card deck orders whose suit and value
// predicates all read as cyclic de Bruijn-like codes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bracelet",
	Short: "bracelet sequence search for playing-card decks",
	Long: `bracelet builds deck orders of a standard 52-card pack in which a whole
family of binary card predicates (suit colors, odd values, value ranges)
each trace out a cyclic sequence whose 6-card windows are all distinct.

The pipeline has three stages:

  gen     enumerate primitive bracelet sequences into cache files
  search  combine cached primitives into candidate axis bundles
  decks   realize candidate bundles into scored deck orders`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(genCmd, searchCmd, decksCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
