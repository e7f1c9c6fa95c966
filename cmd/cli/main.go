package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"production-plan/internal/logger"
)

func newRootCmd() *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:           "productionplan",
		Short:         "Compute unit commitment plans from payload files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetLevel(level)
		},
	}
	root.PersistentFlags().StringVar(&level, "log-level", "warn", "log level (debug, info, warn, error)")
	root.AddCommand(newPlanCmd(), newMeritOrderCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
