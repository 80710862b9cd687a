package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/enetx/store/internal/logging"
)

var (
	verbose bool
	logger  = logging.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "todos",
	Short: "Replay to-do and goal actions through an observable store",
	Long: `todos dispatches a sequence of actions to a store and prints the state
after every dispatch. Without a scenario file the built-in sample is used.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.New(logging.Level(verbose))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}
