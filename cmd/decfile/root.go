package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hepkit/decfile/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "decfile",
	Short: "decfile compiles and queries particle decay definition files",
	Long: `decfile parses .dec decay-chain definition files into a validated
registry and answers queries against it: decay modes, resolved decay
chains, final states and Mermaid graphs.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a yaml config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// newLogger builds the CLI logger honoring --verbose.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return logging.New(level)
}
