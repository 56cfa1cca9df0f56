// Package main provides the entry point for the cosmic-resume wizard and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "cosmic-resume",
	Short: "Build a resume step by step in the terminal",
	Long: `cosmic-resume walks through four steps (Personal, Skills, Experience,
Education) while a live preview follows every edit. Summaries and job
descriptions can be rewritten with Gemini, and the result exports to PDF.

Run without arguments to start the interactive wizard.`,
	SilenceUsage: true,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var logger = zap.NewNop()
