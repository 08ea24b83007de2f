package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "meetscribe",
	Short: "Automated meeting note-taker for Zoom and Google Meet",
	Long: `meetscribe joins online meetings with a headless browser, captures live
captions, and turns them into structured markdown notes.

Start the server with "meetscribe serve", then dispatch the bot with
"meetscribe join <link>" and fetch the result with "meetscribe notes <id>".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(notesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
