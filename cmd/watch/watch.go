// Package watch handles the directory watch daemon command.
package watch

import (
	"context"
	"os/signal"
	"syscall"

	"ledgerbridge/statement-csv/cmd/root"
	"ledgerbridge/statement-csv/internal/watcher"

	"github.com/spf13/cobra"
)

var (
	inputDir  string
	outputDir string
)

// Cmd represents the watch command.
var Cmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a directory and convert new exports as they arrive",
	Long: `Run a daemon that watches an input directory and converts every
new .csv export into the output directory, detecting the dialect per file.`,
	Run: watchFunc,
}

func init() {
	Cmd.Flags().StringVar(&inputDir, "input-dir", "", "Directory to watch (defaults to config)")
	Cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for converted files (defaults to config)")
}

func watchFunc(cmd *cobra.Command, args []string) {
	cfg := root.Cfg

	in := cfg.Watch.InputDir
	if inputDir != "" {
		in = inputDir
	}
	out := cfg.Watch.OutputDir
	if outputDir != "" {
		out = outputDir
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := watcher.New(in, out, root.Log)
	if err := w.Run(ctx); err != nil && err != context.Canceled {
		root.Log.Fatalf("Watcher failed: %v", err)
	}
	root.Log.Info("Watcher stopped")
}
