// Package batch handles directory batch conversion commands.
package batch

import (
	"ledgerbridge/statement-csv/cmd/root"
	"ledgerbridge/statement-csv/internal/logging"
	"ledgerbridge/statement-csv/internal/processor"

	"github.com/spf13/cobra"
)

var (
	inputDir  string
	outputDir string
	dialect   string
)

// Cmd represents the batch command.
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch convert all exports in a directory",
	Long: `Convert every .csv export in a directory to the canonical CSV
format. Files that do not match the selected dialect are skipped.`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().StringVar(&inputDir, "input-dir", "", "Directory containing export files")
	Cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for converted files")
	Cmd.Flags().StringVar(&dialect, "dialect", string(processor.PeerTrade), "Dialect to convert (peer-trade or bank-statement)")
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch convert command called")

	if inputDir == "" || outputDir == "" {
		root.Log.Fatal("Both --input-dir and --output-dir are required")
	}

	count, err := processor.BatchConvert(inputDir, outputDir, processor.Type(dialect), root.Log)
	if err != nil {
		root.Log.Fatalf("Error during batch conversion: %v", err)
	}
	root.Log.Info("Batch conversion completed successfully!",
		logging.Field{Key: logging.FieldCount, Value: count})
}
