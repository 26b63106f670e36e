// Package detect handles the dialect detection command.
package detect

import (
	"fmt"

	"ledgerbridge/statement-csv/cmd/root"
	"ledgerbridge/statement-csv/internal/processor"

	"github.com/spf13/cobra"
)

// Cmd represents the detect command.
var Cmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect which dialect an export file is in",
	Long: `Inspect the first lines of an export file and print the dialect
tag that applies. Unrecognized input falls back to the peer-trade dialect.`,
	Run: detectFunc,
}

func detectFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("--input is required")
	}

	dialect, err := processor.DetectFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error detecting dialect: %v", err)
	}
	fmt.Println(string(dialect))
}
