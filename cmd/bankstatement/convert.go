// Package bankstatement handles bank statement conversion commands.
package bankstatement

import (
	"ledgerbridge/statement-csv/cmd/common"
	"ledgerbridge/statement-csv/cmd/root"
	"ledgerbridge/statement-csv/internal/processor"

	"github.com/spf13/cobra"
)

// Cmd represents the bankstatement command.
var Cmd = &cobra.Command{
	Use:   "bankstatement",
	Short: "Convert a bank statement export to canonical CSV",
	Long: `Convert a semicolon-delimited bank statement export into the
canonical transaction CSV: transaction lines only, deduplicated, sorted by
date and re-encoded to UTF-8.`,
	Run: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Bank statement convert command called")
	root.Log.WithField("input", root.SharedFlags.Input).Info("Input file")
	root.Log.WithField("output", root.SharedFlags.Output).Info("Output file")

	p := processor.GetProcessor(processor.BankStatement)
	common.ProcessFile(p, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Validate, root.Log)
}
