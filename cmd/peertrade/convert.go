// Package peertrade handles peer-trade export conversion commands.
package peertrade

import (
	"ledgerbridge/statement-csv/cmd/common"
	"ledgerbridge/statement-csv/cmd/root"
	"ledgerbridge/statement-csv/internal/processor"

	"github.com/spf13/cobra"
)

// Cmd represents the peertrade command.
var Cmd = &cobra.Command{
	Use:   "peertrade",
	Short: "Convert a peer-to-peer trade export to canonical CSV",
	Long: `Convert a peer-to-peer trade order export into the canonical
transaction CSV, including synthetic fee rows for orders with a taker fee.`,
	Run: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Peer-trade convert command called")
	root.Log.WithField("input", root.SharedFlags.Input).Info("Input file")
	root.Log.WithField("output", root.SharedFlags.Output).Info("Output file")

	p := processor.GetProcessor(processor.PeerTrade)
	common.ProcessFile(p, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Validate, root.Log)
}
