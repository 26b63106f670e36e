// Package serve handles the upload server command.
package serve

import (
	"ledgerbridge/statement-csv/cmd/root"
	"ledgerbridge/statement-csv/internal/forwarder"
	"ledgerbridge/statement-csv/internal/server"

	"github.com/spf13/cobra"
)

var port int

// Cmd represents the serve command.
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the upload and forwarding server",
	Long: `Run the HTTP server that accepts statement uploads, converts them
and forwards the result to a Firefly III data importer.`,
	Run: serveFunc,
}

func init() {
	Cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (defaults to config)")
}

func serveFunc(cmd *cobra.Command, args []string) {
	cfg := root.Cfg

	listenPort := cfg.Server.Port
	if port != 0 {
		listenPort = port
	}

	fw := forwarder.New(nil, root.Log)
	srv := server.New(cfg.Server.UploadDir, cfg.Language, fw, root.Log)

	if err := srv.ListenAndServe(listenPort); err != nil {
		root.Log.Fatalf("Server failed: %v", err)
	}
}
