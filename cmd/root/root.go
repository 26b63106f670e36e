// Package root contains the root command for the application.
package root

import (
	"ledgerbridge/statement-csv/internal/common"
	"ledgerbridge/statement-csv/internal/config"
	"ledgerbridge/statement-csv/internal/i18n"
	"ledgerbridge/statement-csv/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by the conversion commands.
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
	Language string
}

var (
	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// SharedFlags are accessible to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "statement-csv",
		Short: "Convert exchange and bank statement exports to Firefly-ready CSV.",
		Long: `statement-csv converts peer-to-peer trade exports and bank statement
exports into a normalized CSV schema for the Firefly III data importer.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to statement-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Invalid configuration: %v", err)
			}
			Cfg = cfg

			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			logging.SetGlobalLogger(Log)
			common.SetLogger(Log)

			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])

			language := cfg.Language
			if SharedFlags.Language != "" {
				language = SharedFlags.Language
			}
			i18n.SetLanguage(language)
			Log.WithField(logging.FieldLanguage, language).Debug("Active locale set")
		},
	}
)

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Language, "lang", "l", "", "Locale for generated descriptions (e.g. en, pt-BR)")
}
