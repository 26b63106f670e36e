package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ledgerbridge/statement-csv/cmd/bankstatement"
	"ledgerbridge/statement-csv/cmd/batch"
	"ledgerbridge/statement-csv/cmd/detect"
	"ledgerbridge/statement-csv/cmd/peertrade"
	"ledgerbridge/statement-csv/cmd/root"
	"ledgerbridge/statement-csv/cmd/serve"
	"ledgerbridge/statement-csv/cmd/watch"
	"ledgerbridge/statement-csv/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables silently first (no logging yet), then
	// fix the global log level before any logger is created.
	loadEnvSilently()
	logging.SetAllLogLevels(configureLogLevel())

	root.Init()

	root.Cmd.AddCommand(peertrade.Cmd)
	root.Cmd.AddCommand(bankstatement.Cmd)
	root.Cmd.AddCommand(detect.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
	root.Cmd.AddCommand(watch.Cmd)
}

// loadEnvSilently loads environment variables without logging anything.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevel parses LOG_LEVEL before logging is wired up.
func configureLogLevel() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
