// Package common contains shared functionality for command handlers.
package common

import (
	"ledgerbridge/statement-csv/internal/logging"
	"ledgerbridge/statement-csv/internal/processor"
)

// ProcessFile converts a single file using the given processor.
func ProcessFile(p processor.Processor, inputFile, outputFile string, validate bool, log logging.Logger) {
	p.SetLogger(log)

	if inputFile == "" || outputFile == "" {
		log.Fatal("Both --input and --output are required")
	}

	if validate {
		log.Info("Validating format...")
		valid, err := p.ValidateFormat(inputFile)
		if err != nil {
			log.Fatalf("Error validating file: %v", err)
		}
		if !valid {
			log.Fatal("The file is not in a valid format")
		}
		log.Info("Validation successful.")
	}

	if err := p.ConvertToCSV(inputFile, outputFile); err != nil {
		log.Fatalf("Error converting to CSV: %v", err)
	}
	log.Info("Conversion completed successfully!")
}
