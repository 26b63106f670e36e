package bankstatement

import (
	"fmt"

	"ledgerbridge/statement-csv/internal/logging"
)

// Adapter implements the processor.Processor contract for the
// bank-statement dialect.
type Adapter struct {
	logger logging.Logger
}

// NewAdapter creates a bank-statement processor with a default logger.
func NewAdapter() *Adapter {
	return &Adapter{logger: logging.GetLogger()}
}

// SetLogger replaces the adapter's logger.
func (a *Adapter) SetLogger(logger logging.Logger) {
	if logger != nil {
		a.logger = logger
	}
}

// ValidateFormat implements processor.Processor.
func (a *Adapter) ValidateFormat(filePath string) (bool, error) {
	return ValidateFormat(filePath)
}

// ConvertToCSV implements processor.Processor.
func (a *Adapter) ConvertToCSV(inputFile, outputFile string) error {
	rows, err := ParseFileWithLogger(inputFile, a.logger)
	if err != nil {
		return fmt.Errorf("error parsing file: %w", err)
	}
	return WriteToCSV(rows, outputFile)
}
