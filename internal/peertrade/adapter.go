package peertrade

import (
	"fmt"

	"ledgerbridge/statement-csv/internal/i18n"
	"ledgerbridge/statement-csv/internal/logging"
)

// Adapter implements the processor.Processor contract for the peer-trade
// dialect. It carries its own localizer so concurrent conversions in
// different locales stay isolated.
type Adapter struct {
	localizer *i18n.Localizer
	logger    logging.Logger
}

// NewAdapter creates a peer-trade processor using the process-wide
// localizer and a default logger.
func NewAdapter() *Adapter {
	return &Adapter{
		localizer: i18n.Default(),
		logger:    logging.GetLogger(),
	}
}

// SetLogger replaces the adapter's logger.
func (a *Adapter) SetLogger(logger logging.Logger) {
	if logger != nil {
		a.logger = logger
	}
}

// SetLocalizer replaces the adapter's localizer.
func (a *Adapter) SetLocalizer(localizer *i18n.Localizer) {
	if localizer != nil {
		a.localizer = localizer
	}
}

// ValidateFormat implements processor.Processor.
func (a *Adapter) ValidateFormat(filePath string) (bool, error) {
	return ValidateFormat(filePath)
}

// ConvertToCSV implements processor.Processor.
func (a *Adapter) ConvertToCSV(inputFile, outputFile string) error {
	rows, err := ParseFileWithOptions(inputFile, a.localizer, a.logger)
	if err != nil {
		return fmt.Errorf("error parsing file: %w", err)
	}
	return WriteToCSV(rows, outputFile)
}
