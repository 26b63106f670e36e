// Package common provides the CSV serialization shared by the dialect
// processors. All output goes through WriteRowsToCSV so every processor
// emits the same quoting, delimiter and header behavior.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"ledgerbridge/statement-csv/internal/logging"

	"github.com/gocarina/gocsv"
)

var log = logging.GetLogger()

// Delimiter is the output CSV delimiter. The canonical output contract is
// comma-separated; it is configurable for downstream importers that expect
// something else.
var Delimiter rune = ','

// SetDelimiter sets the delimiter used for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger replaces the package logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// WriteRowsToCSV writes canonical rows to a UTF-8 CSV file with a header
// row. The column order is fixed by the row struct's csv tags, not by the
// input. TRow is one of the canonical row types from internal/models.
func WriteRowsToCSV[TRow any](rows []TRow, csvFile string) error {
	if rows == nil {
		return fmt.Errorf("cannot write nil rows to CSV")
	}

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	).Info("Writing rows to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create output directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 -- output path is caller-provided
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal rows to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	).Info("Successfully wrote rows to CSV file")

	return nil
}
