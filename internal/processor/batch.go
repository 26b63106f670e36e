package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ledgerbridge/statement-csv/internal/fileutils"
	"ledgerbridge/statement-csv/internal/logging"
)

// BatchConvert converts every .csv file in inputDir into outputDir using
// the processor for typ, writing each result as <name>_processed.csv.
// Files that fail validation or conversion are skipped, not fatal; the
// returned count is the number of files successfully converted.
func BatchConvert(inputDir, outputDir string, typ Type, logger logging.Logger) (int, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Info("Starting batch conversion",
		logging.Field{Key: "inputDir", Value: inputDir},
		logging.Field{Key: "outputDir", Value: outputDir},
		logging.Field{Key: logging.FieldDialect, Value: string(typ)})

	inputInfo, err := os.Stat(inputDir)
	if err != nil {
		logger.WithError(err).Error("Failed to access input directory")
		return 0, fmt.Errorf("error accessing input directory: %w", err)
	}
	if !inputInfo.IsDir() {
		return 0, fmt.Errorf("input path is not a directory: %s", inputDir)
	}

	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		logger.WithError(err).Error("Failed to create output directory")
		return 0, fmt.Errorf("error creating output directory: %w", err)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		logger.WithError(err).Error("Failed to read input directory")
		return 0, fmt.Errorf("error reading input directory: %w", err)
	}

	p := GetProcessor(typ)
	p.SetLogger(logger)

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".csv") {
			continue
		}

		inputFile := filepath.Join(inputDir, entry.Name())

		valid, err := p.ValidateFormat(inputFile)
		if err != nil {
			logger.WithError(err).Warn("Error validating file format, skipping",
				logging.Field{Key: logging.FieldFile, Value: inputFile})
			continue
		}
		if !valid {
			logger.Info("File does not match the dialect, skipping",
				logging.Field{Key: logging.FieldFile, Value: inputFile})
			continue
		}

		baseName := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		outputFile := filepath.Join(outputDir, baseName+"_processed.csv")

		if err := p.ConvertToCSV(inputFile, outputFile); err != nil {
			logger.WithError(err).Warn("Error converting file, skipping",
				logging.Field{Key: logging.FieldFile, Value: inputFile})
			continue
		}
		count++
	}

	logger.Info("Batch conversion completed",
		logging.Field{Key: logging.FieldCount, Value: count})
	return count, nil
}
