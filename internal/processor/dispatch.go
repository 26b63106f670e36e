package processor

import (
	"fmt"
	"os"

	"ledgerbridge/statement-csv/internal/logging"
)

// ConvertFile is the uniform file-level entry point: it selects a
// processor by tag, converts inputFile into outputFile and invokes
// onComplete once the write has finished. It never auto-detects; callers
// wanting detection run Detect themselves and pass the result, so the
// detection policy can evolve independently of dispatch.
func ConvertFile(inputFile, outputFile string, typ Type, onComplete func()) error {
	if _, err := os.Stat(inputFile); err != nil {
		return fmt.Errorf("input file not readable: %w", err)
	}

	p := GetProcessor(typ)
	if err := p.ConvertToCSV(inputFile, outputFile); err != nil {
		return err
	}

	if onComplete != nil {
		onComplete()
	}
	return nil
}

// DetectFile runs dialect detection on a file's contents.
func DetectFile(filePath string) (Type, error) {
	raw, err := os.ReadFile(filePath) // #nosec G304 -- input paths are caller-provided
	if err != nil {
		return "", fmt.Errorf("error reading file for detection: %w", err)
	}
	return Detect(raw), nil
}

// ConvertFileWithLogger is ConvertFile with an explicit logger threaded
// into the selected processor.
func ConvertFileWithLogger(inputFile, outputFile string, typ Type, logger logging.Logger, onComplete func()) error {
	if _, err := os.Stat(inputFile); err != nil {
		return fmt.Errorf("input file not readable: %w", err)
	}

	p := GetProcessor(typ)
	p.SetLogger(logger)
	if err := p.ConvertToCSV(inputFile, outputFile); err != nil {
		return err
	}

	if onComplete != nil {
		onComplete()
	}
	return nil
}
