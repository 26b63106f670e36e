// Package watcher converts statement exports as they land in a directory.
// It is the daemon-mode counterpart of the CLI conversion commands: each
// new .csv file is dialect-detected, converted into the output directory
// and left in place for the operator.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"ledgerbridge/statement-csv/internal/fileutils"
	"ledgerbridge/statement-csv/internal/logging"
	"ledgerbridge/statement-csv/internal/processor"

	"github.com/fsnotify/fsnotify"
)

// settleDelay gives the writing process time to finish before we read the
// file. Exports are written in one burst; a short delay is enough.
const settleDelay = 200 * time.Millisecond

// Watcher converts files created in an input directory.
type Watcher struct {
	inputDir  string
	outputDir string
	logger    logging.Logger
}

// New creates a Watcher converting from inputDir into outputDir.
func New(inputDir, outputDir string, logger logging.Logger) *Watcher {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Watcher{
		inputDir:  inputDir,
		outputDir: outputDir,
		logger:    logger,
	}
}

// Run watches the input directory until the context is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	if err := fileutils.EnsureDirectoryExists(w.inputDir); err != nil {
		return err
	}
	if err := fileutils.EnsureDirectoryExists(w.outputDir); err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer func() {
		if err := fsw.Close(); err != nil {
			w.logger.WithError(err).Warn("Failed to close watcher")
		}
	}()

	if err := fsw.Add(w.inputDir); err != nil {
		return fmt.Errorf("error watching %s: %w", w.inputDir, err)
	}

	w.logger.Info("Watching for statement exports",
		logging.Field{Key: "inputDir", Value: w.inputDir},
		logging.Field{Key: "outputDir", Value: w.outputDir})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !strings.HasSuffix(strings.ToLower(event.Name), ".csv") {
				continue
			}
			time.Sleep(settleDelay)
			w.convert(event.Name)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.WithError(err).Warn("Watcher error")
		}
	}
}

// convert runs detection and dispatch for one file. Failures are logged
// and skipped so one bad file cannot stop the daemon.
func (w *Watcher) convert(inputFile string) {
	dialect, err := processor.DetectFile(inputFile)
	if err != nil {
		w.logger.WithError(err).Warn("Skipping unreadable file",
			logging.Field{Key: logging.FieldFile, Value: inputFile})
		return
	}

	baseName := strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile))
	outputFile := filepath.Join(w.outputDir, baseName+"_processed.csv")

	if err := processor.ConvertFileWithLogger(inputFile, outputFile, dialect, w.logger, nil); err != nil {
		w.logger.WithError(err).Warn("Conversion failed, skipping file",
			logging.Field{Key: logging.FieldFile, Value: inputFile},
			logging.Field{Key: logging.FieldDialect, Value: string(dialect)})
		return
	}

	w.logger.Info("Converted statement export",
		logging.Field{Key: logging.FieldInputFile, Value: inputFile},
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile},
		logging.Field{Key: logging.FieldDialect, Value: string(dialect)})
}
