package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ledgerbridge/statement-csv/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statementExport = "data; lancamento; ag./origem; valor (R$); saldo (R$)\n" +
	"transactions;;;\n" +
	"01/04/2025;UTILITY PAYMENT;;-996,92\n"

func waitForFile(t *testing.T, path string) []byte {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if data, err := os.ReadFile(path); err == nil {
			return data
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", path)
	return nil
}

func TestRunConvertsNewFiles(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := New(inputDir, outputDir, logging.NewMockLogger())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watch a moment to attach before creating the file.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "extrato.csv"), []byte(statementExport), 0600))

	data := waitForFile(t, filepath.Join(outputDir, "extrato_processed.csv"))
	assert.Contains(t, string(data), "2025-04-01,UTILITY PAYMENT,-996.92")

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestRunIgnoresNonCSVFiles(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := New(inputDir, outputDir, logging.NewMockLogger())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "notes.txt"), []byte("hello"), 0600))

	// Long enough for the watcher to have reacted if it had.
	time.Sleep(settleDelay + 300*time.Millisecond)
	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	cancel()
	<-done
}

func TestRunCreatesDirectories(t *testing.T) {
	base := t.TempDir()
	inputDir := filepath.Join(base, "in")
	outputDir := filepath.Join(base, "out")

	ctx, cancel := context.WithCancel(context.Background())
	w := New(inputDir, outputDir, logging.NewMockLogger())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	_, err := os.Stat(inputDir)
	assert.NoError(t, err)
	_, err = os.Stat(outputDir)
	assert.NoError(t, err)
}
