package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ledgerbridge/statement-csv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRowsToCSV(t *testing.T) {
	tempDir := t.TempDir()
	csvFile := filepath.Join(tempDir, "out.csv")

	rows := []models.BankStatementRow{
		{Date: "2025-04-01", Description: "UTILITY PAYMENT", Value: "-996.92"},
		{Date: "2025-04-02", Description: "PIX TRANSF", Value: "250.00"},
	}
	require.NoError(t, WriteRowsToCSV(rows, csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Description,Value", lines[0])
	assert.Equal(t, "2025-04-01,UTILITY PAYMENT,-996.92", lines[1])
}

func TestWriteRowsToCSVEmptySlice(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteRowsToCSV([]models.PeerTradeRow{}, csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.Equal(t, "Order Number,Description,Created Time,Notes,Amount,Income,Expense",
		strings.TrimSpace(string(data)), "an empty input still yields the header row")
}

func TestWriteRowsToCSVNilRows(t *testing.T) {
	var rows []models.BankStatementRow
	err := WriteRowsToCSV(rows, filepath.Join(t.TempDir(), "nil.csv"))
	assert.Error(t, err)
}

func TestWriteRowsToCSVCreatesDirectories(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "nested", "deep", "out.csv")
	rows := []models.BankStatementRow{{Date: "2025-04-01", Description: "X", Value: "1.00"}}
	require.NoError(t, WriteRowsToCSV(rows, csvFile))

	_, err := os.Stat(csvFile)
	assert.NoError(t, err)
}

func TestWriteRowsToCSVCustomDelimiter(t *testing.T) {
	original := Delimiter
	defer SetDelimiter(original)
	SetDelimiter(';')

	csvFile := filepath.Join(t.TempDir(), "semi.csv")
	rows := []models.BankStatementRow{{Date: "2025-04-01", Description: "X", Value: "1.00"}}
	require.NoError(t, WriteRowsToCSV(rows, csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Date;Description;Value")
}

func TestWriteRowsToCSVQuotesEmbeddedDelimiters(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "quoted.csv")
	rows := []models.BankStatementRow{
		{Date: "2025-04-01", Description: "TRANSFER, INTERNAL", Value: "1.00"},
	}
	require.NoError(t, WriteRowsToCSV(rows, csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"TRANSFER, INTERNAL"`)
}
