// Package bankstatement extracts transaction lines from a semicolon
// delimited bank statement export. The export is a noisy dump: metadata,
// balance lines and mis-encoded text surround the actual transactions.
// Only lines that pass a strict shape check survive, deduplicated and
// sorted by date, re-encoded from the bank's legacy single-byte encoding
// to UTF-8.
package bankstatement

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"ledgerbridge/statement-csv/internal/common"
	"ledgerbridge/statement-csv/internal/logging"
	"ledgerbridge/statement-csv/internal/models"
	"ledgerbridge/statement-csv/internal/parsererror"
	"ledgerbridge/statement-csv/internal/textutils"

	"golang.org/x/text/encoding/charmap"
)

// headerMarker starts the line separating statement metadata from the
// transaction block. Everything up to and including it is discarded.
const headerMarker = "transactions;"

var (
	datePattern  = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	valuePattern = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})*,\d{2}$`)

	// Balance and metadata lines masquerade as transactions. "DISPON"
	// additionally catches the mis-encoded spellings of "DISPONÍVEL"
	// that the bank's mixed encodings produce.
	descriptionBlocklist = []string{"SALDO", "BALANCE", "DISPON"}

	lineSplitter = regexp.MustCompile(`\r?\n`)
)

// Parse reads a bank statement export and returns the canonical rows.
// The input bytes are decoded as ISO-8859-1; the bank does not export
// UTF-8. Returns a MissingHeaderError when the transaction header line is
// absent anywhere in the input.
func Parse(r io.Reader, logger logging.Logger) ([]models.BankStatementRow, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Info("Parsing bank statement from reader")

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return parseBytes(raw, "(from reader)", logger)
}

func parseBytes(raw []byte, filePath string, logger logging.Logger) ([]models.BankStatementRow, error) {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("error decoding statement text: %w", err)
	}

	lines := lineSplitter.Split(string(decoded), -1)
	headerIdx := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.ToLower(line), headerMarker) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		logger.Error("Bank statement data header not found")
		return nil, &parsererror.MissingHeaderError{
			FilePath: filePath,
			Marker:   headerMarker,
		}
	}

	var rows []models.BankStatementRow
	for _, line := range lines[headerIdx+1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := strings.Split(line, ";")
		if !isTransactionLine(cols) {
			continue
		}
		rows = append(rows, models.BankStatementRow{
			Date:        toISODate(cols[0]),
			Description: textutils.CleanDescription(cols[1]),
			Value:       normalizeValue(cols[3]),
		})
	}

	rows = dedupe(rows)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date < rows[j].Date
	})

	logger.Info("Successfully parsed bank statement",
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows, nil
}

// isTransactionLine gates a semicolon-split line: a DD/MM/YYYY date in the
// first column, a grouped-decimal value in the fourth, and a description
// free of balance markers.
func isTransactionLine(cols []string) bool {
	if len(cols) < 4 {
		return false
	}
	if !datePattern.MatchString(cols[0]) {
		return false
	}
	if !valuePattern.MatchString(cols[3]) {
		return false
	}
	desc := strings.ToUpper(cols[1])
	for _, marker := range descriptionBlocklist {
		if strings.Contains(desc, marker) {
			return false
		}
	}
	return true
}

// toISODate converts DD/MM/YYYY to YYYY-MM-DD. The input already matched
// datePattern, so the parts are present and zero-padded.
func toISODate(date string) string {
	parts := strings.Split(date, "/")
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// normalizeValue converts "-1.234,56" to "-1234.56": grouping dots are
// dropped, the comma becomes the decimal separator.
func normalizeValue(value string) string {
	value = strings.ReplaceAll(value, ".", "")
	return strings.ReplaceAll(value, ",", ".")
}

// dedupe removes structurally identical rows, keeping first occurrences
// in order.
func dedupe(rows []models.BankStatementRow) []models.BankStatementRow {
	seen := make(map[models.BankStatementRow]bool, len(rows))
	unique := rows[:0]
	for _, row := range rows {
		if seen[row] {
			continue
		}
		seen[row] = true
		unique = append(unique, row)
	}
	return unique
}

// ParseFile parses a bank statement export from disk.
func ParseFile(filePath string) ([]models.BankStatementRow, error) {
	return ParseFileWithLogger(filePath, nil)
}

// ParseFileWithLogger parses a bank statement export with an explicit logger.
func ParseFileWithLogger(filePath string, logger logging.Logger) ([]models.BankStatementRow, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.WithField(logging.FieldFile, filePath).Info("Parsing bank statement file")

	raw, err := os.ReadFile(filePath) // #nosec G304 -- input paths are caller-provided
	if err != nil {
		logger.WithError(err).Error("Failed to read bank statement file")
		return nil, fmt.Errorf("error reading bank statement: %w", err)
	}
	return parseBytes(raw, filePath, logger)
}

// ValidateFormat checks if the file contains the transaction header line.
func ValidateFormat(filePath string) (bool, error) {
	raw, err := os.ReadFile(filePath) // #nosec G304 -- input paths are caller-provided
	if err != nil {
		return false, fmt.Errorf("error opening file for validation: %w", err)
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return false, fmt.Errorf("error decoding statement text: %w", err)
	}
	for _, line := range lineSplitter.Split(string(decoded), -1) {
		if strings.HasPrefix(strings.ToLower(line), headerMarker) {
			return true, nil
		}
	}
	return false, nil
}

// WriteToCSV writes canonical bank-statement rows to a UTF-8 CSV file.
func WriteToCSV(rows []models.BankStatementRow, csvFile string) error {
	if rows == nil {
		rows = []models.BankStatementRow{}
	}
	return common.WriteRowsToCSV(rows, csvFile)
}

// ConvertToCSV converts a bank statement export into the canonical CSV
// format.
func ConvertToCSV(inputFile, outputFile string) error {
	rows, err := ParseFile(inputFile)
	if err != nil {
		return fmt.Errorf("error parsing file: %w", err)
	}
	return WriteToCSV(rows, outputFile)
}
