// Package peertrade transforms peer-to-peer trade order exports into
// canonical transaction rows. Buy orders become expenses, sell orders
// become income, and orders carrying a taker fee produce an additional
// synthetic fee row.
package peertrade

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"ledgerbridge/statement-csv/internal/common"
	"ledgerbridge/statement-csv/internal/i18n"
	"ledgerbridge/statement-csv/internal/logging"
	"ledgerbridge/statement-csv/internal/models"
	"ledgerbridge/statement-csv/internal/parsererror"
	"ledgerbridge/statement-csv/internal/textutils"

	"github.com/shopspring/decimal"
)

// Column names of the peer-trade export consumed by the transformation.
// "Couterparty" is the export's own spelling, not ours.
const (
	colOrderNumber  = "Order Number"
	colOrderType    = "Order Type"
	colAssetType    = "Asset Type"
	colCounterparty = "Couterparty"
	colCreatedTime  = "Created Time"
	colTotalPrice   = "Total Price"
	colTakerFee     = "Taker Fee"
)

// Order types with dedicated description templates. Anything else gets the
// generic template and neither income nor expense set.
const (
	orderTypeBuy  = "Buy"
	orderTypeSell = "Sell"
)

// mainReserved are the fields consumed by known columns of a main row;
// everything else lands in Notes.
var mainReserved = map[string]bool{
	colOrderNumber:  true,
	colOrderType:    true,
	colAssetType:    true,
	colCounterparty: true,
	colCreatedTime:  true,
	colTotalPrice:   true,
	colTakerFee:     true,
}

// feeReserved is the exclusion set for fee-row notes: the fee itself is
// consumed instead of the total price.
var feeReserved = map[string]bool{
	colOrderNumber:  true,
	colOrderType:    true,
	colAssetType:    true,
	colCounterparty: true,
	colCreatedTime:  true,
	colTakerFee:     true,
}

// Parse reads a peer-trade CSV export and returns the canonical rows.
// Row-level anomalies (missing optional fields, unknown order types,
// unparseable fees) never fail the parse; they degrade to best-effort
// defaults per row.
func Parse(r io.Reader, localizer *i18n.Localizer, logger logging.Logger) ([]models.PeerTradeRow, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if localizer == nil {
		localizer = i18n.Default()
	}
	logger.Info("Parsing peer-trade CSV from reader")

	records, err := readRecords(r)
	if err != nil {
		logger.WithError(err).Error("Failed to read peer-trade CSV")
		return nil, err
	}

	rows := make([]models.PeerTradeRow, 0, len(records))
	for _, record := range records {
		record = textutils.NormalizeRecord(record)
		rows = append(rows, transformRecord(record, localizer))
		if feeRow, ok := buildFeeRow(record, localizer); ok {
			rows = append(rows, feeRow)
		}
	}

	logger.Info("Successfully parsed peer-trade CSV",
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows, nil
}

// readRecords parses header-addressed CSV into ordered records. Short rows
// are padded and long rows truncated to the header width.
func readRecords(r io.Reader) ([]*models.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, &parsererror.ParseError{
			Processor: "peer-trade",
			Field:     "header",
			Value:     "header row",
			Err:       err,
		}
	}

	var records []*models.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &parsererror.ParseError{
				Processor: "peer-trade",
				Field:     "row",
				Value:     fmt.Sprintf("row %d", len(records)+2),
				Err:       err,
			}
		}

		record := models.NewRecord()
		for i, name := range header {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			record.Set(name, value)
		}
		records = append(records, record)
	}
	return records, nil
}

// transformRecord maps one source order to its canonical main row.
func transformRecord(record *models.Record, localizer *i18n.Localizer) models.PeerTradeRow {
	orderType := record.Get(colOrderType)
	asset := record.Get(colAssetType)
	counterparty := record.Get(colCounterparty)

	var description string
	var income, expense bool
	switch orderType {
	case orderTypeBuy:
		description = localizer.Resolve(i18n.KeyBuy, i18n.Params{
			"asset":        asset,
			"counterparty": counterparty,
		})
		expense = true
	case orderTypeSell:
		description = localizer.Resolve(i18n.KeySell, i18n.Params{
			"asset":        asset,
			"counterparty": counterparty,
		})
		income = true
	default:
		description = localizer.Resolve(i18n.KeyOther, i18n.Params{
			"orderType":    orderType,
			"asset":        asset,
			"counterparty": counterparty,
		})
	}

	return models.PeerTradeRow{
		OrderNumber: record.Get(colOrderNumber),
		Description: description,
		CreatedTime: record.Get(colCreatedTime),
		Notes:       buildNotes(record, mainReserved, localizer),
		Amount:      record.Get(colTotalPrice),
		Income:      income,
		Expense:     expense,
	}
}

// buildFeeRow derives the synthetic fee row for orders whose taker fee is
// strictly positive. A missing or unparseable fee yields no row.
func buildFeeRow(record *models.Record, localizer *i18n.Localizer) (models.PeerTradeRow, bool) {
	fee := record.Get(colTakerFee)
	if fee == "" {
		return models.PeerTradeRow{}, false
	}
	value, err := decimal.NewFromString(strings.TrimSpace(fee))
	if err != nil || !value.IsPositive() {
		return models.PeerTradeRow{}, false
	}

	orderType := record.Get(colOrderType)
	asset := record.Get(colAssetType)
	counterparty := record.Get(colCounterparty)

	key := i18n.KeyTaxOther
	switch orderType {
	case orderTypeBuy:
		key = i18n.KeyTaxBuy
	case orderTypeSell:
		key = i18n.KeyTaxSell
	}
	description := localizer.Resolve(key, i18n.Params{
		"asset":        asset,
		"counterparty": counterparty,
	})

	// Fee rows are always an expense; the amount sign is forced negative.
	amount := fee
	if !strings.HasPrefix(amount, "-") {
		amount = "-" + amount
	}

	return models.PeerTradeRow{
		OrderNumber: record.Get(colOrderNumber),
		Description: description,
		CreatedTime: record.Get(colCreatedTime),
		Notes:       buildNotes(record, feeReserved, localizer),
		Amount:      amount,
		Income:      false,
		Expense:     true,
	}, true
}

// buildNotes renders every non-reserved, non-blank field through the
// generic "key: value" template, joined with " | " in the row's natural
// field order.
func buildNotes(record *models.Record, reserved map[string]bool, localizer *i18n.Localizer) string {
	var parts []string
	for _, key := range record.Keys() {
		if reserved[key] {
			continue
		}
		value := record.Get(key)
		if strings.TrimSpace(value) == "" {
			continue
		}
		parts = append(parts, localizer.Resolve(i18n.KeyNote, i18n.Params{
			"key":   key,
			"value": value,
		}))
	}
	return strings.Join(parts, " | ")
}

// ParseFile parses a peer-trade CSV export from disk.
func ParseFile(filePath string) ([]models.PeerTradeRow, error) {
	return ParseFileWithOptions(filePath, nil, nil)
}

// ParseFileWithOptions parses a peer-trade CSV export with an explicit
// localizer and logger.
func ParseFileWithOptions(filePath string, localizer *i18n.Localizer, logger logging.Logger) ([]models.PeerTradeRow, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.WithField(logging.FieldFile, filePath).Info("Parsing peer-trade CSV file")

	file, err := os.Open(filePath) // #nosec G304 -- input paths are caller-provided
	if err != nil {
		logger.WithError(err).Error("Failed to open peer-trade CSV file")
		return nil, fmt.Errorf("error opening peer-trade CSV: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	return Parse(file, localizer, logger)
}

// ValidateFormat checks if the file carries the peer-trade header columns.
func ValidateFormat(filePath string) (bool, error) {
	file, err := os.Open(filePath) // #nosec G304 -- input paths are caller-provided
	if err != nil {
		return false, fmt.Errorf("error opening file for validation: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return false, nil
		}
		return false, fmt.Errorf("error reading CSV header: %w", err)
	}

	var hasOrderNumber, hasOrderType bool
	for _, name := range header {
		switch textutils.NormalizeFieldName(name) {
		case colOrderNumber:
			hasOrderNumber = true
		case colOrderType:
			hasOrderType = true
		}
	}
	return hasOrderNumber && hasOrderType, nil
}

// WriteToCSV writes canonical peer-trade rows to a CSV file.
func WriteToCSV(rows []models.PeerTradeRow, csvFile string) error {
	return common.WriteRowsToCSV(rows, csvFile)
}

// ConvertToCSV converts a peer-trade export into the canonical CSV format.
func ConvertToCSV(inputFile, outputFile string) error {
	rows, err := ParseFile(inputFile)
	if err != nil {
		return fmt.Errorf("error parsing file: %w", err)
	}
	return WriteToCSV(rows, outputFile)
}
