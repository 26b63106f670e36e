// Package textutils provides the text normalization shared by the dialect
// processors: field-name cleanup for raw records and description cleaning
// for bank-statement lines.
package textutils

import (
	"regexp"
	"strings"

	"ledgerbridge/statement-csv/internal/models"
)

const bom = "\uFEFF"

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	unsafeChars    = regexp.MustCompile(`[^\w\s\-.,/]`)
)

// NormalizeFieldName strips a single leading byte-order mark, if present,
// and trims surrounding whitespace. Exports from spreadsheet tools routinely
// carry a BOM on the first column name.
func NormalizeFieldName(name string) string {
	return strings.TrimSpace(strings.TrimPrefix(name, bom))
}

// NormalizeRecord returns a copy of the record with every field name
// normalized. Values pass through unmodified, and the field order of the
// source record is preserved.
func NormalizeRecord(record *models.Record) *models.Record {
	normalized := models.NewRecord()
	for _, key := range record.Keys() {
		normalized.Set(NormalizeFieldName(key), record.Get(key))
	}
	return normalized
}

// CleanDescription collapses internal whitespace runs to a single space and
// strips characters outside a conservative safe set (word characters,
// whitespace, "-", ".", ",", "/"). Mis-encoded statement exports leave
// stray bytes in descriptions; the safe set drops them.
func CleanDescription(desc string) string {
	desc = unsafeChars.ReplaceAllString(desc, "")
	desc = whitespaceRuns.ReplaceAllString(desc, " ")
	return strings.TrimSpace(desc)
}
