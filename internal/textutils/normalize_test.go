package textutils

import (
	"testing"

	"ledgerbridge/statement-csv/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFieldName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Order Number", "Order Number"},
		{"leading BOM", "\uFEFFOrder Number", "Order Number"},
		{"padded", "  Order Type  ", "Order Type"},
		{"BOM and padding", "\uFEFF Order Type ", "Order Type"},
		{"only one BOM stripped", "\uFEFF\uFEFFDate", "\uFEFFDate"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeFieldName(tt.input))
		})
	}
}

func TestNormalizeRecordPreservesOrderAndValues(t *testing.T) {
	record := models.NewRecord()
	record.Set("\uFEFFOrder Number", "123")
	record.Set(" Order Type ", "Buy")
	record.Set("Fiat Type", "  BRL  ")

	normalized := NormalizeRecord(record)

	assert.Equal(t, []string{"Order Number", "Order Type", "Fiat Type"}, normalized.Keys())
	assert.Equal(t, "123", normalized.Get("Order Number"))
	assert.Equal(t, "Buy", normalized.Get("Order Type"))
	assert.Equal(t, "  BRL  ", normalized.Get("Fiat Type"), "values must pass through unmodified")
}

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "UTILITY PAYMENT", "UTILITY PAYMENT"},
		{"whitespace runs", "PIX   TRANSF  JOAO", "PIX TRANSF JOAO"},
		{"strips unsafe chars", "CARD*PAYMENT #42", "CARDPAYMENT 42"},
		{"keeps safe punctuation", "TED 104.25-7/2024, REF", "TED 104.25-7/2024, REF"},
		{"mis-encoded bytes dropped", "PAGTO Ã§ CONTA", "PAGTO CONTA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanDescription(tt.input))
		})
	}
}
