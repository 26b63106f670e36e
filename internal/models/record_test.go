package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordPreservesInsertionOrder(t *testing.T) {
	record := NewRecord()
	record.Set("Order Number", "1")
	record.Set("Order Type", "Sell")
	record.Set("Fiat Type", "BRL")

	assert.Equal(t, []string{"Order Number", "Order Type", "Fiat Type"}, record.Keys())
	assert.Equal(t, 3, record.Len())
}

func TestRecordOverwriteKeepsPosition(t *testing.T) {
	record := NewRecord()
	record.Set("A", "1")
	record.Set("B", "2")
	record.Set("A", "3")

	assert.Equal(t, []string{"A", "B"}, record.Keys())
	assert.Equal(t, "3", record.Get("A"))
}

func TestRecordGetMissing(t *testing.T) {
	record := NewRecord()
	assert.Equal(t, "", record.Get("missing"))
	assert.False(t, record.Has("missing"))

	record.Set("present", "")
	assert.True(t, record.Has("present"))
}
