// Package processor ties the dialect processors together: the common
// contract they implement, the factory that selects one by tag, the
// dialect detector and the file-level dispatch entry point.
package processor

import (
	"ledgerbridge/statement-csv/internal/bankstatement"
	"ledgerbridge/statement-csv/internal/logging"
	"ledgerbridge/statement-csv/internal/peertrade"
)

// Type identifies a source export dialect.
type Type string

const (
	// PeerTrade is the exchange peer-to-peer trade order export.
	PeerTrade Type = "peer-trade"
	// BankStatement is the semicolon-delimited bank statement export.
	BankStatement Type = "bank-statement"
)

// Processor is the contract shared by the dialect processors. The two
// dialects share no implementation, only this surface.
type Processor interface {
	// ConvertToCSV reads the input file fully, transforms it and writes
	// the canonical CSV output file.
	ConvertToCSV(inputFile, outputFile string) error

	// ValidateFormat reports whether the file looks like this
	// processor's dialect.
	ValidateFormat(file string) (bool, error)

	// SetLogger configures the processor's logger.
	SetLogger(logger logging.Logger)
}

// GetProcessor returns the processor for the given dialect tag. Unknown or
// empty tags fall back to the peer-trade processor; callers needing strict
// selection must validate the tag first.
func GetProcessor(typ Type) Processor {
	switch typ {
	case BankStatement:
		return bankstatement.NewAdapter()
	default:
		return peertrade.NewAdapter()
	}
}
