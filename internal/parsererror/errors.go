// Package parsererror defines the typed errors used by the dialect
// processors. Callers can distinguish a structurally invalid input from a
// plain read failure by checking for these types with errors.As.
package parsererror

import "fmt"

// ParseError represents an error while parsing a single field or row.
type ParseError struct {
	Processor string
	Field     string
	Value     string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Processor, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an input file that does not conform to the
// expected layout for a processor.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// MissingHeaderError reports a bank-statement export without its required
// data header line. This is a hard failure: nothing before the header can
// be trusted to be transaction data, so no output is produced.
type MissingHeaderError struct {
	FilePath string
	Marker   string
}

func (e *MissingHeaderError) Error() string {
	return fmt.Sprintf("missing data header '%s' in file '%s'", e.Marker, e.FilePath)
}
