package logging

// Standardized field names for structured logging.
// Using these constants keeps log output consistent across processors,
// which makes logs easier to filter and analyze.
const (
	FieldFile       = "file_path"
	FieldProcessor  = "processor"
	FieldDialect    = "dialect"
	FieldOrder      = "order_number"
	FieldReason     = "reason"
	FieldCount      = "count"
	FieldDelimiter  = "delimiter"
	FieldLanguage   = "language"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
