// Package models defines the data structures shared by the processors:
// the ordered raw record read from a source export and the canonical
// transaction rows written to the output CSV.
package models

// Record is a raw source row: field names mapped to string values,
// preserving the column order of the input. Order matters because the
// Notes field of the peer-trade output is built by iterating the row's
// fields in their natural order.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord creates an empty Record.
func NewRecord() *Record {
	return &Record{values: make(map[string]string)}
}

// Set stores a field value. A new field name is appended to the iteration
// order; setting an existing name overwrites its value in place.
func (r *Record) Set(key, value string) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value for a field name, or "" when absent.
func (r *Record) Get(key string) string {
	return r.values[key]
}

// Has reports whether the field name is present.
func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	return r.keys
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.keys)
}
