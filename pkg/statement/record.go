package statement

import (
	"strings"
)

// KeyColumns are the columns every statement export must carry, in the
// canonical output order. They double as the sort/equality key.
var KeyColumns = []string{"Date", "Description", "Amount", "Ref.#"}

// DateColumn names the column holding the transaction date.
const DateColumn = "Date"

// Record is one parsed statement row, keyed by column name. Every column
// from the detected header is present; short source rows are padded with
// empty strings.
type Record map[string]string

// Key returns the trimmed values of the key columns in canonical order.
// Records compare equal iff their keys are equal.
func (r Record) Key() []string {
	key := make([]string, len(KeyColumns))
	for i, col := range KeyColumns {
		key[i] = strings.TrimSpace(r[col])
	}
	return key
}

// IsBlank reports whether every key column is empty after trimming.
func (r Record) IsBlank() bool {
	for _, col := range KeyColumns {
		if strings.TrimSpace(r[col]) != "" {
			return false
		}
	}
	return true
}

// Compare orders records by their keys, field by field, left to right.
// It returns -1, 0, or 1 in the manner of strings.Compare.
func (r Record) Compare(other Record) int {
	a, b := r.Key(), other.Key()
	for i := range a {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Values projects the record onto the given column order. Columns absent
// from the record become empty strings; record columns not listed are
// dropped.
func (r Record) Values(columns []string) []string {
	values := make([]string, len(columns))
	for i, col := range columns {
		values[i] = r[col]
	}
	return values
}
