package statement

import (
	"encoding/csv"
	"io"
	"sort"
)

// SortOrder controls row ordering on output.
type SortOrder string

const (
	// SortDescending orders rows descending by key, field by field. With
	// ISO dates that puts the newest transactions first. Equal rows keep
	// their input order.
	SortDescending SortOrder = "descending"
	// SortInput preserves input order.
	SortInput SortOrder = "input"
)

// WriteOptions configures serialization.
type WriteOptions struct {
	// Columns is the target column order for the header and every row.
	// Record columns not listed are dropped; listed columns absent from a
	// record are emitted as empty strings. Defaults to KeyColumns.
	Columns []string
	// Order defaults to SortDescending.
	Order SortOrder
	// FilterBlanks drops records whose key columns are all empty.
	FilterBlanks bool
}

// Write emits the records as CSV: one header line with the target columns,
// then one line per record. Quoting follows standard CSV escaping. The
// input slice is not reordered.
func Write(w io.Writer, records []Record, opts WriteOptions) error {
	columns := opts.Columns
	if len(columns) == 0 {
		columns = KeyColumns
	}
	if opts.FilterBlanks {
		kept := make([]Record, 0, len(records))
		for _, rec := range records {
			if !rec.IsBlank() {
				kept = append(kept, rec)
			}
		}
		records = kept
	}
	if opts.Order != SortInput {
		records = append([]Record(nil), records...)
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Compare(records[j]) > 0
		})
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(rec.Values(columns)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
