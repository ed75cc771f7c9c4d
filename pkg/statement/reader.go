package statement

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ErrMissingRequiredColumns reports that no row in the input contained all
// required column names.
var ErrMissingRequiredColumns = errors.New("required columns not found")

// Reader parses a statement export. It scans past any preamble lines until
// it finds a header row containing all required columns, then yields one
// Record per remaining row. Records are produced lazily; the sequence is
// finite and cannot be restarted.
type Reader struct {
	src      []byte
	cr       *csv.Reader
	required []string
	columns  []string
	offset   int64
	pending  int
	stash    []string
	err      error
}

// NewReader wraps src in a Reader. If required is empty, KeyColumns is
// used. The entire input is read up front; statement exports are small.
func NewReader(src io.Reader, required []string) (*Reader, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if len(required) == 0 {
		required = KeyColumns
	}
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	// Preamble lines may contain stray quotes; don't let them abort the
	// header scan.
	cr.LazyQuotes = true
	return &Reader{src: data, cr: cr, required: required}, nil
}

// Columns locates and returns the header row: the first row whose values
// are a superset of the required columns, in source order, extra columns
// included. Rows before it are discarded as preamble. The result is
// memoized; the reader is left positioned at the first data row.
func (r *Reader) Columns() ([]string, error) {
	if r.columns != nil {
		return r.columns, nil
	}
	if r.err != nil {
		return nil, r.err
	}
	for {
		row, err := r.cr.Read()
		if errors.Is(err, io.EOF) {
			r.err = ErrMissingRequiredColumns
			return nil, r.err
		}
		if err != nil {
			r.err = fmt.Errorf("scanning for header: %w", err)
			return nil, r.err
		}
		if containsAll(row, r.required) {
			r.columns = row
			r.offset = r.cr.InputOffset()
			return r.columns, nil
		}
	}
}

// Next returns the next record, or io.EOF once the input is exhausted. A
// blank input line yields a record with every column empty; it does not
// end the sequence. Short rows are padded with empty strings and fields
// beyond the header width are dropped.
func (r *Reader) Next() (Record, error) {
	columns, err := r.Columns()
	if err != nil {
		return nil, err
	}
	if r.pending > 0 {
		r.pending--
		return blankRecord(columns), nil
	}
	if r.stash != nil {
		row := r.stash
		r.stash = nil
		return makeRecord(columns, row), nil
	}
	row, err := r.cr.Read()
	if errors.Is(err, io.EOF) {
		// Trailing blank lines were skipped by encoding/csv; surface
		// them as empty records before ending the sequence.
		if n := blankLines(r.src[r.offset:]); n > 0 {
			r.offset = int64(len(r.src))
			r.pending = n - 1
			return blankRecord(columns), nil
		}
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("parsing row: %w", err)
	}
	next := r.cr.InputOffset()
	skipped := blankLines(r.src[r.offset:next])
	r.offset = next
	if skipped > 0 {
		r.stash = row
		r.pending = skipped - 1
		return blankRecord(columns), nil
	}
	return makeRecord(columns, row), nil
}

// ReadAll drains the reader into a slice.
func (r *Reader) ReadAll() ([]Record, error) {
	var records []Record
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

// Line reports the 1-based line number of the next unread line.
func (r *Reader) Line() int {
	return 1 + bytes.Count(r.src[:r.offset], []byte("\n"))
}

// InputOffset reports the byte offset of the reader position.
func (r *Reader) InputOffset() int64 {
	return r.offset
}

func containsAll(row []string, required []string) bool {
	present := make(map[string]bool, len(row))
	for _, v := range row {
		present[v] = true
	}
	for _, col := range required {
		if !present[col] {
			return false
		}
	}
	return true
}

func makeRecord(columns []string, row []string) Record {
	rec := make(Record, len(columns))
	for i, col := range columns {
		if i < len(row) {
			rec[col] = row[i]
		} else {
			rec[col] = ""
		}
	}
	return rec
}

func blankRecord(columns []string) Record {
	rec := make(Record, len(columns))
	for _, col := range columns {
		rec[col] = ""
	}
	return rec
}

// blankLines counts the leading empty lines of a span between two CSV
// records, the lines encoding/csv skips without reporting.
func blankLines(b []byte) int {
	n := 0
	for len(b) > 0 {
		switch {
		case b[0] == '\n':
			n++
			b = b[1:]
		case len(b) > 1 && b[0] == '\r' && b[1] == '\n':
			n++
			b = b[2:]
		default:
			return n
		}
	}
	return n
}
