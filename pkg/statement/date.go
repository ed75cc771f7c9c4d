package statement

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var slashDate = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)

// NormalizeDate rewrites a MM/DD/YYYY date to YYYY-MM-DD. Values that do
// not match the slashed pattern after trimming, including empty strings,
// pass through unchanged. No attempt is made to tell MM/DD/YYYY apart from
// DD/MM/YYYY; the latter is treated as the former.
//
// With validate set, a value that matches the pattern but is not a real
// calendar date is an error. Without it the rewrite is pure text
// substitution, so "13/40/2024" becomes "2024-13-40".
func NormalizeDate(raw string, validate bool) (string, error) {
	trimmed := strings.TrimSpace(raw)
	m := slashDate.FindStringSubmatch(trimmed)
	if m == nil {
		return raw, nil
	}
	if validate {
		if _, err := time.Parse("01/02/2006", trimmed); err != nil {
			return "", fmt.Errorf("invalid calendar date %q", trimmed)
		}
	}
	return m[3] + "-" + m[1] + "-" + m[2], nil
}

// NormalizeDate rewrites the record's date column in place. A record
// without the column is left unchanged.
func (r Record) NormalizeDate(validate bool) error {
	raw, ok := r[DateColumn]
	if !ok {
		return nil
	}
	v, err := NormalizeDate(raw, validate)
	if err != nil {
		return err
	}
	r[DateColumn] = v
	return nil
}
