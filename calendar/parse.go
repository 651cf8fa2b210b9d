package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrFormat is matched by errors.Is for every *FormatError.
var ErrFormat = errors.New("invalid date format")

// FormatError is returned by Parse when the text is not a DD/MM/YYYY or YYYY-MM-DD date.
type FormatError struct {
	Text   string
	Reason string
	err    error
}

// Error returns a string representation of the format error, implementing the error interface.
func (e *FormatError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("date %q: %s: %v", e.Text, e.Reason, e.err)
	}
	return fmt.Sprintf("date %q: %s", e.Text, e.Reason)
}

func (e *FormatError) Unwrap() error { return e.err }

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// Parse parses a date in DD/MM/YYYY or YYYY-MM-DD format.
//
// The layout is chosen by the first separator found: text containing a '/' is
// always read as DD/MM/YYYY, even if it also contains a '-'. The fields are not
// range checked, "47/99/2024" parses to day 47 of month 99.
func Parse(s string) (Date, error) {
	switch {
	case strings.Contains(s, "/"):
		f, err := splitFields(s, "/")
		if err != nil {
			return Date{}, err
		}
		return Date{Year: f[2], Month: time.Month(f[1]), Day: f[0]}, nil
	case strings.Contains(s, "-"):
		f, err := splitFields(s, "-")
		if err != nil {
			return Date{}, err
		}
		return Date{Year: f[0], Month: time.Month(f[1]), Day: f[2]}, nil
	}
	return Date{}, &FormatError{Text: s, Reason: "expected DD/MM/YYYY or YYYY-MM-DD"}
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func splitFields(s, sep string) ([3]int, error) {
	var fields [3]int
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return fields, &FormatError{Text: s, Reason: fmt.Sprintf("expected 3 %q separated fields, got %d", sep, len(parts))}
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fields, &FormatError{Text: s, Reason: fmt.Sprintf("field %d", i+1), err: err}
		}
		fields[i] = n
	}
	return fields, nil
}
