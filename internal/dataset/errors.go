package dataset

import (
	"fmt"
	"strings"
)

// ParseError reports a cell that could not be parsed. Line is 1-based and counts the header.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dataset: line %d: column %q: cannot parse %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("dataset: missing required columns: %s", strings.Join(e.Columns, ", "))
}
