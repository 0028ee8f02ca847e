package data

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingHeader is returned when the input has no header row.
	ErrMissingHeader = errors.New("missing header row")
	// ErrNotFinite is returned for NaN and infinite numeric fields.
	ErrNotFinite = errors.New("value is not a finite number")
)

// ParseError reports a file, header or row that could not be turned into
// session records. Line is 1-based and zero when the problem is not tied to a row.
type ParseError struct {
	Path   string
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	src := e.Path
	if src == "" {
		src = "input"
	}
	switch {
	case e.Line > 0 && e.Column != "":
		return fmt.Sprintf("parse %s: line %d: column %s: %v", src, e.Line, e.Column, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("parse %s: line %d: %v", src, e.Line, e.Err)
	case e.Column != "":
		return fmt.Sprintf("parse %s: column %s: %v", src, e.Column, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", src, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
