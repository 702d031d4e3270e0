package readers

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for a bad file name or a nil model
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrFormat matches every *FormatError
	ErrFormat = errors.New("invalid msh format")
)

// FormatError describes malformed input. Kind is the segment keyword (or
// the grid axis) at fault, Line the raw text that could not be decoded.
type FormatError struct {
	Kind string
	Line string
	Msg  string
	Err  error
}

func (e *FormatError) Error() string {
	s := "invalid " + e.Kind
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Line != "" {
		s += fmt.Sprintf(": %q", e.Line)
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

func (e *FormatError) Unwrap() error { return e.Err }

func formatErr(kind, line string, err error) error {
	return &FormatError{Kind: kind, Line: line, Err: err}
}

func formatErrf(kind, line, format string, args ...any) error {
	return &FormatError{Kind: kind, Line: line, Msg: fmt.Sprintf(format, args...)}
}
