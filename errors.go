package xdl

import (
	"errors"
	"fmt"
)

// ParseError reports malformed input. Decoding stops at the first
// malformed byte, so there is at most one per decode.
type ParseError struct {
	Message string
	Offset  int // byte offset of the offending byte
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("xdl: parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

var (
	// ErrIncomplete is returned when the input ends inside a value,
	// container or comment.
	ErrIncomplete = errors.New("xdl: unexpected end of input")
	// ErrNoValue is returned for input holding only whitespace and comments.
	ErrNoValue = errors.New("xdl: no value")
	// ErrMultipleValues is returned when the input holds more than one root value.
	ErrMultipleValues = errors.New("xdl: more than one root value")
)
