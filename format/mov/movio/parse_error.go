package movio

import (
	"errors"
	"fmt"
	"strings"
)

// ParseError reports a declared size or length that is inconsistent with
// the content it governs. Errors chain as they unwind, so the message reads
// as a path from the outermost container to the offending field.
type ParseError struct {
	Debug  string
	Offset int64
	prev   *ParseError
}

func (p *ParseError) Error() string {
	s := []string{}
	for err := p; err != nil; err = err.prev {
		s = append(s, fmt.Sprintf("%s:%d", err.Debug, err.Offset))
	}
	return "movio: bad format: " + strings.Join(s, ",")
}

// parseErr chains a ParseError onto prev. Any other error kind (stream
// faults, truncation) passes through untouched.
func parseErr(debug string, offset int64, prev error) error {
	var ppe *ParseError
	if prev != nil && !errors.As(prev, &ppe) {
		return prev
	}
	return &ParseError{Debug: debug, Offset: offset, prev: ppe}
}

// TooManyAtomsError reports a violated collection bound or a second
// occurrence of a singleton child.
type TooManyAtomsError struct {
	Tag   Tag
	Limit int
}

func (e *TooManyAtomsError) Error() string {
	return fmt.Sprintf("movio: too many '%s' atoms: limit %d", e.Tag, e.Limit)
}

// IOError wraps a fault of the underlying stream.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return "movio: " + e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}
