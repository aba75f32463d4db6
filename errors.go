package htmlxot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/htmlxot/source"
)

// Errors reported by the parsing functions.
var (
	ErrRead        = errors.New("cannot read HTML input")
	ErrDiagnostics = errors.New("HTML input has parse errors")
	ErrSelector    = errors.New("invalid selector")
	ErrNoMatch     = errors.New("selector matches no element")
)

// ParseError is returned if the input could not be parsed. Kind is either
// ErrRead or ErrDiagnostics, and errors.Is works with both.
//
// A ParseError is always returned before any node has been added to the
// target Xot.
type ParseError struct {
	Kind        error
	Cause       error               // the I/O error, for ErrRead
	Diagnostics []source.Diagnostic // in input order, for ErrDiagnostics
}

func (e *ParseError) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("%v: %v", e.Kind, e.Cause)
	case len(e.Diagnostics) == 1:
		return fmt.Sprintf("%v: %s", e.Kind, e.Diagnostics[0])
	case len(e.Diagnostics) > 1:
		return fmt.Sprintf("%v: %s (and %d more)", e.Kind, e.Diagnostics[0], len(e.Diagnostics)-1)
	}
	return e.Kind.Error()
}

func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// Messages returns the diagnostics as strings, one per parse error, in
// input order.
func (e *ParseError) Messages() []string {
	msgs := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		msgs[i] = d.String()
	}
	return msgs
}

// Report lists all diagnostics, one per line.
func (e *ParseError) Report() string {
	if len(e.Diagnostics) == 0 {
		return e.Error()
	}
	return strings.Join(e.Messages(), "\n")
}
