// Package errs defines the sentinel errors shared across confread packages.
//
// All errors are exported as package-level variables so callers can use
// errors.Is to distinguish failure kinds. Syntax errors additionally carry
// the 1-based line number of the offending line via the SyntaxError type,
// which unwraps to ErrSyntax.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrReadFailed indicates the source collaborator could not supply the
	// configuration bytes (missing file, reader failure, bad compressed data).
	ErrReadFailed = errors.New("failed to read configuration source")

	// ErrSyntax indicates the source text is malformed. Errors of this kind
	// are SyntaxError values carrying the offending line number.
	ErrSyntax = errors.New("configuration syntax error")

	// ErrAlreadyLoaded indicates a load was attempted on a config that
	// already holds parsed data. The config must be cleared first.
	ErrAlreadyLoaded = errors.New("configuration already loaded")

	// ErrParamNotFound indicates no parameter with the given key exists in
	// the requested section.
	ErrParamNotFound = errors.New("parameter not found")

	// ErrSectionNotFound indicates no section with the given name exists.
	ErrSectionNotFound = errors.New("section not found")

	// ErrInvalidValue indicates a parameter was found but its value does not
	// conform to the requested type's grammar.
	ErrInvalidValue = errors.New("invalid parameter value")
)

// SyntaxError reports a malformed line in the configuration source.
// Line is 1-based, matching what an editor displays.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Unwrap makes errors.Is(err, ErrSyntax) hold for every SyntaxError.
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// NewSyntaxError creates a SyntaxError for the given 1-based line.
func NewSyntaxError(line int, msg string) *SyntaxError {
	return &SyntaxError{Line: line, Msg: msg}
}
