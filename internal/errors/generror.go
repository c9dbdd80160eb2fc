package errors

import (
	"fmt"
	"strings"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
)

// GenError represents a structured code generation diagnostic.
// Fatal errors abort generation of the entire file; warnings are
// collected and reported but do not stop emission.
type GenError struct {
	Level   ErrorLevel
	Code    string   // Error code like E0300
	Message string   // Primary message
	Notes   []string // Additional context notes
}

func (e GenError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%s]: %s", e.Level, e.Code, e.Message)
	for _, note := range e.Notes {
		b.WriteString("\n    note: ")
		b.WriteString(note)
	}
	return b.String()
}

// New creates a fatal GenError with the given code.
func New(code string, format string, args ...any) GenError {
	return GenError{
		Level:   Error,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewWarning creates a non-fatal GenError with the given code.
func NewWarning(code string, format string, args ...any) GenError {
	return GenError{
		Level:   Warning,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithNotes returns a copy of the diagnostic with context notes appended.
func (e GenError) WithNotes(notes ...string) GenError {
	e.Notes = append(append([]string{}, e.Notes...), notes...)
	return e
}

// Panic aborts with a structural-misuse diagnostic. Structural misuse
// is a programming error in the composition layer, not a recoverable
// input condition, so it is not surfaced as an error value.
func Panic(code string, format string, args ...any) {
	panic(New(code, format, args...))
}
