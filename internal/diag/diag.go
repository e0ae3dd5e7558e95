// Package diag provides diagnostic types for the expression engine.
package diag

import (
	"fmt"

	"algexpr/internal/span"
)

// Severity indicates the severity of a diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic represents an engine diagnostic message.
type Diagnostic struct {
	Code     string    `json:"code"`     // stable error code, e.g. "E2001"
	Severity Severity  `json:"severity"` // error or warning
	Message  string    `json:"message"`  // human-readable description
	Span     span.Span `json:"span"`     // source location
}

// String returns a human-readable representation of the diagnostic.
func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s at offset %d: %s", d.Code, d.Severity, d.Span.Start, d.Message)
}

// Errorf creates an error diagnostic at the given span.
func Errorf(code string, s span.Span, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Code:     code,
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Span:     s,
	}
}
