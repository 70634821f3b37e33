package dsl

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// ErrorContext indicates the environment where parse errors will be displayed
type ErrorContext string

const (
	// ErrorContextTerminal indicates errors will be displayed in a terminal with ANSI colors
	ErrorContextTerminal ErrorContext = "terminal"
	// ErrorContextPlain indicates errors will be displayed without ANSI codes (HTTP responses, logs)
	ErrorContextPlain ErrorContext = "plain"
)

// Error is the single error kind raised by the parser. It carries the
// offending token and its position when known, plus a remediation hint.
// Sanitizer, mapper, inference, and the generators are total and never
// produce one.
type Error struct {
	Message string `json:"error"`
	Token   string `json:"token,omitempty"`
	Index   int    `json:"index"` // token position, -1 when unknown
	Hint    string `json:"hint,omitempty"`
}

// NewError creates a parse error with the given message
func NewError(message string) *Error {
	return &Error{Message: message, Index: -1}
}

// WithToken records the token that caused the error
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// WithIndex records the zero-based token position where the error occurred
func (e *Error) WithIndex(index int) *Error {
	e.Index = index
	return e
}

// WithHint adds a remediation suggestion shown alongside the message
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Format(ErrorContextPlain)
}

// Format generates a context-appropriate error message
func (e *Error) Format(ctx ErrorContext) string {
	if ctx == ErrorContextTerminal {
		return e.formatTerminal()
	}
	return e.formatPlain()
}

// formatPlain creates a concise single-line error for HTTP responses and logs
func (e *Error) formatPlain() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.Token != "" {
		fmt.Fprintf(&sb, " (token %q", e.Token)
		if e.Index >= 0 {
			fmt.Fprintf(&sb, " at position %d", e.Index)
		}
		sb.WriteString(")")
	} else if e.Index >= 0 {
		fmt.Fprintf(&sb, " (at position %d)", e.Index)
	}
	if e.Hint != "" {
		sb.WriteString(". Hint: ")
		sb.WriteString(e.Hint)
	}
	return sb.String()
}

// formatTerminal creates a rich colored error for terminal display
func (e *Error) formatTerminal() string {
	msg := pterm.Red(e.Message)

	if e.Token != "" || e.Index >= 0 {
		msg += fmt.Sprintf("\n\n%s", pterm.LightCyan("Context:"))
		if e.Token != "" {
			msg += fmt.Sprintf("\n  %s '%s'", pterm.Yellow("Token:"), e.Token)
		}
		if e.Index >= 0 {
			msg += fmt.Sprintf("\n  %s %d", pterm.Yellow("Position:"), e.Index)
		}
	}

	if e.Hint != "" {
		msg += fmt.Sprintf("\n\n%s\n  %s", pterm.Green("Hint:"), e.Hint)
	}

	return msg
}
