// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Search operations
	OpSearch Op = "search artists"
	OpSelect Op = "update selection"
	OpReset  Op = "reset selection"

	// Startup
	OpLoadConfig Op = "load config"
	OpOpenLog    Op = "open log file"
	OpInitialize Op = "initialize application"
)

// describer is implemented by errors that carry a longer human explanation.
type describer interface {
	Description() string
}

// Format creates a user-friendly error message. Errors with a Description
// method are rendered through it instead of Error.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %s", op, text(err))
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %s", op, context, text(err))
}

func text(err error) string {
	var d describer
	if errors.As(err, &d) {
		return d.Description()
	}
	return err.Error()
}
