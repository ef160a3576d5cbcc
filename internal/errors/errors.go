// Package errors provides structured error handling for the chlog CLI:
// categorized errors carrying remediation hints, rendered with color when
// the terminal supports it.
package errors

import "fmt"

// Category represents the type of error that occurred.
type Category int

const (
	// Argument errors are caused by invalid or missing command arguments.
	Argument Category = iota
	// Configuration errors are caused by invalid or missing configuration.
	Configuration
	// Repository errors occur when the git repository cannot serve a request.
	Repository
	// Runtime errors occur during changelog generation or merging.
	Runtime
)

// String returns a human-readable name for the error category.
func (c Category) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Repository:
		return "Repository Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with a category and remediation hints.
type CLIError struct {
	// Category is the type of error.
	Category Category
	// Message is a human-readable description of what went wrong.
	Message string
	// Hints is a list of actionable steps to resolve the error.
	Hints []string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying error for errors.Is and errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// New creates a CLIError with the given category, message, and hints.
func New(category Category, message string, hints ...string) *CLIError {
	return &CLIError{
		Category: category,
		Message:  message,
		Hints:    hints,
	}
}

// Wrap wraps an existing error, preserving its message and the chain.
func Wrap(err error, category Category, hints ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category: category,
		Message:  err.Error(),
		Hints:    hints,
		Err:      err,
	}
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, category Category, format string, args ...any) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category: category,
		Message:  fmt.Sprintf("%s: %v", fmt.Sprintf(format, args...), err),
		Err:      err,
	}
}

// WithHints returns a copy of the error with the given hints attached.
func (e *CLIError) WithHints(hints ...string) *CLIError {
	out := *e
	out.Hints = append(out.Hints, hints...)
	return &out
}
