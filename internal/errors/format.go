package errors

import (
	"strings"

	"github.com/fatih/color"
)

var (
	// Color functions with auto-detection for terminal support. These fall
	// back to plain text when colors are unavailable.
	errorLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	errorMsg    = color.New(color.FgRed).SprintFunc()
	fixLabel    = color.New(color.FgGreen, color.Bold).SprintFunc()
	bullet      = color.New(color.FgGreen).SprintFunc()
	categoryFmt = color.New(color.FgYellow).SprintFunc()
)

// Format renders a CLIError for terminal display: the categorized message
// followed by its remediation hints, colored when the terminal supports it.
func Format(err *CLIError) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(errorLabel("Error"))
	sb.WriteString(" [")
	sb.WriteString(categoryFmt(err.Category.String()))
	sb.WriteString("]: ")
	sb.WriteString(errorMsg(err.Message))
	sb.WriteString("\n")

	if len(err.Hints) > 0 {
		sb.WriteString("\n")
		sb.WriteString(fixLabel("To fix this:"))
		sb.WriteString("\n")
		for _, hint := range err.Hints {
			sb.WriteString("  ")
			sb.WriteString(bullet("•"))
			sb.WriteString(" ")
			sb.WriteString(hint)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
