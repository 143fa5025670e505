package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
)

// Banner displays a title between full-width separator rules.
func Banner(w io.Writer, title string) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}

// Rule displays a full-width separator rule.
func Rule(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", 60))
}

// Success displays a success message.
func Success(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", successColor.Sprint("✓"), fmt.Sprintf(format, args...))
}

// Error displays an error message.
func Error(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", errorColor.Sprint("✗"), fmt.Sprintf(format, args...))
}

// Warning displays a warning message.
func Warning(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", warningColor.Sprint("⚠"), fmt.Sprintf(format, args...))
}

// Info displays an informational message.
func Info(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", infoColor.Sprint("ℹ"), fmt.Sprintf(format, args...))
}

// Message displays a plain message followed by a newline.
func Message(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format, args...)
	fmt.Fprintln(w)
}

// Newline prints a blank line.
func Newline(w io.Writer) {
	fmt.Fprintln(w)
}

// FormatList formats items as an indented bullet list.
func FormatList(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("  - %s\n", item))
	}
	return sb.String()
}
