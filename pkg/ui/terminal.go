package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	red    = lipgloss.Color("#FF5F5F")
	yellow = lipgloss.Color("#FFD75F")
	green  = lipgloss.Color("#5FD75F")
	cyan   = lipgloss.Color("#5FD7FF")

	errorStyle   = lipgloss.NewStyle().Foreground(red).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(yellow)
	successStyle = lipgloss.NewStyle().Foreground(green)
	labelStyle   = lipgloss.NewStyle().Foreground(cyan).Bold(true)
	valueStyle   = lipgloss.NewStyle().Foreground(yellow)
)

var (
	noColor bool

	// messages go to stderr; stdout carries action output only
	out io.Writer = os.Stderr
)

// SetNoColor disables styling of terminal messages and tables
func SetNoColor(disabled bool) {
	noColor = disabled
}

// SetOutput redirects terminal messages
func SetOutput(w io.Writer) {
	out = w
}

func render(style lipgloss.Style, text string) string {
	if noColor {
		return text
	}
	return style.Render(text)
}

func withArg(msg string, args []interface{}) string {
	if len(args) > 0 {
		return msg + ": " + fmt.Sprintf("%v", args[0])
	}
	return msg
}

// PrintError prints an error message in red
func PrintError(msg string, args ...interface{}) {
	fmt.Fprintln(out, render(errorStyle, withArg(msg, args)))
}

// PrintWarning prints a warning message in yellow
func PrintWarning(msg string, args ...interface{}) {
	fmt.Fprintln(out, render(warningStyle, withArg(msg, args)))
}

// PrintSuccess prints a success message in green
func PrintSuccess(msg string) {
	fmt.Fprintln(out, render(successStyle, msg))
}

// PrintInfo prints a labelled value
func PrintInfo(label string, value string) {
	fmt.Fprintf(out, "%s: %s\n", render(labelStyle, label), render(valueStyle, value))
}
