// Package ui provides user interface utilities for formatted terminal output.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	Bold   = color.New(color.Bold).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()

	// Out receives every message. Stdout is left to command results.
	Out io.Writer = os.Stderr
)

// Info prints an informational message with a cyan arrow.
func Info(format string, args ...interface{}) {
	printMark(Cyan("→"), format, args...)
}

// Success prints a success message with a green checkmark.
func Success(format string, args ...interface{}) {
	printMark(Green("✔"), format, args...)
}

// Fail prints an error message with a red X.
func Fail(format string, args ...interface{}) {
	printMark(Red("✘"), format, args...)
}

// Warn prints a warning message with a yellow circle.
func Warn(format string, args ...interface{}) {
	printMark(Yellow("○"), format, args...)
}

// DimMsg prints a dimmed message.
func DimMsg(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(Out, "  %s\n", Dim(msg))
}

func printMark(mark, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(Out, "  %s %s\n", mark, msg)
}
