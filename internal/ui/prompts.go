package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// In is where prompts read answers from.
var In io.Reader = os.Stdin

// reader buffers In across prompts so piped answers are not lost between
// questions. It is rebuilt when In is replaced.
var (
	reader    *bufio.Reader
	readerSrc io.Reader
)

// AskYesNo prompts the user with a yes/no question.
// Returns true for yes (Y/y/empty when defaultYes), false for no.
func AskYesNo(prompt string, defaultYes bool) bool {
	if defaultYes {
		_, _ = fmt.Fprintf(Out, "  %s [Y/n] ", prompt)
	} else {
		_, _ = fmt.Fprintf(Out, "  %s [y/N] ", prompt)
	}

	response := strings.ToLower(readLine())
	if response == "" {
		return defaultYes
	}

	return response == "y" || response == "yes"
}

// AskString prompts the user for a string input.
// Returns "" when input is closed.
func AskString(prompt string) string {
	_, _ = fmt.Fprintf(Out, "  %s: ", prompt)
	return readLine()
}

func readLine() string {
	if reader == nil || readerSrc != In {
		reader = bufio.NewReader(In)
		readerSrc = In
	}
	response, _ := reader.ReadString('\n')
	return strings.TrimSpace(response)
}
