package cmd

import (
	"fmt"
	"io"

	"github.com/otherjamesbrown/meetsum-cli/workflow"
)

// ANSI color codes for console notices.
const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

// ConsoleNotifier prints workflow notices to a writer, one line per
// notice. It is the CLI stand-in for the toast popups of a GUI.
type ConsoleNotifier struct {
	out io.Writer
}

// NewConsoleNotifier creates a ConsoleNotifier writing to out.
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

// Notify implements workflow.Notifier.
func (n *ConsoleNotifier) Notify(notice workflow.Notice) {
	switch notice.Level {
	case workflow.NoticeError:
		fmt.Fprintf(n.out, "%s✗ %s%s %s\n", colorRed, notice.Title, colorReset, notice.Detail)
	case workflow.NoticeSuccess:
		fmt.Fprintf(n.out, "%s✓ %s%s %s\n", colorGreen, notice.Title, colorReset, notice.Detail)
	default:
		fmt.Fprintf(n.out, "%s %s\n", notice.Title, notice.Detail)
	}
}
