// Package console prints the user-facing outcome of a command: successes on
// stdout and errors on stderr, styled when the terminal supports it.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorSuccess = lipgloss.Color("34")  // Green
	colorError   = lipgloss.Color("196") // Red
	colorNotice  = lipgloss.Color("245") // Gray

	SuccessStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	ErrorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	NoticeStyle  = lipgloss.NewStyle().Foreground(colorNotice)
)

// Console writes styled messages.
type Console struct {
	Out io.Writer
	Err io.Writer
}

// New returns a console bound to the given writers; nil means the process
// stdout/stderr.
func New(out, err io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	if err == nil {
		err = os.Stderr
	}
	return &Console{Out: out, Err: err}
}

// Success prints a success line on Out.
func (c *Console) Success(format string, args ...any) {
	fmt.Fprintln(c.Out, SuccessStyle.Render(fmt.Sprintf(format, args...)))
}

// Notice prints a plain informational line on Out.
func (c *Console) Notice(format string, args ...any) {
	fmt.Fprintln(c.Out, NoticeStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error line on Err.
func (c *Console) Error(format string, args ...any) {
	fmt.Fprintln(c.Err, ErrorStyle.Render(fmt.Sprintf(format, args...)))
}
