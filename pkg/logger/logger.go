// Package logger provides logging functionality for repoconf.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})

	// Command echoes an external command line before it runs.
	Command(line string)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Command does nothing for noop logger.
func (n *noopLogger) Command(_ string) {}

// defaultLogger is a thread-safe logger writing messages and command echoes
// to separate writers.
type defaultLogger struct {
	mu           sync.Mutex
	out          io.Writer
	cmdOut       io.Writer
	prefix       string
	commandStyle lipgloss.Style
	styled       bool
}

// NewDefaultLogger creates a logger that writes messages to stdout and
// command echoes to stderr.
func NewDefaultLogger() Logger {
	return NewWriterLogger(os.Stdout, os.Stderr)
}

// NewVerboseLogger creates a logger that writes everything to stderr, messages
// prefixed with "[VERBOSE] ".
func NewVerboseLogger() Logger {
	l := NewWriterLogger(os.Stderr, os.Stderr).(*defaultLogger)
	l.prefix = "[VERBOSE] "
	return l
}

// NewWriterLogger creates a logger on arbitrary writers. Command echoes are
// rendered faint when cmdOut is a terminal.
func NewWriterLogger(out, cmdOut io.Writer) Logger {
	return &defaultLogger{
		out:          out,
		cmdOut:       cmdOut,
		commandStyle: lipgloss.NewRenderer(cmdOut).NewStyle().Faint(true),
		styled:       isTerminal(cmdOut),
	}
}

// Logf writes a formatted message followed by a newline.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, d.prefix+format+"\n", args...)
}

// Command writes "$ <line>".
func (d *defaultLogger) Command(line string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	echo := "$ " + line
	if d.styled {
		echo = d.commandStyle.Render(echo)
	}
	fmt.Fprintln(d.cmdOut, echo)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
