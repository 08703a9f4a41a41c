package pull

import (
	"fmt"
	"io"

	"github.com/amonks/tiler/internal/markdown"
	"github.com/charmbracelet/lipgloss"
)

const logIndent = 4

// Logger captures structured pull log entries.
type Logger interface {
	Pull(PullLog)
	Move(MoveLog)
}

// PullLog describes a resolved pull.
type PullLog struct {
	Seat   string
	Target Target
	// Workspace is the resolved workspace being pulled.
	Workspace string
	// Current is the workspace the seat was focused on.
	Current string
	// Output is the output receiving the pulled workspace.
	Output string
	NoOp   bool
}

// MoveLog describes a workspace changing owning output. From is empty for
// a workspace that had no output.
type MoveLog struct {
	Workspace string
	From      string
	To        string
}

type noopLogger struct{}

func (noopLogger) Pull(PullLog) {}
func (noopLogger) Move(MoveLog) {}

// ConsoleLogger writes formatted log output.
type ConsoleLogger struct {
	writer      io.Writer
	headerStyle lipgloss.Style
	dimStyle    lipgloss.Style
}

// NewConsoleLogger builds a styled logger for interactive output.
func NewConsoleLogger(writer io.Writer) *ConsoleLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &ConsoleLogger{
		writer:      writer,
		headerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		dimStyle:    lipgloss.NewStyle().Faint(true),
	}
}

// Pull logs a resolved pull.
func (logger *ConsoleLogger) Pull(entry PullLog) {
	if logger == nil {
		return
	}
	header := fmt.Sprintf("Pull %s onto %s:", entry.Target, entry.Output)
	body := fmt.Sprintf("seat %s on workspace %s, pulling workspace %s", entry.Seat, entry.Current, entry.Workspace)
	if entry.NoOp {
		body = fmt.Sprintf("seat %s is already on workspace %s; nothing to do", entry.Seat, entry.Current)
	}
	fmt.Fprintln(logger.writer, logger.headerStyle.Render(header))
	fmt.Fprintln(logger.writer, markdown.IndentBlock(logger.dimStyle.Render(body), logIndent))
}

// Move logs a workspace changing outputs.
func (logger *ConsoleLogger) Move(entry MoveLog) {
	if logger == nil {
		return
	}
	from := entry.From
	if from == "" {
		from = "(none)"
	}
	line := fmt.Sprintf("moved workspace %s: %s -> %s", entry.Workspace, from, entry.To)
	fmt.Fprintln(logger.writer, markdown.IndentBlock(line, logIndent))
}
