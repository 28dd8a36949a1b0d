package adapters

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/conneroisu/rfs/internal/errors"
	"github.com/conneroisu/rfs/internal/interfaces"
)

// ConsoleNotifier prints user-facing messages with a styled severity label.
type ConsoleNotifier struct {
	mu     sync.Mutex
	out    io.Writer
	styles map[errors.Severity]lipgloss.Style
}

// NewConsoleNotifier creates a notifier writing to out. Colors are only
// emitted when out is a terminal.
func NewConsoleNotifier(out io.Writer) interfaces.Notifier {
	r := lipgloss.NewRenderer(out)
	return &ConsoleNotifier{
		out: out,
		styles: map[errors.Severity]lipgloss.Style{
			errors.SeverityError:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
			errors.SeverityWarning: r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
			errors.SeverityInfo:    r.NewStyle().Foreground(lipgloss.Color("10")),
		},
	}
}

// Notify writes "<severity>: <message>".
func (n *ConsoleNotifier) Notify(_ context.Context, severity errors.Severity, message string) {
	label := severity.String()
	if style, ok := n.styles[severity]; ok {
		label = style.Render(label)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "%s: %s\n", label, message)
}
