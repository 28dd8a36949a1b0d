package adapters

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/conneroisu/rfs/internal/interfaces"
)

// LinePrompter reads one line per prompt from an input stream.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLinePrompter creates a prompter reading from in and writing hints to out.
func NewLinePrompter(in io.Reader, out io.Writer) interfaces.Prompter {
	return &LinePrompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Prompt shows placeholder and reads a line. End of input before any
// character is treated as cancellation.
func (p *LinePrompter) Prompt(ctx context.Context, placeholder string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	fmt.Fprintf(p.out, "%s\n> ", placeholder)

	line, err := p.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, fmt.Errorf("failed to read input: %w", err)
	}
	if err == io.EOF && line == "" {
		return "", false, nil
	}

	return strings.TrimRight(line, "\r\n"), true, nil
}
