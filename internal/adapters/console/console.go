// Package console provides line-oriented terminal I/O for the calculator.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console reads one line at a time from an input stream and writes prompts
// and results to an output stream. Lines have no length limit. It is not
// safe for concurrent use.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Console over in and out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine blocks until the next line is available and returns it without
// the trailing newline. It returns io.EOF once the input is exhausted and
// ctx.Err() if ctx is already done.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		// A final line without a newline still counts.
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Prompt writes text without a newline and reads the answer.
func (c *Console) Prompt(ctx context.Context, text string) (string, error) {
	c.Print(text)
	return c.ReadLine(ctx)
}

// Print writes text as is.
func (c *Console) Print(text string) {
	_, _ = io.WriteString(c.out, text)
}

// Println writes text followed by a newline.
func (c *Console) Println(text string) {
	_, _ = io.WriteString(c.out, text+"\n")
}

// Printf writes a formatted line.
func (c *Console) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
