// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flow

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// TerminalIO is the blocking prompt surface the state machine drives. The
// stdin implementation below is used by the CLI; tests inject a scripted
// double.
type TerminalIO interface {
	// Prompt asks a free-text question. An empty submission returns def.
	Prompt(text, def string) (string, error)

	// Choice asks a question with a fixed option set and re-asks until the
	// answer matches one option (case-insensitive). It returns the matched
	// option in its canonical spelling.
	Choice(text string, options []string) (string, error)

	// Notice shows an informational line outside the question flow.
	Notice(text string)

	// Errorf shows a recoverable input error before the step is re-asked.
	Errorf(format string, args ...any)
}

// ConsoleIO reads answers line by line from an input stream.
type ConsoleIO struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleIO returns a TerminalIO on stdin/stdout.
func NewConsoleIO() *ConsoleIO {
	return &ConsoleIO{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// Prompt implements TerminalIO.
func (c *ConsoleIO) Prompt(text, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(c.out, "%s [%s]: ", text, def)
	} else {
		fmt.Fprintf(c.out, "%s: ", text)
	}
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" && def != "" {
		return def, nil
	}
	return line, nil
}

// Choice implements TerminalIO.
func (c *ConsoleIO) Choice(text string, options []string) (string, error) {
	for {
		answer, err := c.Prompt(fmt.Sprintf("%s (%s)", text, strings.Join(options, "/")), "")
		if err != nil {
			return "", err
		}
		for _, opt := range options {
			if strings.EqualFold(strings.TrimSpace(answer), opt) {
				return opt, nil
			}
		}
		c.Errorf("choose one of: %s", strings.Join(options, ", "))
	}
}

// Notice implements TerminalIO.
func (c *ConsoleIO) Notice(text string) {
	fmt.Fprintln(c.out, color.YellowString(text))
}

// Errorf implements TerminalIO.
func (c *ConsoleIO) Errorf(format string, args ...any) {
	fmt.Fprintln(c.out, color.RedString(format, args...))
}
