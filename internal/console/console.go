// Package console implements line-oriented terminal I/O for the calculator.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
)

// Options controls how the console renders output.
type Options struct {
	Color       bool
	ClearScreen bool
}

// Console reads one line per request from in and writes prompts and blocks to out.
type Console struct {
	in          *bufio.Reader
	out         io.Writer
	clearScreen bool
	promptStyle *lipgloss.Style
	warnStyle   *lipgloss.Style
}

// New creates a console. Styling is only applied when Color is set and out
// is a terminal that supports it.
func New(in io.Reader, out io.Writer, opts Options) *Console {
	c := &Console{
		in:          bufio.NewReader(in),
		out:         out,
		clearScreen: opts.ClearScreen,
	}
	if opts.Color {
		renderer := lipgloss.NewRenderer(out)
		prompt := renderer.NewStyle().Foreground(lipgloss.Color("12"))
		warn := renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
		c.promptStyle = &prompt
		c.warnStyle = &warn
	}
	return c
}

// Prompt writes a marker-prefixed message.
func (c *Console) Prompt(msg string) {
	c.println(constants.PromptMarker + render(c.promptStyle, msg))
}

// Warn writes a marker-prefixed error message.
func (c *Console) Warn(msg string) {
	c.println(constants.PromptMarker + render(c.warnStyle, msg))
}

// Println writes an unprefixed line.
func (c *Console) Println(line string) {
	c.println(line)
}

// ReadLine blocks until a full line is available and returns it without the
// line terminator. A final line without a terminator is returned before io.EOF.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Clear wipes the visible output before the next round.
func (c *Console) Clear() {
	if c.clearScreen {
		_, _ = fmt.Fprint(c.out, constants.ClearScreenSequence)
	}
}

func (c *Console) println(line string) {
	_, _ = fmt.Fprintln(c.out, line)
}

func render(style *lipgloss.Style, msg string) string {
	if style == nil {
		return msg
	}
	return style.Render(msg)
}
