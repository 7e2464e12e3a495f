// Package plainterm implements the Terminal interface for the quiz. it's
// as simple as simple can be and offers no special features: no colors,
// no line editing and no challenge picker. useful when input or output is
// a pipe rather than a terminal.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hexop/disquiz/quiz/terminal"
)

// PlainTerminal is the most basic terminal interface. it keeps the
// terminal in whatever mode it started, probably cooked mode.
type PlainTerminal struct {
	input    *bufio.Scanner
	output   io.Writer
	silenced bool
}

// Initialise performs any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	pt.input = bufio.NewScanner(os.Stdin)
	pt.output = os.Stdout
	return nil
}

// InitialiseWith sets up the terminal with explicit input and output
// streams. used by tests and by callers that want to script a session.
func (pt *PlainTerminal) InitialiseWith(in io.Reader, out io.Writer) error {
	pt.input = bufio.NewScanner(in)
	pt.output = out
	return nil
}

// CleanUp performs any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// IsInteractive satisfies the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return false
}

// Silence implements the terminal.Output interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// TermRead implements the terminal.Input interface. hotkey conditions
// cannot be signalled from a plain terminal; the end of the input stream
// is reported as ErrEndOfInput.
func (pt *PlainTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	for {
		fmt.Fprint(pt.output, prompt.String())

		if !pt.input.Scan() {
			if err := pt.input.Err(); err != nil {
				return "", err
			}
			return "", terminal.ErrEndOfInput
		}

		line := strings.TrimSpace(pt.input.Text())
		if line != "" {
			return line, nil
		}
	}
}

// TermPick implements the terminal.Input interface. there is no picker in
// a plain terminal.
func (pt *PlainTerminal) TermPick(_ string, _ []terminal.PickerEntry, _ int) (int, error) {
	return -1, terminal.ErrPickCancelled
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	fmt.Fprint(pt.output, s)
	if !style.IsPrompt() {
		fmt.Fprintln(pt.output)
	}
}
