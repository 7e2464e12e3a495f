// Package colorterm implements the Terminal interface for the quiz. it
// supports color output, line editing, input history with reverse search,
// and the full-screen challenge picker.
//
// all terminal control is performed with raw ANSI/VT100 sequences via the
// easyterm and ansi sub-packages. no line-editing or TUI library is used.
package colorterm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/hexop/disquiz/quiz/terminal/colorterm/easyterm"
)

// ColorTerminal implements the terminal.Terminal interface for ANSI capable
// terminals.
type ColorTerminal struct {
	easyterm.EasyTerm

	reader  *runeReader
	output  io.Writer
	history *history

	silenced bool
}

// Initialise performs any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ct.reader = newRuneReader(os.Stdin)
	ct.output = os.Stdout
	ct.history = newHistory()

	return nil
}

// CleanUp performs any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.write("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

// IsInteractive satisfies the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Output interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// write is used for all output from the colorterm package. output goes
// through an io.Writer rather than the underlying terminal file so that
// the editing and picker loops can be exercised by the package tests.
func (ct *ColorTerminal) write(s string, a ...any) {
	fmt.Fprintf(ct.output, s, a...)
}

// runeReader wraps the input stream. the line editor and the picker read
// one rune at a time and the escape decoder needs a blocking "next rune"
// function.
type runeReader struct {
	br *bufio.Reader
}

func newRuneReader(r io.Reader) *runeReader {
	return &runeReader{br: bufio.NewReader(r)}
}

func (rr *runeReader) next() (rune, error) {
	r, _, err := rr.br.ReadRune()
	return r, err
}
