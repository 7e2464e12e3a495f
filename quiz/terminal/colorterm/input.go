package colorterm

import (
	"unicode"

	"github.com/hexop/disquiz/quiz/terminal"
	"github.com/hexop/disquiz/quiz/terminal/colorterm/easyterm"
	"github.com/hexop/disquiz/quiz/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
//
// the terminal is in raw mode for the duration of the call. every exit
// path, including the hotkey conditions, restores canonical mode through
// the deferred call.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if err := ct.RawMode(); err != nil {
		return "", err
	}
	defer ct.CanonicalMode()

	return ct.readLine(prompt.String())
}

// readLine is the editing loop behind TermRead(). it works entirely
// through ct.reader and ct.write so that it can be exercised by tests.
func (ct *ColorTerminal) readLine(prompt string) (string, error) {
	ed := newEditor(ct.history)

	for {
		ct.redrawInput(prompt, ed)

		r, err := ct.reader.next()
		if err != nil {
			ct.eraseInputLine()
			return "", terminal.ErrEndOfInput
		}

		switch r {
		case easyterm.KeyNavigate:
			ct.eraseInputLine()
			return "", terminal.ErrNavigate

		case easyterm.KeyEndOfInput:
			ct.eraseInputLine()
			return "", terminal.ErrEndOfInput

		case easyterm.KeyInterrupt:
			ct.eraseInputLine()
			return "", terminal.ErrInterrupt

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			// empty lines are rejected locally. the quiz loop never
			// sees them
			if len(ed.buf) == 0 {
				continue
			}
			ct.write("\r\n")
			line := ed.String()
			ct.history.append(line)
			return line, nil

		case easyterm.KeyEsc:
			seq, err := easyterm.DecodeEscape(ct.reader.next)
			if err != nil {
				ct.eraseInputLine()
				return "", terminal.ErrEndOfInput
			}
			ct.applySequence(seq, ed)

		case easyterm.KeyBackspace, easyterm.KeyBackspaceAlt:
			ed.backspace()

		case easyterm.KeyStartOfLine:
			ed.home()

		case easyterm.KeyEndOfLine:
			ed.end()

		case easyterm.KeyKillToEnd:
			ed.killToEnd()

		case easyterm.KeyKillToStart:
			ed.killToStart()

		case easyterm.KeyDeleteWord:
			ed.deleteWordBackwardSpace()

		case easyterm.KeyYank:
			ed.yank()

		case easyterm.KeyReverseSearch:
			if err := ct.reverseSearch(prompt, ed); err != nil {
				return "", err
			}

		default:
			if unicode.IsPrint(r) {
				ed.insert(r)
			}
		}
	}
}

// applySequence dispatches a decoded escape sequence to the editor.
// unknown sequences have already been fully consumed and are ignored here.
func (ct *ColorTerminal) applySequence(seq easyterm.Sequence, ed *editor) {
	switch seq.Type {
	case easyterm.SeqCursorUp:
		ed.historyUp()
	case easyterm.SeqCursorDown:
		ed.historyDown()
	case easyterm.SeqCursorForward:
		ed.right()
	case easyterm.SeqCursorBackward:
		ed.left()
	case easyterm.SeqHome:
		ed.home()
	case easyterm.SeqEnd:
		ed.end()
	case easyterm.SeqDelete:
		ed.deleteForward()
	case easyterm.SeqWordForward:
		ed.wordRight()
	case easyterm.SeqWordBackward:
		ed.wordLeft()
	case easyterm.SeqAlt:
		switch seq.Alt {
		case 'b':
			ed.wordLeft()
		case 'f':
			ed.wordRight()
		case 'd':
			ed.deleteWordForward()
		case rune(easyterm.KeyBackspace), rune(easyterm.KeyBackspaceAlt):
			ed.deleteWordBackwardAlnum()
		}
	}
}

// redrawInput repaints the prompt and the edit buffer and places the
// terminal cursor at the editor's cursor position. the whole line is
// cleared and redrawn on every keystroke.
func (ct *ColorTerminal) redrawInput(prompt string, ed *editor) {
	ct.write("\r%s%s%s%s%s", ansi.ClearLine,
		ansi.PenStyles["bold"], prompt, ansi.NormalPen, ed.String())
	ct.write("\r%s", ansi.CursorMove(len([]rune(prompt))+ed.cursor))
}

// eraseInputLine removes the current input line from the display. this is
// a mandatory side effect of the hotkey conditions: the caller's next
// line of output must start on a clean row.
func (ct *ColorTerminal) eraseInputLine() {
	ct.write("\r%s", ansi.ClearLine)
}
