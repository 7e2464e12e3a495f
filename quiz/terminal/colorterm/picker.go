package colorterm

import (
	"strings"

	"github.com/hexop/disquiz/quiz/terminal"
	"github.com/hexop/disquiz/quiz/terminal/colorterm/easyterm"
	"github.com/hexop/disquiz/quiz/terminal/colorterm/easyterm/ansi"
)

// colors for the picker rows. the cursor row and the currently active row
// are distinguished with 24-bit pens; the two are mutually exclusive with
// the cursor taking precedence.
var (
	pickerCursorPen  = ansi.PenRGB(180, 160, 255)
	pickerCurrentPen = ansi.PenRGB(227, 160, 75)
)

// number of rows reserved for the heading, the rule, the blank line and
// the footer.
const pickerChrome = 4

// TermPick implements the terminal.Input interface. the picker takes over
// the full screen until the user selects an entry or cancels.
//
// terminal state (raw mode, cursor visibility, screen contents) is
// restored on every exit path through the deferred calls.
func (ct *ColorTerminal) TermPick(heading string, entries []terminal.PickerEntry, current int) (int, error) {
	if err := ct.RawMode(); err != nil {
		return -1, err
	}
	defer ct.CanonicalMode()

	ct.write(ansi.CursorHide)
	defer ct.write("%s%s", ansi.CursorShow, ansi.ClearScreen)

	viewport := int(ct.Geometry().Rows) - pickerChrome
	if viewport < 5 {
		viewport = 5
	}

	return ct.pick(heading, entries, current, viewport)
}

// pick is the loop behind TermPick(). the screen is cleared and repainted
// on every state change.
func (ct *ColorTerminal) pick(heading string, entries []terminal.PickerEntry, current int, viewport int) (int, error) {
	cursor := current
	if cursor < 0 || cursor >= len(entries) {
		cursor = 0
	}

	for {
		ct.write("%s%s", ansi.ClearScreen, ct.renderPicker(heading, entries, cursor, viewport))

		r, err := ct.reader.next()
		if err != nil {
			return -1, terminal.ErrPickCancelled
		}

		switch r {
		case easyterm.KeyEsc:
			seq, err := easyterm.DecodeEscape(ct.reader.next)
			if err != nil {
				return -1, terminal.ErrPickCancelled
			}
			switch seq.Type {
			case easyterm.SeqCursorUp:
				if cursor > 0 {
					cursor--
				}
			case easyterm.SeqCursorDown:
				if cursor < len(entries)-1 {
					cursor++
				}
			case easyterm.SeqEscape:
				// double-escape
				return -1, terminal.ErrPickCancelled
			}

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			return cursor, nil

		case 'q', easyterm.KeyInterrupt:
			return -1, terminal.ErrPickCancelled
		}
	}
}

// renderPicker builds the full screen contents for one repaint. rows are
// joined with CRLF because the terminal is in raw mode.
func (ct *ColorTerminal) renderPicker(heading string, entries []terminal.PickerEntry, cursor int, viewport int) string {
	offset, count := scrollWindow(len(entries), viewport, cursor)

	s := strings.Builder{}
	s.WriteString(heading)
	s.WriteString("\r\n")
	s.WriteString(strings.Repeat("─", 40))
	s.WriteString("\r\n")

	for i := offset; i < offset+count; i++ {
		e := entries[i]

		marker := " "
		if e.Done {
			marker = ansi.Pens["green"] + "✓" + ansi.NormalPen
		}

		row := "  " + marker + " " + e.Label
		if i == cursor {
			row = pickerCursorPen + row + ansi.NormalPen
		} else if e.Current {
			row = pickerCurrentPen + row + ansi.NormalPen
		}
		s.WriteString(row)
		s.WriteString("\r\n")
	}

	s.WriteString("\r\n")
	s.WriteString("↑↓ navigate | Enter select | q/^C cancel")

	return s.String()
}

// scrollWindow computes the visible window of the entry list: the whole
// list when it fits in the viewport, otherwise a window centred on the
// cursor and clamped so it never runs past either end of the list.
func scrollWindow(total, viewport, cursor int) (offset, count int) {
	if total <= viewport {
		return 0, total
	}

	half := viewport / 2
	switch {
	case cursor < half:
		offset = 0
	case cursor >= total-(viewport-half):
		offset = total - viewport
	default:
		offset = cursor - half
	}

	return offset, viewport
}
