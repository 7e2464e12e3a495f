package colorterm

import (
	"unicode"

	"github.com/hexop/disquiz/quiz/terminal"
	"github.com/hexop/disquiz/quiz/terminal/colorterm/easyterm"
	"github.com/hexop/disquiz/quiz/terminal/colorterm/easyterm/ansi"
)

// reverseSearch runs the reverse incremental search submode, entered from
// the editing loop with ctrl-r. the search maintains its own query buffer;
// the edit buffer is only modified if the search is accepted.
//
// key handling in the submode:
//
//	printable   append to the query, search again from the current match
//	ctrl-r      advance to the next older match for the same query
//	backspace   remove the last query character, search from the end
//	enter, esc  accept: replace the edit buffer with the match, if any
//	ctrl-g      cancel: leave the edit buffer untouched
//	ctrl-c      interrupt, as in the editing loop
func (ct *ColorTerminal) reverseSearch(prompt string, ed *editor) error {
	query := make([]rune, 0, 32)

	// index into the history of the current match, or -1 for no match.
	// with an empty query there is no match yet
	matchIdx := -1

	match := func() string {
		if matchIdx < 0 {
			return ""
		}
		return ct.history.entry(matchIdx)
	}

	for {
		ct.write("\r%s(reverse-i-search)`%s': %s", ansi.ClearLine, string(query), match())

		r, err := ct.reader.next()
		if err != nil {
			ct.eraseInputLine()
			return terminal.ErrEndOfInput
		}

		switch r {
		case easyterm.KeyReverseSearch:
			if matchIdx > 0 {
				if idx := ct.history.searchBackward(string(query), matchIdx-1); idx >= 0 {
					matchIdx = idx
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyBackspaceAlt:
			if len(query) > 0 {
				query = query[:len(query)-1]
			}
			matchIdx = -1
			if len(query) > 0 {
				matchIdx = ct.history.searchBackward(string(query), ct.history.len()-1)
			}

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			if matchIdx >= 0 {
				ed.set(match())
			}
			return nil

		case easyterm.KeyEsc:
			seq, err := easyterm.DecodeEscape(ct.reader.next)
			if err != nil {
				ct.eraseInputLine()
				return terminal.ErrEndOfInput
			}
			if seq.Type == easyterm.SeqEscape {
				if matchIdx >= 0 {
					ed.set(match())
				}
				return nil
			}
			// other sequences are inert during a search

		case easyterm.KeyNavigate:
			// cancel. the edit buffer is untouched and the normal
			// prompt is redrawn by the editing loop
			return nil

		case easyterm.KeyInterrupt:
			ct.eraseInputLine()
			return terminal.ErrInterrupt

		default:
			if unicode.IsPrint(r) {
				query = append(query, r)
				from := ct.history.len() - 1
				if matchIdx >= 0 {
					from = matchIdx
				}
				matchIdx = ct.history.searchBackward(string(query), from)
			}
		}
	}
}
