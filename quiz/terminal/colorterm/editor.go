package colorterm

import "unicode"

// editor is the state for a single TermRead() invocation: the edit buffer,
// the cursor, and the transient view onto the history. the functions on
// the type are pure buffer operations; drawing is handled by the input
// loop.
type editor struct {
	buf    []rune
	cursor int

	// the history is owned by the ColorTerminal and outlives the editor
	hist *history

	// index into the history. equal to hist.len() when editing a fresh
	// line rather than a recalled one
	histIdx int

	// the in-progress line is snapshotted the first time the user
	// navigates away from it, so that returning past the newest history
	// entry restores it
	snapshot []rune

	// the most recently killed text, for yanking
	kill []rune
}

func newEditor(hist *history) *editor {
	return &editor{
		buf:     make([]rune, 0, 64),
		hist:    hist,
		histIdx: hist.len(),
	}
}

func (ed *editor) String() string {
	return string(ed.buf)
}

// set replaces the whole buffer and places the cursor at the end. used for
// history and search recall.
func (ed *editor) set(s string) {
	ed.buf = append(ed.buf[:0], []rune(s)...)
	ed.cursor = len(ed.buf)
}

func (ed *editor) insert(r rune) {
	ed.buf = append(ed.buf, 0)
	copy(ed.buf[ed.cursor+1:], ed.buf[ed.cursor:])
	ed.buf[ed.cursor] = r
	ed.cursor++
	ed.histIdx = ed.hist.len()
}

func (ed *editor) backspace() bool {
	if ed.cursor == 0 {
		return false
	}
	ed.buf = append(ed.buf[:ed.cursor-1], ed.buf[ed.cursor:]...)
	ed.cursor--
	ed.histIdx = ed.hist.len()
	return true
}

func (ed *editor) deleteForward() bool {
	if ed.cursor >= len(ed.buf) {
		return false
	}
	ed.buf = append(ed.buf[:ed.cursor], ed.buf[ed.cursor+1:]...)
	ed.histIdx = ed.hist.len()
	return true
}

func (ed *editor) left() {
	if ed.cursor > 0 {
		ed.cursor--
	}
}

func (ed *editor) right() {
	if ed.cursor < len(ed.buf) {
		ed.cursor++
	}
}

func (ed *editor) home() {
	ed.cursor = 0
}

func (ed *editor) end() {
	ed.cursor = len(ed.buf)
}

// a word is a maximal run of alphanumeric-or-underscore characters.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// wordLeftBoundary returns the position of the start of the word to the
// left of the cursor. leading non-word characters are skipped first.
func (ed *editor) wordLeftBoundary() int {
	i := ed.cursor
	for i > 0 && !isWordRune(ed.buf[i-1]) {
		i--
	}
	for i > 0 && isWordRune(ed.buf[i-1]) {
		i--
	}
	return i
}

// wordRightBoundary returns the position of the end of the word to the
// right of the cursor. leading non-word characters are skipped first.
func (ed *editor) wordRightBoundary() int {
	i := ed.cursor
	for i < len(ed.buf) && !isWordRune(ed.buf[i]) {
		i++
	}
	for i < len(ed.buf) && isWordRune(ed.buf[i]) {
		i++
	}
	return i
}

func (ed *editor) wordLeft() {
	ed.cursor = ed.wordLeftBoundary()
}

func (ed *editor) wordRight() {
	ed.cursor = ed.wordRightBoundary()
}

// remove deletes the characters in [from, to), remembering them for a
// later yank.
func (ed *editor) remove(from, to int) {
	if from >= to {
		return
	}
	ed.kill = append(ed.kill[:0], ed.buf[from:to]...)
	ed.buf = append(ed.buf[:from], ed.buf[to:]...)
	if ed.cursor > to {
		ed.cursor -= to - from
	} else if ed.cursor > from {
		ed.cursor = from
	}
	ed.histIdx = ed.hist.len()
}

func (ed *editor) killToEnd() {
	ed.remove(ed.cursor, len(ed.buf))
}

func (ed *editor) killToStart() {
	ed.remove(0, ed.cursor)
}

// deleteWordBackwardSpace deletes from the cursor to the previous
// whitespace boundary. this is the unix-word-rubout rule: any non-space
// run counts as a word.
func (ed *editor) deleteWordBackwardSpace() {
	i := ed.cursor
	for i > 0 && unicode.IsSpace(ed.buf[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(ed.buf[i-1]) {
		i--
	}
	ed.remove(i, ed.cursor)
}

// deleteWordBackwardAlnum deletes from the cursor to the previous word
// boundary, using the alphanumeric-or-underscore word rule.
func (ed *editor) deleteWordBackwardAlnum() {
	ed.remove(ed.wordLeftBoundary(), ed.cursor)
}

func (ed *editor) deleteWordForward() {
	ed.remove(ed.cursor, ed.wordRightBoundary())
}

func (ed *editor) yank() {
	for _, r := range ed.kill {
		ed.insert(r)
	}
}

// historyUp recalls the next older history entry. the in-progress line is
// snapshotted on the first navigation away from it.
func (ed *editor) historyUp() bool {
	if ed.histIdx == 0 {
		return false
	}
	if ed.histIdx == ed.hist.len() {
		ed.snapshot = append([]rune(nil), ed.buf...)
	}
	ed.histIdx--
	ed.set(ed.hist.entry(ed.histIdx))
	return true
}

// historyDown recalls the next newer history entry, or the snapshotted
// in-progress line when moving past the newest entry.
func (ed *editor) historyDown() bool {
	if ed.histIdx >= ed.hist.len() {
		return false
	}
	ed.histIdx++
	if ed.histIdx == ed.hist.len() {
		ed.set(string(ed.snapshot))
	} else {
		ed.set(ed.hist.entry(ed.histIdx))
	}
	return true
}
