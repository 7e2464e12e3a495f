package colorterm

import (
	"testing"

	"github.com/hexop/disquiz/test"
)

func TestEditor_insert(t *testing.T) {
	ed := newEditor(newHistory())

	for _, r := range "load_const" {
		ed.insert(r)
	}
	test.ExpectEquality(t, ed.String(), "load_const")
	test.ExpectEquality(t, ed.cursor, 10)

	// insertion in the middle
	ed.home()
	ed.right()
	ed.right()
	ed.right()
	ed.right()
	ed.insert('X')
	test.ExpectEquality(t, ed.String(), "loadX_const")
	test.ExpectEquality(t, ed.cursor, 5)
}

func TestEditor_deletion(t *testing.T) {
	ed := newEditor(newHistory())
	ed.set("abc")

	// backspace at the start and delete at the end are no-ops
	ed.home()
	test.ExpectFailure(t, ed.backspace())
	ed.end()
	test.ExpectFailure(t, ed.deleteForward())
	test.ExpectEquality(t, ed.String(), "abc")

	test.ExpectSuccess(t, ed.backspace())
	test.ExpectEquality(t, ed.String(), "ab")
	ed.home()
	test.ExpectSuccess(t, ed.deleteForward())
	test.ExpectEquality(t, ed.String(), "b")
}

func TestEditor_wordMovement(t *testing.T) {
	ed := newEditor(newHistory())
	ed.set("load_const  2")

	ed.wordLeft()
	test.ExpectEquality(t, ed.cursor, 12)
	ed.wordLeft()
	test.ExpectEquality(t, ed.cursor, 0)

	// word movement is idempotent at the buffer edges
	ed.wordLeft()
	test.ExpectEquality(t, ed.cursor, 0)

	ed.wordRight()
	test.ExpectEquality(t, ed.cursor, 10)
	ed.wordRight()
	test.ExpectEquality(t, ed.cursor, 13)
	ed.wordRight()
	test.ExpectEquality(t, ed.cursor, 13)
}

func TestEditor_killAndYank(t *testing.T) {
	ed := newEditor(newHistory())
	ed.set("load_const 2")

	ed.home()
	ed.wordRight()
	ed.killToEnd()
	test.ExpectEquality(t, ed.String(), "load_const")

	// yank reinserts the most recent kill at the cursor
	ed.yank()
	test.ExpectEquality(t, ed.String(), "load_const 2")

	ed.killToStart()
	test.ExpectEquality(t, ed.String(), "")
	test.ExpectEquality(t, ed.cursor, 0)
	ed.yank()
	test.ExpectEquality(t, ed.String(), "load_const 2")
}

func TestEditor_deleteWordBackward(t *testing.T) {
	// the ctrl-w rule treats any non-space run as a word
	ed := newEditor(newHistory())
	ed.set("jump @10")
	ed.deleteWordBackwardSpace()
	test.ExpectEquality(t, ed.String(), "jump ")

	// the alt-backspace rule stops at non-alphanumerics
	ed.set("jump @10")
	ed.deleteWordBackwardAlnum()
	test.ExpectEquality(t, ed.String(), "jump @")
}

func TestEditor_deleteWordForward(t *testing.T) {
	ed := newEditor(newHistory())
	ed.set("load_const 2")
	ed.home()
	ed.deleteWordForward()
	test.ExpectEquality(t, ed.String(), " 2")
}

func TestEditor_historyRecall(t *testing.T) {
	hist := newHistory()
	hist.append("first")
	hist.append("second")

	ed := newEditor(hist)
	ed.set("abc")

	// walking up recalls entries newest first
	test.ExpectSuccess(t, ed.historyUp())
	test.ExpectEquality(t, ed.String(), "second")
	test.ExpectSuccess(t, ed.historyUp())
	test.ExpectEquality(t, ed.String(), "first")
	test.ExpectFailure(t, ed.historyUp())

	// walking back down past the newest entry restores the line that was
	// being edited
	test.ExpectSuccess(t, ed.historyDown())
	test.ExpectEquality(t, ed.String(), "second")
	test.ExpectSuccess(t, ed.historyDown())
	test.ExpectEquality(t, ed.String(), "abc")
	test.ExpectFailure(t, ed.historyDown())
}

func TestEditor_modificationResetsHistory(t *testing.T) {
	hist := newHistory()
	hist.append("first")
	hist.append("second")

	ed := newEditor(hist)
	test.ExpectSuccess(t, ed.historyUp())
	test.ExpectEquality(t, ed.String(), "second")

	// editing a recalled line detaches it from the history. the next
	// up-arrow starts again from the newest entry
	ed.insert('!')
	test.ExpectSuccess(t, ed.historyUp())
	test.ExpectEquality(t, ed.String(), "second")
}

func TestHistory(t *testing.T) {
	hist := newHistory()
	hist.append("foo")
	hist.append("")
	hist.append("bar")
	hist.append("foobar")

	// empty lines are never recorded
	test.ExpectEquality(t, hist.len(), 3)

	test.ExpectEquality(t, hist.searchBackward("foo", hist.len()-1), 2)
	test.ExpectEquality(t, hist.searchBackward("foo", 1), 0)
	test.ExpectEquality(t, hist.searchBackward("quux", hist.len()-1), -1)

	// a from index past the end is clamped
	test.ExpectEquality(t, hist.searchBackward("bar", 100), 2)
}
