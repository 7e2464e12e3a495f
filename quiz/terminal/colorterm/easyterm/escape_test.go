package easyterm_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/hexop/disquiz/quiz/terminal/colorterm/easyterm"
	"github.com/hexop/disquiz/test"
)

// nextFunc returns a "next rune" function reading from s, as the decoder
// would see the input stream immediately after an ESC byte.
func nextFunc(s string) func() (rune, error) {
	r := strings.NewReader(s)
	return func() (rune, error) {
		ch, _, err := r.ReadRune()
		return ch, err
	}
}

func TestDecodeEscape(t *testing.T) {
	tests := []struct {
		input    string
		expected easyterm.SequenceType
	}{
		{"[A", easyterm.SeqCursorUp},
		{"[B", easyterm.SeqCursorDown},
		{"[C", easyterm.SeqCursorForward},
		{"[D", easyterm.SeqCursorBackward},
		{"[H", easyterm.SeqHome},
		{"[F", easyterm.SeqEnd},
		{"[1~", easyterm.SeqHome},
		{"[7~", easyterm.SeqHome},
		{"[4~", easyterm.SeqEnd},
		{"[8~", easyterm.SeqEnd},
		{"[3~", easyterm.SeqDelete},
		{"[1;5C", easyterm.SeqWordForward},
		{"[1;3C", easyterm.SeqWordForward},
		{"[1;5D", easyterm.SeqWordBackward},
		{"[1;3D", easyterm.SeqWordBackward},
		{"\x1b", easyterm.SeqEscape},
	}

	for _, tt := range tests {
		seq, err := easyterm.DecodeEscape(nextFunc(tt.input))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, seq.Type, tt.expected)
	}
}

func TestDecodeEscape_alt(t *testing.T) {
	seq, err := easyterm.DecodeEscape(nextFunc("b"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, seq.Type, easyterm.SeqAlt)
	test.ExpectEquality(t, seq.Alt, 'b')

	// alt-backspace
	seq, err = easyterm.DecodeEscape(nextFunc("\x7f"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, seq.Type, easyterm.SeqAlt)
	test.ExpectEquality(t, seq.Alt, rune(0x7f))
}

// unrecognised CSI sequences must be consumed in their entirety. the byte
// after the final byte belongs to the next read.
func TestDecodeEscape_unknownConsumed(t *testing.T) {
	next := nextFunc("[25Gz")

	seq, err := easyterm.DecodeEscape(next)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, seq.Type, easyterm.SeqUnknown)

	r, err := next()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, 'z')
}

// a sequence that never terminates must be abandoned at the cap rather
// than consuming input forever.
func TestDecodeEscape_unterminated(t *testing.T) {
	next := nextFunc("[0123456789012345")
	seq, err := easyterm.DecodeEscape(next)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, seq.Type, easyterm.SeqUnknown)
}

func TestDecodeEscape_endOfInput(t *testing.T) {
	_, err := easyterm.DecodeEscape(nextFunc(""))
	test.ExpectSuccess(t, errors.Is(err, io.EOF))

	_, err = easyterm.DecodeEscape(nextFunc("["))
	test.ExpectSuccess(t, errors.Is(err, io.EOF))
}
