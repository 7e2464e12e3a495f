package easyterm

// SequenceType classifies the bytes that follow an ESC byte in the input
// stream.
type SequenceType int

// List of valid SequenceType values.
const (
	// the sequence was consumed but not recognised. callers should treat
	// this as a no-op
	SeqUnknown SequenceType = iota

	// two ESC bytes in succession. used as an explicit cancel signal
	SeqEscape

	// ESC followed directly by a printable or control byte. the byte is in
	// the Alt field of the Sequence
	SeqAlt

	SeqCursorUp
	SeqCursorDown
	SeqCursorForward
	SeqCursorBackward
	SeqHome
	SeqEnd
	SeqDelete
	SeqWordForward
	SeqWordBackward
)

// Sequence is the decoded form of an escape sequence.
type Sequence struct {
	Type SequenceType

	// the modified character for sequences of type SeqAlt
	Alt rune
}

// escape sequences are never longer than this. a sequence that exceeds the
// cap is abandoned and reported as SeqUnknown
const maxSequenceLen = 8

// DecodeEscape reads and classifies an escape sequence. it is called
// immediately after an ESC byte (0x1b) has been read. the next function
// should return the next rune from the input stream, blocking if necessary.
//
// CSI sequences (ESC '[' parameters final) are always consumed up to their
// final byte, even when the final byte is not recognised. a partially
// consumed sequence would corrupt subsequent reads.
func DecodeEscape(next func() (rune, error)) (Sequence, error) {
	r, err := next()
	if err != nil {
		return Sequence{}, err
	}

	switch r {
	case rune(KeyEsc):
		return Sequence{Type: SeqEscape}, nil

	case '[':
		return decodeCSI(next)

	default:
		return Sequence{Type: SeqAlt, Alt: r}, nil
	}
}

// decodeCSI is called once ESC '[' has been read. the parameter bytes are
// digits and semi-colons. the final byte is in the range 0x40 to 0x7e.
func decodeCSI(next func() (rune, error)) (Sequence, error) {
	param := make([]rune, 0, maxSequenceLen)

	for i := 0; i < maxSequenceLen; i++ {
		r, err := next()
		if err != nil {
			return Sequence{}, err
		}

		if (r >= '0' && r <= '9') || r == ';' {
			param = append(param, r)
			continue
		}

		// final byte
		if r < 0x40 || r > 0x7e {
			// not a valid CSI final byte. abandon the sequence
			return Sequence{Type: SeqUnknown}, nil
		}

		return classifyCSI(string(param), r), nil
	}

	// unterminated or pathological sequence
	return Sequence{Type: SeqUnknown}, nil
}

func classifyCSI(param string, final rune) Sequence {
	switch final {
	case 'A':
		return Sequence{Type: SeqCursorUp}
	case 'B':
		return Sequence{Type: SeqCursorDown}
	case 'C':
		// "1;5" is a ctrl-modified cursor key and "1;3" is alt-modified.
		// both are treated as word-wise movement
		if param == "1;5" || param == "1;3" {
			return Sequence{Type: SeqWordForward}
		}
		return Sequence{Type: SeqCursorForward}
	case 'D':
		if param == "1;5" || param == "1;3" {
			return Sequence{Type: SeqWordBackward}
		}
		return Sequence{Type: SeqCursorBackward}
	case 'H':
		return Sequence{Type: SeqHome}
	case 'F':
		return Sequence{Type: SeqEnd}
	case '~':
		switch param {
		case "1", "7":
			return Sequence{Type: SeqHome}
		case "3":
			return Sequence{Type: SeqDelete}
		case "4", "8":
			return Sequence{Type: SeqEnd}
		}
	}
	return Sequence{Type: SeqUnknown}
}
