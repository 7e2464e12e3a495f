package easyterm

// list of ASCII codes for the control characters handled by the line editor
// and the picker. in raw mode these arrive as plain bytes, never as signals.
const (
	KeyStartOfLine    = 1  // ctrl-a
	KeyInterrupt      = 3  // ctrl-c
	KeyEndOfInput     = 4  // ctrl-d
	KeyEndOfLine      = 5  // ctrl-e
	KeyNavigate       = 7  // ctrl-g
	KeyBackspaceAlt   = 8  // ctrl-h
	KeyTab            = 9
	KeyLineFeed       = 10
	KeyKillToEnd      = 11 // ctrl-k
	KeyCarriageReturn = 13
	KeyReverseSearch  = 18 // ctrl-r
	KeyKillToStart    = 21 // ctrl-u
	KeyDeleteWord     = 23 // ctrl-w
	KeyYank           = 25 // ctrl-y
	KeyEsc            = 27
	KeyBackspace      = 127
)
