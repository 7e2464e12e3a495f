package terminal

// Style is used to hint at what the terminal should do with a line of
// output. terminal implementations are free to interpret the hint as they
// see fit, including ignoring it.
type Style int

// List of styles.
const (
	// the prompt for the next instruction. no trailing newline
	StylePrompt Style = iota

	// the source listing of the current challenge
	StyleSource

	// general information about the state of the quiz
	StyleFeedback

	// a help reminder (key bindings etc.)
	StyleHelp

	// the user answered a challenge correctly
	StyleCorrect

	// the user answered a challenge incorrectly
	StyleIncorrect

	// a personal best announcement
	StyleRecord

	// a real error
	StyleError
)

// IsPrompt returns true if the style is a prompt style, meaning that no
// newline should be added after the text.
func (s Style) IsPrompt() bool {
	return s == StylePrompt
}
