// Package terminal defines the operations required by the quiz's user
// interface. implementations can be found in the colorterm and plainterm
// sub-packages.
package terminal

import "errors"

// Sentinel errors returned by TermRead() and TermPick(). these are not
// failures, they are the expected alternate outcomes of a read: callers
// branch on them with errors.Is().
var (
	// the user has asked for the challenge picker (ctrl-g)
	ErrNavigate = errors.New("navigation requested")

	// the input stream has ended (ctrl-d)
	ErrEndOfInput = errors.New("end of input")

	// the user has interrupted the session (ctrl-c)
	ErrInterrupt = errors.New("user interrupt")

	// the picker was dismissed without a selection
	ErrPickCancelled = errors.New("pick cancelled")
)

// PickerEntry is one row in the challenge picker.
type PickerEntry struct {
	// the text of the row
	Label string

	// whether the entry should be decorated with a completion marker
	Done bool

	// whether the entry is the currently active challenge. at most one
	// entry should have this set
	Current bool
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns one submitted line of input. the returned error is
	// nil on normal completion or one of ErrNavigate, ErrEndOfInput or
	// ErrInterrupt when the user has signalled the corresponding condition.
	// any other error is a real failure.
	TermRead(prompt Prompt) (string, error)

	// TermPick hands the full screen to a list picker. returns the index
	// of the selected entry; or ErrPickCancelled if the user dismissed the
	// picker without selecting
	TermPick(heading string, entries []PickerEntry, current int) (int, error)

	// IsInteractive should return true for implementations that expect a
	// human at the other end
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the quiz loop.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all implementations will need to do
	// anything
	Initialise() error

	// Restore the terminal to its original state. for example, making sure
	// the terminal is returned to canonical mode
	CleanUp()

	// Silence all output except error messages
	Silence(silenced bool)
}
