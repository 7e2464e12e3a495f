// Package easyterm is a wrapper for "github.com/pkg/term/termios". it
// provides some features not present in the third-party package, such as
// terminal geometry, and wraps termios methods in functions with friendlier
// names.
//
// the essential feature of the package is the scoped raw-mode session: the
// canonical terminal attributes are captured once during Initialise() and
// every call to RawMode() is paired, by the caller, with a deferred call to
// CanonicalMode(). restoration therefore happens on every exit path,
// including the user-signalled interrupt conditions.
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"unsafe"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Geometry contains the dimensions of a terminal (usually the output
// terminal).
type Geometry struct {
	// characters
	Rows uint16
	Cols uint16

	// pixels
	X uint16
	Y uint16
}

// EasyTerm is the main container for posix terminals. usually embedded in
// other struct types.
type EasyTerm struct {
	input  *os.File
	output *os.File

	geometry Geometry

	canAttr unix.Termios
	rawAttr unix.Termios

	// sig/ack channels to control the window-resize signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// geometry is updated from the signal handler goroutine so access is
	// protected by the mutex
	mu sync.Mutex
}

// Initialise the fields in the EasyTerm struct. the canonical terminal
// attributes are captured here, once, and are what CanonicalMode() restores.
func (et *EasyTerm) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: an input file is required")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: an output file is required")
	}

	et.input = inputFile
	et.output = outputFile

	// prepare the attributes for the terminal modes we'll be using. note
	// that raw mode means no line buffering, no echo and no signal
	// generation from control characters - every byte is delivered to us
	// and interpreted by us
	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	et.rawAttr = et.canAttr
	termios.Cfmakeraw(&et.rawAttr)

	// set up sig/ack channels for signal handler
	et.terminateHandlerSig = make(chan bool)
	et.terminateHandlerAck = make(chan bool)

	// kickstart window-resize handler
	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			et.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = et.UpdateGeometry()
			case <-et.terminateHandlerSig:
				return
			}
		}
	}()

	return et.UpdateGeometry()
}

// CleanUp closes resources created in the Initialise() function.
func (et *EasyTerm) CleanUp() {
	et.terminateHandlerSig <- true
	<-et.terminateHandlerAck
}

// TermPrint writes the formatted string to the output file.
func (et *EasyTerm) TermPrint(s string, a ...any) {
	et.output.WriteString(fmt.Sprintf(s, a...))
	et.output.Sync()
}

// UpdateGeometry gets the current dimensions (in characters and pixels) of
// the output terminal.
func (et *EasyTerm) UpdateGeometry() error {
	et.mu.Lock()
	defer et.mu.Unlock()

	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, et.output.Fd(),
		uintptr(syscall.TIOCGWINSZ), uintptr(unsafe.Pointer(&et.geometry)))
	if errno != 0 {
		return fmt.Errorf("easyterm: error updating terminal geometry information (%d)", errno)
	}
	return nil
}

// Geometry returns the most recently gathered terminal dimensions.
func (et *EasyTerm) Geometry() Geometry {
	et.mu.Lock()
	defer et.mu.Unlock()
	return et.geometry
}

// CanonicalMode restores the terminal attributes captured by Initialise().
// because the attributes are captured once, sequential RawMode() and
// CanonicalMode() pairs cannot corrupt the saved state.
func (et *EasyTerm) CanonicalMode() error {
	if err := termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}

// RawMode puts terminal into raw mode.
func (et *EasyTerm) RawMode() error {
	if err := termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.rawAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}

// Flush makes sure the terminal's input/output buffers are empty.
func (et *EasyTerm) Flush() error {
	if err := termios.Tcflush(et.input.Fd(), termios.TCIFLUSH); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	if err := termios.Tcflush(et.output.Fd(), termios.TCOFLUSH); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}
