// Package quiz implements the quiz loop: presenting challenges, checking
// the user's typed disassembly instruction by instruction, and keeping
// score and personal bests.
package quiz

import (
	"errors"
	"fmt"
	"time"

	"pkt.systems/pslog"

	"github.com/hexop/disquiz/challenges"
	"github.com/hexop/disquiz/quiz/terminal"
	"github.com/hexop/disquiz/state"
)

// Result is the outcome of a single challenge within a session.
type Result int

// List of results.
const (
	ResultUnseen Result = iota
	ResultCorrect
	ResultIncorrect
)

// Quiz is a single run of the program: a list of challenges, a terminal
// to ask the questions through, and the persistent record of bests.
type Quiz struct {
	term terminal.Terminal
	list []challenges.Challenge

	results []Result
	current int

	sta   *state.State
	store *state.Store

	// the key the session best is recorded under. the difficulty filter
	// in effect, or "all"
	sessionKey string

	log pslog.Logger
}

// NewQuiz is the preferred method of initialisation for the Quiz type.
func NewQuiz(term terminal.Terminal, list []challenges.Challenge,
	store *state.Store, sessionKey string, logger pslog.Logger) (*Quiz, error) {

	if len(list) == 0 {
		return nil, errors.New("quiz: no challenges to play")
	}

	return &Quiz{
		term:       term,
		list:       list,
		results:    make([]Result, len(list)),
		sta:        store.Load(),
		store:      store,
		sessionKey: sessionKey,
		log:        logger,
	}, nil
}

// Run plays challenges until the user interrupts or every challenge has
// been attempted. the summary is printed and the personal-best state is
// saved before returning.
func (qz *Quiz) Run(started time.Time) error {
	for {
		err := qz.playChallenge(qz.current)

		switch {
		case err == nil:
			if !qz.advance() {
				qz.finish(started)
				return qz.store.Save(qz.sta)
			}

		case errors.Is(err, terminal.ErrNavigate):
			qz.navigate()

		case errors.Is(err, terminal.ErrEndOfInput):
			qz.reveal(qz.current)
			if !qz.advance() {
				qz.finish(started)
				return qz.store.Save(qz.sta)
			}

		case errors.Is(err, terminal.ErrInterrupt):
			qz.finish(started)
			return qz.store.Save(qz.sta)

		default:
			return err
		}
	}
}

// advance moves to the next unattempted challenge, wrapping around the
// end of the list. returns false when every challenge has been attempted.
func (qz *Quiz) advance() bool {
	for i := 1; i <= len(qz.list); i++ {
		idx := (qz.current + i) % len(qz.list)
		if qz.results[idx] == ResultUnseen {
			qz.current = idx
			return true
		}
	}
	return false
}

// finish prints the session summary and records the session best if the
// whole catalog was answered correctly.
func (qz *Quiz) finish(started time.Time) {
	correct := 0
	incorrect := 0
	for _, r := range qz.results {
		switch r {
		case ResultCorrect:
			correct++
		case ResultIncorrect:
			incorrect++
		}
	}

	if qz.log != nil {
		qz.log.Debug("session finished", "correct", correct, "incorrect", incorrect)
	}

	qz.term.TermPrintLine(terminal.StyleFeedback, "")
	qz.term.TermPrintLine(terminal.StyleFeedback, "Thanks for playing! :)")
	qz.term.TermPrintLine(terminal.StyleFeedback, "")
	qz.term.TermPrintLine(terminal.StyleFeedback, "Results")
	qz.term.TermPrintLine(terminal.StyleFeedback, "-------")
	qz.term.TermPrintLine(terminal.StyleCorrect, fmt.Sprintf("Correct: %d", correct))
	qz.term.TermPrintLine(terminal.StyleIncorrect, fmt.Sprintf("Incorrect: %d", incorrect))

	if correct == len(qz.list) {
		elapsed := time.Since(started)
		prev, had := qz.sta.SessionBest(qz.sessionKey)
		if qz.sta.RecordSession(qz.sessionKey, elapsed) {
			if had {
				qz.term.TermPrintLine(terminal.StyleRecord,
					fmt.Sprintf("New session best: %s (was %s)",
						state.FormatTime(elapsed), state.FormatTime(prev)))
			} else {
				qz.term.TermPrintLine(terminal.StyleRecord,
					fmt.Sprintf("Session best: %s", state.FormatTime(elapsed)))
			}
		}
	}
}
