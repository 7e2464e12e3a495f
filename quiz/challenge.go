package quiz

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hexop/disquiz/bytecode"
	"github.com/hexop/disquiz/quiz/terminal"
	"github.com/hexop/disquiz/state"
)

// playChallenge tests the user on a single challenge. a nil return means
// the challenge was attempted to its conclusion (correctly or not); the
// terminal's sentinel conditions are passed through to the caller.
func (qz *Quiz) playChallenge(idx int) error {
	c := qz.list[idx]

	qz.term.TermPrintLine(terminal.StyleFeedback, "")
	for _, line := range c.Source {
		qz.term.TermPrintLine(terminal.StyleSource, line)
	}
	qz.term.TermPrintLine(terminal.StyleFeedback, "Write the disassembly below (line by line).")
	qz.term.TermPrintLine(terminal.StyleHelp, "^G picker / ^D reveal / ^C quit")

	started := time.Now()

	for _, inst := range c.Instructions {
		answer, err := qz.term.TermRead(terminal.Prompt{
			Type:   terminal.PromptTypeInstruction,
			Offset: inst.Offset,
		})
		if err != nil {
			return err
		}

		if !qz.checkAnswer(inst, answer) {
			qz.results[idx] = ResultIncorrect
			return nil
		}
	}

	qz.term.TermPrintLine(terminal.StyleCorrect, "Correct!")
	qz.results[idx] = ResultCorrect
	qz.recordTime(c.Name, time.Since(started))

	return nil
}

// checkAnswer compares one typed line against the expected instruction.
// comparison is case-insensitive. an incorrect answer is reported to the
// user with the expected value.
func (qz *Quiz) checkAnswer(inst bytecode.Instruction, answer string) bool {
	fields := strings.Fields(strings.ToLower(answer))

	if len(fields) == 0 || fields[0] != inst.Opname {
		qz.term.TermPrintLine(terminal.StyleIncorrect,
			fmt.Sprintf("Incorrect opname - %s", inst.Opname))
		return false
	}

	if inst.Operand == "" {
		return true
	}

	// jump offsets are hard to work out by hand. any operand is accepted
	if inst.Lenient {
		return true
	}

	// exactly "opname operand". trailing fields are not accepted
	if len(fields) != 2 {
		qz.term.TermPrintLine(terminal.StyleIncorrect, "Must provide operand!")
		return false
	}

	if fields[1] != strings.ToLower(inst.Operand) {
		qz.term.TermPrintLine(terminal.StyleIncorrect,
			fmt.Sprintf("Incorrect operand - %s", inst.Operand))
		return false
	}

	return true
}

// recordTime records a correct solve and announces personal bests.
func (qz *Quiz) recordTime(name string, elapsed time.Duration) {
	prev, had := qz.sta.ChallengeBest(name)
	if !qz.sta.RecordChallenge(name, elapsed) {
		return
	}

	if had {
		qz.term.TermPrintLine(terminal.StyleRecord,
			fmt.Sprintf("New personal best: %s (was %s)",
				state.FormatTime(elapsed), state.FormatTime(prev)))
	} else {
		qz.term.TermPrintLine(terminal.StyleRecord,
			fmt.Sprintf("Personal best: %s", state.FormatTime(elapsed)))
	}
}

// reveal prints the expected disassembly of a challenge. used when the
// user gives up with ctrl-d. the challenge counts as incorrect.
func (qz *Quiz) reveal(idx int) {
	c := qz.list[idx]

	qz.term.TermPrintLine(terminal.StyleFeedback, "")
	for _, inst := range c.Instructions {
		if inst.Operand == "" {
			qz.term.TermPrintLine(terminal.StyleFeedback,
				fmt.Sprintf("%3d: %s", inst.Offset, inst.Opname))
		} else {
			qz.term.TermPrintLine(terminal.StyleFeedback,
				fmt.Sprintf("%3d: %s %s", inst.Offset, inst.Opname, inst.Operand))
		}
	}

	qz.results[idx] = ResultIncorrect
}

// navigate opens the challenge picker and jumps to the selection, if any.
func (qz *Quiz) navigate() {
	entries := make([]terminal.PickerEntry, len(qz.list))
	for i, c := range qz.list {
		suffix := ""
		if best, ok := qz.sta.ChallengeBest(c.Name); ok {
			suffix = fmt.Sprintf("  %s", state.FormatTime(best))
		}
		entries[i] = terminal.PickerEntry{
			Label:   fmt.Sprintf("%-28s (%s)%s", c.Name, c.Difficulty, suffix),
			Done:    qz.results[i] == ResultCorrect,
			Current: i == qz.current,
		}
	}

	idx, err := qz.term.TermPick("Challenge Navigation (^G)", entries, qz.current)
	if err != nil {
		if !errors.Is(err, terminal.ErrPickCancelled) {
			qz.term.TermPrintLine(terminal.StyleError, err.Error())
		}
		return
	}

	qz.current = idx
}
