package terminal_test

import (
	"testing"

	"github.com/hexop/disquiz/quiz/terminal"
	"github.com/hexop/disquiz/test"
)

func TestPromptString(t *testing.T) {
	p := terminal.Prompt{Type: terminal.PromptTypeInstruction, Offset: 4}
	test.ExpectEquality(t, p.String(), "  4: ")

	p = terminal.Prompt{Type: terminal.PromptTypeInstruction, Offset: 128}
	test.ExpectEquality(t, p.String(), "128: ")

	p = terminal.Prompt{Type: terminal.PromptTypeConfirm, Content: "reset? [y/N] "}
	test.ExpectEquality(t, p.String(), "reset? [y/N] ")
}

func TestStyleIsPrompt(t *testing.T) {
	test.ExpectSuccess(t, terminal.StylePrompt.IsPrompt())
	test.ExpectFailure(t, terminal.StyleFeedback.IsPrompt())
	test.ExpectFailure(t, terminal.StyleError.IsPrompt())
}
