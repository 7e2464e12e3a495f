package colorterm

import (
	"github.com/hexop/disquiz/quiz/terminal"
	"github.com/hexop/disquiz/quiz/terminal/colorterm/easyterm/ansi"
)

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	ct.write("\r")

	// the content string is written with an explicit %s verb. it can
	// contain anything, including printf verbs
	switch style {
	case terminal.StylePrompt:
		ct.write("%s", ansi.PenStyles["bold"])
	case terminal.StyleSource:
		ct.write("%s", ansi.Pens["blue"])
	case terminal.StyleFeedback:
		ct.write("%s", ansi.DimPens["white"])
	case terminal.StyleHelp:
		ct.write("%s", ansi.DimPens["white"])
	case terminal.StyleCorrect:
		ct.write("%s", ansi.Pens["green"])
	case terminal.StyleIncorrect:
		ct.write("%s", ansi.Pens["red"])
	case terminal.StyleRecord:
		ct.write("%s", ansi.Pens["yellow"])
	case terminal.StyleError:
		ct.write("%s* ", ansi.Pens["red"])
	}

	ct.write("%s%s", s, ansi.NormalPen)

	// add a newline if the style is anything other than a prompt
	if !style.IsPrompt() {
		ct.write("\n")
	}
}
