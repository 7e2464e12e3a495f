// Package ansi defines the ANSI control sequences used by the colorterm
// packages: pen colors, cursor control and screen control.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// ansi attribute.
const (
	attrBold      = 1
	attrUnderline = 4
	attrInverse   = 7
	attrStrike    = 8
)

var colors = map[string]int{
	"black":   colBlack,
	"red":     colRed,
	"green":   colGreen,
	"yellow":  colYellow,
	"blue":    colBlue,
	"magenta": colMagenta,
	"cyan":    colCyan,
	"white":   colWhite,
	"normal":  colDefault,
}

var attributes = map[string]int{
	"bold":      attrBold,
	"underline": attrUnderline,
	"inverse":   attrInverse,
	"strike":    attrStrike,
}

// Pens is the table of bright colors to be used for text.
var Pens map[string]string

// DimPens is the table of dim colors to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles map[string]string

// NormalPen is the CSI sequence for regular text.
var NormalPen string

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	NormalPen, _ = ColorBuild("", "", "", false)

	for c := range colors {
		if c == "normal" {
			continue
		}
		Pens[c], _ = ColorBuild(c, "", "", true)
		DimPens[c], _ = ColorBuild(c, "", "", false)
	}

	for a := range attributes {
		PenStyles[a], _ = ColorBuild("", "", a, false)
	}
}

// ColorBuild creates the CSI sequence for the pen with the specified
// foreground color, background color and attribute. empty strings are
// allowed for any argument and mean "leave unspecified".
func ColorBuild(pen, paper, attribute string, brightPen bool) (string, error) {
	s := strings.Builder{}
	s.Grow(16)
	s.WriteString("\033[")

	if pen != "" {
		col, ok := colors[strings.ToLower(pen)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
		target := targetPen
		if brightPen {
			target = targetBrightPen
		}
		s.WriteString(fmt.Sprintf("%d%d", target, col))
	}

	if paper != "" {
		col, ok := colors[strings.ToLower(paper)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI paper (%s)", paper)
		}
		if s.Len() > 2 {
			s.WriteString(";")
		}
		s.WriteString(fmt.Sprintf("%d%d", targetPaper, col))
	}

	if attribute != "" {
		attr, ok := attributes[strings.ToLower(attribute)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
		if s.Len() > 2 {
			s.WriteString(";")
		}
		s.WriteString(fmt.Sprintf("%d", attr))
	}

	s.WriteString("m")

	return s.String(), nil
}

// PenRGB returns the CSI sequence for a 24-bit foreground color.
func PenRGB(r, g, b int) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
}

// Pen256 returns the CSI sequence for a 256-color palette foreground color.
func Pen256(col int) string {
	return fmt.Sprintf("\033[38;5;%dm", col)
}

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// ClearScreen is the CSI sequence to clear the screen and home the cursor.
const ClearScreen = "\033[2J\033[H"

// CursorHide is the CSI sequence to make the cursor invisible.
const CursorHide = "\033[?25l"

// CursorShow is the CSI sequence to make the cursor visible again.
const CursorShow = "\033[?25h"

// CursorStore is the CSI sequence to store the current cursor position.
const CursorStore = "\033[s"

// CursorRestore is the CSI sequence to restore the cursor position to a
// previous store.
const CursorRestore = "\033[u"

// CursorForwardOne is the CSI sequence to move the cursor forward (to the
// right for latin fonts) one character.
const CursorForwardOne = "\033[1C"

// CursorBackwardOne is the CSI sequence to move the cursor backward (to the
// left for latin fonts) one character.
const CursorBackwardOne = "\033[1D"

// CursorMove is the CSI sequence to move the cursor n characters forward
// (positive numbers) or n characters backwards (negative numbers).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}
