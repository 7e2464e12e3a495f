package easyterm_test

import (
	"testing"

	"github.com/hexop/disquiz/quiz/terminal/colorterm/easyterm"
	"github.com/hexop/disquiz/test"
)

func TestInitialise_requiresFiles(t *testing.T) {
	et := &easyterm.EasyTerm{}
	test.ExpectFailure(t, et.Initialise(nil, nil))
}

func TestGeometry_zeroValue(t *testing.T) {
	et := &easyterm.EasyTerm{}
	g := et.Geometry()
	test.ExpectEquality(t, g.Rows, uint16(0))
	test.ExpectEquality(t, g.Cols, uint16(0))
}
