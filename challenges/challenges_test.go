package challenges

import (
	"strings"
	"testing"

	"github.com/hexop/disquiz/test"
)

func TestCatalog(t *testing.T) {
	catalog, err := Catalog()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, len(catalog) > 0)

	names := make(map[string]bool)
	for _, c := range catalog {
		test.ExpectSuccess(t, c.Name != "")
		test.ExpectSuccess(t, len(c.Source) > 0)
		test.ExpectSuccess(t, len(c.Instructions) > 0)

		// names are unique. personal bests are keyed on them
		test.ExpectFailure(t, names[c.Name])
		names[c.Name] = true

		// offsets are strictly increasing
		for i := 1; i < len(c.Instructions); i++ {
			test.ExpectSuccess(t, c.Instructions[i].Offset > c.Instructions[i-1].Offset)
		}
	}
}

func TestCatalog_jumpsAreLenient(t *testing.T) {
	catalog, err := Catalog()
	test.ExpectSuccess(t, err)

	lenient := 0
	for _, c := range catalog {
		for _, inst := range c.Instructions {
			if inst.Lenient {
				lenient++
				test.ExpectSuccess(t, inst.Operand != "")
			}
		}
	}

	// the catalog must exercise the lenient comparison path
	test.ExpectSuccess(t, lenient > 0)
}

func TestFilter(t *testing.T) {
	catalog, err := Catalog()
	test.ExpectSuccess(t, err)

	total := 0
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		filtered := Filter(catalog, d)
		for _, c := range filtered {
			test.ExpectEquality(t, c.Difficulty, d)
		}
		total += len(filtered)
	}
	test.ExpectEquality(t, total, len(catalog))
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("medium")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, Medium)

	_, err = ParseDifficulty("impossible")
	test.ExpectFailure(t, err)
}

const goodYAML = `
challenges:
  - name: double
    difficulty: easy
    source: |
      func double(x) {
          return x + x
      }
    instructions:
      - op: load_param
        operand: x
      - op: load_param
        operand: x
      - op: add
      - op: return
`

func TestLoadYAML(t *testing.T) {
	list, err := loadYAML([]byte(goodYAML))
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(list), 1)

	c := list[0]
	test.ExpectEquality(t, c.Name, "double")
	test.ExpectEquality(t, c.Difficulty, Easy)
	test.DemandEquality(t, len(c.Source), 3)
	test.DemandEquality(t, len(c.Instructions), 4)

	// offsets are derived from the operand widths
	test.ExpectEquality(t, c.Instructions[0].Offset, 0)
	test.ExpectEquality(t, c.Instructions[1].Offset, 2)
	test.ExpectEquality(t, c.Instructions[2].Offset, 4)
	test.ExpectEquality(t, c.Instructions[3].Offset, 5)

	test.ExpectEquality(t, c.Instructions[0].Operand, "x")
	test.ExpectEquality(t, c.Instructions[2].Operand, "")
}

func TestLoadYAML_errors(t *testing.T) {
	tests := []struct {
		yaml     string
		expected string
	}{
		{"challenges: [{difficulty: easy, instructions: [{op: pop}]}]", "no name"},
		{"challenges: [{name: x, difficulty: tough, instructions: [{op: pop}]}]", "unknown difficulty"},
		{"challenges: [{name: x, difficulty: easy}]", "no instructions"},
		{"challenges: [{name: x, difficulty: easy, instructions: [{op: frobnicate}]}]", "unknown opcode"},
		{"challenges: [{name: x, difficulty: easy, instructions: [{op: load_const}]}]", "requires an operand"},
		{"challenges: [{name: x, difficulty: easy, instructions: [{op: pop, operand: y}]}]", "does not take an operand"},
		{"not yaml at all {{{", "challenges:"},
	}

	for _, tt := range tests {
		_, err := loadYAML([]byte(tt.yaml))
		if test.ExpectFailure(t, err) {
			test.ExpectSuccess(t, strings.Contains(err.Error(), tt.expected))
		}
	}
}
