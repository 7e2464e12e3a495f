// Package challenges is the catalog of quiz functions: the source the
// user is shown and the instruction sequence they are expected to type.
// the builtin catalog is compiled with the bytecode chunk emitter;
// additional challenges can be loaded from a YAML file.
package challenges

import (
	"fmt"

	"github.com/hexop/disquiz/bytecode"
)

// Difficulty grades a challenge.
type Difficulty int

// List of difficulties, in ascending order.
const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return "unknown"
}

// ParseDifficulty converts a difficulty name, as found on the command
// line or in a challenge file.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("unknown difficulty (%s)", s)
}

// Challenge is one quiz function.
type Challenge struct {
	// Name uniquely identifies the challenge. personal bests are
	// recorded against it
	Name string

	Difficulty Difficulty

	// the source listing shown to the user
	Source []string

	// the expected disassembly
	Instructions []bytecode.Instruction
}

// fromChunk builds a challenge from a compiled chunk.
func fromChunk(name string, difficulty Difficulty, source []string, chunk *bytecode.Chunk) (Challenge, error) {
	instructions, err := chunk.Instructions()
	if err != nil {
		return Challenge{}, fmt.Errorf("challenge %s: %w", name, err)
	}
	return Challenge{
		Name:         name,
		Difficulty:   difficulty,
		Source:       source,
		Instructions: instructions,
	}, nil
}

// Filter returns the challenges with the given difficulty.
func Filter(list []Challenge, difficulty Difficulty) []Challenge {
	filtered := make([]Challenge, 0, len(list))
	for _, c := range list {
		if c.Difficulty == difficulty {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
