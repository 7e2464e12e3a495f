package challenges

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hexop/disquiz/bytecode"
)

// the on-disk form of a user-defined challenge file.
type challengeFile struct {
	Challenges []struct {
		Name         string `yaml:"name"`
		Difficulty   string `yaml:"difficulty"`
		Source       string `yaml:"source"`
		Instructions []struct {
			Op      string `yaml:"op"`
			Operand string `yaml:"operand"`
		} `yaml:"instructions"`
	} `yaml:"challenges"`
}

// LoadFile reads user-defined challenges from a YAML file. instructions
// are given by mnemonic and display operand; byte offsets are derived
// from the instruction set's operand widths.
func LoadFile(path string) ([]Challenge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("challenges: %w", err)
	}
	return loadYAML(data)
}

func loadYAML(data []byte) ([]Challenge, error) {
	var file challengeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("challenges: %w", err)
	}

	list := make([]Challenge, 0, len(file.Challenges))
	for _, fc := range file.Challenges {
		if fc.Name == "" {
			return nil, fmt.Errorf("challenges: challenge with no name")
		}

		difficulty, err := ParseDifficulty(fc.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("challenges: %s: %w", fc.Name, err)
		}

		if len(fc.Instructions) == 0 {
			return nil, fmt.Errorf("challenges: %s: no instructions", fc.Name)
		}

		instructions := make([]bytecode.Instruction, 0, len(fc.Instructions))
		offset := 0
		for _, fi := range fc.Instructions {
			op, ok := bytecode.OpcodeByName(fi.Op)
			if !ok {
				return nil, fmt.Errorf("challenges: %s: unknown opcode (%s)", fc.Name, fi.Op)
			}

			kind := op.OperandKind()
			if kind != bytecode.OperandNone && fi.Operand == "" {
				return nil, fmt.Errorf("challenges: %s: %s requires an operand", fc.Name, fi.Op)
			}
			if kind == bytecode.OperandNone && fi.Operand != "" {
				return nil, fmt.Errorf("challenges: %s: %s does not take an operand", fc.Name, fi.Op)
			}

			instructions = append(instructions, bytecode.Instruction{
				Offset:  offset,
				Opcode:  op,
				Opname:  fi.Op,
				Operand: fi.Operand,
				Lenient: kind == bytecode.OperandJump,
			})
			offset += op.Width()
		}

		source := strings.Split(strings.TrimRight(fc.Source, "\n"), "\n")

		list = append(list, Challenge{
			Name:         fc.Name,
			Difficulty:   difficulty,
			Source:       source,
			Instructions: instructions,
		})
	}

	return list, nil
}
