package bytecode

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Instruction is one decoded instruction, with its operand resolved to
// the human-readable form the quiz expects the user to type.
type Instruction struct {
	// byte offset of the instruction within the chunk
	Offset int

	Opcode Opcode
	Opname string

	// the resolved operand. empty for opcodes without an operand
	Operand string

	// lenient operands (jump offsets) accept any typed value
	Lenient bool
}

// Instructions decodes the chunk's code into its instruction sequence.
// an error indicates a malformed chunk: an unknown opcode, truncated
// operand bytes, or an operand indexing outside its pool.
func (c *Chunk) Instructions() ([]Instruction, error) {
	instructions := make([]Instruction, 0, len(c.Code)/2)

	for pc := 0; pc < len(c.Code); {
		op := Opcode(c.Code[pc])
		if _, ok := opcodeDefs[op]; !ok {
			return nil, fmt.Errorf("disassembly: unknown opcode 0x%02x at offset %d", c.Code[pc], pc)
		}

		width := op.operandWidth()
		if pc+1+width > len(c.Code) {
			return nil, fmt.Errorf("disassembly: truncated operand for %s at offset %d", op, pc)
		}

		inst := Instruction{
			Offset: pc,
			Opcode: op,
			Opname: op.String(),
		}

		operand := 0
		switch width {
		case 1:
			operand = int(c.Code[pc+1])
		case 2:
			operand = int(binary.BigEndian.Uint16(c.Code[pc+1:]))
		}

		var err error
		inst.Operand, err = c.resolveOperand(op, operand)
		if err != nil {
			return nil, fmt.Errorf("disassembly: %w (at offset %d)", err, pc)
		}
		inst.Lenient = op.OperandKind() == OperandJump

		instructions = append(instructions, inst)
		pc += 1 + width
	}

	return instructions, nil
}

func (c *Chunk) resolveOperand(op Opcode, operand int) (string, error) {
	pool := func(name string, entries []string) (string, error) {
		if operand >= len(entries) {
			return "", fmt.Errorf("%s operand %d outside %s pool", op, operand, name)
		}
		return entries[operand], nil
	}

	switch op.OperandKind() {
	case OperandNone:
		return "", nil
	case OperandConst:
		return pool("constant", c.Constants)
	case OperandParam:
		return pool("parameter", c.Params)
	case OperandLocal:
		return pool("local", c.Locals)
	case OperandName:
		return pool("name", c.Names)
	case OperandCount, OperandJump:
		return fmt.Sprintf("%d", operand), nil
	}

	return "", fmt.Errorf("unhandled operand kind for %s", op)
}

// Disassemble returns a printable listing of the chunk, one instruction
// per line.
func (c *Chunk) Disassemble() string {
	s := strings.Builder{}

	instructions, err := c.Instructions()
	if err != nil {
		s.WriteString(fmt.Sprintf("; %v\n", err))
		return s.String()
	}

	for _, inst := range instructions {
		if inst.Operand == "" {
			s.WriteString(fmt.Sprintf("%3d: %s\n", inst.Offset, inst.Opname))
		} else {
			s.WriteString(fmt.Sprintf("%3d: %s %s\n", inst.Offset, inst.Opname, inst.Operand))
		}
	}

	return s.String()
}
