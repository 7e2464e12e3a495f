package bytecode_test

import (
	"strings"
	"testing"

	"github.com/hexop/disquiz/bytecode"
	"github.com/hexop/disquiz/test"
)

func TestChunkPools(t *testing.T) {
	c := bytecode.NewChunk("x", "y")

	// pools are deduplicated
	test.ExpectEquality(t, c.AddConstant("2"), 0)
	test.ExpectEquality(t, c.AddConstant("3"), 1)
	test.ExpectEquality(t, c.AddConstant("2"), 0)

	test.ExpectEquality(t, c.AddLocal("acc"), 0)
	test.ExpectEquality(t, c.AddLocal("acc"), 0)

	test.ExpectEquality(t, c.AddName("print"), 0)
	test.ExpectEquality(t, c.AddName("len"), 1)
}

func TestInstructions(t *testing.T) {
	c := bytecode.NewChunk("x")
	c.Emit(bytecode.OpLoadParam, 0)
	c.Emit(bytecode.OpLoadConst, c.AddConstant("2"))
	c.Emit(bytecode.OpMul)
	c.Emit(bytecode.OpReturn)

	instructions, err := c.Instructions()
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(instructions), 4)

	test.ExpectEquality(t, instructions[0].Offset, 0)
	test.ExpectEquality(t, instructions[0].Opname, "load_param")
	test.ExpectEquality(t, instructions[0].Operand, "x")

	test.ExpectEquality(t, instructions[1].Offset, 2)
	test.ExpectEquality(t, instructions[1].Opname, "load_const")
	test.ExpectEquality(t, instructions[1].Operand, "2")

	test.ExpectEquality(t, instructions[2].Offset, 4)
	test.ExpectEquality(t, instructions[2].Opname, "mul")
	test.ExpectEquality(t, instructions[2].Operand, "")

	test.ExpectEquality(t, instructions[3].Offset, 5)
	test.ExpectEquality(t, instructions[3].Opname, "return")
}

func TestInstructions_jump(t *testing.T) {
	c := bytecode.NewChunk("x")
	c.Emit(bytecode.OpLoadParam, 0)
	jmp := c.Emit(bytecode.OpJumpIfFalse, 0)
	c.Emit(bytecode.OpLoadConst, c.AddConstant("1"))
	c.Emit(bytecode.OpReturn)
	c.PatchJump(jmp)
	c.Emit(bytecode.OpLoadParam, 0)
	c.Emit(bytecode.OpReturn)

	instructions, err := c.Instructions()
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(instructions), 6)

	// the patched jump points past the first return
	test.ExpectEquality(t, instructions[1].Opname, "jump_if_false")
	test.ExpectEquality(t, instructions[1].Operand, "8")
	test.ExpectEquality(t, instructions[1].Lenient, true)
	test.ExpectEquality(t, instructions[4].Offset, 8)

	// non-jump operands are strict
	test.ExpectEquality(t, instructions[0].Lenient, false)
}

func TestInstructions_malformed(t *testing.T) {
	// unknown opcode
	c := &bytecode.Chunk{Code: []byte{0xff}}
	_, err := c.Instructions()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "unknown opcode"))

	// operand bytes missing at the end of the code
	c = &bytecode.Chunk{Code: []byte{byte(bytecode.OpLoadConst)}}
	_, err = c.Instructions()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "truncated"))

	// operand indexes outside its pool
	c = &bytecode.Chunk{Code: []byte{byte(bytecode.OpLoadConst), 5}}
	_, err = c.Instructions()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "pool"))
}

func TestDisassemble(t *testing.T) {
	c := bytecode.NewChunk("x")
	c.Emit(bytecode.OpLoadParam, 0)
	c.Emit(bytecode.OpReturn)

	test.ExpectEquality(t, c.Disassemble(), "  0: load_param x\n  2: return\n")
}

func TestOpcodeByName(t *testing.T) {
	op, ok := bytecode.OpcodeByName("load_const")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, op, bytecode.OpLoadConst)

	_, ok = bytecode.OpcodeByName("no_such_op")
	test.ExpectFailure(t, ok)
}

func TestOpcodeWidth(t *testing.T) {
	test.ExpectEquality(t, bytecode.OpReturn.Width(), 1)
	test.ExpectEquality(t, bytecode.OpLoadConst.Width(), 2)
	test.ExpectEquality(t, bytecode.OpJump.Width(), 3)
}
