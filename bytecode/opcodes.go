// Package bytecode defines the instruction set the quiz asks about: a
// small stack machine with constants, parameters, locals and structured
// jumps. challenges carry a compiled Chunk and the quiz compares the
// user's typed answers against the chunk's disassembly.
package bytecode

import "fmt"

// Opcode represents a bytecode instruction. opcodes are organised into
// ranges by category.
type Opcode byte

// List of opcodes.
const (
	// stack manipulation (0x00-0x0f)
	OpNop Opcode = 0x00
	OpPop Opcode = 0x01
	OpDup Opcode = 0x02

	// constants and variables (0x10-0x2f)
	OpLoadConst  Opcode = 0x10 // push constant: load_const <index:u8>
	OpLoadParam  Opcode = 0x20 // push parameter: load_param <index:u8>
	OpLoadLocal  Opcode = 0x21 // push local: load_local <slot:u8>
	OpStoreLocal Opcode = 0x22 // pop and store: store_local <slot:u8>
	OpLoadGlobal Opcode = 0x23 // push named global: load_global <name:u8>

	// arithmetic and logic (0x30-0x3f)
	OpAdd     Opcode = 0x30
	OpSub     Opcode = 0x31
	OpMul     Opcode = 0x32
	OpDiv     Opcode = 0x33
	OpMod     Opcode = 0x34
	OpPow     Opcode = 0x35
	OpNeg     Opcode = 0x36
	OpInvert  Opcode = 0x37
	OpXor     Opcode = 0x38
	OpAnd     Opcode = 0x39
	OpOr      Opcode = 0x3a
	OpCompare Opcode = 0x3b // compare <operator name:u8>

	// compound values (0x40-0x4f)
	OpIndex     Opcode = 0x40
	OpBuildList Opcode = 0x41 // build_list <count:u8>

	// calls and control flow (0x50-0x6f)
	OpCall        Opcode = 0x50 // call <argument count:u8>
	OpJump        Opcode = 0x60 // jump <offset:u16>
	OpJumpIfFalse Opcode = 0x61 // jump_if_false <offset:u16>
	OpIterNext    Opcode = 0x62 // iter_next <end offset:u16>
	OpGetIter     Opcode = 0x63

	// function exit (0x70-0x7f)
	OpReturn Opcode = 0x70
)

// OperandKind describes how an opcode's operand bytes are interpreted.
type OperandKind int

// List of operand kinds.
const (
	// the opcode has no operand
	OperandNone OperandKind = iota

	// u8 index into the chunk's constant pool
	OperandConst

	// u8 index into the chunk's parameter list
	OperandParam

	// u8 slot in the chunk's local list
	OperandLocal

	// u8 index into the chunk's name list
	OperandName

	// u8 literal count
	OperandCount

	// u16 code offset. typed answers for jump offsets are accepted
	// leniently by the quiz because working them out by hand is
	// unreasonable
	OperandJump
)

type opcodeDef struct {
	name    string
	operand OperandKind
}

var opcodeDefs = map[Opcode]opcodeDef{
	OpNop:         {"nop", OperandNone},
	OpPop:         {"pop", OperandNone},
	OpDup:         {"dup", OperandNone},
	OpLoadConst:   {"load_const", OperandConst},
	OpLoadParam:   {"load_param", OperandParam},
	OpLoadLocal:   {"load_local", OperandLocal},
	OpStoreLocal:  {"store_local", OperandLocal},
	OpLoadGlobal:  {"load_global", OperandName},
	OpAdd:         {"add", OperandNone},
	OpSub:         {"sub", OperandNone},
	OpMul:         {"mul", OperandNone},
	OpDiv:         {"div", OperandNone},
	OpMod:         {"mod", OperandNone},
	OpPow:         {"pow", OperandNone},
	OpNeg:         {"neg", OperandNone},
	OpInvert:      {"invert", OperandNone},
	OpXor:         {"xor", OperandNone},
	OpAnd:         {"and", OperandNone},
	OpOr:          {"or", OperandNone},
	OpCompare:     {"compare", OperandName},
	OpIndex:       {"index", OperandNone},
	OpBuildList:   {"build_list", OperandCount},
	OpCall:        {"call", OperandCount},
	OpJump:        {"jump", OperandJump},
	OpJumpIfFalse: {"jump_if_false", OperandJump},
	OpIterNext:    {"iter_next", OperandJump},
	OpGetIter:     {"get_iter", OperandNone},
	OpReturn:      {"return", OperandNone},
}

// OpcodeByName returns the opcode with the given mnemonic.
func OpcodeByName(name string) (Opcode, bool) {
	for op, def := range opcodeDefs {
		if def.name == name {
			return op, true
		}
	}
	return OpNop, false
}

// String returns the mnemonic for the opcode, as typed by the quiz user.
func (op Opcode) String() string {
	if def, ok := opcodeDefs[op]; ok {
		return def.name
	}
	return fmt.Sprintf("unknown<0x%02x>", byte(op))
}

// OperandKind returns how the opcode's operand bytes are interpreted.
func (op Opcode) OperandKind() OperandKind {
	if def, ok := opcodeDefs[op]; ok {
		return def.operand
	}
	return OperandNone
}

// Width returns the encoded size of the instruction in bytes: the opcode
// byte plus its operand bytes.
func (op Opcode) Width() int {
	return 1 + op.operandWidth()
}

// operandWidth returns the number of operand bytes following the opcode.
func (op Opcode) operandWidth() int {
	switch op.OperandKind() {
	case OperandNone:
		return 0
	case OperandJump:
		return 2
	}
	return 1
}
