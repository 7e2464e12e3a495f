package bytecode

import "encoding/binary"

// Chunk is a compiled function body: the code bytes plus the pools the
// operands index into. constants are kept in display form because the
// quiz only ever shows them, it never evaluates them.
type Chunk struct {
	Code      []byte
	Constants []string
	Params    []string
	Locals    []string
	Names     []string
}

// NewChunk creates a chunk for a function with the named parameters.
func NewChunk(params ...string) *Chunk {
	return &Chunk{
		Code:   make([]byte, 0, 32),
		Params: params,
	}
}

// AddConstant adds a value to the constant pool, returning its index. the
// pool is deduplicated.
func (c *Chunk) AddConstant(v string) int {
	for i, e := range c.Constants {
		if e == v {
			return i
		}
	}
	c.Constants = append(c.Constants, v)
	return len(c.Constants) - 1
}

// AddLocal reserves a local slot for the named variable, returning the
// slot number. asking for an existing name returns its slot.
func (c *Chunk) AddLocal(name string) int {
	for i, e := range c.Locals {
		if e == name {
			return i
		}
	}
	c.Locals = append(c.Locals, name)
	return len(c.Locals) - 1
}

// AddName adds an entry to the name pool, returning its index. the pool
// is deduplicated.
func (c *Chunk) AddName(name string) int {
	for i, e := range c.Names {
		if e == name {
			return i
		}
	}
	c.Names = append(c.Names, name)
	return len(c.Names) - 1
}

// Emit appends an instruction to the code. operand is required for
// opcodes with an operand kind other than OperandNone and ignored
// otherwise. jump offsets are emitted big-endian.
func (c *Chunk) Emit(op Opcode, operand ...int) int {
	offset := len(c.Code)
	c.Code = append(c.Code, byte(op))

	v := 0
	if len(operand) > 0 {
		v = operand[0]
	}

	switch op.operandWidth() {
	case 1:
		c.Code = append(c.Code, byte(v))
	case 2:
		c.Code = binary.BigEndian.AppendUint16(c.Code, uint16(v))
	}

	return offset
}

// PatchJump rewrites the operand of the jump instruction at the given
// offset to point at the current end of the code. used when the jump
// target is not known at emit time.
func (c *Chunk) PatchJump(offset int) {
	binary.BigEndian.PutUint16(c.Code[offset+1:], uint16(len(c.Code)))
}
