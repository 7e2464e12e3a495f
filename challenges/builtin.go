package challenges

import (
	"github.com/hexop/disquiz/bytecode"
)

// Catalog compiles and returns the builtin challenges, easiest first.
func Catalog() ([]Challenge, error) {
	builders := []func() (Challenge, error){
		square,
		shout,
		clamp,
		scale,
		mask,
		squares,
	}

	catalog := make([]Challenge, 0, len(builders))
	for _, build := range builders {
		c, err := build()
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, c)
	}

	return catalog, nil
}

func square() (Challenge, error) {
	ch := bytecode.NewChunk("x")
	ch.Emit(bytecode.OpLoadParam, 0)
	ch.Emit(bytecode.OpLoadParam, 0)
	ch.Emit(bytecode.OpMul)
	ch.Emit(bytecode.OpReturn)

	return fromChunk("square", Easy, []string{
		"func square(x) {",
		"    return x * x",
		"}",
	}, ch)
}

func shout() (Challenge, error) {
	ch := bytecode.NewChunk("s")
	ch.Emit(bytecode.OpLoadGlobal, ch.AddName("upper"))
	ch.Emit(bytecode.OpLoadParam, 0)
	ch.Emit(bytecode.OpCall, 1)
	ch.Emit(bytecode.OpReturn)

	return fromChunk("shout", Easy, []string{
		"func shout(s) {",
		"    return upper(s)",
		"}",
	}, ch)
}

func clamp() (Challenge, error) {
	ch := bytecode.NewChunk("x", "hi")
	ch.Emit(bytecode.OpLoadParam, 0)
	ch.Emit(bytecode.OpLoadParam, 1)
	ch.Emit(bytecode.OpCompare, ch.AddName(">"))
	jump := ch.Emit(bytecode.OpJumpIfFalse)
	ch.Emit(bytecode.OpLoadParam, 1)
	ch.Emit(bytecode.OpReturn)
	ch.PatchJump(jump)
	ch.Emit(bytecode.OpLoadParam, 0)
	ch.Emit(bytecode.OpReturn)

	return fromChunk("clamp", Medium, []string{
		"func clamp(x, hi) {",
		"    if x > hi {",
		"        return hi",
		"    }",
		"    return x",
		"}",
	}, ch)
}

func scale() (Challenge, error) {
	ch := bytecode.NewChunk("x", "y")
	a := ch.AddLocal("a")
	z := ch.AddLocal("z")
	ch.Emit(bytecode.OpLoadParam, 0)
	ch.Emit(bytecode.OpLoadConst, ch.AddConstant("2"))
	ch.Emit(bytecode.OpMul)
	ch.Emit(bytecode.OpStoreLocal, a)
	ch.Emit(bytecode.OpLoadConst, ch.AddConstant("\"abc\""))
	ch.Emit(bytecode.OpStoreLocal, z)
	ch.Emit(bytecode.OpLoadLocal, z)
	ch.Emit(bytecode.OpLoadLocal, a)
	ch.Emit(bytecode.OpLoadParam, 1)
	ch.Emit(bytecode.OpPow)
	ch.Emit(bytecode.OpMul)
	ch.Emit(bytecode.OpReturn)

	return fromChunk("scale", Medium, []string{
		"func scale(x, y) {",
		"    a = x * 2",
		"    z = \"abc\"",
		"    return z * a ** y",
		"}",
	}, ch)
}

func mask() (Challenge, error) {
	ch := bytecode.NewChunk("x")
	y := ch.AddLocal("y")
	z := ch.AddLocal("z")
	ch.Emit(bytecode.OpLoadConst, ch.AddConstant("3"))
	ch.Emit(bytecode.OpLoadParam, 0)
	ch.Emit(bytecode.OpXor)
	ch.Emit(bytecode.OpStoreLocal, y)
	ch.Emit(bytecode.OpLoadConst, ch.AddConstant("4"))
	ch.Emit(bytecode.OpLoadLocal, y)
	ch.Emit(bytecode.OpInvert)
	ch.Emit(bytecode.OpMul)
	ch.Emit(bytecode.OpStoreLocal, z)
	ch.Emit(bytecode.OpLoadLocal, z)
	ch.Emit(bytecode.OpLoadConst, ch.AddConstant("255"))
	ch.Emit(bytecode.OpAnd)
	ch.Emit(bytecode.OpReturn)

	return fromChunk("mask", Medium, []string{
		"func mask(x) {",
		"    y = 3 ^ x",
		"    z = 4 * ~y",
		"    return z & 255",
		"}",
	}, ch)
}

func squares() (Challenge, error) {
	ch := bytecode.NewChunk("n")
	l := ch.AddLocal("l")
	i := ch.AddLocal("i")
	ch.Emit(bytecode.OpBuildList, 0)
	ch.Emit(bytecode.OpStoreLocal, l)
	ch.Emit(bytecode.OpLoadGlobal, ch.AddName("range"))
	ch.Emit(bytecode.OpLoadParam, 0)
	ch.Emit(bytecode.OpCall, 1)
	ch.Emit(bytecode.OpGetIter)
	loop := ch.Emit(bytecode.OpIterNext)
	ch.Emit(bytecode.OpStoreLocal, i)
	ch.Emit(bytecode.OpLoadLocal, l)
	ch.Emit(bytecode.OpLoadLocal, i)
	ch.Emit(bytecode.OpLoadLocal, i)
	ch.Emit(bytecode.OpMul)
	ch.Emit(bytecode.OpBuildList, 1)
	ch.Emit(bytecode.OpAdd)
	ch.Emit(bytecode.OpStoreLocal, l)
	ch.Emit(bytecode.OpJump, loop)
	ch.PatchJump(loop)
	ch.Emit(bytecode.OpLoadLocal, l)
	ch.Emit(bytecode.OpReturn)

	return fromChunk("squares", Hard, []string{
		"func squares(n) {",
		"    l = []",
		"    for i in range(n) {",
		"        l = l + [i * i]",
		"    }",
		"    return l",
		"}",
	}, ch)
}
