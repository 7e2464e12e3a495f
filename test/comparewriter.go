package test

// CompareWriter is an implementation of the io.Writer interface. it
// should be used to capture output and to compare it with predefined
// strings.
type CompareWriter struct {
	buffer []byte
}

func (cw *CompareWriter) Write(p []byte) (n int, err error) {
	cw.buffer = append(cw.buffer, p...)
	return len(p), nil
}

// Clear empties the buffer.
func (cw *CompareWriter) Clear() {
	cw.buffer = cw.buffer[:0]
}

// Compare buffered output with a predefined/example string.
func (cw *CompareWriter) Compare(s string) bool {
	return s == string(cw.buffer)
}

// String implements the Stringer interface.
func (cw *CompareWriter) String() string {
	return string(cw.buffer)
}
