package wkb

import "io"

// bytesWriter writes into a pre-allocated byte slice. It never grows the
// slice; a write past the end stores what fits and returns io.ErrShortWrite.
type bytesWriter struct {
	B []byte // destination slice
	N int    // current write position
}

func newBytesWriter(p []byte) *bytesWriter {
	return &bytesWriter{B: p[:cap(p)]}
}

// Write implements the io.Writer interface.
func (w *bytesWriter) Write(p []byte) (int, error) {
	if w.N >= len(w.B) && len(p) > 0 {
		return 0, io.ErrShortWrite
	}
	n := copy(w.B[w.N:], p)
	w.N += n
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// WriteByte implements the io.ByteWriter interface.
func (w *bytesWriter) WriteByte(c byte) error {
	if w.N >= len(w.B) {
		return io.ErrShortWrite
	}
	w.B[w.N] = c
	w.N++
	return nil
}

// Flush does nothing.
func (w *bytesWriter) Flush() error { return nil }

// Len returns the number of bytes written.
func (w *bytesWriter) Len() int { return w.N }

// Bytes returns a slice view of the written data.
func (w *bytesWriter) Bytes() []byte { return w.B[:w.N] }
