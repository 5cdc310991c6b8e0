package wkb

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

// flushWriter is the sink a writer drives.
type flushWriter interface {
	io.Writer
	io.ByteWriter
	Flush() error
}

type bytesBufferWriter struct{ *bytes.Buffer }

func (bytesBufferWriter) Flush() error { return nil }

// writer serializes primitives in one byte order. It tracks the first error
// that occurs; after an error all subsequent writes become no-ops.
type writer struct {
	w     flushWriter
	count int64 // total bytes written
	err   error // first error encountered
	order binary.ByteOrder
	buf   [doubleSize]byte
}

// newWriter wraps w, buffering it unless it already writes to memory.
func newWriter(w io.Writer, order binary.ByteOrder) *writer {
	switch bw := w.(type) {
	case *bytesWriter:
		return &writer{w: bw, order: order}
	case *bytes.Buffer:
		return &writer{w: bytesBufferWriter{bw}, order: order}
	case *bufio.Writer:
		return &writer{w: bw, order: order}
	}
	return &writer{w: bufio.NewWriter(w), order: order}
}

// setError records the first non-nil error.
func (w *writer) setError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

func (w *writer) write(p []byte) {
	if w.err != nil {
		return
	}
	n, err := w.w.Write(p)
	w.count += int64(n)
	w.setError(err)
}

func (w *writer) writeByte(v byte) {
	if w.err != nil {
		return
	}
	err := w.w.WriteByte(v)
	if err == nil {
		w.count++
	}
	w.setError(err)
}

func (w *writer) writeUint32(v uint32) {
	if w.err != nil {
		return
	}
	w.order.PutUint32(w.buf[:uint32Size], v)
	w.write(w.buf[:uint32Size])
}

func (w *writer) writeDouble(v float64) {
	if w.err != nil {
		return
	}
	w.order.PutUint64(w.buf[:], math.Float64bits(v))
	w.write(w.buf[:])
}

func (w *writer) writeDoubles(vs []float64) {
	for _, v := range vs {
		w.writeDouble(v)
	}
}

// Result flushes the buffer and returns the final count and error state.
func (w *writer) Result() (int64, error) {
	if w.err == nil {
		w.setError(w.w.Flush())
	}
	return w.count, w.err
}
