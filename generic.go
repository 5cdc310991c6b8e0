package wkb

import (
	"encoding"
	"io"
)

// readFromGeneric provides a non-streaming io.ReaderFrom. It reads the
// entire reader into a pooled buffer before unmarshalling.
func readFromGeneric[T encoding.BinaryUnmarshaler](v T, r io.Reader) (int64, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	n, err := buf.ReadFrom(r)
	if err != nil {
		return n, err
	}
	return n, v.UnmarshalBinary(buf.Bytes())
}

// marshalToGeneric implements MarshalTo on top of Size and WriteTo.
func marshalToGeneric[T interface {
	Size() int
	io.WriterTo
}](v T, p []byte) (int, error) {
	size := v.Size()
	if len(p) < size {
		return 0, io.ErrShortBuffer
	}
	w := newBytesWriter(p[:size])
	n, err := v.WriteTo(w)
	if err != nil {
		return int(n), err
	}
	if n < int64(size) {
		return int(n), io.ErrShortWrite
	}
	return int(n), nil
}
