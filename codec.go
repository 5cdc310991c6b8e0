package wkb

import (
	"encoding"
	"io"
)

// Sizer is an interface for types that can report their binary size.
type Sizer interface {
	// Size returns the size of the type in bytes when binary encoded.
	Size() int
}

// Marshaler defines the methods for encoding an object into a byte stream.
type Marshaler interface {
	encoding.BinaryMarshaler
	io.WriterTo

	// MarshalTo encodes into a pre-allocated buffer, returning
	// io.ErrShortBuffer if the buffer is too small.
	MarshalTo(buf []byte) (int, error)
}

// Unmarshaler defines the methods for decoding a byte stream into an object.
type Unmarshaler interface {
	encoding.BinaryUnmarshaler
	io.ReaderFrom
}

// Codec aggregates all binary serialization and deserialization interfaces.
// Value is the package's Codec implementation for geometries.
type Codec interface {
	Sizer
	Marshaler
	Unmarshaler
}
