package wkb

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/oy3o/wkb/geom"
)

// Value adapts a geometry to the standard binary codec interfaces. It
// implements Codec.
//
// Decoding replaces Geometry and, unlike Decode, rejects bytes left over
// after the geometry. Encoding uses Order (NDR when nil) and writes
// extended WKB when Extended is set.
type Value struct {
	Geometry *geom.Geometry
	Order    binary.ByteOrder
	Extended bool
	Options  []Option
}

var _ Codec = (*Value)(nil)

func (v *Value) encodeOptions() []EncodeOption {
	if v.Extended {
		return []EncodeOption{WithExtended()}
	}
	return nil
}

// Size returns the encoded size, or 0 if Geometry cannot be encoded.
func (v *Value) Size() int {
	n, err := EncodedSize(v.Geometry, v.encodeOptions()...)
	if err != nil {
		return 0
	}
	return n
}

func (v *Value) MarshalBinary() ([]byte, error) {
	return Encode(v.Geometry, v.Order, v.encodeOptions()...)
}

func (v *Value) WriteTo(w io.Writer) (int64, error) {
	return Write(w, v.Geometry, v.Order, v.encodeOptions()...)
}

func (v *Value) MarshalTo(buf []byte) (int, error) {
	return marshalToGeneric(v, buf)
}

func (v *Value) UnmarshalBinary(data []byte) error {
	d := NewDecoder(v.Options...)
	g, n, err := d.decode(data)
	if err != nil {
		return err
	}
	if n < len(data) {
		d.opts.tracker.Release(g)
		return fmt.Errorf("%w: %d bytes", ErrTrailingData, len(data)-n)
	}
	v.Geometry = g
	return nil
}

func (v *Value) ReadFrom(r io.Reader) (int64, error) {
	return readFromGeneric(v, r)
}
