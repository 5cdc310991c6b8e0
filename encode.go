package wkb

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/oy3o/wkb/geom"
)

// Byte orders accepted by the encoder.
var (
	XDR binary.ByteOrder = binary.BigEndian
	NDR binary.ByteOrder = binary.LittleEndian
)

type encodeOptions struct {
	extended bool
}

// EncodeOption configures the encoder.
type EncodeOption func(*encodeOptions)

// WithExtended writes extended (EWKB) type words: Z, M and SRID as flag bits
// and the SRID after the outermost header. The default is ISO WKB, which has
// no room for an SRID.
func WithExtended() EncodeOption {
	return func(o *encodeOptions) { o.extended = true }
}

func encodeConfig(opts []EncodeOption) encodeOptions {
	var o encodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// orderID returns the header byte for order. A nil order means NDR.
func orderID(order binary.ByteOrder) (binary.ByteOrder, byte) {
	if order == nil {
		return NDR, ndrID
	}
	if order.Uint16([]byte{0, 1}) == 1 {
		return order, xdrID
	}
	return order, ndrID
}

// EncodedSize returns the number of bytes Encode would produce for g.
func EncodedSize(g *geom.Geometry, opts ...EncodeOption) (int, error) {
	if g == nil {
		return 0, nil
	}
	o := encodeConfig(opts)
	return sizeOf(g, true, o.extended)
}

func sizeOf(g *geom.Geometry, root, extended bool) (int, error) {
	if _, ok := typeCodes[g.Type]; !ok {
		return 0, fmt.Errorf("%w: %s has no type code", ErrUnsupportedGeometry, g.Type)
	}
	n := byteSize + uint32Size
	if root && extended && g.HasSRID() {
		n += uint32Size
	}
	stride := g.Flags.Stride()
	switch {
	case g.Type == geom.Point:
		return n + stride*doubleSize, nil
	case g.Type == geom.Triangle:
		if g.Points.Len() == 0 {
			return n + uint32Size, nil
		}
		return n + 2*uint32Size + g.Points.Len()*stride*doubleSize, nil
	case g.Type.IsLinear():
		return n + uint32Size + g.Points.Len()*stride*doubleSize, nil
	case g.Type == geom.Polygon:
		n += uint32Size
		for _, r := range g.Rings {
			n += uint32Size + r.Len()*stride*doubleSize
		}
		return n, nil
	}
	n += uint32Size
	for _, c := range g.Geoms {
		cn, err := sizeOf(c, false, extended)
		if err != nil {
			return 0, err
		}
		n += cn
	}
	return n, nil
}

// Encode serializes g in the given byte order. A nil geometry encodes to nil.
func Encode(g *geom.Geometry, order binary.ByteOrder, opts ...EncodeOption) ([]byte, error) {
	if g == nil {
		return nil, nil
	}
	size, err := EncodedSize(g, opts...)
	if err != nil {
		return nil, err
	}
	bw := newBytesWriter(make([]byte, size))
	if _, err := Write(bw, g, order, opts...); err != nil {
		return nil, err
	}
	return bw.Bytes(), nil
}

// Write streams the encoding of g to w and returns the number of bytes written.
func Write(w io.Writer, g *geom.Geometry, order binary.ByteOrder, opts ...EncodeOption) (int64, error) {
	if g == nil {
		return 0, nil
	}
	order, id := orderID(order)
	e := &encoder{w: newWriter(w, order), id: id, extended: encodeConfig(opts).extended}
	if err := e.geometry(g, true); err != nil {
		return e.w.count, err
	}
	return e.w.Result()
}

type encoder struct {
	w        *writer
	id       byte
	extended bool
}

func (e *encoder) geometry(g *geom.Geometry, root bool) error {
	withSRID := root && e.extended && g.HasSRID()
	word, err := TypeWord(g.Type, g.HasZ(), g.HasM(), withSRID, e.extended)
	if err != nil {
		return err
	}
	e.w.writeByte(e.id)
	e.w.writeUint32(word)
	if withSRID {
		e.w.writeUint32(uint32(g.SRID))
	}

	switch {
	case g.Type == geom.Point:
		if g.Points.Len() == 0 {
			for range g.Flags.Stride() {
				e.w.writeDouble(math.NaN())
			}
		} else {
			e.w.writeDoubles(g.Points.Flat())
		}
	case g.Type == geom.Triangle:
		if g.Points.Len() == 0 {
			e.w.writeUint32(0)
		} else {
			e.w.writeUint32(1)
			e.seq(g.Points)
		}
	case g.Type.IsLinear():
		e.seq(g.Points)
	case g.Type == geom.Polygon:
		e.w.writeUint32(uint32(len(g.Rings)))
		for _, r := range g.Rings {
			e.seq(r)
		}
	default:
		e.w.writeUint32(uint32(len(g.Geoms)))
		for _, c := range g.Geoms {
			if err := e.geometry(c, false); err != nil {
				return err
			}
		}
	}
	return e.w.err
}

func (e *encoder) seq(s *geom.CoordSeq) {
	e.w.writeUint32(uint32(s.Len()))
	if s.Len() > 0 {
		e.w.writeDoubles(s.Flat())
	}
}
