package wkb

import (
	"encoding/binary"
	"math"
)

// rawWKB assembles WKB by hand so tests do not depend on the encoder.
type rawWKB struct {
	buf   []byte
	order binary.AppendByteOrder
	id    byte
}

func ndr() *rawWKB { return &rawWKB{order: binary.LittleEndian, id: ndrID} }
func xdr() *rawWKB { return &rawWKB{order: binary.BigEndian, id: xdrID} }

// header writes a byte-order marker and type word in the builder's order.
func (r *rawWKB) header(word uint32) *rawWKB {
	r.buf = append(r.buf, r.id)
	return r.u32(word)
}

func (r *rawWKB) u32(v uint32) *rawWKB {
	r.buf = r.order.AppendUint32(r.buf, v)
	return r
}

func (r *rawWKB) f64(vs ...float64) *rawWKB {
	for _, v := range vs {
		r.buf = r.order.AppendUint64(r.buf, math.Float64bits(v))
	}
	return r
}

// seq writes a count followed by the flat ordinates; stride is the number of
// ordinates per point.
func (r *rawWKB) seq(stride int, vs ...float64) *rawWKB {
	return r.u32(uint32(len(vs) / stride)).f64(vs...)
}

func (r *rawWKB) raw(b []byte) *rawWKB {
	r.buf = append(r.buf, b...)
	return r
}

func (r *rawWKB) bytes() []byte { return r.buf }

// square is a closed 2D ring.
var square = []float64{0, 0, 1, 0, 1, 1, 0, 1, 0, 0}

// samplePolygon writes POLYGON((0 0,1 0,1 1,0 1,0 0)).
func samplePolygon(r *rawWKB) *rawWKB {
	return r.header(PolygonCode).u32(1).seq(2, square...)
}

// nestedCollections writes n GeometryCollections, each holding the next; the
// innermost one is empty.
func nestedCollections(r *rawWKB, n int) *rawWKB {
	for i := 0; i < n; i++ {
		r.header(GeometryCollectionCode)
		if i == n-1 {
			r.u32(0)
		} else {
			r.u32(1)
		}
	}
	return r
}
