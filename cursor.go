package wkb

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

const (
	byteSize   = 1
	uint32Size = 4
	doubleSize = 8
)

// nativeLittle reports the host byte order.
var nativeLittle = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

// cursor reads primitives from a length-bounded byte slice.
// It tracks the first error. Subsequent reads become no-ops and return zero.
type cursor struct {
	b    []byte
	n    int   // current read position
	swap bool  // input byte order differs from the host
	err  error // first error encountered
}

func newCursor(b []byte) *cursor {
	return &cursor{b: b}
}

// setOrder selects the byte order of the data that follows.
func (c *cursor) setOrder(littleEndian bool) {
	c.swap = littleEndian != nativeLittle
}

// available returns the number of unread bytes.
func (c *cursor) available() int {
	if c.n >= len(c.b) {
		return 0
	}
	return len(c.b) - c.n
}

// need latches ErrBufferUnderrun when fewer than n bytes remain.
func need[T constraints.Integer](c *cursor, n T) bool {
	if c.err != nil {
		return false
	}
	if n < 0 || uint64(n) > uint64(c.available()) {
		c.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrBufferUnderrun, n, c.n, c.available())
		return false
	}
	return true
}

func (c *cursor) readByte() byte {
	if !need(c, byteSize) {
		return 0
	}
	v := c.b[c.n]
	c.n += byteSize
	return v
}

func (c *cursor) readUint32() uint32 {
	if !need(c, uint32Size) {
		return 0
	}
	v := binary.NativeEndian.Uint32(c.b[c.n:])
	if c.swap {
		v = bits.ReverseBytes32(v)
	}
	c.n += uint32Size
	return v
}

func (c *cursor) readDouble() float64 {
	if !need(c, doubleSize) {
		return 0
	}
	v := binary.NativeEndian.Uint64(c.b[c.n:])
	if c.swap {
		v = bits.ReverseBytes64(v)
	}
	c.n += doubleSize
	return math.Float64frombits(v)
}

// readDoubles fills dst. When the input is in host order the block is copied
// verbatim; otherwise every ordinate is swapped on its own.
func (c *cursor) readDoubles(dst []float64) {
	if len(dst) == 0 || !need(c, len(dst)*doubleSize) {
		return
	}
	if !c.swap {
		raw := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(dst))), len(dst)*doubleSize)
		c.n += copy(raw, c.b[c.n:])
		return
	}
	for i := range dst {
		dst[i] = c.readDouble()
	}
}
