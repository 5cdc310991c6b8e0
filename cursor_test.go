package wkb

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorReads(t *testing.T) {
	for _, little := range []bool{true, false} {
		var order binary.AppendByteOrder = binary.BigEndian
		if little {
			order = binary.LittleEndian
		}
		b := []byte{0x7f}
		b = order.AppendUint32(b, 0xDEADBEEF)
		for _, v := range []float64{1.5, -2, math.Pi} {
			b = order.AppendUint64(b, math.Float64bits(v))
		}

		c := newCursor(b)
		c.setOrder(little)
		assert.Equal(t, byte(0x7f), c.readByte())
		assert.Equal(t, uint32(0xDEADBEEF), c.readUint32())
		assert.Equal(t, 1.5, c.readDouble())

		dst := make([]float64, 2)
		c.readDoubles(dst)
		require.NoError(t, c.err)
		assert.Equal(t, []float64{-2, math.Pi}, dst)
		assert.Zero(t, c.available())
	}
}

func TestCursorStickyError(t *testing.T) {
	c := newCursor([]byte{1, 2, 3})
	assert.Zero(t, c.readUint32())
	require.ErrorIs(t, c.err, ErrBufferUnderrun)
	first := c.err

	// Once failed, reads are no-ops even when bytes remain.
	assert.Zero(t, c.readByte())
	assert.Equal(t, 0, c.n)
	assert.Same(t, first, c.err)
}

func TestCursorBlockBounds(t *testing.T) {
	c := newCursor(make([]byte, 15))
	dst := make([]float64, 2)
	c.readDoubles(dst)
	assert.ErrorIs(t, c.err, ErrBufferUnderrun)
	assert.Equal(t, 0, c.n)

	c = newCursor(nil)
	assert.False(t, need(c, uint64(math.MaxUint64)))
	assert.ErrorIs(t, c.err, ErrBufferUnderrun)
}
