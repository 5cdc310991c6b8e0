package wkb

import (
	"bytes"
	"sync"
)

// bytesBufPool reuses buffers for hex decoding and ReadFrom. We pool
// *bytes.Buffer because they are easily reset and resized.
var bytesBufPool = sync.Pool{
	New: func() any {
		// 4KB covers most single geometries without re-allocating.
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}

func getBuffer() *bytes.Buffer {
	buf := bytesBufPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	// Buffers grown past 1MB are left to the GC.
	if buf.Cap() > 1<<20 {
		return
	}
	bytesBufPool.Put(buf)
}
