package wkb

import (
	"testing"
)

// benchmarkPolygon builds a polygon whose exterior ring has n points.
func benchmarkPolygon(r *rawWKB, n int) []byte {
	ring := make([]float64, 0, 2*n)
	for i := 0; i < n-1; i++ {
		ring = append(ring, float64(i), float64(i%7))
	}
	ring = append(ring, 0, 0)
	return r.header(PolygonCode).u32(1).seq(2, ring...).bytes()
}

func BenchmarkDecodeNDR(b *testing.B) {
	data := benchmarkPolygon(ndr(), 1024)
	dec := NewDecoder()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dec.Decode(data)
	}
}

// On little-endian hosts XDR input takes the per-ordinate swap path.
func BenchmarkDecodeXDR(b *testing.B) {
	data := benchmarkPolygon(xdr(), 1024)
	dec := NewDecoder()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dec.Decode(data)
	}
}

func BenchmarkDecodeHex(b *testing.B) {
	g, _ := Decode(benchmarkPolygon(ndr(), 256))
	s, _ := EncodeHex(g, NDR)
	dec := NewDecoder()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dec.DecodeHex(s)
	}
}

func BenchmarkValueMarshalTo(b *testing.B) {
	g, _ := Decode(benchmarkPolygon(ndr(), 1024))
	v := &Value{Geometry: g}
	buf := make([]byte, v.Size())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.MarshalTo(buf)
	}
}
