package geom

// Coord is a single coordinate widened to four ordinates. Missing Z or M
// ordinates are zero.
type Coord struct {
	X, Y, Z, M float64
}

// CoordSeq is an owned, contiguous sequence of coordinates. Every coordinate
// in a sequence has the same width, fixed by the Z and M flags at creation.
type CoordSeq struct {
	flags Flags
	data  []float64
}

// NewCoordSeq allocates a sequence of n zeroed coordinates.
func NewCoordSeq(hasZ, hasM bool, n int) *CoordSeq {
	f := NewFlags(hasZ, hasM)
	return &CoordSeq{flags: f, data: make([]float64, n*f.Stride())}
}

// NewCoordSeqFlat wraps flat ordinates. The sequence takes ownership of data;
// len(data) must be a multiple of the stride.
func NewCoordSeqFlat(hasZ, hasM bool, data []float64) *CoordSeq {
	return &CoordSeq{flags: NewFlags(hasZ, hasM), data: data}
}

func (s *CoordSeq) HasZ() bool { return s.flags.HasZ() }
func (s *CoordSeq) HasM() bool { return s.flags.HasM() }
func (s *CoordSeq) Stride() int {
	return s.flags.Stride()
}

// Len returns the number of coordinates.
func (s *CoordSeq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.data) / s.flags.Stride()
}

// Flat exposes the backing ordinates. Callers must not retain it past the
// owning geometry's Destroy.
func (s *CoordSeq) Flat() []float64 {
	if s == nil {
		return nil
	}
	return s.data
}

// At returns coordinate i.
func (s *CoordSeq) At(i int) Coord {
	stride := s.flags.Stride()
	p := s.data[i*stride : (i+1)*stride]
	c := Coord{X: p[0], Y: p[1]}
	switch {
	case s.flags.HasZ() && s.flags.HasM():
		c.Z, c.M = p[2], p[3]
	case s.flags.HasZ():
		c.Z = p[2]
	case s.flags.HasM():
		c.M = p[2]
	}
	return c
}

// Set overwrites coordinate i, ignoring ordinates the sequence does not carry.
func (s *CoordSeq) Set(i int, c Coord) {
	stride := s.flags.Stride()
	p := s.data[i*stride : (i+1)*stride]
	p[0], p[1] = c.X, c.Y
	switch {
	case s.flags.HasZ() && s.flags.HasM():
		p[2], p[3] = c.Z, c.M
	case s.flags.HasZ():
		p[2] = c.Z
	case s.flags.HasM():
		p[2] = c.M
	}
}

// IsClosed2D reports whether the first and last coordinates agree in X and Y.
func (s *CoordSeq) IsClosed2D() bool {
	n := s.Len()
	if n == 0 {
		return false
	}
	a, b := s.At(0), s.At(n-1)
	return a.X == b.X && a.Y == b.Y
}

// IsClosed3D is IsClosed2D extended to Z for sequences that carry it.
func (s *CoordSeq) IsClosed3D() bool {
	if !s.IsClosed2D() {
		return false
	}
	if !s.HasZ() {
		return true
	}
	return s.At(0).Z == s.At(s.Len()-1).Z
}

// IsClosedZ dispatches to IsClosed3D or IsClosed2D depending on the sequence
// dimensionality.
func (s *CoordSeq) IsClosedZ() bool {
	if s.HasZ() {
		return s.IsClosed3D()
	}
	return s.IsClosed2D()
}

// Clone returns an independently owned copy.
func (s *CoordSeq) Clone() *CoordSeq {
	if s == nil {
		return nil
	}
	return &CoordSeq{flags: s.flags, data: append([]float64(nil), s.data...)}
}

// ForceDims rebuilds the sequence at a new width. Ordinates the source lacks
// are filled with zFill and mFill.
func (s *CoordSeq) ForceDims(hasZ, hasM bool, zFill, mFill float64) *CoordSeq {
	n := s.Len()
	out := NewCoordSeq(hasZ, hasM, n)
	for i := 0; i < n; i++ {
		c := s.At(i)
		if !s.HasZ() {
			c.Z = zFill
		}
		if !s.HasM() {
			c.M = mFill
		}
		out.Set(i, c)
	}
	return out
}

func (s *CoordSeq) release() {
	s.data = nil
}
