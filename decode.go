package wkb

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/oy3o/wkb/geom"
)

// Byte order markers of a geometry header.
const (
	xdrID byte = 0 // big endian
	ndrID byte = 1 // little endian
)

// maxPoints bounds a declared point count so that the byte size of the
// coordinate block cannot overflow.
const maxPoints = math.MaxUint32 / doubleSize / 4

// minGeometrySize is the smallest possible encoded geometry: a header with
// an empty count.
const minGeometrySize = byteSize + uint32Size + uint32Size

// Decoder turns WKB into geometry trees. It holds configuration only, so one
// Decoder can be shared by concurrent callers.
type Decoder struct {
	opts options
}

// NewDecoder returns a Decoder configured by opts.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{opts: defaultOptions()}
	for _, opt := range opts {
		opt(&d.opts)
	}
	return d
}

// Decode decodes b with the given options. See Decoder.Decode.
func Decode(b []byte, opts ...Option) (*geom.Geometry, error) {
	return NewDecoder(opts...).Decode(b)
}

// Decode decodes one geometry from the start of b. Bytes after the geometry
// are ignored. An empty or nil b yields a nil geometry and no error.
//
// On failure every partially built node is released and the returned error
// is a *DecodeError.
func (d *Decoder) Decode(b []byte) (*geom.Geometry, error) {
	g, _, err := d.decode(b)
	return g, err
}

// decode also reports how many bytes were consumed.
func (d *Decoder) decode(b []byte) (*geom.Geometry, int, error) {
	if len(b) == 0 {
		return nil, 0, nil
	}
	s := &state{
		cur:      newCursor(b),
		checks:   d.opts.checks,
		maxDepth: d.opts.maxDepth,
		depth:    1,
		srid:     geom.SRIDUnknown,
		tracker:  d.opts.tracker,
	}
	g, err := s.geometry(true)
	if err != nil {
		de := s.fail(err)
		d.opts.log.WithFields(logrus.Fields{
			"kind":   de.Kind.String(),
			"offset": de.Offset,
			"depth":  de.Depth,
			"type":   de.Type.String(),
		}).WithError(de.Err).Debug("wkb: decode failed")
		return nil, s.cur.n, de
	}
	return g, s.cur.n, nil
}

// state is the per-call decoding state.
type state struct {
	cur      *cursor
	checks   Check
	strictZ  bool // inside a PolyhedralSurface
	maxDepth int
	depth    int
	srid     geom.SRID
	current  geom.Type
	tracker  *geom.Tracker
}

func (s *state) fail(err error) *DecodeError {
	return &DecodeError{
		Kind:   kindOf(err),
		Offset: s.cur.n,
		Depth:  s.depth,
		Type:   s.current,
		Err:    err,
	}
}

// geometry reads one header and dispatches on its type.
func (s *state) geometry(root bool) (*geom.Geometry, error) {
	order := s.cur.readByte()
	if s.cur.err != nil {
		return nil, s.cur.err
	}
	if order != xdrID && order != ndrID {
		return nil, fmt.Errorf("%w: %d", ErrInvalidEndianFlag, order)
	}
	s.cur.setOrder(order == ndrID)

	word := s.cur.readUint32()
	if s.cur.err != nil {
		return nil, s.cur.err
	}
	tag, err := ParseTypeWord(word)
	if err != nil {
		return nil, err
	}
	s.current = tag.Type

	if tag.HasSRID {
		srid := geom.SRID(s.cur.readUint32())
		if s.cur.err != nil {
			return nil, s.cur.err
		}
		// Only the outermost header may carry an SRID.
		if root {
			s.srid = geom.ClampSRID(srid)
		}
	}

	switch tag.Type {
	case geom.Point:
		return s.point(tag)
	case geom.LineString:
		return s.line(tag)
	case geom.CircularString:
		return s.circularString(tag)
	case geom.Triangle:
		return s.triangle(tag)
	case geom.Polygon:
		return s.polygon(tag)
	default:
		return s.collection(tag)
	}
}

// empty allocates an empty node of t.
func (s *state) empty(t geom.Type, tag TypeTag) *geom.Geometry {
	g := geom.NewEmpty(t, s.srid, tag.HasZ, tag.HasM)
	s.tracker.Geometry()
	if g.Points != nil {
		s.tracker.Sequence()
	}
	return g
}

// coords reads n coordinates of tag's dimensionality.
func (s *state) coords(tag TypeTag, n int) (*geom.CoordSeq, error) {
	stride := geom.NewFlags(tag.HasZ, tag.HasM).Stride()
	if !need(s.cur, uint64(n)*uint64(stride)*doubleSize) {
		return nil, s.cur.err
	}
	seq := geom.NewCoordSeq(tag.HasZ, tag.HasM, n)
	s.tracker.Sequence()
	s.cur.readDoubles(seq.Flat())
	return seq, nil
}

// coordSeq reads a count-prefixed coordinate block.
func (s *state) coordSeq(tag TypeTag) (*geom.CoordSeq, error) {
	n := s.cur.readUint32()
	if s.cur.err != nil {
		return nil, s.cur.err
	}
	if n > maxPoints {
		return nil, fmt.Errorf("%w: %d", ErrTooManyPoints, n)
	}
	return s.coords(tag, int(n))
}

// leaf wraps pts into a single-sequence node, taking ownership of pts.
func (s *state) leaf(t geom.Type, pts *geom.CoordSeq) (*geom.Geometry, error) {
	g, err := geom.NewLine(t, s.srid, pts)
	if err != nil {
		s.tracker.ReleaseSeq(pts)
		return nil, fmt.Errorf("%w: %w", ErrChildAttach, err)
	}
	s.tracker.Geometry()
	return g, nil
}

func (s *state) point(tag TypeTag) (*geom.Geometry, error) {
	pts, err := s.coords(tag, 1)
	if err != nil {
		return nil, err
	}
	// POINT(NaN NaN) is how WKB spells an empty point.
	if c := pts.At(0); math.IsNaN(c.X) && math.IsNaN(c.Y) {
		s.tracker.ReleaseSeq(pts)
		return s.empty(geom.Point, tag), nil
	}
	g, err := geom.NewPoint(s.srid, pts)
	if err != nil {
		s.tracker.ReleaseSeq(pts)
		return nil, fmt.Errorf("%w: %w", ErrChildAttach, err)
	}
	s.tracker.Geometry()
	return g, nil
}

func (s *state) line(tag TypeTag) (*geom.Geometry, error) {
	pts, err := s.coordSeq(tag)
	if err != nil {
		return nil, err
	}
	if pts.Len() > 0 {
		if err := s.checks.line(tag.Type, pts); err != nil {
			s.tracker.ReleaseSeq(pts)
			return nil, err
		}
	}
	return s.leaf(tag.Type, pts)
}

func (s *state) circularString(tag TypeTag) (*geom.Geometry, error) {
	pts, err := s.coordSeq(tag)
	if err != nil {
		return nil, err
	}
	if pts.Len() > 0 {
		if err := s.checks.circular(tag.Type, pts); err != nil {
			s.tracker.ReleaseSeq(pts)
			return nil, err
		}
	}
	return s.leaf(tag.Type, pts)
}

// triangle reads a ring count that must be 0 or 1, then the ring.
func (s *state) triangle(tag TypeTag) (*geom.Geometry, error) {
	n := s.cur.readUint32()
	if s.cur.err != nil {
		return nil, s.cur.err
	}
	if n == 0 {
		return s.empty(geom.Triangle, tag), nil
	}
	if n > 1 {
		return nil, invalidf(geom.Triangle, "must have exactly one ring, got %d", n)
	}
	pts, err := s.coordSeq(tag)
	if err != nil {
		return nil, err
	}
	if pts.Len() > 0 {
		if err := s.checks.triangle(pts); err != nil {
			s.tracker.ReleaseSeq(pts)
			return nil, err
		}
	}
	return s.leaf(geom.Triangle, pts)
}

func (s *state) polygon(tag TypeTag) (*geom.Geometry, error) {
	n := s.cur.readUint32()
	if s.cur.err != nil {
		return nil, s.cur.err
	}
	g := s.empty(geom.Polygon, tag)
	if n == 0 {
		return g, nil
	}
	// Every ring carries at least its count.
	if !need(s.cur, uint64(n)*uint32Size) {
		s.tracker.Release(g)
		return nil, s.cur.err
	}
	g.Rings = make([]*geom.CoordSeq, 0, n)
	for range n {
		ring, err := s.coordSeq(tag)
		if err != nil {
			s.tracker.Release(g)
			return nil, err
		}
		if err := s.checks.ring(geom.Polygon, ring, s.strictZ); err != nil {
			s.tracker.ReleaseSeq(ring)
			s.tracker.Release(g)
			return nil, err
		}
		if err := g.AddRing(ring); err != nil {
			s.tracker.ReleaseSeq(ring)
			s.tracker.Release(g)
			return nil, fmt.Errorf("%w: %w", ErrChildAttach, err)
		}
	}
	return g, nil
}

// collection reads a count-prefixed list of full geometries. A
// PolyhedralSurface turns on Z closure for every ring below it.
func (s *state) collection(tag TypeTag) (*geom.Geometry, error) {
	n := s.cur.readUint32()
	if s.cur.err != nil {
		return nil, s.cur.err
	}
	g := s.empty(tag.Type, tag)
	if n == 0 {
		return g, nil
	}
	if !need(s.cur, uint64(n)*minGeometrySize) {
		s.tracker.Release(g)
		return nil, s.cur.err
	}

	s.depth++
	if s.depth > s.maxDepth {
		s.tracker.Release(g)
		return nil, fmt.Errorf("%w: depth %d exceeds %d", ErrMaxDepthExceeded, s.depth, s.maxDepth)
	}
	checks, strictZ := s.checks, s.strictZ
	if tag.Type == geom.PolyhedralSurface {
		s.checks |= CheckZClosure
		s.strictZ = true
	}

	g.Geoms = make([]*geom.Geometry, 0, n)
	for range n {
		child, err := s.geometry(false)
		if err != nil {
			s.tracker.Release(g)
			return nil, err
		}
		if err := g.AddGeometry(child); err != nil {
			s.current = tag.Type
			s.tracker.Release(child)
			s.tracker.Release(g)
			return nil, fmt.Errorf("%w: %w", ErrChildAttach, err)
		}
	}

	s.checks, s.strictZ = checks, strictZ
	s.depth--
	return g, nil
}
