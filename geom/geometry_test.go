package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func seq2(vs ...float64) *CoordSeq { return NewCoordSeqFlat(false, false, vs) }
func seq3(vs ...float64) *CoordSeq { return NewCoordSeqFlat(true, false, vs) }

func point(x, y float64) *Geometry {
	g, _ := NewPoint(0, seq2(x, y))
	return g
}

func pointZ(x, y, z float64) *Geometry {
	g, _ := NewPoint(0, seq3(x, y, z))
	return g
}

func square() *CoordSeq { return seq2(0, 0, 1, 0, 1, 1, 0, 1, 0, 0) }

// tetrahedron is a closed TIN with four faces.
func tetrahedron(t *testing.T) *Geometry {
	a, b, c, d := []float64{0, 0, 0}, []float64{1, 0, 0}, []float64{0, 1, 0}, []float64{0, 0, 1}
	face := func(p, q, r []float64) *Geometry {
		var flat []float64
		for _, v := range [][]float64{p, q, r, p} {
			flat = append(flat, v...)
		}
		g, err := NewLine(Triangle, 0, seq3(flat...))
		require.NoError(t, err)
		return g
	}
	tin, err := NewCollection(TIN, 0, true, false,
		face(a, b, c), face(a, b, d), face(b, c, d), face(a, c, d))
	require.NoError(t, err)
	return tin
}

// --- Attach Test Suite ---

type AttachTestSuite struct {
	suite.Suite
}

func (s *AttachTestSuite) TestAllows() {
	s.Assert().True(MultiPoint.Allows(Point))
	s.Assert().False(MultiPoint.Allows(LineString))
	s.Assert().True(CompoundCurve.Allows(CircularString))
	s.Assert().False(CompoundCurve.Allows(CompoundCurve))
	s.Assert().True(CurvePolygon.Allows(CompoundCurve))
	s.Assert().True(MultiSurface.Allows(CurvePolygon))
	s.Assert().True(PolyhedralSurface.Allows(Polygon))
	s.Assert().True(TIN.Allows(Triangle))
	s.Assert().False(TIN.Allows(Polygon))
	s.Assert().True(GeometryCollection.Allows(TIN))
	s.Assert().False(GeometryCollection.Allows(Unknown))
	s.Assert().False(Point.Allows(Point))
}

func (s *AttachTestSuite) TestAddGeometry() {
	mp := NewEmpty(MultiPoint, 0, false, false)
	s.Require().NoError(mp.AddGeometry(point(1, 2)))
	s.Assert().ErrorIs(mp.AddGeometry(pointZ(1, 2, 3)), ErrAttach)
	s.Assert().ErrorIs(mp.AddGeometry(nil), ErrAttach)

	line, err := NewLine(LineString, 0, seq2(0, 0, 1, 1))
	s.Require().NoError(err)
	s.Assert().ErrorIs(mp.AddGeometry(line), ErrAttach)
	s.Assert().Equal(1, mp.NumGeoms())

	gc := NewEmpty(GeometryCollection, 0, false, false)
	s.Require().NoError(gc.AddGeometry(pointZ(1, 2, 3)))
	s.Require().NoError(gc.AddGeometry(mp))

	s.Assert().ErrorIs(point(0, 0).AddGeometry(point(1, 1)), ErrAttach)

	gc.Flags = gc.Flags.Set(FlagReadOnly, true)
	s.Assert().ErrorIs(gc.AddGeometry(point(1, 1)), ErrReadOnly)
}

func (s *AttachTestSuite) TestAddRing() {
	p, err := NewPolygon(0, false, false, square())
	s.Require().NoError(err)
	s.Assert().ErrorIs(p.AddRing(seq3(0, 0, 0, 1, 1, 1)), ErrAttach)
	s.Assert().ErrorIs(p.AddRing(nil), ErrAttach)
	s.Assert().Len(p.Rings, 1)

	s.Assert().ErrorIs(point(1, 1).AddRing(square()), ErrAttach)
}

func (s *AttachTestSuite) TestConstructors() {
	_, err := NewPoint(0, seq2(1, 2, 3, 4))
	s.Assert().ErrorIs(err, ErrAttach)

	_, err = NewLine(Polygon, 0, square())
	s.Assert().ErrorIs(err, ErrAttach)
	_, err = NewLine(LineString, 0, nil)
	s.Assert().ErrorIs(err, ErrAttach)

	_, err = NewCollection(Point, 0, false, false)
	s.Assert().ErrorIs(err, ErrAttach)

	e := NewEmpty(CircularString, 4326, true, true)
	s.Assert().True(e.IsEmpty())
	s.Assert().Equal(4, e.Points.Stride())
	s.Assert().Equal("SRID=4326;CIRCULARSTRING ZM EMPTY(0 vertices)", e.String())
}

func TestAttach(t *testing.T) {
	suite.Run(t, new(AttachTestSuite))
}

func TestDestroy(t *testing.T) {
	p, err := NewPolygon(0, false, false, square(), seq2(0.2, 0.2, 0.4, 0.2, 0.4, 0.4, 0.2, 0.2))
	require.NoError(t, err)
	mp, err := NewCollection(MultiPolygon, 0, false, false, p)
	require.NoError(t, err)
	gc, err := NewCollection(GeometryCollection, 0, false, false, mp, point(1, 1))
	require.NoError(t, err)

	geoms, seqs := gc.Destroy()
	assert.Equal(t, 4, geoms)
	assert.Equal(t, 3, seqs)
	assert.Nil(t, gc.Geoms)
	assert.True(t, gc.IsEmpty())
	assert.Equal(t, GeometryCollection, gc.Type)

	var nilGeom *Geometry
	geoms, seqs = nilGeom.Destroy()
	assert.Zero(t, geoms)
	assert.Zero(t, seqs)
}

func TestTracker(t *testing.T) {
	tr := NewTracker()
	tr.Geometry()
	tr.Sequence()
	tr.Sequence()

	geoms, seqs := tr.Live()
	assert.EqualValues(t, 1, geoms)
	assert.EqualValues(t, 2, seqs)

	tr.ReleaseSeq(seq2(1, 1))
	tr.Release(point(1, 1))
	geoms, seqs = tr.Live()
	assert.Zero(t, geoms)
	assert.Zero(t, seqs)

	var none *Tracker
	none.Geometry()
	none.Release(point(1, 1))
	geoms, seqs = none.Live()
	assert.Zero(t, geoms)
	assert.Zero(t, seqs)
}
