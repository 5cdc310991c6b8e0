// Package gogeom converts between wkb geometries and github.com/twpayne/go-geom.
//
// Only the variants go-geom models are supported: Point, LineString,
// Polygon, the three Multi* types and GeometryCollection.
package gogeom

import (
	"errors"
	"fmt"

	twgeom "github.com/twpayne/go-geom"

	"github.com/oy3o/wkb/geom"
)

// ErrUnsupported indicates a variant that has no go-geom counterpart.
var ErrUnsupported = errors.New("gogeom: unsupported geometry")

func layoutOf(hasZ, hasM bool) twgeom.Layout {
	switch {
	case hasZ && hasM:
		return twgeom.XYZM
	case hasZ:
		return twgeom.XYZ
	case hasM:
		return twgeom.XYM
	}
	return twgeom.XY
}

func dimsOf(l twgeom.Layout) (hasZ, hasM bool) {
	return l.ZIndex() != -1, l.MIndex() != -1
}

func flat(s *geom.CoordSeq) []float64 {
	if s.Len() == 0 {
		return nil
	}
	return append([]float64(nil), s.Flat()...)
}

// ToGoGeom converts g into the equivalent go-geom value. Coordinates are copied.
func ToGoGeom(g *geom.Geometry) (twgeom.T, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil geometry", ErrUnsupported)
	}
	layout := layoutOf(g.HasZ(), g.HasM())
	srid := int(g.SRID)

	switch g.Type {
	case geom.Point:
		if g.IsEmpty() {
			return twgeom.NewPointEmpty(layout).SetSRID(srid), nil
		}
		return twgeom.NewPointFlat(layout, flat(g.Points)).SetSRID(srid), nil
	case geom.LineString:
		return twgeom.NewLineStringFlat(layout, flat(g.Points)).SetSRID(srid), nil
	case geom.Polygon:
		var coords []float64
		ends := make([]int, 0, len(g.Rings))
		for _, r := range g.Rings {
			coords = append(coords, r.Flat()...)
			ends = append(ends, len(coords))
		}
		return twgeom.NewPolygonFlat(layout, coords, ends).SetSRID(srid), nil
	case geom.MultiPoint:
		mp := twgeom.NewMultiPoint(layout).SetSRID(srid)
		for _, c := range g.Geoms {
			p, err := ToGoGeom(c)
			if err != nil {
				return nil, err
			}
			if err := mp.Push(p.(*twgeom.Point)); err != nil {
				return nil, err
			}
		}
		return mp, nil
	case geom.MultiLineString:
		mls := twgeom.NewMultiLineString(layout).SetSRID(srid)
		for _, c := range g.Geoms {
			ls, err := ToGoGeom(c)
			if err != nil {
				return nil, err
			}
			if err := mls.Push(ls.(*twgeom.LineString)); err != nil {
				return nil, err
			}
		}
		return mls, nil
	case geom.MultiPolygon:
		mp := twgeom.NewMultiPolygon(layout).SetSRID(srid)
		for _, c := range g.Geoms {
			p, err := ToGoGeom(c)
			if err != nil {
				return nil, err
			}
			if err := mp.Push(p.(*twgeom.Polygon)); err != nil {
				return nil, err
			}
		}
		return mp, nil
	case geom.GeometryCollection:
		gc := twgeom.NewGeometryCollection().SetSRID(srid)
		if len(g.Geoms) == 0 {
			if err := gc.SetLayout(layout); err != nil {
				return nil, err
			}
			return gc, nil
		}
		for _, c := range g.Geoms {
			t, err := ToGoGeom(c)
			if err != nil {
				return nil, err
			}
			if err := gc.Push(t); err != nil {
				return nil, err
			}
		}
		return gc, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, g.Type)
}

// FromGoGeom converts a go-geom value. The result owns copies of the
// coordinates; children inherit the SRID of t.
func FromGoGeom(t twgeom.T) (*geom.Geometry, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil geometry", ErrUnsupported)
	}
	return fromGoGeom(t, geom.ClampSRID(geom.SRID(t.SRID())))
}

func fromGoGeom(t twgeom.T, srid geom.SRID) (*geom.Geometry, error) {
	hasZ, hasM := dimsOf(t.Layout())
	seq := func(coords []float64) *geom.CoordSeq {
		return geom.NewCoordSeqFlat(hasZ, hasM, append([]float64(nil), coords...))
	}

	switch t := t.(type) {
	case *twgeom.Point:
		if t.Empty() {
			return geom.NewEmpty(geom.Point, srid, hasZ, hasM), nil
		}
		return geom.NewPoint(srid, seq(t.FlatCoords()))
	case *twgeom.LineString:
		return geom.NewLine(geom.LineString, srid, seq(t.FlatCoords()))
	case *twgeom.Polygon:
		g := geom.NewEmpty(geom.Polygon, srid, hasZ, hasM)
		for i := range t.NumLinearRings() {
			if err := g.AddRing(seq(t.LinearRing(i).FlatCoords())); err != nil {
				return nil, err
			}
		}
		return g, nil
	case *twgeom.MultiPoint:
		return collect(geom.MultiPoint, srid, hasZ, hasM, t.NumPoints(), func(i int) twgeom.T { return t.Point(i) })
	case *twgeom.MultiLineString:
		return collect(geom.MultiLineString, srid, hasZ, hasM, t.NumLineStrings(), func(i int) twgeom.T { return t.LineString(i) })
	case *twgeom.MultiPolygon:
		return collect(geom.MultiPolygon, srid, hasZ, hasM, t.NumPolygons(), func(i int) twgeom.T { return t.Polygon(i) })
	case *twgeom.GeometryCollection:
		return collect(geom.GeometryCollection, srid, hasZ, hasM, t.NumGeoms(), t.Geom)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, t)
}

func collect(typ geom.Type, srid geom.SRID, hasZ, hasM bool, n int, child func(int) twgeom.T) (*geom.Geometry, error) {
	g := geom.NewEmpty(typ, srid, hasZ, hasM)
	for i := range n {
		c, err := fromGoGeom(child(i), srid)
		if err != nil {
			return nil, err
		}
		if err := g.AddGeometry(c); err != nil {
			return nil, err
		}
	}
	return g, nil
}
