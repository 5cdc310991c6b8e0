package wkb

import (
	"fmt"

	"github.com/oy3o/wkb/geom"
)

// Extended (EWKB) type word flag bits.
const (
	ZFlag    uint32 = 0x80000000
	MFlag    uint32 = 0x40000000
	SRIDFlag uint32 = 0x20000000

	extendedMask uint32 = 0xF0000000
	typeMask     uint32 = 0x0FFFFFFF
)

// ISO type word offsets.
const (
	isoZ   = 1000
	isoM   = 2000
	isoZM  = 3000
	isoMax = 4000
)

// Base type codes.
const (
	PointCode              uint32 = 1
	LineStringCode         uint32 = 2
	PolygonCode            uint32 = 3
	MultiPointCode         uint32 = 4
	MultiLineStringCode    uint32 = 5
	MultiPolygonCode       uint32 = 6
	GeometryCollectionCode uint32 = 7
	CircularStringCode     uint32 = 8
	CompoundCurveCode      uint32 = 9
	CurvePolygonCode       uint32 = 10
	MultiCurveCode         uint32 = 11
	MultiSurfaceCode       uint32 = 12
	CurveCode              uint32 = 13
	SurfaceCode            uint32 = 14
	PolyhedralSurfaceCode  uint32 = 15
	TINCode                uint32 = 16
	TriangleCode           uint32 = 17
)

// codeTypes maps base codes to variants. Curve and Surface are legacy codes
// kept for compatibility with older writers: they decode as CurvePolygon and
// MultiCurve respectively.
var codeTypes = [...]geom.Type{
	PointCode:              geom.Point,
	LineStringCode:         geom.LineString,
	PolygonCode:            geom.Polygon,
	MultiPointCode:         geom.MultiPoint,
	MultiLineStringCode:    geom.MultiLineString,
	MultiPolygonCode:       geom.MultiPolygon,
	GeometryCollectionCode: geom.GeometryCollection,
	CircularStringCode:     geom.CircularString,
	CompoundCurveCode:      geom.CompoundCurve,
	CurvePolygonCode:       geom.CurvePolygon,
	MultiCurveCode:         geom.MultiCurve,
	MultiSurfaceCode:       geom.MultiSurface,
	CurveCode:              geom.CurvePolygon,
	SurfaceCode:            geom.MultiCurve,
	PolyhedralSurfaceCode:  geom.PolyhedralSurface,
	TINCode:                geom.TIN,
	TriangleCode:           geom.Triangle,
}

var typeCodes = map[geom.Type]uint32{
	geom.Point:              PointCode,
	geom.LineString:         LineStringCode,
	geom.Polygon:            PolygonCode,
	geom.MultiPoint:         MultiPointCode,
	geom.MultiLineString:    MultiLineStringCode,
	geom.MultiPolygon:       MultiPolygonCode,
	geom.GeometryCollection: GeometryCollectionCode,
	geom.CircularString:     CircularStringCode,
	geom.CompoundCurve:      CompoundCurveCode,
	geom.CurvePolygon:       CurvePolygonCode,
	geom.MultiCurve:         MultiCurveCode,
	geom.MultiSurface:       MultiSurfaceCode,
	geom.PolyhedralSurface:  PolyhedralSurfaceCode,
	geom.TIN:                TINCode,
	geom.Triangle:           TriangleCode,
}

// TypeTag is a decoded type word.
type TypeTag struct {
	Type    geom.Type
	HasZ    bool
	HasM    bool
	HasSRID bool
}

// ParseTypeWord decodes a raw type word in either the extended flag-bit form
// or the ISO +1000/+2000/+3000 form.
func ParseTypeWord(word uint32) (TypeTag, error) {
	var tag TypeTag
	if word&extendedMask != 0 {
		tag.HasZ = word&ZFlag != 0
		tag.HasM = word&MFlag != 0
		tag.HasSRID = word&SRIDFlag != 0
	}

	code := word & typeMask
	if code >= isoMax {
		return tag, fmt.Errorf("%w: type number %d", ErrUnknownGeometryType, code)
	}
	switch {
	case code >= isoZM:
		tag.HasZ, tag.HasM = true, true
	case code >= isoM:
		tag.HasM = true
	case code >= isoZ:
		tag.HasZ = true
	}

	base := code % 1000
	if base >= uint32(len(codeTypes)) || codeTypes[base] == geom.Unknown {
		return tag, fmt.Errorf("%w: type number %d, full type word %#08x", ErrUnknownGeometryType, base, word)
	}
	tag.Type = codeTypes[base]
	return tag, nil
}

// TypeWord builds the type word for t. Extended words carry Z, M and SRID as
// flag bits; ISO words use the numeric offsets and cannot carry an SRID.
func TypeWord(t geom.Type, hasZ, hasM, hasSRID, extended bool) (uint32, error) {
	code, ok := typeCodes[t]
	if !ok {
		return 0, fmt.Errorf("%w: %s has no type code", ErrUnsupportedGeometry, t)
	}
	if extended {
		if hasZ {
			code |= ZFlag
		}
		if hasM {
			code |= MFlag
		}
		if hasSRID {
			code |= SRIDFlag
		}
		return code, nil
	}
	switch {
	case hasZ && hasM:
		code += isoZM
	case hasZ:
		code += isoZ
	case hasM:
		code += isoM
	}
	return code, nil
}
