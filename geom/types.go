package geom

// Type identifies the concrete variant of a Geometry.
type Type uint8

const (
	Unknown Type = iota
	Point
	LineString
	Polygon
	MultiPoint
	MultiLineString
	MultiPolygon
	GeometryCollection
	CircularString
	CompoundCurve
	CurvePolygon
	MultiCurve
	MultiSurface
	PolyhedralSurface
	Triangle
	TIN
)

var typeNames = [...]string{
	Unknown:            "UNKNOWN",
	Point:              "POINT",
	LineString:         "LINESTRING",
	Polygon:            "POLYGON",
	MultiPoint:         "MULTIPOINT",
	MultiLineString:    "MULTILINESTRING",
	MultiPolygon:       "MULTIPOLYGON",
	GeometryCollection: "GEOMETRYCOLLECTION",
	CircularString:     "CIRCULARSTRING",
	CompoundCurve:      "COMPOUNDCURVE",
	CurvePolygon:       "CURVEPOLYGON",
	MultiCurve:         "MULTICURVE",
	MultiSurface:       "MULTISURFACE",
	PolyhedralSurface:  "POLYHEDRALSURFACE",
	Triangle:           "TRIANGLE",
	TIN:                "TIN",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return typeNames[Unknown]
}

// Valid reports whether t is one of the concrete variants.
func (t Type) Valid() bool { return t > Unknown && t <= TIN }

// IsCollection reports whether geometries of this type hold child geometries
// rather than coordinates.
func (t Type) IsCollection() bool {
	switch t {
	case MultiPoint, MultiLineString, MultiPolygon, GeometryCollection,
		CurvePolygon, CompoundCurve, MultiCurve, MultiSurface,
		PolyhedralSurface, TIN:
		return true
	}
	return false
}

// IsLinear reports whether the type stores a single coordinate sequence.
func (t Type) IsLinear() bool {
	switch t {
	case Point, LineString, CircularString, Triangle:
		return true
	}
	return false
}

// CollectionType returns the homogeneous collection type able to hold t.
func (t Type) CollectionType() Type {
	switch t {
	case Point:
		return MultiPoint
	case LineString:
		return MultiLineString
	case Polygon:
		return MultiPolygon
	case CircularString, CompoundCurve:
		return MultiCurve
	case CurvePolygon:
		return MultiSurface
	case Triangle:
		return TIN
	}
	return GeometryCollection
}

// Allows reports whether a geometry of type t may directly contain a child of
// type child.
func (t Type) Allows(child Type) bool {
	if !child.Valid() {
		return false
	}
	switch t {
	case GeometryCollection:
		return true
	case MultiPoint:
		return child == Point
	case MultiLineString:
		return child == LineString
	case MultiPolygon:
		return child == Polygon
	case CompoundCurve:
		return child == LineString || child == CircularString
	case CurvePolygon, MultiCurve:
		return child == LineString || child == CircularString || child == CompoundCurve
	case MultiSurface:
		return child == Polygon || child == CurvePolygon
	case PolyhedralSurface:
		return child == Polygon
	case TIN:
		return child == Triangle
	}
	return false
}

// Flags is the attribute bit set carried by every Geometry.
type Flags uint8

const (
	FlagZ Flags = 1 << iota
	FlagM
	FlagGeodetic
	FlagBBox
	FlagReadOnly
	FlagSolid
)

// NewFlags builds the dimensionality flags.
func NewFlags(hasZ, hasM bool) Flags {
	var f Flags
	if hasZ {
		f |= FlagZ
	}
	if hasM {
		f |= FlagM
	}
	return f
}

func (f Flags) HasZ() bool     { return f&FlagZ != 0 }
func (f Flags) HasM() bool     { return f&FlagM != 0 }
func (f Flags) Geodetic() bool { return f&FlagGeodetic != 0 }
func (f Flags) HasBBox() bool  { return f&FlagBBox != 0 }
func (f Flags) ReadOnly() bool { return f&FlagReadOnly != 0 }
func (f Flags) Solid() bool    { return f&FlagSolid != 0 }

// Stride is the number of ordinates per coordinate: 2 plus one for each of Z and M.
func (f Flags) Stride() int {
	n := 2
	if f.HasZ() {
		n++
	}
	if f.HasM() {
		n++
	}
	return n
}

func (f Flags) sameDims(o Flags) bool {
	return f&(FlagZ|FlagM) == o&(FlagZ|FlagM)
}

// Set returns f with bit toggled to on.
func (f Flags) Set(bit Flags, on bool) Flags {
	if on {
		return f | bit
	}
	return f &^ bit
}

// SRID is a spatial reference system identifier.
type SRID = int32

const (
	SRIDUnknown     SRID = 0
	SRIDMaximum     SRID = 999999
	SRIDUserMaximum SRID = 998999
)

// ClampSRID folds srid into the legal range. Non-positive values become
// SRIDUnknown and values above SRIDMaximum wrap into the reserved block above
// SRIDUserMaximum.
func ClampSRID(srid SRID) SRID {
	if srid <= 0 {
		return SRIDUnknown
	}
	if srid > SRIDMaximum {
		return SRIDUserMaximum + 1 + srid%(SRIDMaximum-SRIDUserMaximum-1)
	}
	return srid
}
