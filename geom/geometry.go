// Package geom defines the geometry object model produced by the WKB decoder.
//
// A Geometry is a closed tagged union: Type selects the variant and only the
// fields that variant needs are populated. Point, LineString, CircularString
// and Triangle keep their vertices in Points; Polygon keeps its rings in
// Rings (ring 0 is the exterior); every collection-like variant keeps its
// children in Geoms. A geometry exclusively owns its coordinate sequences
// and its children.
package geom

import (
	"fmt"
)

// Geometry is a node of a geometry tree.
type Geometry struct {
	Type  Type
	SRID  SRID
	Flags Flags
	BBox  *Box

	Points *CoordSeq
	Rings  []*CoordSeq
	Geoms  []*Geometry
}

// NewEmpty returns an empty geometry of type t.
func NewEmpty(t Type, srid SRID, hasZ, hasM bool) *Geometry {
	g := &Geometry{Type: t, SRID: srid, Flags: NewFlags(hasZ, hasM)}
	if t.IsLinear() {
		g.Points = NewCoordSeq(hasZ, hasM, 0)
	}
	return g
}

// NewPoint builds a Point from a sequence holding exactly one coordinate, or
// an empty Point from an empty sequence.
func NewPoint(srid SRID, pts *CoordSeq) (*Geometry, error) {
	if pts == nil || pts.Len() > 1 {
		return nil, fmt.Errorf("%w: point needs at most one coordinate, got %d", ErrAttach, pts.Len())
	}
	return &Geometry{Type: Point, SRID: srid, Flags: pts.flags, Points: pts}, nil
}

// NewLine builds one of the single-sequence variants (LineString,
// CircularString, Triangle). The geometry takes ownership of pts.
func NewLine(t Type, srid SRID, pts *CoordSeq) (*Geometry, error) {
	if !t.IsLinear() || t == Point {
		return nil, fmt.Errorf("%w: %s is not a line-like type", ErrAttach, t)
	}
	if pts == nil {
		return nil, fmt.Errorf("%w: %s without coordinates", ErrAttach, t)
	}
	return &Geometry{Type: t, SRID: srid, Flags: pts.flags, Points: pts}, nil
}

// NewPolygon builds a Polygon from its rings. Ring 0 is the exterior ring.
func NewPolygon(srid SRID, hasZ, hasM bool, rings ...*CoordSeq) (*Geometry, error) {
	g := NewEmpty(Polygon, srid, hasZ, hasM)
	for _, r := range rings {
		if err := g.AddRing(r); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// NewCollection builds a collection-like geometry from children.
func NewCollection(t Type, srid SRID, hasZ, hasM bool, children ...*Geometry) (*Geometry, error) {
	if !t.IsCollection() {
		return nil, fmt.Errorf("%w: %s is not a collection type", ErrAttach, t)
	}
	g := NewEmpty(t, srid, hasZ, hasM)
	for _, c := range children {
		if err := g.AddGeometry(c); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// AddRing appends ring to a Polygon. On success the polygon owns ring.
func (g *Geometry) AddRing(ring *CoordSeq) error {
	switch {
	case g.Flags.ReadOnly():
		return ErrReadOnly
	case g.Type != Polygon:
		return fmt.Errorf("%w: %s has no rings", ErrAttach, g.Type)
	case ring == nil:
		return fmt.Errorf("%w: nil ring", ErrAttach)
	case !g.Flags.sameDims(ring.flags):
		return fmt.Errorf("%w: ring dimensionality does not match polygon", ErrAttach)
	}
	g.Rings = append(g.Rings, ring)
	return nil
}

// AddGeometry appends child to a collection. On success the collection owns
// child. Homogeneous collections require the child to share the parent's Z
// and M flags; a GeometryCollection accepts anything.
func (g *Geometry) AddGeometry(child *Geometry) error {
	switch {
	case g.Flags.ReadOnly():
		return ErrReadOnly
	case child == nil:
		return fmt.Errorf("%w: nil child in %s", ErrAttach, g.Type)
	case !g.Type.IsCollection():
		return fmt.Errorf("%w: %s is not a collection", ErrAttach, g.Type)
	case !g.Type.Allows(child.Type):
		return fmt.Errorf("%w: %s cannot contain %s", ErrAttach, g.Type, child.Type)
	case g.Type != GeometryCollection && !g.Flags.sameDims(child.Flags):
		return fmt.Errorf("%w: %s child dimensionality does not match %s", ErrAttach, child.Type, g.Type)
	}
	g.Geoms = append(g.Geoms, child)
	return nil
}

// NumGeoms returns the number of direct children, or 1 for non-collections.
func (g *Geometry) NumGeoms() int {
	if g.Type.IsCollection() {
		return len(g.Geoms)
	}
	return 1
}

// IsCollection reports whether g holds child geometries.
func (g *Geometry) IsCollection() bool {
	return g != nil && g.Type.IsCollection()
}

// Destroy recursively releases everything g owns and returns how many
// geometries (including g) and coordinate sequences were released. A
// destroyed geometry keeps its Type and SRID but holds no data.
func (g *Geometry) Destroy() (geoms, seqs int) {
	if g == nil {
		return 0, 0
	}
	for _, c := range g.Geoms {
		n, s := c.Destroy()
		geoms += n
		seqs += s
	}
	if g.Points != nil {
		g.Points.release()
		seqs++
	}
	for _, r := range g.Rings {
		r.release()
		seqs++
	}
	g.Points, g.Rings, g.Geoms, g.BBox = nil, nil, nil, nil
	g.Flags &^= FlagBBox
	return geoms + 1, seqs
}

func (g *Geometry) String() string {
	if g == nil {
		return "<nil>"
	}
	name := g.Type.String()
	switch {
	case g.Flags.HasZ() && g.Flags.HasM():
		name += " ZM"
	case g.Flags.HasZ():
		name += " Z"
	case g.Flags.HasM():
		name += " M"
	}
	if g.IsEmpty() {
		name += " EMPTY"
	}
	if g.HasSRID() {
		return fmt.Sprintf("SRID=%d;%s(%d vertices)", g.SRID, name, g.VertexCount())
	}
	return fmt.Sprintf("%s(%d vertices)", name, g.VertexCount())
}
