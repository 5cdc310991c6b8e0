package geom

import "math"

// Box is a cartesian bounding box. Z and M bounds are only meaningful when
// the matching flag is set.
type Box struct {
	Flags    Flags
	Min, Max Coord
}

func (b *Box) extend(c Coord) {
	b.Min.X, b.Max.X = math.Min(b.Min.X, c.X), math.Max(b.Max.X, c.X)
	b.Min.Y, b.Max.Y = math.Min(b.Min.Y, c.Y), math.Max(b.Max.Y, c.Y)
	b.Min.Z, b.Max.Z = math.Min(b.Min.Z, c.Z), math.Max(b.Max.Z, c.Z)
	b.Min.M, b.Max.M = math.Min(b.Min.M, c.M), math.Max(b.Max.M, c.M)
}

// ComputeBBox calculates the bounding box of g without storing it. The
// second result is false for empty geometries.
func (g *Geometry) ComputeBBox() (Box, bool) {
	inf := math.Inf(1)
	box := Box{
		Flags: g.Flags & (FlagZ | FlagM | FlagGeodetic),
		Min:   Coord{inf, inf, inf, inf},
		Max:   Coord{-inf, -inf, -inf, -inf},
	}
	seen := false
	visit := func(s *CoordSeq) {
		for i := 0; i < s.Len(); i++ {
			box.extend(s.At(i))
			seen = true
		}
	}
	g.Walk(func(n *Geometry) bool {
		if n.Points != nil {
			visit(n.Points)
		}
		for _, r := range n.Rings {
			visit(r)
		}
		return true
	})
	return box, seen
}

// AddBBox computes and caches the bounding box. Empty geometries get none.
func (g *Geometry) AddBBox() {
	if g.BBox != nil || g.IsEmpty() {
		return
	}
	box, ok := g.ComputeBBox()
	if !ok {
		return
	}
	g.BBox = &box
	g.Flags |= FlagBBox
}

// DropBBox removes a cached bounding box from g and its descendants.
func (g *Geometry) DropBBox() {
	g.Walk(func(n *Geometry) bool {
		n.BBox = nil
		n.Flags &^= FlagBBox
		return true
	})
}

// NeedsBBox reports whether caching a box for g is worthwhile. Points and
// two-point lines are their own boxes.
func (g *Geometry) NeedsBBox() bool {
	switch g.Type {
	case Point:
		return false
	case LineString:
		return g.VertexCount() > 2
	}
	return true
}
