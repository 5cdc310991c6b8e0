package geom

// IsEmpty reports whether g has no vertices. A nil geometry is empty.
func (g *Geometry) IsEmpty() bool {
	if g == nil {
		return true
	}
	switch {
	case g.Type.IsLinear():
		return g.Points.Len() == 0
	case g.Type == Polygon:
		return len(g.Rings) == 0 || g.Rings[0].Len() == 0
	}
	for _, c := range g.Geoms {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// VertexCount returns the number of coordinates in the tree rooted at g.
func (g *Geometry) VertexCount() int {
	if g.IsEmpty() {
		return 0
	}
	switch {
	case g.Type == Point:
		return 1
	case g.Type.IsLinear():
		return g.Points.Len()
	case g.Type == Polygon:
		n := 0
		for _, r := range g.Rings {
			n += r.Len()
		}
		return n
	}
	n := 0
	for _, c := range g.Geoms {
		n += c.VertexCount()
	}
	return n
}

// Dimension returns the topological dimension: 0 for points, 1 for curves, 2
// for surfaces and 3 for a closed PolyhedralSurface. A GeometryCollection
// reports the maximum over its children. A nil geometry reports -1.
func (g *Geometry) Dimension() int {
	if g == nil {
		return -1
	}
	switch g.Type {
	case Point, MultiPoint:
		return 0
	case LineString, CircularString, CompoundCurve, MultiCurve, MultiLineString:
		return 1
	case Triangle, Polygon, CurvePolygon, MultiSurface, MultiPolygon, TIN:
		return 2
	case PolyhedralSurface:
		if g.IsClosed() {
			return 3
		}
		return 2
	case GeometryCollection:
		dim := 0
		for _, c := range g.Geoms {
			dim = max(dim, c.Dimension())
		}
		return dim
	}
	return -1
}

// IsClosed reports whether g is topologically closed. Empty geometries are
// never closed; non-linear leaves are always closed.
func (g *Geometry) IsClosed() bool {
	if g.IsEmpty() {
		return false
	}
	switch g.Type {
	case LineString, CircularString:
		return g.Points.IsClosedZ()
	case Polygon:
		for _, r := range g.Rings {
			if !r.IsClosedZ() {
				return false
			}
		}
		return true
	case CompoundCurve:
		start, ok1 := g.StartPoint()
		end, ok2 := g.EndPoint()
		if !ok1 || !ok2 {
			return false
		}
		if g.Flags.HasZ() {
			return start.X == end.X && start.Y == end.Y && start.Z == end.Z
		}
		return start.X == end.X && start.Y == end.Y
	case TIN, PolyhedralSurface:
		return g.isClosedSurface()
	}
	if g.Type.IsCollection() {
		for _, c := range g.Geoms {
			if !c.IsClosed() {
				return false
			}
		}
	}
	return true
}

type edgeKey struct{ a, b Coord }

func newEdge(p, q Coord) edgeKey {
	if less(q, p) {
		p, q = q, p
	}
	return edgeKey{p, q}
}

func less(p, q Coord) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.Z < q.Z
}

// isClosedSurface checks that a 3D TIN or PolyhedralSurface has at least
// four faces and that every face edge is shared by exactly two of them.
func (g *Geometry) isClosedSurface() bool {
	// Fewer than four faces cannot enclose a volume.
	if !g.Flags.HasZ() || len(g.Geoms) < 4 {
		return false
	}
	edges := make(map[edgeKey]int)
	addRing := func(r *CoordSeq) {
		for i := 0; i+1 < r.Len(); i++ {
			p, q := r.At(i), r.At(i+1)
			p.M, q.M = 0, 0
			edges[newEdge(p, q)]++
		}
	}
	for _, face := range g.Geoms {
		switch face.Type {
		case Triangle:
			addRing(face.Points)
		case Polygon:
			if len(face.Rings) > 0 {
				addRing(face.Rings[0])
			}
		}
	}
	if len(edges) == 0 {
		return false
	}
	for _, n := range edges {
		if n != 2 {
			return false
		}
	}
	return true
}

// StartPoint returns the first coordinate of g in depth-first order.
func (g *Geometry) StartPoint() (Coord, bool) {
	if g.IsEmpty() {
		return Coord{}, false
	}
	switch {
	case g.Type.IsLinear():
		return g.Points.At(0), true
	case g.Type == Polygon:
		return g.Rings[0].At(0), true
	}
	for _, c := range g.Geoms {
		if p, ok := c.StartPoint(); ok {
			return p, true
		}
	}
	return Coord{}, false
}

// EndPoint returns the last coordinate of g in depth-first order.
func (g *Geometry) EndPoint() (Coord, bool) {
	if g.IsEmpty() {
		return Coord{}, false
	}
	switch {
	case g.Type.IsLinear():
		return g.Points.At(g.Points.Len() - 1), true
	case g.Type == Polygon:
		r := g.Rings[len(g.Rings)-1]
		if r.Len() == 0 {
			return Coord{}, false
		}
		return r.At(r.Len() - 1), true
	}
	for i := len(g.Geoms) - 1; i >= 0; i-- {
		if p, ok := g.Geoms[i].EndPoint(); ok {
			return p, true
		}
	}
	return Coord{}, false
}

// SetSRID assigns srid to g and every descendant.
func (g *Geometry) SetSRID(srid SRID) {
	g.SRID = srid
	for _, c := range g.Geoms {
		c.SetSRID(srid)
	}
}

func (g *Geometry) HasZ() bool { return g != nil && g.Flags.HasZ() }
func (g *Geometry) HasM() bool { return g != nil && g.Flags.HasM() }

// HasSRID reports whether g carries a known SRID.
func (g *Geometry) HasSRID() bool { return g != nil && g.SRID != SRIDUnknown }

// Clone returns a deep, independently owned copy of g, coordinate sequences
// included. The copy is never read-only.
func (g *Geometry) Clone() *Geometry {
	if g == nil {
		return nil
	}
	out := &Geometry{
		Type:   g.Type,
		SRID:   g.SRID,
		Flags:  g.Flags &^ FlagReadOnly,
		Points: g.Points.Clone(),
	}
	if g.BBox != nil {
		box := *g.BBox
		out.BBox = &box
	}
	if g.Rings != nil {
		out.Rings = make([]*CoordSeq, len(g.Rings))
		for i, r := range g.Rings {
			out.Rings[i] = r.Clone()
		}
	}
	if g.Geoms != nil {
		out.Geoms = make([]*Geometry, len(g.Geoms))
		for i, c := range g.Geoms {
			out.Geoms[i] = c.Clone()
		}
	}
	return out
}

// ForceDims returns a copy of g whose every coordinate sequence is rebuilt
// with the requested Z and M presence. Added ordinates take zFill and mFill.
// The bounding box is dropped.
func (g *Geometry) ForceDims(hasZ, hasM bool, zFill, mFill float64) *Geometry {
	if g == nil {
		return nil
	}
	out := &Geometry{
		Type:  g.Type,
		SRID:  g.SRID,
		Flags: g.Flags&^(FlagZ|FlagM|FlagBBox|FlagReadOnly) | NewFlags(hasZ, hasM),
	}
	if g.Points != nil {
		out.Points = g.Points.ForceDims(hasZ, hasM, zFill, mFill)
	}
	if g.Rings != nil {
		out.Rings = make([]*CoordSeq, len(g.Rings))
		for i, r := range g.Rings {
			out.Rings[i] = r.ForceDims(hasZ, hasM, zFill, mFill)
		}
	}
	if g.Geoms != nil {
		out.Geoms = make([]*Geometry, len(g.Geoms))
		for i, c := range g.Geoms {
			out.Geoms[i] = c.ForceDims(hasZ, hasM, zFill, mFill)
		}
	}
	return out
}

// Force2D drops Z and M.
func (g *Geometry) Force2D() *Geometry {
	return g.ForceDims(false, false, 0, 0)
}

// Walk calls fn for g and then for every descendant in depth-first order,
// stopping early when fn returns false.
func (g *Geometry) Walk(fn func(*Geometry) bool) bool {
	if g == nil {
		return true
	}
	if !fn(g) {
		return false
	}
	for _, c := range g.Geoms {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}
