package wkb

import (
	"fmt"

	"github.com/oy3o/wkb/geom"
)

// Check is a bit mask of structural validity checks applied while decoding.
type Check uint8

const (
	// CheckMinPoints requires 2 points per line, 3 per circular string and 4
	// per polygon or triangle ring.
	CheckMinPoints Check = 1 << iota
	// CheckOdd requires circular strings to have an odd number of points.
	CheckOdd
	// CheckClosure requires polygon rings to be closed in X and Y.
	CheckClosure
	// CheckZClosure requires triangle rings, and polygon rings inside a
	// PolyhedralSurface, to be closed including Z.
	CheckZClosure

	CheckNone Check = 0
	CheckAll        = CheckMinPoints | CheckOdd | CheckClosure | CheckZClosure
)

func (c Check) has(bit Check) bool { return c&bit != 0 }

func invalidf(t geom.Type, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrStructuralValidation, t, fmt.Sprintf(format, args...))
}

func (c Check) line(t geom.Type, pts *geom.CoordSeq) error {
	if c.has(CheckMinPoints) && pts.Len() < 2 {
		return invalidf(t, "must have at least two points")
	}
	return nil
}

func (c Check) circular(t geom.Type, pts *geom.CoordSeq) error {
	if c.has(CheckMinPoints) && pts.Len() < 3 {
		return invalidf(t, "must have at least three points")
	}
	if c.has(CheckOdd) && pts.Len()%2 == 0 {
		return invalidf(t, "must have an odd number of points")
	}
	return nil
}

// ring validates a polygon ring. strictZ is set inside polyhedral surfaces.
func (c Check) ring(t geom.Type, pts *geom.CoordSeq, strictZ bool) error {
	if c.has(CheckMinPoints) && pts.Len() < 4 {
		return invalidf(t, "must have at least four points in each ring")
	}
	if c.has(CheckClosure) && !pts.IsClosed2D() {
		return invalidf(t, "must have closed rings")
	}
	if strictZ && c.has(CheckZClosure) && !pts.IsClosedZ() {
		return invalidf(t, "must have rings closed in Z")
	}
	return nil
}

func (c Check) triangle(pts *geom.CoordSeq) error {
	if c.has(CheckMinPoints) && pts.Len() < 4 {
		return invalidf(geom.Triangle, "must have at least four points")
	}
	if c.has(CheckZClosure) && !pts.IsClosedZ() {
		return invalidf(geom.Triangle, "must have closed rings")
	}
	return nil
}
