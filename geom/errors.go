package geom

import "errors"

var (
	// ErrAttach indicates a child geometry or ring could not be attached to its
	// parent, e.g. a LineString pushed into a MultiPoint or a ring whose
	// dimensionality differs from the polygon's.
	ErrAttach = errors.New("geom: cannot attach child")

	// ErrReadOnly indicates a mutation was attempted on a geometry flagged read-only.
	ErrReadOnly = errors.New("geom: geometry is read-only")
)
