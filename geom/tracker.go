package geom

import (
	"github.com/puzpuzpuz/xsync/v4"
)

// Tracker counts live geometries and coordinate sequences. A decoder reports
// every node and sequence it allocates, and Release reports what Destroy
// freed, so after a tree is released (or a decode fails) both counts return
// to their starting values.
//
// A nil *Tracker is valid and ignores every call.
type Tracker struct {
	geoms *xsync.Counter
	seqs  *xsync.Counter
}

func NewTracker() *Tracker {
	return &Tracker{geoms: xsync.NewCounter(), seqs: xsync.NewCounter()}
}

// Geometry records the allocation of one geometry node.
func (t *Tracker) Geometry() {
	if t != nil {
		t.geoms.Inc()
	}
}

// Sequence records the allocation of one coordinate sequence.
func (t *Tracker) Sequence() {
	if t != nil {
		t.seqs.Inc()
	}
}

// Release destroys g and subtracts everything it owned.
func (t *Tracker) Release(g *Geometry) {
	geoms, seqs := g.Destroy()
	if t != nil {
		t.geoms.Add(-int64(geoms))
		t.seqs.Add(-int64(seqs))
	}
}

// ReleaseSeq drops a sequence that was never attached to a geometry.
func (t *Tracker) ReleaseSeq(s *CoordSeq) {
	if s == nil {
		return
	}
	s.release()
	if t != nil {
		t.seqs.Dec()
	}
}

// Live returns the number of geometries and sequences allocated and not yet
// released.
func (t *Tracker) Live() (geoms, seqs int64) {
	if t == nil {
		return 0, 0
	}
	return t.geoms.Value(), t.seqs.Value()
}
