package wkb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oy3o/wkb/geom"
)

func TestParseTypeWord(t *testing.T) {
	cases := []struct {
		word uint32
		want TypeTag
	}{
		{PointCode, TypeTag{Type: geom.Point}},
		{1002, TypeTag{Type: geom.LineString, HasZ: true}},
		{2003, TypeTag{Type: geom.Polygon, HasM: true}},
		{3017, TypeTag{Type: geom.Triangle, HasZ: true, HasM: true}},
		{ZFlag | MFlag | SRIDFlag | TINCode, TypeTag{Type: geom.TIN, HasZ: true, HasM: true, HasSRID: true}},
		{SRIDFlag | MultiSurfaceCode, TypeTag{Type: geom.MultiSurface, HasSRID: true}},
		{CurveCode, TypeTag{Type: geom.CurvePolygon}},
		{1000 + SurfaceCode, TypeTag{Type: geom.MultiCurve, HasZ: true}},
	}
	for _, tc := range cases {
		got, err := ParseTypeWord(tc.word)
		require.NoError(t, err, "word %#x", tc.word)
		assert.Equal(t, tc.want, got, "word %#x", tc.word)
	}

	for _, word := range []uint32{0, 18, 999, 1018, 4000, 4001, ZFlag | 4007, 0x0FFFFFFF} {
		_, err := ParseTypeWord(word)
		assert.ErrorIs(t, err, ErrUnknownGeometryType, "word %#x", word)
	}
}

func TestTypeWordRoundTrip(t *testing.T) {
	for typ := range typeCodes {
		for _, dims := range [][2]bool{{false, false}, {true, false}, {false, true}, {true, true}} {
			iso, err := TypeWord(typ, dims[0], dims[1], false, false)
			require.NoError(t, err)
			tag, err := ParseTypeWord(iso)
			require.NoError(t, err)
			assert.Equal(t, TypeTag{Type: typ, HasZ: dims[0], HasM: dims[1]}, tag)

			ext, err := TypeWord(typ, dims[0], dims[1], true, true)
			require.NoError(t, err)
			tag, err = ParseTypeWord(ext)
			require.NoError(t, err)
			assert.Equal(t, TypeTag{Type: typ, HasZ: dims[0], HasM: dims[1], HasSRID: true}, tag)
		}
	}

	_, err := TypeWord(geom.Unknown, false, false, false, false)
	assert.ErrorIs(t, err, ErrUnsupportedGeometry)
}
