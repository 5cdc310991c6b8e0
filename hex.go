package wkb

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/oy3o/wkb/geom"
)

// EncodeHex serializes g as upper-case hex.
func EncodeHex(g *geom.Geometry, order binary.ByteOrder, opts ...EncodeOption) (string, error) {
	b, err := Encode(g, order, opts...)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

// DecodeHex decodes hex-encoded WKB with the given options.
func DecodeHex(s string, opts ...Option) (*geom.Geometry, error) {
	return NewDecoder(opts...).DecodeHex(s)
}

// DecodeHex decodes hex-encoded WKB, as printed by most spatial databases.
// Upper and lower case digits are accepted.
func (d *Decoder) DecodeHex(s string) (*geom.Geometry, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrInvalidHex, len(s))
	}
	buf := getBuffer()
	defer putBuffer(buf)

	buf.Grow(len(s) / 2)
	b := buf.AvailableBuffer()[:len(s)/2]
	if _, err := hex.Decode(b, []byte(s)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	return d.Decode(b)
}
