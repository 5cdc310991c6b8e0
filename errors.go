package wkb

import (
	"errors"
	"fmt"

	"github.com/oy3o/wkb/geom"
)

var (
	// ErrBufferUnderrun indicates a read would cross the end of the declared buffer.
	ErrBufferUnderrun = errors.New("wkb: structure does not match expected size")

	// ErrInvalidEndianFlag indicates a geometry header whose byte-order byte is neither 0 nor 1.
	ErrInvalidEndianFlag = errors.New("wkb: invalid endian flag value")

	// ErrUnknownGeometryType indicates a type word that maps to no known geometry type,
	// including ISO values of 4000 and above.
	ErrUnknownGeometryType = errors.New("wkb: unknown geometry type")

	// ErrTooManyPoints indicates a point count whose byte size could overflow.
	ErrTooManyPoints = errors.New("wkb: too many points")

	// ErrStructuralValidation indicates a requested validity check (minimum points,
	// closure, odd point count, ring count) failed.
	ErrStructuralValidation = errors.New("wkb: structural validation failed")

	// ErrMaxDepthExceeded indicates nested collections deeper than the configured ceiling.
	ErrMaxDepthExceeded = errors.New("wkb: geometry has too many chained collections")

	// ErrChildAttach indicates a decoded child could not be attached to its parent.
	ErrChildAttach = errors.New("wkb: unable to attach child geometry")

	// ErrTrailingData is returned by Value.UnmarshalBinary when bytes remain after
	// the geometry has been decoded.
	ErrTrailingData = errors.New("wkb: trailing data found after decoding")

	// ErrInvalidHex indicates hex input that is not a valid hex string.
	ErrInvalidHex = errors.New("wkb: invalid hex string")

	// ErrUnsupportedGeometry indicates the encoder was handed a geometry it cannot write.
	ErrUnsupportedGeometry = errors.New("wkb: unsupported geometry")
)

// ErrorKind classifies a decode failure.
type ErrorKind uint8

const (
	KindUnknown ErrorKind = iota
	KindBufferUnderrun
	KindInvalidEndianFlag
	KindUnknownGeometryType
	KindTooManyPoints
	KindStructuralValidation
	KindMaxDepthExceeded
	KindChildAttach
)

var kindSentinels = [...]error{
	KindBufferUnderrun:       ErrBufferUnderrun,
	KindInvalidEndianFlag:    ErrInvalidEndianFlag,
	KindUnknownGeometryType:  ErrUnknownGeometryType,
	KindTooManyPoints:        ErrTooManyPoints,
	KindStructuralValidation: ErrStructuralValidation,
	KindMaxDepthExceeded:     ErrMaxDepthExceeded,
	KindChildAttach:          ErrChildAttach,
}

var kindNames = [...]string{
	KindUnknown:              "Unknown",
	KindBufferUnderrun:       "BufferUnderrun",
	KindInvalidEndianFlag:    "InvalidEndianFlag",
	KindUnknownGeometryType:  "UnknownGeometryType",
	KindTooManyPoints:        "TooManyPoints",
	KindStructuralValidation: "StructuralValidation",
	KindMaxDepthExceeded:     "MaxDepthExceeded",
	KindChildAttach:          "ChildAttachFailure",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindUnknown]
}

func kindOf(err error) ErrorKind {
	for k, sentinel := range kindSentinels {
		if sentinel != nil && errors.Is(err, sentinel) {
			return ErrorKind(k)
		}
	}
	return KindUnknown
}

// DecodeError is the single failure value returned by the decoder. It records
// where the failure happened; Unwrap exposes the kind's sentinel error so
// callers can use errors.Is.
type DecodeError struct {
	Kind   ErrorKind
	Offset int       // byte offset of the cursor when decoding stopped
	Depth  int       // collection depth, 1 for the outermost geometry
	Type   geom.Type // variant being decoded, Unknown before the type word was read
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Type.Valid() {
		return fmt.Sprintf("%v (%s at offset %d, depth %d)", e.Err, e.Type, e.Offset, e.Depth)
	}
	return fmt.Sprintf("%v (offset %d, depth %d)", e.Err, e.Offset, e.Depth)
}

func (e *DecodeError) Unwrap() error { return e.Err }
