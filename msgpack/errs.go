package msgpack

import (
	"errors"
	"fmt"

	"github.com/packview/packview/format"
)

var (
	ErrTruncated = errors.New("truncated data")
	ErrMarker    = errors.New("unrecognized marker")
	ErrTrailing  = errors.New("trailing data")
	ErrKey       = errors.New("unsupported map key")
	ErrEncoding  = errors.New("wire encoding error")
)

// DecodeErr reports a wire decoding failure with the byte offset and
// marker value at the failing position.
type DecodeErr struct {
	Offset int
	Marker format.Marker
	Err    error
}

func (e *DecodeErr) Unwrap() error {
	return e.Err
}

func (e *DecodeErr) Error() string {
	return fmt.Sprintf("%s: %s at offset %d", e.Err.Error(), e.Marker, e.Offset)
}

func decodeErr(err error, off int, m format.Marker) *DecodeErr {
	return &DecodeErr{Offset: off, Marker: m, Err: err}
}
