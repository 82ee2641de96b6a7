package wire

import "errors"

var (
	ErrTruncated     = errors.New("wire: truncated input")
	ErrListTooLong   = errors.New("wire: list too long")
	ErrMalformedJSON = errors.New("wire: malformed json")
	ErrValueType     = errors.New("wire: value does not match wire type")
	ErrValueRange    = errors.New("wire: value out of range")
)
