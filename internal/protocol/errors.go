package protocol

import (
	"errors"
	"fmt"

	"github.com/danmuck/pokerpackets/internal/protocol/frame"
	"github.com/danmuck/pokerpackets/internal/protocol/schema"
	"github.com/danmuck/pokerpackets/internal/protocol/wire"
)

var (
	ErrTruncated         = wire.ErrTruncated
	ErrUnknownTypeID     = schema.ErrUnknownTypeID
	ErrPayloadTooLarge   = frame.ErrPayloadTooLarge
	ErrFraming           = errors.New("protocol: payload length does not match fields")
	ErrNestingTooDeep    = errors.New("protocol: nested messages too deep")
	ErrNilMessage        = errors.New("protocol: nil message")
	ErrUnknownField      = errors.New("protocol: unknown field")
	ErrFieldTypeMismatch = errors.New("protocol: field type mismatch")
	ErrRegistryMismatch  = errors.New("protocol: message not bound to this registry")
)

// FieldError reports which field of which message failed.
type FieldError struct {
	Message string
	Field   string
	Err     error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("protocol: message=%s field=%s: %v", e.Message, e.Field, e.Err)
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ErrorKind classifies err into a short stable label for logs and metrics.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrFraming):
		return "framing"
	case errors.Is(err, ErrTruncated):
		return "truncated"
	case errors.Is(err, ErrUnknownTypeID):
		return "unknown_type_id"
	case errors.Is(err, ErrNestingTooDeep):
		return "nesting_too_deep"
	case errors.Is(err, ErrPayloadTooLarge):
		return "payload_too_large"
	case errors.Is(err, wire.ErrListTooLong):
		return "list_too_long"
	case errors.Is(err, wire.ErrMalformedJSON):
		return "malformed_json"
	case errors.Is(err, wire.ErrValueType):
		return "value_type"
	case errors.Is(err, wire.ErrValueRange):
		return "value_range"
	case errors.Is(err, ErrRegistryMismatch), errors.Is(err, schema.ErrUnknownName):
		return "registry_mismatch"
	case errors.Is(err, ErrNilMessage):
		return "nil_message"
	default:
		return "other"
	}
}
