package protocol

import (
	"fmt"
	"io"

	"github.com/danmuck/pokerpackets/internal/observability"
	"github.com/danmuck/pokerpackets/internal/protocol/frame"
	"github.com/danmuck/pokerpackets/internal/protocol/schema"
	"github.com/danmuck/pokerpackets/internal/protocol/wire"
)

// Encode returns the framed encoding of m.
func (c *Codec) Encode(m *Message) ([]byte, error) {
	return c.AppendMessage(make([]byte, 0, sizeHint(m)), m)
}

// AppendMessage appends the framed encoding of m to dst. On error dst is
// returned unchanged.
func (c *Codec) AppendMessage(dst []byte, m *Message) ([]byte, error) {
	start := len(dst)
	out, err := c.appendMessage(dst, m, 0)
	if err != nil {
		observability.RecordCodecError("encode", ErrorKind(err))
		c.logger.Debug().Err(err).Str("kind", ErrorKind(err)).Msg("encode failed")
		return dst[:start], err
	}
	observability.RecordEncode(m.Name(), len(out)-start)
	return out, nil
}

// WriteMessage encodes m and writes the frame to w.
func (c *Codec) WriteMessage(w io.Writer, m *Message) error {
	buf, err := c.Encode(m)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

func (c *Codec) appendMessage(dst []byte, m *Message, depth int) ([]byte, error) {
	if depth > c.limits.MaxDepth {
		return dst, ErrNestingTooDeep
	}
	e, err := c.bind(m)
	if err != nil {
		return dst, err
	}

	start := len(dst)
	dst = frame.AppendHeader(dst, frame.Header{TypeID: e.ID})
	for i := range e.Schema.Len() {
		spec := e.Schema.At(i)
		if dst, err = c.appendField(dst, spec, m.values[i], depth); err != nil {
			return dst[:start], FieldError{Message: e.Name, Field: spec.Name, Err: err}
		}
	}
	if err := frame.SetPayloadLen(dst[start:], len(dst)-start-frame.HeaderLen); err != nil {
		return dst[:start], fmt.Errorf("message=%s: %w", e.Name, err)
	}
	return dst, nil
}

func (c *Codec) appendField(dst []byte, spec schema.FieldSpec, v any, depth int) ([]byte, error) {
	if spec.Type != wire.TypeMessageList {
		return wire.Append(dst, spec.Type, v)
	}
	list, ok := v.([]*Message)
	if !ok {
		return dst, fmt.Errorf("%w: %s cannot carry %T", wire.ErrValueType, spec.Type, v)
	}
	dst, err := wire.AppendCount(dst, len(list))
	if err != nil {
		return dst, err
	}
	for _, sub := range list {
		if dst, err = c.appendMessage(dst, sub, depth+1); err != nil {
			return dst, err
		}
	}
	return dst, nil
}
