package protocol

import (
	"errors"
	"fmt"
	"io"

	"github.com/danmuck/pokerpackets/internal/observability"
	"github.com/danmuck/pokerpackets/internal/protocol/frame"
	"github.com/danmuck/pokerpackets/internal/protocol/schema"
	"github.com/danmuck/pokerpackets/internal/protocol/wire"
)

// Decode reads one framed message from the start of buf and returns the
// number of bytes it occupied.
func (c *Codec) Decode(buf []byte) (int, *Message, error) {
	return c.DecodeAt(buf, 0)
}

// DecodeAt reads one framed message starting at off and returns the number
// of bytes it occupied.
func (c *Codec) DecodeAt(buf []byte, off int) (int, *Message, error) {
	next, m, err := c.decodeMessage(buf, off, 0)
	if err != nil {
		observability.RecordCodecError("decode", ErrorKind(err))
		c.logger.Debug().Err(err).Str("kind", ErrorKind(err)).Int("offset", off).Msg("decode failed")
		return 0, nil, err
	}
	observability.RecordDecode(m.Name(), next-off)
	return next - off, m, nil
}

// DecodeAll decodes back-to-back frames until buf is consumed.
func (c *Codec) DecodeAll(buf []byte) ([]*Message, error) {
	var out []*Message
	for off := 0; off < len(buf); {
		n, m, err := c.DecodeAt(buf, off)
		if err != nil {
			return out, fmt.Errorf("frame %d at offset %d: %w", len(out), off, err)
		}
		out = append(out, m)
		off += n
	}
	return out, nil
}

// ReadMessage reads exactly one frame from r and decodes it. The frame's
// declared length must match the fields its schema describes.
func (c *Codec) ReadMessage(r io.Reader) (*Message, error) {
	f, err := frame.ReadFrame(r)
	if err != nil {
		return nil, err
	}
	buf, err := f.Bytes()
	if err != nil {
		return nil, err
	}
	_, m, err := c.DecodeAt(buf, 0)
	return m, err
}

func (c *Codec) decodeMessage(buf []byte, off, depth int) (int, *Message, error) {
	if depth > c.limits.MaxDepth {
		return off, nil, ErrNestingTooDeep
	}
	if off < 0 || off > len(buf) {
		return off, nil, fmt.Errorf("%w: offset %d outside %d-byte buffer", ErrTruncated, off, len(buf))
	}
	h, err := frame.DecodeHeader(buf[off:])
	if err != nil {
		return off, nil, err
	}
	e, err := c.registry.ResolveByID(h.TypeID)
	if err != nil {
		return off, nil, err
	}
	start := off + frame.HeaderLen
	end := start + int(h.PayloadLen)
	if end > len(buf) {
		return off, nil, fmt.Errorf("%w: %s declares %d payload bytes, %d available", frame.ErrShortPayload, e.Name, h.PayloadLen, len(buf)-start)
	}

	// Fields may not read past the declared payload.
	payload := buf[:end]
	m := &Message{entry: e, values: make([]any, e.Schema.Len())}
	pos := start
	for i := range e.Schema.Len() {
		spec := e.Schema.At(i)
		next, v, err := c.decodeField(payload, pos, spec, depth)
		if err != nil {
			if errors.Is(err, wire.ErrTruncated) && !errors.Is(err, ErrFraming) {
				err = fmt.Errorf("%w: %w", ErrFraming, err)
			}
			return off, nil, FieldError{Message: e.Name, Field: spec.Name, Err: err}
		}
		m.values[i] = v
		pos = next
	}
	if pos != end {
		return off, nil, fmt.Errorf("%w: %s declares %d payload bytes, fields used %d", ErrFraming, e.Name, h.PayloadLen, pos-start)
	}
	return end, m, nil
}

// decodeField returns the offset just past the field.
func (c *Codec) decodeField(buf []byte, off int, spec schema.FieldSpec, depth int) (int, any, error) {
	if spec.Type != wire.TypeMessageList {
		n, v, err := wire.Decode(spec.Type, buf, off)
		return off + n, v, err
	}
	used, n, err := wire.DecodeCount(buf, off)
	if err != nil {
		return off, nil, err
	}
	off += used
	list := make([]*Message, 0, min(n, (len(buf)-off)/frame.HeaderLen))
	for range n {
		var sub *Message
		if off, sub, err = c.decodeMessage(buf, off, depth+1); err != nil {
			return off, nil, err
		}
		list = append(list, sub)
	}
	return off, list, nil
}
