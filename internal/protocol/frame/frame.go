package frame

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/danmuck/pokerpackets/internal/protocol/wire"
)

const (
	// HeaderLen is the type id byte plus the 2-byte payload length.
	HeaderLen = 3
	// MaxPayloadLen is the largest payload the length field can declare.
	MaxPayloadLen = 0xffff
)

var (
	ErrShortHeader     = fmt.Errorf("frame: short header: %w", wire.ErrTruncated)
	ErrShortPayload    = fmt.Errorf("frame: short payload: %w", wire.ErrTruncated)
	ErrPayloadTooLarge = errors.New("frame: payload too large")
)

// Header is the envelope in front of every message payload.
type Header struct {
	TypeID     uint8
	PayloadLen uint16
}

// Frame is one complete wire message with its payload still encoded.
type Frame struct {
	Header  Header
	Payload []byte
}

// Len is the total encoded size of the frame.
func (f Frame) Len() int {
	return HeaderLen + len(f.Payload)
}

func ReadFrame(r io.Reader) (Frame, error) {
	var fixed [HeaderLen]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Frame{}, ErrShortHeader
		}
		return Frame{}, err
	}

	h, err := DecodeHeader(fixed[:])
	if err != nil {
		return Frame{}, err
	}

	payload := make([]byte, h.PayloadLen)
	if h.PayloadLen > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
				return Frame{}, ErrShortPayload
			}
			return Frame{}, err
		}
	}

	return Frame{Header: h, Payload: payload}, nil
}

// Bytes returns the encoded frame.
func (f Frame) Bytes() ([]byte, error) {
	if len(f.Payload) > MaxPayloadLen {
		return nil, ErrPayloadTooLarge
	}
	h := f.Header
	h.PayloadLen = uint16(len(f.Payload))
	return append(AppendHeader(make([]byte, 0, f.Len()), h), f.Payload...), nil
}

func AppendHeader(dst []byte, h Header) []byte {
	dst = append(dst, h.TypeID)
	return binary.BigEndian.AppendUint16(dst, h.PayloadLen)
}

// SetPayloadLen patches the length field of the header at the start of b
// once the payload behind it has been written.
func SetPayloadLen(b []byte, n int) error {
	if len(b) < HeaderLen {
		return ErrShortHeader
	}
	if n < 0 || n > MaxPayloadLen {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, n)
	}
	binary.BigEndian.PutUint16(b[1:HeaderLen], uint16(n))
	return nil
}

func DecodeHeader(b []byte) (Header, error) {
	if len(b) < HeaderLen {
		return Header{}, ErrShortHeader
	}
	return Header{
		TypeID:     b[0],
		PayloadLen: binary.BigEndian.Uint16(b[1:HeaderLen]),
	}, nil
}
