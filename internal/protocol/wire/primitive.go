package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

const (
	absentByte   = 0xff
	maxTextBytes = 0xffff
)

func appendU32(dst []byte, v any) ([]byte, error) {
	x, ok := v.(uint32)
	if !ok {
		return dst, typeError(TypeU32, v)
	}
	return binary.BigEndian.AppendUint32(dst, x), nil
}

func decodeU32(buf []byte, off int) (int, any, error) {
	if err := need(buf, off, 4); err != nil {
		return 0, nil, err
	}
	return 4, binary.BigEndian.Uint32(buf[off:]), nil
}

func appendU64(dst []byte, v any) ([]byte, error) {
	x, ok := v.(uint64)
	if !ok {
		return dst, typeError(TypeU64, v)
	}
	return binary.BigEndian.AppendUint64(dst, x), nil
}

func decodeU64(buf []byte, off int) (int, any, error) {
	if err := need(buf, off, 8); err != nil {
		return 0, nil, err
	}
	return 8, binary.BigEndian.Uint64(buf[off:]), nil
}

func appendU16(dst []byte, v any) ([]byte, error) {
	x, ok := v.(uint16)
	if !ok {
		return dst, typeError(TypeU16, v)
	}
	return binary.BigEndian.AppendUint16(dst, x), nil
}

func decodeU16(buf []byte, off int) (int, any, error) {
	if err := need(buf, off, 2); err != nil {
		return 0, nil, err
	}
	return 2, binary.BigEndian.Uint16(buf[off:]), nil
}

func appendU8(dst []byte, v any) ([]byte, error) {
	x, ok := v.(uint8)
	if !ok {
		return dst, typeError(TypeU8, v)
	}
	return append(dst, x), nil
}

func decodeU8(buf []byte, off int) (int, any, error) {
	if err := need(buf, off, 1); err != nil {
		return 0, nil, err
	}
	return 1, buf[off], nil
}

func appendI8(dst []byte, v any) ([]byte, error) {
	x, ok := v.(int8)
	if !ok {
		return dst, typeError(TypeI8, v)
	}
	return append(dst, byte(x)), nil
}

func decodeI8(buf []byte, off int) (int, any, error) {
	if err := need(buf, off, 1); err != nil {
		return 0, nil, err
	}
	return 1, int8(buf[off]), nil
}

func appendOptU8(dst []byte, v any) ([]byte, error) {
	x, ok := v.(NullByte)
	if !ok {
		return dst, typeError(TypeOptU8, v)
	}
	if !x.Valid {
		return append(dst, absentByte), nil
	}
	if x.Byte == absentByte {
		return dst, fmt.Errorf("%w: optional byte %d is reserved for absent", ErrValueRange, x.Byte)
	}
	return append(dst, x.Byte), nil
}

func decodeOptU8(buf []byte, off int) (int, any, error) {
	if err := need(buf, off, 1); err != nil {
		return 0, nil, err
	}
	if buf[off] == absentByte {
		return 1, NullByte{}, nil
	}
	return 1, Some(buf[off]), nil
}

func appendBool(dst []byte, v any) ([]byte, error) {
	x, ok := v.(bool)
	if !ok {
		return dst, typeError(TypeBool, v)
	}
	if x {
		return append(dst, 1), nil
	}
	return append(dst, 0), nil
}

func decodeBool(buf []byte, off int) (int, any, error) {
	if err := need(buf, off, 1); err != nil {
		return 0, nil, err
	}
	return 1, buf[off] != 0, nil
}

func appendCharBool(dst []byte, v any) ([]byte, error) {
	x, ok := v.(string)
	if !ok {
		return dst, typeError(TypeCharBool, v)
	}
	if x == Yes {
		return append(dst, 1), nil
	}
	return append(dst, 0), nil
}

func decodeCharBool(buf []byte, off int) (int, any, error) {
	if err := need(buf, off, 1); err != nil {
		return 0, nil, err
	}
	if buf[off] != 0 {
		return 1, Yes, nil
	}
	return 1, No, nil
}

// appendText writes a 2-byte byte-count prefix followed by the raw bytes.
func appendText(dst []byte, t Type, s string) ([]byte, error) {
	if len(s) > maxTextBytes {
		return dst, fmt.Errorf("%w: %s of %d bytes exceeds %d", ErrValueRange, t, len(s), maxTextBytes)
	}
	dst = binary.BigEndian.AppendUint16(dst, uint16(len(s)))
	return append(dst, s...), nil
}

func decodeText(buf []byte, off int) (int, []byte, error) {
	if err := need(buf, off, 2); err != nil {
		return 0, nil, err
	}
	n := int(binary.BigEndian.Uint16(buf[off:]))
	if err := need(buf, off+2, n); err != nil {
		return 0, nil, err
	}
	return 2 + n, buf[off+2 : off+2+n], nil
}

func appendString(dst []byte, v any) ([]byte, error) {
	x, ok := v.(string)
	if !ok {
		return dst, typeError(TypeString, v)
	}
	return appendText(dst, TypeString, x)
}

func decodeString(buf []byte, off int) (int, any, error) {
	n, raw, err := decodeText(buf, off)
	if err != nil {
		return 0, nil, err
	}
	return n, string(raw), nil
}

func appendBoolString(dst []byte, v any) ([]byte, error) {
	switch x := v.(type) {
	case bool:
		if x {
			return appendText(dst, TypeBoolString, TokenTrue)
		}
		return appendText(dst, TypeBoolString, TokenFalse)
	case string:
		return appendText(dst, TypeBoolString, x)
	}
	return dst, typeError(TypeBoolString, v)
}

func decodeBoolString(buf []byte, off int) (int, any, error) {
	n, raw, err := decodeText(buf, off)
	if err != nil {
		return 0, nil, err
	}
	switch s := string(raw); s {
	case TokenTrue:
		return n, true, nil
	case TokenFalse:
		return n, false, nil
	default:
		return n, s, nil
	}
}

func appendJSON(dst []byte, v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return dst, fmt.Errorf("%w: %s: %v", ErrValueType, TypeJSON, err)
	}
	return appendText(dst, TypeJSON, string(raw))
}

func decodeJSON(buf []byte, off int) (int, any, error) {
	n, raw, err := decodeText(buf, off)
	if err != nil {
		return 0, nil, err
	}
	// Numbers stay json.Number so integers beyond 2^53 survive.
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return 0, nil, fmt.Errorf("%w: trailing data after value", ErrMalformedJSON)
	}
	return n, v, nil
}
