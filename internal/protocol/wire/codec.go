package wire

import (
	"fmt"
)

type appendFunc func(dst []byte, v any) ([]byte, error)

type decodeFunc func(buf []byte, off int) (int, any, error)

type codec struct {
	append appendFunc
	decode decodeFunc
}

// codecs is the single dispatch table. TypeMessageList is framed by the
// message layer and has no entry here.
var codecs = [typeCount]codec{
	TypeU32:        {appendU32, decodeU32},
	TypeU64:        {appendU64, decodeU64},
	TypeU8:         {appendU8, decodeU8},
	TypeI8:         {appendI8, decodeI8},
	TypeOptU8:      {appendOptU8, decodeOptU8},
	TypeBool:       {appendBool, decodeBool},
	TypeCharBool:   {appendCharBool, decodeCharBool},
	TypeU16:        {appendU16, decodeU16},
	TypeString:     {appendString, decodeString},
	TypeBoolString: {appendBoolString, decodeBoolString},
	TypeJSON:       {appendJSON, decodeJSON},
	TypeU8List:     {appendU8List, decodeU8List},
	TypeU16List:    {appendU16List, decodeU16List},
	TypeU32List:    {appendU32List, decodeU32List},
	TypeMoney:      {appendMoney, decodeMoney},
	TypePlayers:    {appendPlayers, decodePlayers},
	TypeChips:      {appendChips, decodeChips},
}

func lookup(t Type) (codec, error) {
	if !t.Valid() {
		return codec{}, fmt.Errorf("%w: %s", ErrValueType, t)
	}
	c := codecs[t]
	if c.append == nil {
		return codec{}, fmt.Errorf("%w: %s is framed by the message layer", ErrValueType, t)
	}
	return c, nil
}

// Append encodes v as wire type t onto dst and returns the extended slice.
func Append(dst []byte, t Type, v any) ([]byte, error) {
	c, err := lookup(t)
	if err != nil {
		return dst, err
	}
	return c.append(dst, v)
}

// Encode returns the encoding of v as wire type t.
func Encode(t Type, v any) ([]byte, error) {
	size := MinWidth(t)
	if s, ok := v.(string); ok {
		size += len(s)
	}
	return Append(make([]byte, 0, size), t, v)
}

// Decode reads one value of wire type t from buf starting at off and
// returns the number of bytes consumed with the value.
func Decode(t Type, buf []byte, off int) (int, any, error) {
	c, err := lookup(t)
	if err != nil {
		return 0, nil, err
	}
	return c.decode(buf, off)
}

func need(buf []byte, off, n int) error {
	if off < 0 || off > len(buf) || len(buf)-off < n {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, n, off, max(len(buf)-off, 0))
	}
	return nil
}

func typeError(t Type, v any) error {
	return fmt.Errorf("%w: %s cannot carry %T", ErrValueType, t, v)
}
