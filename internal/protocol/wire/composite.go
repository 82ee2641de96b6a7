package wire

import (
	"encoding/binary"
	"fmt"
	"maps"
	"slices"
)

const (
	// MaxListLen is the largest element count a 1-byte list prefix can carry.
	MaxListLen = 0xff
	// MaxCount is the largest entry count a 2-byte prefix can carry.
	MaxCount = 0xffff
)

// AppendCount writes the 2-byte entry count used by money mappings, player
// records and nested message lists.
func AppendCount(dst []byte, n int) ([]byte, error) {
	if n < 0 || n > MaxCount {
		return dst, fmt.Errorf("%w: count %d exceeds %d", ErrValueRange, n, MaxCount)
	}
	return binary.BigEndian.AppendUint16(dst, uint16(n)), nil
}

// DecodeCount reads a 2-byte entry count.
func DecodeCount(buf []byte, off int) (int, int, error) {
	if err := need(buf, off, 2); err != nil {
		return 0, 0, err
	}
	return 2, int(binary.BigEndian.Uint16(buf[off:])), nil
}

func listHeader(dst []byte, t Type, n int) ([]byte, error) {
	if n > MaxListLen {
		return dst, fmt.Errorf("%w: %s with %d elements exceeds %d", ErrListTooLong, t, n, MaxListLen)
	}
	return append(dst, byte(n)), nil
}

func decodeListHeader(buf []byte, off, width int) (int, error) {
	if err := need(buf, off, 1); err != nil {
		return 0, err
	}
	n := int(buf[off])
	if err := need(buf, off+1, n*width); err != nil {
		return 0, err
	}
	return n, nil
}

func appendU8List(dst []byte, v any) ([]byte, error) {
	x, ok := v.([]uint8)
	if !ok {
		return dst, typeError(TypeU8List, v)
	}
	dst, err := listHeader(dst, TypeU8List, len(x))
	if err != nil {
		return dst, err
	}
	return append(dst, x...), nil
}

func decodeU8List(buf []byte, off int) (int, any, error) {
	n, err := decodeListHeader(buf, off, 1)
	if err != nil {
		return 0, nil, err
	}
	out := make([]uint8, n)
	copy(out, buf[off+1:])
	return 1 + n, out, nil
}

func appendU16List(dst []byte, v any) ([]byte, error) {
	x, ok := v.([]uint16)
	if !ok {
		return dst, typeError(TypeU16List, v)
	}
	dst, err := listHeader(dst, TypeU16List, len(x))
	if err != nil {
		return dst, err
	}
	for _, e := range x {
		dst = binary.BigEndian.AppendUint16(dst, e)
	}
	return dst, nil
}

func decodeU16List(buf []byte, off int) (int, any, error) {
	n, err := decodeListHeader(buf, off, 2)
	if err != nil {
		return 0, nil, err
	}
	out := make([]uint16, n)
	for i := range out {
		out[i] = binary.BigEndian.Uint16(buf[off+1+2*i:])
	}
	return 1 + 2*n, out, nil
}

func appendU32List(dst []byte, v any) ([]byte, error) {
	x, ok := v.([]uint32)
	if !ok {
		return dst, typeError(TypeU32List, v)
	}
	dst, err := listHeader(dst, TypeU32List, len(x))
	if err != nil {
		return dst, err
	}
	for _, e := range x {
		dst = binary.BigEndian.AppendUint32(dst, e)
	}
	return dst, nil
}

func decodeU32List(buf []byte, off int) (int, any, error) {
	n, err := decodeListHeader(buf, off, 4)
	if err != nil {
		return 0, nil, err
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = binary.BigEndian.Uint32(buf[off+1+4*i:])
	}
	return 1 + 4*n, out, nil
}

const moneyEntryWidth = 4 + 3*8

// appendMoney writes entries in ascending key order so equal mappings
// always produce identical bytes.
func appendMoney(dst []byte, v any) ([]byte, error) {
	x, ok := v.(map[uint32]Amounts)
	if !ok {
		return dst, typeError(TypeMoney, v)
	}
	dst, err := AppendCount(dst, len(x))
	if err != nil {
		return dst, err
	}
	for _, key := range slices.Sorted(maps.Keys(x)) {
		dst = binary.BigEndian.AppendUint32(dst, key)
		for _, amount := range x[key] {
			dst = binary.BigEndian.AppendUint64(dst, amount)
		}
	}
	return dst, nil
}

func decodeMoney(buf []byte, off int) (int, any, error) {
	_, n, err := DecodeCount(buf, off)
	if err != nil {
		return 0, nil, err
	}
	if err := need(buf, off+2, n*moneyEntryWidth); err != nil {
		return 0, nil, err
	}
	out := make(map[uint32]Amounts, n)
	pos := off + 2
	for range n {
		key := binary.BigEndian.Uint32(buf[pos:])
		pos += 4
		var amounts Amounts
		for i := range amounts {
			amounts[i] = binary.BigEndian.Uint64(buf[pos:])
			pos += 8
		}
		if _, dup := out[key]; dup {
			return 0, nil, fmt.Errorf("%w: money key %d repeated", ErrValueRange, key)
		}
		out[key] = amounts
	}
	return pos - off, out, nil
}

func appendPlayers(dst []byte, v any) ([]byte, error) {
	x, ok := v.([]Player)
	if !ok {
		return dst, typeError(TypePlayers, v)
	}
	dst, err := AppendCount(dst, len(x))
	if err != nil {
		return dst, err
	}
	for _, p := range x {
		if dst, err = appendText(dst, TypePlayers, p.Name); err != nil {
			return dst, err
		}
		dst = binary.BigEndian.AppendUint32(dst, p.Serial)
		dst = append(dst, p.Flags)
	}
	return dst, nil
}

func decodePlayers(buf []byte, off int) (int, any, error) {
	_, n, err := DecodeCount(buf, off)
	if err != nil {
		return 0, nil, err
	}
	out := make([]Player, 0, min(n, len(buf)))
	pos := off + 2
	for range n {
		used, name, err := decodeText(buf, pos)
		if err != nil {
			return 0, nil, err
		}
		pos += used
		if err := need(buf, pos, 5); err != nil {
			return 0, nil, err
		}
		out = append(out, Player{
			Name:   string(name),
			Serial: binary.BigEndian.Uint32(buf[pos:]),
			Flags:  buf[pos+4],
		})
		pos += 5
	}
	return pos - off, out, nil
}
