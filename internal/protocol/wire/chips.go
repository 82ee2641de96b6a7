package wire

import (
	"encoding/binary"
	"fmt"
	"math"
)

// denominations holds the legal chip face values in ascending order.
var denominations = [...]uint32{1, 2, 5, 10, 20, 25, 50, 100, 250, 500, 1000, 2000, 5000}

// Denominations returns the chip face values in ascending order.
func Denominations() []uint32 {
	out := make([]uint32, len(denominations))
	copy(out, denominations[:])
	return out
}

// ChipTotal sums a flat (denomination, count) pair list into the amount it
// represents. The total must fit in 4 bytes.
func ChipTotal(pairs []uint32) (uint32, error) {
	if len(pairs)%2 != 0 {
		return 0, fmt.Errorf("%w: chip list has odd length %d", ErrValueRange, len(pairs))
	}
	var total uint64
	for i := 0; i < len(pairs); i += 2 {
		total += uint64(pairs[i]) * uint64(pairs[i+1])
		if total > math.MaxUint32 {
			return 0, fmt.Errorf("%w: chip total exceeds %d", ErrValueRange, uint32(math.MaxUint32))
		}
	}
	return uint32(total), nil
}

// ChipBreakdown renders amount as a flat (count, denomination) pair list,
// taking as many of the largest denomination as fit before moving to the
// next smaller one. Denominations with a zero count are omitted.
func ChipBreakdown(amount uint32) []uint32 {
	out := make([]uint32, 0, 2*len(denominations))
	for i := len(denominations) - 1; i >= 0 && amount > 0; i-- {
		d := denominations[i]
		if count := amount / d; count > 0 {
			out = append(out, count, d)
			amount -= count * d
		}
	}
	return out
}

// appendChips encodes only the total: the physical breakdown is not
// transmitted and the receiver recomputes it with ChipBreakdown.
func appendChips(dst []byte, v any) ([]byte, error) {
	x, ok := v.([]uint32)
	if !ok {
		return dst, typeError(TypeChips, v)
	}
	total, err := ChipTotal(x)
	if err != nil {
		return dst, err
	}
	return binary.BigEndian.AppendUint32(dst, total), nil
}

func decodeChips(buf []byte, off int) (int, any, error) {
	if err := need(buf, off, 4); err != nil {
		return 0, nil, err
	}
	return 4, ChipBreakdown(binary.BigEndian.Uint32(buf[off:])), nil
}
