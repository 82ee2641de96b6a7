package wire

import (
	"bytes"
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/danmuck/pokerpackets/internal/testutil/testlog"
)

func TestChipsEncodeIsTotal(t *testing.T) {
	testlog.Start(t)
	got, err := Encode(TypeChips, []uint32{10, 100})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want, _ := Encode(TypeU32, uint32(1000))
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x want %x", got, want)
	}
	empty, err := Encode(TypeChips, []uint32{})
	if err != nil || !bytes.Equal(empty, []byte{0, 0, 0, 0}) {
		t.Fatalf("empty chips: %x err=%v", empty, err)
	}
}

func TestChipsDecodeIsGreedyBreakdown(t *testing.T) {
	testlog.Start(t)
	n, v, err := Decode(TypeChips, []byte{0x00, 0x00, 0x03, 0xe8}, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n != 4 || !slices.Equal(v.([]uint32), []uint32{1, 1000}) {
		t.Fatalf("unexpected breakdown n=%d v=%v", n, v)
	}
	_, v, err = Decode(TypeChips, []byte{0, 0, 0, 0}, 0)
	if err != nil || len(v.([]uint32)) != 0 {
		t.Fatalf("zero total: v=%v err=%v", v, err)
	}
	if got := ChipBreakdown(5378); !slices.Equal(got, []uint32{1, 5000, 1, 250, 1, 100, 1, 25, 1, 2, 1, 1}) {
		t.Fatalf("unexpected breakdown of 5378: %v", got)
	}
}

func TestChipsRoundTripIsNotIdentity(t *testing.T) {
	testlog.Start(t)
	in := []uint32{10, 100}
	buf, err := Encode(TypeChips, in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	_, out, err := Decode(TypeChips, buf, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if Equal(TypeChips, in, out) {
		t.Fatalf("chips round-trip unexpectedly returned the input %v", out)
	}
	total, err := ChipTotal(swapPairs(out.([]uint32)))
	if err != nil || total != 1000 {
		t.Fatalf("breakdown total %d err=%v", total, err)
	}
}

func TestChipBreakdownProperty(t *testing.T) {
	testlog.Start(t)
	r := rand.New(rand.NewPCG(1, 2))
	amounts := []uint32{0, 1, 3, 4, 7, 24, 999, 1000, 4999, 5000, 123456, math.MaxUint32}
	for range 500 {
		amounts = append(amounts, r.Uint32())
	}
	for _, amount := range amounts {
		pairs := ChipBreakdown(amount)
		if len(pairs)%2 != 0 {
			t.Fatalf("%d: odd breakdown %v", amount, pairs)
		}
		var sum uint64
		prev := uint32(math.MaxUint32)
		for i := 0; i < len(pairs); i += 2 {
			count, d := pairs[i], pairs[i+1]
			if !slices.Contains(denominations[:], d) {
				t.Fatalf("%d: illegal denomination %d", amount, d)
			}
			if d >= prev {
				t.Fatalf("%d: denominations not strictly descending %v", amount, pairs)
			}
			if count == 0 {
				t.Fatalf("%d: zero-count pair in %v", amount, pairs)
			}
			if i > 0 && uint64(count)*uint64(d) >= uint64(prev) {
				t.Fatalf("%d: %d x %d should have used the larger denomination %d", amount, count, d, prev)
			}
			prev = d
			sum += uint64(count) * uint64(d)
		}
		if sum != uint64(amount) {
			t.Fatalf("%d: breakdown %v sums to %d", amount, pairs, sum)
		}
	}
}

func TestChipsInvalidInput(t *testing.T) {
	testlog.Start(t)
	if _, err := Encode(TypeChips, []uint32{10}); !errors.Is(err, ErrValueRange) {
		t.Fatalf("odd list: expected ErrValueRange, got %v", err)
	}
	if _, err := Encode(TypeChips, []uint32{5000, 1000000}); !errors.Is(err, ErrValueRange) {
		t.Fatalf("overflow: expected ErrValueRange, got %v", err)
	}
}

func TestDenominationsIsCopy(t *testing.T) {
	testlog.Start(t)
	d := Denominations()
	d[0] = 7
	if Denominations()[0] != 1 {
		t.Fatalf("denomination table was mutated")
	}
}

func swapPairs(pairs []uint32) []uint32 {
	out := make([]uint32, len(pairs))
	for i := 0; i+1 < len(pairs); i += 2 {
		out[i], out[i+1] = pairs[i+1], pairs[i]
	}
	return out
}
