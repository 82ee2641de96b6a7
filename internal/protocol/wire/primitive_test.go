package wire

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/danmuck/pokerpackets/internal/testutil/testlog"
	"github.com/goccy/go-json"
)

type vector struct {
	name  string
	typ   Type
	value any
	want  []byte
}

func TestEncodeVectors(t *testing.T) {
	testlog.Start(t)
	vectors := []vector{
		{"u32 zero", TypeU32, uint32(0), []byte{0, 0, 0, 0}},
		{"u32 one", TypeU32, uint32(1), []byte{0, 0, 0, 1}},
		{"u32 max", TypeU32, uint32(4294967295), []byte{0xff, 0xff, 0xff, 0xff}},
		{"u64 one", TypeU64, uint64(1), []byte{0, 0, 0, 0, 0, 0, 0, 1}},
		{"u64 max", TypeU64, uint64(18446744073709551615), bytes.Repeat([]byte{0xff}, 8)},
		{"u8 max", TypeU8, uint8(255), []byte{0xff}},
		{"i8 ten", TypeI8, int8(10), []byte{0x0a}},
		{"i8 minus one", TypeI8, int8(-1), []byte{0xff}},
		{"opt present", TypeOptU8, Some(10), []byte{0x0a}},
		{"opt zero", TypeOptU8, Some(0), []byte{0x00}},
		{"opt absent", TypeOptU8, NullByte{}, []byte{0xff}},
		{"bool true", TypeBool, true, []byte{0x01}},
		{"bool false", TypeBool, false, []byte{0x00}},
		{"cbool y", TypeCharBool, "y", []byte{0x01}},
		{"cbool n", TypeCharBool, "n", []byte{0x00}},
		{"cbool other", TypeCharBool, "test", []byte{0x00}},
		{"u16 max", TypeU16, uint16(65535), []byte{0xff, 0xff}},
		{"string empty", TypeString, "", []byte{0x00, 0x00}},
		{"string test", TypeString, "test", []byte("\x00\x04test")},
		{"string utf8", TypeString, "übel", []byte("\x00\x05\xc3\xbcbel")},
		{"bstring text", TypeBoolString, "test", []byte("\x00\x04test")},
		{"bstring true", TypeBoolString, true, []byte("\x00\x05_TRUE")},
		{"bstring false", TypeBoolString, false, []byte("\x00\x06_FALSE")},
		{"json null", TypeJSON, nil, []byte("\x00\x04null")},
		{"json object", TypeJSON, map[string]any{"test": 1}, []byte("\x00\x0a{\"test\":1}")},
	}
	for _, v := range vectors {
		got, err := Encode(v.typ, v.value)
		if err != nil {
			t.Fatalf("%s: encode: %v", v.name, err)
		}
		if !bytes.Equal(got, v.want) {
			t.Fatalf("%s: got %x want %x", v.name, got, v.want)
		}
	}
}

func TestDecodeVectors(t *testing.T) {
	testlog.Start(t)
	vectors := []vector{
		{"u32 max", TypeU32, uint32(4294967295), []byte{0xff, 0xff, 0xff, 0xff}},
		{"u64 one", TypeU64, uint64(1), []byte{0, 0, 0, 0, 0, 0, 0, 1}},
		{"u8 max", TypeU8, uint8(255), []byte{0xff}},
		{"i8 minus one", TypeI8, int8(-1), []byte{0xff}},
		{"opt one", TypeOptU8, Some(1), []byte{0x01}},
		{"opt absent", TypeOptU8, NullByte{}, []byte{0xff}},
		{"bool nonzero", TypeBool, true, []byte{0xff}},
		{"bool zero", TypeBool, false, []byte{0x00}},
		{"cbool nonzero", TypeCharBool, "y", []byte{0x0f}},
		{"cbool zero", TypeCharBool, "n", []byte{0x00}},
		{"u16 one", TypeU16, uint16(1), []byte{0x00, 0x01}},
		{"string test", TypeString, "test", []byte("\x00\x04test")},
		{"bstring true", TypeBoolString, true, []byte("\x00\x05_TRUE")},
		{"bstring false", TypeBoolString, false, []byte("\x00\x06_FALSE")},
		{"bstring near token", TypeBoolString, "_TRUEx", []byte("\x00\x06_TRUEx")},
		{"json null", TypeJSON, nil, []byte("\x00\x04null")},
	}
	for _, v := range vectors {
		n, got, err := Decode(v.typ, v.want, 0)
		if err != nil {
			t.Fatalf("%s: decode: %v", v.name, err)
		}
		if n != len(v.want) {
			t.Fatalf("%s: consumed %d want %d", v.name, n, len(v.want))
		}
		if !Equal(v.typ, got, v.value) {
			t.Fatalf("%s: got %#v want %#v", v.name, got, v.value)
		}
	}
}

func TestDecodeAtOffset(t *testing.T) {
	testlog.Start(t)
	buf := []byte{0xaa, 0xbb, 0x00, 0x00, 0x01, 0x00}
	n, v, err := Decode(TypeU32, buf, 2)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n != 4 || v.(uint32) != 256 {
		t.Fatalf("unexpected decode n=%d v=%v", n, v)
	}
}

func TestStringLengthCountsBytes(t *testing.T) {
	testlog.Start(t)
	s := "cafés"
	if len([]rune(s)) != 5 || len(s) != 6 {
		t.Fatalf("bad fixture")
	}
	got, err := Encode(TypeString, s)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got[0] != 0x00 || got[1] != 0x06 || len(got) != 8 {
		t.Fatalf("unexpected encoding %x", got)
	}
	n, v, err := Decode(TypeString, got, 0)
	if err != nil || n != 8 || v.(string) != s {
		t.Fatalf("decode n=%d v=%v err=%v", n, v, err)
	}
}

func TestStringMaxLength(t *testing.T) {
	testlog.Start(t)
	long := strings.Repeat("#", 65535)
	buf, err := Encode(TypeString, long)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if buf[0] != 0xff || buf[1] != 0xff {
		t.Fatalf("unexpected prefix %x", buf[:2])
	}
	n, v, err := Decode(TypeString, buf, 0)
	if err != nil || n != 65537 || v.(string) != long {
		t.Fatalf("decode n=%d err=%v", n, err)
	}
	if _, err := Encode(TypeString, long+"#"); !errors.Is(err, ErrValueRange) {
		t.Fatalf("expected ErrValueRange, got %v", err)
	}
}

func TestBoolStringTrueIsToken(t *testing.T) {
	testlog.Start(t)
	fromBool, err := Encode(TypeBoolString, true)
	if err != nil {
		t.Fatalf("encode bool: %v", err)
	}
	fromText, err := Encode(TypeString, "_TRUE")
	if err != nil {
		t.Fatalf("encode text: %v", err)
	}
	if !bytes.Equal(fromBool, fromText) {
		t.Fatalf("got %x want %x", fromBool, fromText)
	}
	_, v, err := Decode(TypeBoolString, fromText, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b, ok := v.(bool); !ok || !b {
		t.Fatalf("expected boolean true, got %#v", v)
	}
}

func TestJSONObjectDecodes(t *testing.T) {
	testlog.Start(t)
	_, v, err := Decode(TypeJSON, []byte("\x00\x0b{\"test\": 1}"), 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	obj, ok := v.(map[string]any)
	if !ok || obj["test"] != json.Number("1") {
		t.Fatalf("unexpected json value %#v", v)
	}
}

func TestJSONLargeIntegersRoundTrip(t *testing.T) {
	testlog.Start(t)
	in := map[string]any{"stack": uint64(9007199254740993)}
	buf, err := Encode(TypeJSON, in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	_, out, err := Decode(TypeJSON, buf, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	again, err := Encode(TypeJSON, out)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(buf, again) {
		t.Fatalf("sent %q got back %q", buf[2:], again[2:])
	}
	if !Equal(TypeJSON, in, out) {
		t.Fatalf("decoded value %#v not equal to %#v", out, in)
	}
	obj := Clone(TypeJSON, out).(map[string]any)
	if obj["stack"] != json.Number("9007199254740993") {
		t.Fatalf("clone lost precision: %#v", obj["stack"])
	}
}

func TestJSONTrailingDataRejected(t *testing.T) {
	testlog.Start(t)
	for _, text := range []string{`{"a":1} {"b":2}`, `1 2`, `null x`} {
		buf, err := appendText(nil, TypeJSON, text)
		if err != nil {
			t.Fatalf("frame %q: %v", text, err)
		}
		if _, _, err := Decode(TypeJSON, buf, 0); !errors.Is(err, ErrMalformedJSON) {
			t.Fatalf("%q: expected ErrMalformedJSON, got %v", text, err)
		}
	}
	if _, _, err := Decode(TypeJSON, []byte("\x00\x06 null "), 0); err != nil {
		t.Fatalf("surrounding whitespace must be accepted: %v", err)
	}
}

func TestMalformedJSON(t *testing.T) {
	testlog.Start(t)
	_, _, err := Decode(TypeJSON, []byte("\x00\x03{a:"), 0)
	if !errors.Is(err, ErrMalformedJSON) {
		t.Fatalf("expected ErrMalformedJSON, got %v", err)
	}
}

func TestOptionalByteReservedValue(t *testing.T) {
	testlog.Start(t)
	if _, err := Encode(TypeOptU8, Some(255)); !errors.Is(err, ErrValueRange) {
		t.Fatalf("expected ErrValueRange, got %v", err)
	}
}

func TestTruncatedInput(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		typ Type
		buf []byte
	}{
		{TypeU32, []byte{0, 0, 1}},
		{TypeU64, []byte{0, 0, 0, 0}},
		{TypeU8, nil},
		{TypeU16, []byte{1}},
		{TypeString, []byte{0x00}},
		{TypeString, []byte("\x00\x05test")},
		{TypeJSON, []byte("\x00\x04nul")},
		{TypeChips, []byte{0, 0, 0}},
	}
	for _, c := range cases {
		if _, _, err := Decode(c.typ, c.buf, 0); !errors.Is(err, ErrTruncated) {
			t.Fatalf("%s %x: expected ErrTruncated, got %v", c.typ, c.buf, err)
		}
	}
	if _, _, err := Decode(TypeU8, []byte{1}, 5); !errors.Is(err, ErrTruncated) {
		t.Fatalf("offset past end: expected ErrTruncated, got %v", err)
	}
}

func TestValueTypeMismatch(t *testing.T) {
	testlog.Start(t)
	if _, err := Encode(TypeU32, 7); !errors.Is(err, ErrValueType) {
		t.Fatalf("expected ErrValueType, got %v", err)
	}
	if _, err := Encode(TypeBoolString, 3); !errors.Is(err, ErrValueType) {
		t.Fatalf("expected ErrValueType, got %v", err)
	}
	if _, err := Encode(TypeMessageList, nil); !errors.Is(err, ErrValueType) {
		t.Fatalf("message lists are framed elsewhere, got %v", err)
	}
}

func TestParseTypeRoundTrip(t *testing.T) {
	testlog.Start(t)
	for _, typ := range Types() {
		got, err := ParseType(typ.String())
		if err != nil {
			t.Fatalf("parse %s: %v", typ, err)
		}
		if got != typ {
			t.Fatalf("parse %s: got %s", typ, got)
		}
	}
	if _, err := ParseType("zz"); err == nil {
		t.Fatalf("expected error for unknown code")
	}
}
