package wire

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/goccy/go-json"
)

// Check reports whether v is a Go value wire type t can carry. Message list
// fields are owned by the message layer; Check accepts only nil for them.
func Check(t Type, v any) error {
	ok := false
	switch t {
	case TypeU32:
		_, ok = v.(uint32)
	case TypeU64:
		_, ok = v.(uint64)
	case TypeU8:
		_, ok = v.(uint8)
	case TypeI8:
		_, ok = v.(int8)
	case TypeOptU8:
		_, ok = v.(NullByte)
	case TypeBool:
		_, ok = v.(bool)
	case TypeCharBool, TypeString:
		_, ok = v.(string)
	case TypeBoolString:
		switch v.(type) {
		case bool, string:
			ok = true
		}
	case TypeJSON:
		ok = true
	case TypeU8List:
		_, ok = v.([]uint8)
	case TypeU16List:
		_, ok = v.([]uint16)
	case TypeU32List, TypeChips:
		_, ok = v.([]uint32)
	case TypeMessageList:
		ok = v == nil
	case TypeMoney:
		_, ok = v.(map[uint32]Amounts)
	case TypePlayers:
		_, ok = v.([]Player)
	}
	if !ok {
		return typeError(t, v)
	}
	return nil
}

// Zero returns the neutral value of t. Lists and mappings are empty, not nil.
func Zero(t Type) any {
	switch t {
	case TypeU32:
		return uint32(0)
	case TypeU64:
		return uint64(0)
	case TypeU8:
		return uint8(0)
	case TypeI8:
		return int8(0)
	case TypeOptU8:
		return NullByte{}
	case TypeBool:
		return false
	case TypeCharBool:
		return No
	case TypeString, TypeBoolString:
		return ""
	case TypeU8List:
		return []uint8{}
	case TypeU16List:
		return []uint16{}
	case TypeU32List, TypeChips:
		return []uint32{}
	case TypeMoney:
		return map[uint32]Amounts{}
	case TypePlayers:
		return []Player{}
	}
	return nil
}

// Clone returns a copy of v that shares no mutable state with it.
func Clone(t Type, v any) any {
	switch x := v.(type) {
	case []uint8:
		return slices.Clone(nonNil(x))
	case []uint16:
		return slices.Clone(nonNil(x))
	case []uint32:
		return slices.Clone(nonNil(x))
	case []Player:
		return slices.Clone(nonNil(x))
	case map[uint32]Amounts:
		if x == nil {
			return map[uint32]Amounts{}
		}
		return maps.Clone(x)
	}
	if t == TypeJSON {
		return cloneJSON(v)
	}
	return v
}

func nonNil[E any](s []E) []E {
	if s == nil {
		return []E{}
	}
	return s
}

func cloneJSON(v any) any {
	switch x := v.(type) {
	case json.Number:
		return x
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = cloneJSON(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneJSON(e)
		}
		return out
	}
	return v
}

// Equal reports whether a and b are the same value of wire type t. Nil and
// empty lists compare equal; JSON values compare by their canonical text.
func Equal(t Type, a, b any) bool {
	switch t {
	case TypeU8List:
		return equalSlices[uint8](a, b)
	case TypeU16List:
		return equalSlices[uint16](a, b)
	case TypeU32List, TypeChips:
		return equalSlices[uint32](a, b)
	case TypePlayers:
		return equalSlices[Player](a, b)
	case TypeMoney:
		x, okA := a.(map[uint32]Amounts)
		y, okB := b.(map[uint32]Amounts)
		return okA && okB && maps.Equal(x, y)
	case TypeJSON:
		x, errA := json.Marshal(a)
		y, errB := json.Marshal(b)
		return errA == nil && errB == nil && bytes.Equal(x, y)
	case TypeBoolString:
		switch x := a.(type) {
		case bool:
			y, ok := b.(bool)
			return ok && x == y
		case string:
			y, ok := b.(string)
			return ok && x == y
		}
		return false
	case TypeMessageList:
		return false
	}
	return Check(t, a) == nil && Check(t, b) == nil && a == b
}

func equalSlices[E comparable](a, b any) bool {
	x, okA := a.([]E)
	y, okB := b.([]E)
	return okA && okB && slices.Equal(x, y)
}

// Coerce converts a loosely typed value, as produced by a TOML or JSON
// decoder, into the Go value wire type t carries. Nil yields Zero(t).
func Coerce(t Type, raw any) (any, error) {
	if raw == nil {
		return Zero(t), nil
	}
	switch t {
	case TypeU32:
		return coerceInt[uint32](t, raw)
	case TypeU64:
		return coerceInt[uint64](t, raw)
	case TypeU8:
		return coerceInt[uint8](t, raw)
	case TypeI8:
		return coerceInt[int8](t, raw)
	case TypeU16:
		return coerceInt[uint16](t, raw)
	case TypeOptU8:
		if s, ok := raw.(string); ok && s == "none" {
			return NullByte{}, nil
		}
		b, err := coerceInt[uint8](t, raw)
		if err != nil {
			return nil, err
		}
		if b == absentByte {
			return NullByte{}, nil
		}
		return Some(b), nil
	case TypeBool:
		if b, ok := raw.(bool); ok {
			return b, nil
		}
	case TypeCharBool:
		switch x := raw.(type) {
		case bool:
			if x {
				return Yes, nil
			}
			return No, nil
		case string:
			if x != Yes && x != No {
				return nil, fmt.Errorf("%w: %s default must be %q or %q, got %q", ErrValueRange, t, Yes, No, x)
			}
			return x, nil
		}
	case TypeString:
		if s, ok := raw.(string); ok {
			return s, nil
		}
	case TypeBoolString:
		switch raw.(type) {
		case bool, string:
			return raw, nil
		}
	case TypeJSON:
		return cloneJSON(raw), nil
	case TypeU8List:
		return coerceList[uint8](t, raw)
	case TypeU16List:
		return coerceList[uint16](t, raw)
	case TypeU32List, TypeChips:
		return coerceList[uint32](t, raw)
	case TypeMessageList:
		if items, ok := raw.([]any); ok && len(items) == 0 {
			return nil, nil
		}
	case TypeMoney:
		return coerceMoney(raw)
	case TypePlayers:
		return coercePlayers(raw)
	}
	return nil, typeError(t, raw)
}

type integer interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8
}

func coerceInt[E integer](t Type, raw any) (E, error) {
	var n int64
	switch x := raw.(type) {
	case int64:
		n = x
	case int:
		n = int64(x)
	case float64:
		if x != float64(int64(x)) {
			return 0, fmt.Errorf("%w: %s cannot carry %v", ErrValueRange, t, x)
		}
		n = int64(x)
	case E:
		return x, nil
	default:
		return 0, typeError(t, raw)
	}
	out := E(n)
	if int64(out) != n || (n < 0) != (out < 0) {
		return 0, fmt.Errorf("%w: %s cannot carry %d", ErrValueRange, t, n)
	}
	return out, nil
}

func coerceList[E integer](t Type, raw any) ([]E, error) {
	if typed, ok := raw.([]E); ok {
		return slices.Clone(typed), nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, typeError(t, raw)
	}
	out := make([]E, 0, len(items))
	for i, item := range items {
		e, err := coerceInt[E](t, item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func coerceMoney(raw any) (map[uint32]Amounts, error) {
	if typed, ok := raw.(map[uint32]Amounts); ok {
		return maps.Clone(typed), nil
	}
	entries, ok := raw.(map[string]any)
	if !ok {
		return nil, typeError(TypeMoney, raw)
	}
	out := make(map[uint32]Amounts, len(entries))
	for key, value := range entries {
		var k uint32
		if _, err := fmt.Sscanf(key, "%d", &k); err != nil {
			return nil, fmt.Errorf("%w: money key %q is not an integer", ErrValueRange, key)
		}
		items, err := coerceList[uint64](TypeMoney, value)
		if err != nil {
			return nil, fmt.Errorf("money key %d: %w", k, err)
		}
		if len(items) != len(Amounts{}) {
			return nil, fmt.Errorf("%w: money key %d needs %d amounts, got %d", ErrValueRange, k, len(Amounts{}), len(items))
		}
		out[k] = Amounts(items)
	}
	return out, nil
}

func coercePlayers(raw any) ([]Player, error) {
	if typed, ok := raw.([]Player); ok {
		return slices.Clone(typed), nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, typeError(TypePlayers, raw)
	}
	out := make([]Player, 0, len(items))
	for i, item := range items {
		tuple, ok := item.([]any)
		if !ok || len(tuple) != 3 {
			return nil, fmt.Errorf("%w: player %d must be [name, serial, flags]", ErrValueType, i)
		}
		name, ok := tuple[0].(string)
		if !ok {
			return nil, fmt.Errorf("%w: player %d name must be a string", ErrValueType, i)
		}
		serial, err := coerceInt[uint32](TypePlayers, tuple[1])
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i, err)
		}
		flags, err := coerceInt[uint8](TypePlayers, tuple[2])
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i, err)
		}
		out = append(out, Player{Name: name, Serial: serial, Flags: flags})
	}
	return out, nil
}
