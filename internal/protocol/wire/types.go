package wire

import "fmt"

// Type is a wire type code. The set is closed: every Type has exactly one
// encode/decode pair and new messages are built from these codes only.
type Type uint8

// Wire type codes.
const (
	TypeU32 Type = iota
	TypeU64
	TypeU8
	TypeI8
	TypeOptU8
	TypeBool
	TypeCharBool
	TypeU16
	TypeString
	TypeBoolString
	TypeJSON
	TypeU8List
	TypeU16List
	TypeU32List
	TypeMessageList
	TypeMoney
	TypePlayers
	TypeChips

	typeCount
)

var typeCodes = [typeCount]string{
	TypeU32:         "I",
	TypeU64:         "Q",
	TypeU8:          "B",
	TypeI8:          "b",
	TypeOptU8:       "Bnone",
	TypeBool:        "bool",
	TypeCharBool:    "cbool",
	TypeU16:         "H",
	TypeString:      "s",
	TypeBoolString:  "bs",
	TypeJSON:        "j",
	TypeU8List:      "Bl",
	TypeU16List:     "Hl",
	TypeU32List:     "Il",
	TypeMessageList: "pl",
	TypeMoney:       "money",
	TypePlayers:     "players",
	TypeChips:       "c",
}

// String returns the protocol code of t ("I", "Bl", "money", ...).
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("wire.Type(%d)", uint8(t))
	}
	return typeCodes[t]
}

// Valid reports whether t is one of the defined wire types.
func (t Type) Valid() bool {
	return t < typeCount
}

// Types returns every wire type in code order.
func Types() []Type {
	out := make([]Type, 0, typeCount)
	for t := Type(0); t < typeCount; t++ {
		out = append(out, t)
	}
	return out
}

// ParseType resolves a protocol code back to its Type.
func ParseType(code string) (Type, error) {
	for t, c := range typeCodes {
		if c == code {
			return Type(t), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown type code %q", ErrValueType, code)
}

// FixedWidth returns the encoded width of t when it does not depend on the value.
func FixedWidth(t Type) (int, bool) {
	switch t {
	case TypeU8, TypeI8, TypeOptU8, TypeBool, TypeCharBool:
		return 1, true
	case TypeU16:
		return 2, true
	case TypeU32, TypeChips:
		return 4, true
	case TypeU64:
		return 8, true
	}
	return 0, false
}

// MinWidth returns the smallest number of bytes any value of t encodes to.
func MinWidth(t Type) int {
	if w, ok := FixedWidth(t); ok {
		return w
	}
	switch t {
	case TypeU8List, TypeU16List, TypeU32List:
		return 1
	}
	return 2
}

// NullByte is the value of an optional byte field. Valid=false is "absent".
type NullByte struct {
	Byte  uint8
	Valid bool
}

// Some returns a present optional byte.
func Some(b uint8) NullByte {
	return NullByte{Byte: b, Valid: true}
}

func (n NullByte) String() string {
	if !n.Valid {
		return "none"
	}
	return fmt.Sprintf("%d", n.Byte)
}

// Amounts is the fixed-arity amount tuple of a money entry.
type Amounts [3]uint64

// Player is one entry of a player-record list.
type Player struct {
	Name   string
	Serial uint32
	Flags  uint8
}

// Character-boolean tokens.
const (
	Yes = "y"
	No  = "n"
)

// Bool-or-string magic tokens.
const (
	TokenTrue  = "_TRUE"
	TokenFalse = "_FALSE"
)
