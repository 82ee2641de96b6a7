package protocol

import (
	"fmt"

	"github.com/danmuck/pokerpackets/internal/protocol/wire"
)

func fieldAs[T any](m *Message, name string) (T, error) {
	var zero T
	v, ok := m.Get(name)
	if !ok {
		return zero, FieldError{Message: m.Name(), Field: name, Err: ErrUnknownField}
	}
	out, ok := v.(T)
	if !ok {
		return zero, FieldError{Message: m.Name(), Field: name, Err: fmt.Errorf("%w: holds %T", ErrFieldTypeMismatch, v)}
	}
	return out, nil
}

// Uint8 returns the named field as uint8.
func (m *Message) Uint8(name string) (uint8, error) {
	return fieldAs[uint8](m, name)
}

// Int8 returns the named field as int8.
func (m *Message) Int8(name string) (int8, error) {
	return fieldAs[int8](m, name)
}

// Uint32 returns the named field as uint32.
func (m *Message) Uint32(name string) (uint32, error) {
	return fieldAs[uint32](m, name)
}

// Text returns the named field as string. Character booleans are
// reported as their "y"/"n" token.
func (m *Message) Text(name string) (string, error) {
	return fieldAs[string](m, name)
}

// OptionalByte returns the named field as an optional byte.
func (m *Message) OptionalByte(name string) (wire.NullByte, error) {
	return fieldAs[wire.NullByte](m, name)
}

// Chips returns the flat chip pair list of the named field.
func (m *Message) Chips(name string) ([]uint32, error) {
	return fieldAs[[]uint32](m, name)
}

// Messages returns the nested messages of the named field.
func (m *Message) Messages(name string) ([]*Message, error) {
	return fieldAs[[]*Message](m, name)
}
