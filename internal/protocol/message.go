package protocol

import (
	"fmt"
	"strings"

	"github.com/danmuck/pokerpackets/internal/protocol/schema"
	"github.com/danmuck/pokerpackets/internal/protocol/wire"
)

// Message is one schema-bound protocol value. Values are held in schema
// order; messages have no identity beyond their field contents.
type Message struct {
	entry  schema.Entry
	values []any
}

// NewMessage returns a message of the entry's type with every field set to
// a private copy of its schema default.
func NewMessage(e schema.Entry) *Message {
	m := &Message{entry: e, values: make([]any, e.Schema.Len())}
	for i := range m.values {
		spec := e.Schema.At(i)
		if spec.Type == wire.TypeMessageList {
			m.values[i] = []*Message{}
			continue
		}
		m.values[i] = wire.Clone(spec.Type, spec.Default)
	}
	return m
}

func (m *Message) TypeID() uint8 {
	return m.entry.ID
}

func (m *Message) Name() string {
	return m.entry.Name
}

func (m *Message) Schema() schema.Schema {
	return m.entry.Schema
}

func (m *Message) Entry() schema.Entry {
	return m.entry
}

// At returns the value of the i-th field in schema order.
func (m *Message) At(i int) any {
	return m.values[i]
}

// Get returns the named field value.
func (m *Message) Get(name string) (any, bool) {
	i, ok := m.entry.Schema.Index(name)
	if !ok {
		return nil, false
	}
	return m.values[i], true
}

// Set replaces the named field value. v must be the Go type the field's
// wire type carries; nested message lists take []*Message.
func (m *Message) Set(name string, v any) error {
	i, ok := m.entry.Schema.Index(name)
	if !ok {
		return FieldError{Message: m.Name(), Field: name, Err: ErrUnknownField}
	}
	spec := m.entry.Schema.At(i)
	if spec.Type == wire.TypeMessageList {
		list, ok := v.([]*Message)
		if !ok {
			return FieldError{Message: m.Name(), Field: name, Err: fmt.Errorf("%w: %s cannot carry %T", ErrFieldTypeMismatch, spec.Type, v)}
		}
		m.values[i] = append([]*Message{}, list...)
		return nil
	}
	if err := wire.Check(spec.Type, v); err != nil {
		return FieldError{Message: m.Name(), Field: name, Err: fmt.Errorf("%w: %w", ErrFieldTypeMismatch, err)}
	}
	m.values[i] = wire.Clone(spec.Type, v)
	return nil
}

// MustSet is Set for literal construction where a mismatch is a bug.
func (m *Message) MustSet(name string, v any) *Message {
	if err := m.Set(name, v); err != nil {
		panic(err)
	}
	return m
}

// Equal reports whether both messages have the same type and every field,
// compared in schema order, is equal.
func (m *Message) Equal(o *Message) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.entry.ID != o.entry.ID || m.entry.Name != o.entry.Name || len(m.values) != len(o.values) {
		return false
	}
	for i, v := range m.values {
		if !fieldEqual(m.entry.Schema.At(i).Type, v, o.values[i]) {
			return false
		}
	}
	return true
}

func fieldEqual(t wire.Type, a, b any) bool {
	if t != wire.TypeMessageList {
		return wire.Equal(t, a, b)
	}
	x, okA := a.([]*Message)
	y, okB := b.([]*Message)
	if !okA || !okB || len(x) != len(y) {
		return false
	}
	for i := range x {
		if !x[i].Equal(y[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of m.
func (m *Message) Clone() *Message {
	out := &Message{entry: m.entry, values: make([]any, len(m.values))}
	for i, v := range m.values {
		t := m.entry.Schema.At(i).Type
		if t == wire.TypeMessageList {
			list := v.([]*Message)
			cp := make([]*Message, len(list))
			for j, sub := range list {
				cp[j] = sub.Clone()
			}
			out.values[i] = cp
			continue
		}
		out.values[i] = wire.Clone(t, v)
	}
	return out
}

func (m *Message) String() string {
	var b strings.Builder
	b.WriteString(m.entry.Name)
	b.WriteByte('(')
	for i, v := range m.values {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", m.entry.Schema.At(i).Name, v)
	}
	b.WriteByte(')')
	return b.String()
}
