package schema

import (
	"github.com/danmuck/pokerpackets/internal/protocol/wire"
)

// FieldSpec declares one field of a message: its name, the value a new
// message starts with, and the wire type it is encoded as.
type FieldSpec struct {
	Name    string
	Default any
	Type    wire.Type
}

// Field builds a FieldSpec in (name, default, type) order.
func Field(name string, def any, t wire.Type) FieldSpec {
	return FieldSpec{Name: name, Default: def, Type: t}
}

// Schema is an ordered field list. Order is wire order. A Schema is never
// mutated; Extend returns a new one.
type Schema struct {
	fields []FieldSpec
}

// Base is the root schema with no fields.
var Base = Schema{}

// Extend returns parent's fields followed by fields.
func Extend(parent Schema, fields ...FieldSpec) Schema {
	out := make([]FieldSpec, 0, len(parent.fields)+len(fields))
	out = append(out, parent.fields...)
	out = append(out, fields...)
	return Schema{fields: out}
}

// Fields returns a copy of the field list.
func (s Schema) Fields() []FieldSpec {
	out := make([]FieldSpec, len(s.fields))
	copy(out, s.fields)
	return out
}

func (s Schema) Len() int {
	return len(s.fields)
}

// At returns the i-th field.
func (s Schema) At(i int) FieldSpec {
	return s.fields[i]
}

// Index returns the position of the named field.
func (s Schema) Index(name string) (int, bool) {
	for i, f := range s.fields {
		if f.Name == name {
			return i, true
		}
	}
	return -1, false
}

func (s Schema) Names() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Name
	}
	return out
}

// MinSize is the smallest payload any message of this schema encodes to.
func (s Schema) MinSize() int {
	n := 0
	for _, f := range s.fields {
		n += wire.MinWidth(f.Type)
	}
	return n
}

// Equal reports whether both schemas declare the same fields in the same
// order with equal defaults.
func (s Schema) Equal(o Schema) bool {
	if len(s.fields) != len(o.fields) {
		return false
	}
	for i, f := range s.fields {
		g := o.fields[i]
		if f.Name != g.Name || f.Type != g.Type {
			return false
		}
		if f.Type == wire.TypeMessageList {
			if f.Default != nil || g.Default != nil {
				return false
			}
			continue
		}
		if !wire.Equal(f.Type, f.Default, g.Default) {
			return false
		}
	}
	return true
}
