package config

import (
	"fmt"
	"strings"

	"github.com/danmuck/pokerpackets/internal/protocol/schema"
	"github.com/danmuck/pokerpackets/internal/protocol/wire"
)

// RegisterExtensions adds the declared messages to reg in file order, so a
// message may name an earlier extension as its parent.
func RegisterExtensions(reg *schema.Registry, msgs []MessageConfig) error {
	for _, m := range msgs {
		s, err := BuildSchema(reg, m)
		if err != nil {
			return fmt.Errorf("extension %s: %w", m.Name, err)
		}
		if err := reg.Register(uint8(m.ID), m.Name, s); err != nil {
			return fmt.Errorf("extension %s: %w", m.Name, err)
		}
	}
	return nil
}

// BuildSchema resolves the parent in reg and appends the declared fields.
func BuildSchema(reg *schema.Registry, m MessageConfig) (schema.Schema, error) {
	if err := ValidateMessage(m); err != nil {
		return schema.Schema{}, err
	}
	parent := schema.Base
	if name := strings.TrimSpace(m.Parent); name != "" {
		e, err := reg.ResolveByName(name)
		if err != nil {
			return schema.Schema{}, fmt.Errorf("parent: %w", err)
		}
		parent = e.Schema
	}

	fields := make([]schema.FieldSpec, 0, len(m.Fields))
	for _, f := range m.Fields {
		typ, err := wire.ParseType(f.Type)
		if err != nil {
			return schema.Schema{}, fmt.Errorf("field %s: %w", f.Name, err)
		}
		def, err := wire.Coerce(typ, f.Default)
		if err != nil {
			return schema.Schema{}, fmt.Errorf("field %s default: %w", f.Name, err)
		}
		fields = append(fields, schema.Field(f.Name, def, typ))
	}
	return schema.Extend(parent, fields...), nil
}
