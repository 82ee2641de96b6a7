// Package catalog registers the built-in message types.
//
// Types are grouped in three id ranges: core session messages (0-13),
// table messages (50-64) and client-side display messages (170-210).
// Registration runs parents before children so every schema is composed
// from already-registered field lists.
package catalog

import (
	"fmt"
	"sync"

	"github.com/danmuck/pokerpackets/internal/protocol"
	"github.com/danmuck/pokerpackets/internal/protocol/schema"
	"github.com/rs/zerolog/log"
)

type definition struct {
	id     uint8
	name   string
	schema schema.Schema
}

var (
	defaultOnce     sync.Once
	defaultRegistry *schema.Registry
	defaultErr      error
)

// Register adds every built-in message type to reg in dependency order.
func Register(reg *schema.Registry) error {
	for _, era := range [][]definition{coreDefinitions(), tableDefinitions(), clientDefinitions()} {
		for _, d := range era {
			if err := reg.Register(d.id, d.name, d.schema); err != nil {
				return fmt.Errorf("catalog: %w", err)
			}
		}
	}
	log.Debug().Str("component", "catalog").Int("types", reg.Len()).Msg("built-in messages registered")
	return nil
}

// New returns an unsealed registry holding the built-in types, ready for
// further registration.
func New() (*schema.Registry, error) {
	reg := schema.NewRegistry()
	if err := Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// Default returns the process-wide sealed registry of built-in types. It
// is built on first use.
func Default() *schema.Registry {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = New()
		if defaultErr == nil {
			defaultRegistry.Seal()
		}
	})
	if defaultErr != nil {
		// Built-in conflicts are programming errors.
		panic(defaultErr)
	}
	return defaultRegistry
}

// DefaultCodec returns a codec over Default with default limits.
func DefaultCodec() *protocol.Codec {
	return protocol.NewCodec(Default(), protocol.DefaultLimits())
}
