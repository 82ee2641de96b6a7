package protocol

import (
	"fmt"

	"github.com/danmuck/pokerpackets/internal/logging"
	"github.com/danmuck/pokerpackets/internal/protocol/frame"
	"github.com/danmuck/pokerpackets/internal/protocol/schema"
	"github.com/rs/zerolog"
)

// Limits constrains decoding of untrusted input.
type Limits struct {
	// MaxDepth bounds how deeply message lists may nest inside messages.
	MaxDepth int
}

func DefaultLimits() Limits {
	return Limits{MaxDepth: 16}
}

// Codec frames messages of one registry. It holds no mutable state and is
// safe for concurrent use once the registry is sealed.
type Codec struct {
	registry *schema.Registry
	limits   Limits
	logger   zerolog.Logger
}

func NewCodec(registry *schema.Registry, limits Limits) *Codec {
	if limits.MaxDepth <= 0 {
		limits.MaxDepth = DefaultLimits().MaxDepth
	}
	return &Codec{
		registry: registry,
		limits:   limits,
		logger:   logging.Component("codec"),
	}
}

func (c *Codec) Registry() *schema.Registry {
	return c.registry
}

// New returns a default-valued message of the named type.
func (c *Codec) New(name string) (*Message, error) {
	e, err := c.registry.ResolveByName(name)
	if err != nil {
		return nil, err
	}
	return NewMessage(e), nil
}

// NewByID returns a default-valued message of the given type id.
func (c *Codec) NewByID(id uint8) (*Message, error) {
	e, err := c.registry.ResolveByID(id)
	if err != nil {
		return nil, err
	}
	return NewMessage(e), nil
}

// MustNew is New for names known to be registered.
func (c *Codec) MustNew(name string) *Message {
	m, err := c.New(name)
	if err != nil {
		panic(err)
	}
	return m
}

// bind checks that m belongs to this codec's registry and returns the
// registered entry.
func (c *Codec) bind(m *Message) (schema.Entry, error) {
	if m == nil {
		return schema.Entry{}, ErrNilMessage
	}
	e, err := c.registry.ResolveByName(m.Name())
	if err != nil {
		return schema.Entry{}, fmt.Errorf("%w: %w", ErrRegistryMismatch, err)
	}
	if e.ID != m.TypeID() || e.Schema.Len() != len(m.values) {
		return schema.Entry{}, fmt.Errorf("%w: %s registered as id %d, message has id %d", ErrRegistryMismatch, e.Name, e.ID, m.TypeID())
	}
	return e, nil
}

func sizeHint(m *Message) int {
	if m == nil {
		return frame.HeaderLen
	}
	return frame.HeaderLen + m.Schema().MinSize()
}
