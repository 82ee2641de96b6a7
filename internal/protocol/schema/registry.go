package schema

import (
	"fmt"
	"slices"
	"strings"

	"github.com/danmuck/pokerpackets/internal/protocol/wire"
	"github.com/rs/zerolog/log"
)

// Entry binds a type id and a symbolic name to a schema.
type Entry struct {
	ID     uint8
	Name   string
	Schema Schema
}

// Registry maps type ids and names to schemas.
//
// Register is meant for a single-threaded startup phase. After Seal the
// registry rejects writes and every read is safe from any number of
// goroutines without locking.
type Registry struct {
	byID   [256]*Entry
	byName map[string]*Entry
	count  int
	sealed bool
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Entry)}
}

// Register adds a message type. The id and the name must both be unused.
func (r *Registry) Register(id uint8, name string, s Schema) error {
	if r.sealed {
		return r.reject(RegistryError{TypeID: id, Name: name, Err: ErrRegistrySealed})
	}
	if strings.TrimSpace(name) == "" {
		return r.reject(RegistryError{TypeID: id, Name: name, Err: ErrInvalidName})
	}
	if prev := r.byID[id]; prev != nil {
		return r.reject(RegistryError{TypeID: id, Name: name, Err: fmt.Errorf("%w (held by %s)", ErrDuplicateTypeID, prev.Name)})
	}
	if prev, ok := r.byName[name]; ok {
		return r.reject(RegistryError{TypeID: id, Name: name, Err: fmt.Errorf("%w (held by id %d)", ErrDuplicateName, prev.ID)})
	}
	if err := validateFields(id, name, s); err != nil {
		return r.reject(err)
	}

	e := &Entry{ID: id, Name: name, Schema: s}
	r.byID[id] = e
	r.byName[name] = e
	r.count++
	log.Debug().
		Str("component", "schema").
		Uint8("type_id", id).
		Str("name", name).
		Int("fields", s.Len()).
		Msg("registered")
	return nil
}

// MustRegister is Register for startup code where a conflict is a
// programming error.
func (r *Registry) MustRegister(id uint8, name string, s Schema) {
	if err := r.Register(id, name, s); err != nil {
		panic(err)
	}
}

func (r *Registry) reject(err error) error {
	log.Error().Str("component", "schema").Err(err).Msg("registration rejected")
	return err
}

func validateFields(id uint8, name string, s Schema) error {
	seen := make(map[string]struct{}, s.Len())
	for _, f := range s.fields {
		if strings.TrimSpace(f.Name) == "" {
			return RegistryError{TypeID: id, Name: name, Field: f.Name, Err: ErrInvalidName}
		}
		if _, dup := seen[f.Name]; dup {
			return RegistryError{TypeID: id, Name: name, Field: f.Name, Err: ErrDuplicateField}
		}
		seen[f.Name] = struct{}{}
		if !f.Type.Valid() {
			return RegistryError{TypeID: id, Name: name, Field: f.Name, Err: fmt.Errorf("%w: %s", ErrInvalidDefault, f.Type)}
		}
		if err := wire.Check(f.Type, f.Default); err != nil {
			return RegistryError{TypeID: id, Name: name, Field: f.Name, Err: fmt.Errorf("%w: %v", ErrInvalidDefault, err)}
		}
		// Any other token encodes as "n", so the default would not survive
		// a round trip.
		if f.Type == wire.TypeCharBool && f.Default != wire.Yes && f.Default != wire.No {
			return RegistryError{TypeID: id, Name: name, Field: f.Name, Err: fmt.Errorf("%w: %s default %q", ErrInvalidDefault, f.Type, f.Default)}
		}
	}
	return nil
}

// Seal makes the registry read-only.
func (r *Registry) Seal() {
	r.sealed = true
}

func (r *Registry) Sealed() bool {
	return r.sealed
}

func (r *Registry) Len() int {
	return r.count
}

func (r *Registry) ResolveByID(id uint8) (Entry, error) {
	e := r.byID[id]
	if e == nil {
		return Entry{}, fmt.Errorf("%w: %d", ErrUnknownTypeID, id)
	}
	return *e, nil
}

func (r *Registry) ResolveByName(name string) (Entry, error) {
	e, ok := r.byName[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return *e, nil
}

// Entries returns every registered entry in ascending id order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, r.count)
	for _, e := range r.byID {
		if e != nil {
			out = append(out, *e)
		}
	}
	return out
}

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, r.count)
	for name := range r.byName {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
