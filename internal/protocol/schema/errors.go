package schema

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateTypeID = errors.New("schema: duplicate type id")
	ErrDuplicateName   = errors.New("schema: duplicate name")
	ErrDuplicateField  = errors.New("schema: duplicate field")
	ErrInvalidDefault  = errors.New("schema: default does not match wire type")
	ErrInvalidName     = errors.New("schema: invalid name")
	ErrUnknownTypeID   = errors.New("schema: unknown type id")
	ErrUnknownName     = errors.New("schema: unknown name")
	ErrRegistrySealed  = errors.New("schema: registry sealed")
)

// RegistryError carries the registration that failed.
type RegistryError struct {
	TypeID uint8
	Name   string
	Field  string
	Err    error
}

func (e RegistryError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: type_id=%d name=%q", e.Err, e.TypeID, e.Name)
	}
	return fmt.Sprintf("%v: type_id=%d name=%q field=%q", e.Err, e.TypeID, e.Name, e.Field)
}

func (e RegistryError) Unwrap() error {
	return e.Err
}
