package registry

import (
	"errors"
	"fmt"

	"github.com/robosanta/oskit/iop"
	"github.com/robosanta/oskit/oserr"
)

// GetMachineValue retrieves the raw byte representation of a named
// value beneath a machine-scoped key, type-agnostic; the caller
// interprets the returned buffer. A missing value is an error here -
// only GetU32 has a default-fallback policy.
func GetMachineValue(op *iop.IOP, keyPath, valueName string) (*Value, error) {
	if keyPath == "" {
		return nil, op.AddError(fmt.Errorf("registry: empty key path: %w", oserr.Invalid.Err()))
	}
	v, err := machine.GetValue(op, keyPath, valueName)
	if err != nil {
		if errors.Is(err, ErrValueNotExist) {
			return nil, op.AddError(err)
		}
		return nil, err
	}
	return v, nil
}

// GetU32 retrieves and parses a 32-bit unsigned integer value.
//
// If the value is absent, def is returned as a success, not an error.
// If the value is present but cannot be parsed as a 32-bit unsigned
// integer, or the key cannot be accessed for any other reason, an
// error is returned and def is never substituted.
func GetU32(op *iop.IOP, keyPath, valueName string, def uint32) (uint32, error) {
	if keyPath == "" {
		return 0, op.AddError(fmt.Errorf("registry: empty key path: %w", oserr.Invalid.Err()))
	}
	v, err := machine.GetValue(op, keyPath, valueName)
	if err != nil {
		if errors.Is(err, ErrValueNotExist) {
			// The one place an underlying failure becomes success.
			return def, nil
		}
		return 0, err
	}
	u, err := v.U32()
	if err != nil {
		return 0, op.AddError(fmt.Errorf(`%s\%s: %w`, keyPath, valueName, err))
	}
	return u, nil
}
