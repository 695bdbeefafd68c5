//go:build !restricted

package registry

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/robosanta/oskit/iop"
	"github.com/robosanta/oskit/oserr"
)

// Write access does not exist in restricted execution contexts: this
// whole file is compiled out under the restricted build tag, so a
// caller built for such a context gets a compile error rather than a
// runtime rejection.

// SetMachineValue writes raw bytes to a named value beneath a
// machine-scoped key, creating the key path as needed.
func SetMachineValue(op *iop.IOP, keyPath, valueName string, data []byte) error {
	if keyPath == "" {
		return op.AddError(fmt.Errorf("registry: empty key path: %w", oserr.Invalid.Err()))
	}
	return machine.SetValue(op, keyPath, valueName, REG_BINARY, data)
}

// SetU32 writes value as a REG_DWORD.
func SetU32(op *iop.IOP, keyPath, valueName string, value uint32) error {
	if keyPath == "" {
		return op.AddError(fmt.Errorf("registry: empty key path: %w", oserr.Invalid.Err()))
	}
	var data [4]byte
	binary.LittleEndian.PutUint32(data[:], value)
	return machine.SetValue(op, keyPath, valueName, REG_DWORD, data[:])
}

// SetString writes s as a REG_SZ (NUL-terminated UTF-16LE).
func SetString(op *iop.IOP, keyPath, valueName, s string) error {
	if keyPath == "" {
		return op.AddError(fmt.Errorf("registry: empty key path: %w", oserr.Invalid.Err()))
	}
	data, err := encodeUTF16(s)
	if err != nil {
		return op.AddError(fmt.Errorf("registry: %q: %w", s, err))
	}
	return machine.SetValue(op, keyPath, valueName, REG_SZ, data)
}

// DeleteValue removes a named value. Deleting a value that does not
// exist returns an error wrapping ErrValueNotExist.
func DeleteValue(op *iop.IOP, keyPath, valueName string) error {
	if keyPath == "" {
		return op.AddError(fmt.Errorf("registry: empty key path: %w", oserr.Invalid.Err()))
	}
	err := machine.DeleteValue(op, keyPath, valueName)
	if err != nil && errors.Is(err, ErrValueNotExist) {
		return op.AddError(err)
	}
	return err
}
