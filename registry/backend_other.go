//go:build !windows

package registry

import (
	"fmt"

	"github.com/robosanta/oskit/iop"
)

func platformBackend() Backend { return noBackend{} }

// noBackend serves hosts without a registry. Every operation fails
// with ErrNoRegistry; tests install a Mock instead.
type noBackend struct{}

func (noBackend) GetValue(op *iop.IOP, keyPath, _ string) (*Value, error) {
	return nil, op.AddError(fmt.Errorf(`HKLM\%s: %w`, keyPath, ErrNoRegistry))
}

func (noBackend) SetValue(op *iop.IOP, keyPath, _ string, _ Type, _ []byte) error {
	return op.AddError(fmt.Errorf(`HKLM\%s: %w`, keyPath, ErrNoRegistry))
}

func (noBackend) DeleteValue(op *iop.IOP, keyPath, _ string) error {
	return op.AddError(fmt.Errorf(`HKLM\%s: %w`, keyPath, ErrNoRegistry))
}
