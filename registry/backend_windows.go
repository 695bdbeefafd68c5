//go:build windows

package registry

import (
	"encoding/binary"
	"errors"
	"fmt"
	"syscall"

	winreg "golang.org/x/sys/windows/registry"

	"github.com/robosanta/oskit/iop"
	"github.com/robosanta/oskit/oserr"
)

func platformBackend() Backend { return winBackend{} }

// winBackend reads and writes the live machine registry (HKLM).
type winBackend struct{}

func (winBackend) GetValue(op *iop.IOP, keyPath, valueName string) (*Value, error) {
	k, err := winreg.OpenKey(winreg.LOCAL_MACHINE, keyPath, winreg.QUERY_VALUE)
	if err != nil {
		return nil, openErr(op, keyPath, err)
	}
	defer k.Close()

	n, _, err := k.GetValue(valueName, nil)
	if err != nil {
		if errors.Is(err, winreg.ErrNotExist) {
			return nil, fmt.Errorf(`%s\%s: %w`, keyPath, valueName, ErrValueNotExist)
		}
		return nil, wrapNative(op, fmt.Sprintf(`query %s\%s`, keyPath, valueName), err)
	}

	buf := make([]byte, n)
	for {
		m, typ, err := k.GetValue(valueName, buf)
		if err == nil {
			return &Value{
				Buf:  buf[:m],
				Size: uint32(m),
				Off:  0,
				Len:  uint32(m),
				Type: Type(typ),
			}, nil
		}
		if errors.Is(err, winreg.ErrShortBuffer) {
			// The value grew between the size probe and the read.
			buf = make([]byte, m)
			continue
		}
		if errors.Is(err, winreg.ErrNotExist) {
			return nil, fmt.Errorf(`%s\%s: %w`, keyPath, valueName, ErrValueNotExist)
		}
		return nil, wrapNative(op, fmt.Sprintf(`query %s\%s`, keyPath, valueName), err)
	}
}

func (winBackend) SetValue(op *iop.IOP, keyPath, valueName string, typ Type, data []byte) error {
	k, _, err := winreg.CreateKey(winreg.LOCAL_MACHINE, keyPath, winreg.SET_VALUE)
	if err != nil {
		return openErr(op, keyPath, err)
	}
	defer k.Close()

	switch typ {
	case REG_BINARY:
		err = k.SetBinaryValue(valueName, data)
	case REG_DWORD:
		if len(data) != 4 {
			return op.AddError(fmt.Errorf("%w: REG_DWORD needs 4 bytes, got %d", ErrMalformed, len(data)))
		}
		err = k.SetDWordValue(valueName, binary.LittleEndian.Uint32(data))
	case REG_QWORD:
		if len(data) != 8 {
			return op.AddError(fmt.Errorf("%w: REG_QWORD needs 8 bytes, got %d", ErrMalformed, len(data)))
		}
		err = k.SetQWordValue(valueName, binary.LittleEndian.Uint64(data))
	case REG_SZ, REG_EXPAND_SZ:
		s, derr := decodeUTF16(data)
		if derr != nil {
			return op.AddError(fmt.Errorf("%w: %v", ErrMalformed, derr))
		}
		if typ == REG_SZ {
			err = k.SetStringValue(valueName, s)
		} else {
			err = k.SetExpandStringValue(valueName, s)
		}
	default:
		return op.AddError(fmt.Errorf("%w: cannot write type %d", ErrMalformed, typ))
	}
	if err != nil {
		return wrapNative(op, fmt.Sprintf(`set %s\%s`, keyPath, valueName), err)
	}
	return nil
}

func (winBackend) DeleteValue(op *iop.IOP, keyPath, valueName string) error {
	k, err := winreg.OpenKey(winreg.LOCAL_MACHINE, keyPath, winreg.SET_VALUE)
	if err != nil {
		return openErr(op, keyPath, err)
	}
	defer k.Close()

	if err := k.DeleteValue(valueName); err != nil {
		if errors.Is(err, winreg.ErrNotExist) {
			return fmt.Errorf(`%s\%s: %w`, keyPath, valueName, ErrValueNotExist)
		}
		return wrapNative(op, fmt.Sprintf(`delete %s\%s`, keyPath, valueName), err)
	}
	return nil
}

// openErr classifies a key-open failure, recording the native code.
func openErr(op *iop.IOP, keyPath string, err error) error {
	if errors.Is(err, winreg.ErrNotExist) {
		werr := wrapNative(op, `open HKLM\`+keyPath, err)
		return fmt.Errorf("%w: %w", ErrKeyNotExist, werr)
	}
	return wrapNative(op, `open HKLM\`+keyPath, err)
}

// wrapNative translates the syscall errno inside err and records the
// provenance into op.
func wrapNative(op *iop.IOP, context string, err error) error {
	var e syscall.Errno
	if errors.As(err, &e) {
		return fmt.Errorf("%s: %w", context, oserr.Wrap(op, uint32(e)))
	}
	return op.AddError(fmt.Errorf("%s: %w", context, err))
}
