package registry

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/robosanta/oskit/iop"
	"github.com/robosanta/oskit/oserr"
)

// Mock is an in-memory Backend. It reproduces the real backend's
// classification exactly (key absent vs value absent vs access denied)
// so the accessors' edge-case policy is testable on any platform.
//
// Key paths and value names compare case-insensitively, as in the
// real registry. Mock is not safe for concurrent use.
type Mock struct {
	keys   map[string]map[string]mockValue
	denied map[string]bool
}

type mockValue struct {
	typ  Type
	data []byte
}

// NewMock returns an empty mock registry.
func NewMock() *Mock {
	return &Mock{
		keys:   make(map[string]map[string]mockValue),
		denied: make(map[string]bool),
	}
}

func fold(s string) string { return strings.ToLower(s) }

// SeedKey ensures a key exists (possibly with no values).
func (m *Mock) SeedKey(keyPath string) *Mock {
	if _, ok := m.keys[fold(keyPath)]; !ok {
		m.keys[fold(keyPath)] = make(map[string]mockValue)
	}
	return m
}

// Seed stores raw bytes under keyPath\valueName, creating the key.
func (m *Mock) Seed(keyPath, valueName string, typ Type, data []byte) *Mock {
	m.SeedKey(keyPath)
	m.keys[fold(keyPath)][fold(valueName)] = mockValue{typ: typ, data: append([]byte(nil), data...)}
	return m
}

// SeedU32 stores a REG_DWORD.
func (m *Mock) SeedU32(keyPath, valueName string, value uint32) *Mock {
	var data [4]byte
	binary.LittleEndian.PutUint32(data[:], value)
	return m.Seed(keyPath, valueName, REG_DWORD, data[:])
}

// SeedString stores a REG_SZ (NUL-terminated UTF-16LE).
func (m *Mock) SeedString(keyPath, valueName, s string) *Mock {
	data, err := encodeUTF16(s)
	if err != nil {
		// Seeding is test setup; a string Go can hold always encodes.
		panic(fmt.Sprintf("registry: seed %q: %v", s, err))
	}
	return m.Seed(keyPath, valueName, REG_SZ, data)
}

// Deny marks a key as inaccessible: every operation on it fails with a
// permission error regardless of whether it was seeded.
func (m *Mock) Deny(keyPath string) *Mock {
	m.denied[fold(keyPath)] = true
	return m
}

func (m *Mock) open(op *iop.IOP, keyPath string) (map[string]mockValue, error) {
	if m.denied[fold(keyPath)] {
		return nil, op.AddError(fmt.Errorf(`open HKLM\%s: access denied: %w`, keyPath, oserr.PermissionDenied.Err()))
	}
	vals, ok := m.keys[fold(keyPath)]
	if !ok {
		return nil, op.AddError(fmt.Errorf(`open HKLM\%s: %w`, keyPath, ErrKeyNotExist))
	}
	return vals, nil
}

func (m *Mock) GetValue(op *iop.IOP, keyPath, valueName string) (*Value, error) {
	vals, err := m.open(op, keyPath)
	if err != nil {
		return nil, err
	}
	mv, ok := vals[fold(valueName)]
	if !ok {
		return nil, fmt.Errorf(`%s\%s: %w`, keyPath, valueName, ErrValueNotExist)
	}
	data := append([]byte(nil), mv.data...)
	return &Value{
		Buf:  data,
		Size: uint32(len(data)),
		Off:  0,
		Len:  uint32(len(data)),
		Type: mv.typ,
	}, nil
}

func (m *Mock) SetValue(op *iop.IOP, keyPath, valueName string, typ Type, data []byte) error {
	if m.denied[fold(keyPath)] {
		return op.AddError(fmt.Errorf(`open HKLM\%s: access denied: %w`, keyPath, oserr.PermissionDenied.Err()))
	}
	// Key creation on write mirrors RegCreateKeyEx.
	m.Seed(keyPath, valueName, typ, data)
	return nil
}

func (m *Mock) DeleteValue(op *iop.IOP, keyPath, valueName string) error {
	vals, err := m.open(op, keyPath)
	if err != nil {
		return err
	}
	if _, ok := vals[fold(valueName)]; !ok {
		return fmt.Errorf(`%s\%s: %w`, keyPath, valueName, ErrValueNotExist)
	}
	delete(vals, fold(valueName))
	return nil
}
