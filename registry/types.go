package registry

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Type enumerates the native registry value types. The numbers match
// the Windows definitions.
type Type uint32

const (
	REG_NONE                       Type = 0
	REG_SZ                         Type = 1
	REG_EXPAND_SZ                  Type = 2
	REG_BINARY                     Type = 3
	REG_DWORD                      Type = 4
	REG_DWORD_BIG_ENDIAN           Type = 5
	REG_LINK                       Type = 6
	REG_MULTI_SZ                   Type = 7
	REG_RESOURCE_LIST              Type = 8
	REG_FULL_RESOURCE_DESCRIPTOR   Type = 9
	REG_RESOURCE_REQUIREMENTS_LIST Type = 10
	REG_QWORD                      Type = 11
)

// Value is the raw representation of a named registry value: the
// backing buffer, its total size, and the offset and length of the
// value data within it. Type-agnostic callers interpret Data()
// themselves; U32 and AsString decode the common cases.
type Value struct {
	Buf  []byte
	Size uint32 // total size of Buf
	Off  uint32 // offset of the value data within Buf
	Len  uint32 // length of the value data
	Type Type
}

// Data returns the value data slice of the backing buffer.
func (v *Value) Data() []byte {
	if v == nil || v.Buf == nil {
		return nil
	}
	end := uint64(v.Off) + uint64(v.Len)
	if end > uint64(len(v.Buf)) {
		end = uint64(len(v.Buf))
	}
	if uint64(v.Off) >= end {
		return nil
	}
	return v.Buf[v.Off:end]
}

// U32 parses the value as a 32-bit unsigned integer. REG_DWORD (both
// byte orders) and REG_QWORD values in range convert directly; string
// values must hold a decimal or 0x-prefixed integer. Anything else is
// ErrMalformed.
func (v *Value) U32() (uint32, error) {
	if v == nil {
		return 0, ErrMalformed
	}
	data := v.Data()
	switch v.Type {
	case REG_DWORD:
		if len(data) != 4 {
			return 0, fmt.Errorf("%w: REG_DWORD with %d data bytes", ErrMalformed, len(data))
		}
		return binary.LittleEndian.Uint32(data), nil
	case REG_DWORD_BIG_ENDIAN:
		if len(data) != 4 {
			return 0, fmt.Errorf("%w: REG_DWORD_BIG_ENDIAN with %d data bytes", ErrMalformed, len(data))
		}
		return binary.BigEndian.Uint32(data), nil
	case REG_QWORD:
		if len(data) != 8 {
			return 0, fmt.Errorf("%w: REG_QWORD with %d data bytes", ErrMalformed, len(data))
		}
		q := binary.LittleEndian.Uint64(data)
		if q > math.MaxUint32 {
			return 0, fmt.Errorf("%w: QWORD value %d exceeds 32 bits", ErrMalformed, q)
		}
		return uint32(q), nil
	case REG_SZ, REG_EXPAND_SZ:
		s, err := decodeUTF16(data)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		u, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a 32-bit unsigned integer", ErrMalformed, s)
		}
		return uint32(u), nil
	}
	return 0, fmt.Errorf("%w: type %d is not numeric", ErrMalformed, v.Type)
}

// AsString decodes a REG_SZ or REG_EXPAND_SZ value.
func (v *Value) AsString() (string, error) {
	if v == nil {
		return "", ErrMalformed
	}
	if v.Type != REG_SZ && v.Type != REG_EXPAND_SZ {
		return "", fmt.Errorf("%w: type %d is not a string", ErrMalformed, v.Type)
	}
	s, err := decodeUTF16(v.Data())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return s, nil
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// decodeUTF16 converts registry string data (UTF-16LE, usually
// NUL-terminated) to a Go string.
func decodeUTF16(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", errors.New("odd byte count in UTF-16 data")
	}
	out, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(out), "\x00"), nil
}

// encodeUTF16 converts a Go string to NUL-terminated UTF-16LE registry
// string data.
func encodeUTF16(s string) ([]byte, error) {
	out, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, err
	}
	return append(out, 0, 0), nil
}
