package registry

import "github.com/robosanta/oskit/iop"

// Backend is the seam between the package-level accessors and the
// actual store. The real implementation talks to the live Windows
// registry; tests install a Mock.
//
// Implementations record native failure provenance into op (value
// absence excepted - the caller decides whether absence is an error)
// and classify failures by wrapping ErrKeyNotExist, ErrValueNotExist,
// or a translated oserr error.
type Backend interface {
	GetValue(op *iop.IOP, keyPath, valueName string) (*Value, error)
	SetValue(op *iop.IOP, keyPath, valueName string, typ Type, data []byte) error
	DeleteValue(op *iop.IOP, keyPath, valueName string) error
}

var machine Backend = platformBackend()

// SetBackend replaces the backend behind the package-level accessors
// and returns a function restoring the previous one. Not safe to call
// concurrently with accessor use; intended for test setup.
func SetBackend(b Backend) (restore func()) {
	prev := machine
	machine = b
	return func() { machine = prev }
}
