package registry

import (
	"fmt"

	"github.com/robosanta/oskit/oserr"
)

// Each sentinel wraps the matching canonical sentinel, so
// oserr.CodeOf classifies registry failures without special cases.
var (
	// ErrNoRegistry is returned by every operation on hosts without a
	// registry.
	ErrNoRegistry = fmt.Errorf("registry: only available on Windows hosts: %w", oserr.NotSupported.Err())

	// ErrKeyNotExist indicates a path component of the key does not
	// exist. Key absence is never masked by a default value.
	ErrKeyNotExist = fmt.Errorf("registry: key does not exist: %w", oserr.NotFound.Err())

	// ErrValueNotExist indicates the key exists but holds no value of
	// the requested name.
	ErrValueNotExist = fmt.Errorf("registry: value does not exist: %w", oserr.NotFound.Err())

	// ErrMalformed indicates a value is present but cannot be
	// interpreted as the requested type.
	ErrMalformed = fmt.Errorf("registry: malformed value: %w", oserr.Invalid.Err())
)
