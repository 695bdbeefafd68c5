package oserr

import (
	"errors"
	"fmt"
)

// Error is a translated OS failure. It carries the canonical code, the
// raw native code it was translated from, and the rendered native
// message, so no diagnostic detail is lost at the translation boundary.
type Error struct {
	Code   Code
	Native uint64
	Msg    string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Msg != "" {
		return fmt.Sprintf("%s (%s, native=%#x)", e.Msg, e.Code, e.Native)
	}
	return fmt.Sprintf("%s (native=%#x)", e.Code, e.Native)
}

// Unwrap exposes the code's sentinel, so
// errors.Is(err, oserr.NotFound.Err()) matches translated errors.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Code.Err()
}

// CodeOf extracts the canonical code from an error chain. A nil error
// is OK; an error with no canonical classification is Unknown.
func CodeOf(err error) Code {
	if err == nil {
		return OK
	}
	var oe *Error
	if errors.As(err, &oe) {
		return oe.Code
	}
	for c := OK + 1; c < numCodes; c++ {
		if errors.Is(err, codeErrs[c]) {
			return c
		}
	}
	return Unknown
}
