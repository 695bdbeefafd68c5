package oserr

import (
	"errors"
	"fmt"
)

// Code classifies a native failure into a platform-independent
// category, so callers can branch on intent rather than on raw
// platform integers.
type Code int32

const (
	OK      Code = iota // success, never recorded
	Unknown             // native code absent from the mapping tables

	NotFound
	Exists
	PermissionDenied
	Invalid
	NoMemory
	Busy
	Timeout
	IO
	NotSupported
	Interrupted
	WouldBlock
	Canceled

	// Network-subsystem classes.
	ConnRefused
	ConnReset
	ConnAborted
	NetDown
	NetUnreachable
	HostUnreachable
	AddrInUse
	AddrNotAvail
	NotConnected
	MessageSize

	numCodes // sentinel, keep last
)

var codeNames = [numCodes]string{
	OK:               "ok",
	Unknown:          "unknown",
	NotFound:         "not found",
	Exists:           "already exists",
	PermissionDenied: "permission denied",
	Invalid:          "invalid argument",
	NoMemory:         "out of memory",
	Busy:             "busy",
	Timeout:          "timed out",
	IO:               "i/o failure",
	NotSupported:     "not supported",
	Interrupted:      "interrupted",
	WouldBlock:       "operation would block",
	Canceled:         "canceled",
	ConnRefused:      "connection refused",
	ConnReset:        "connection reset",
	ConnAborted:      "connection aborted",
	NetDown:          "network down",
	NetUnreachable:   "network unreachable",
	HostUnreachable:  "host unreachable",
	AddrInUse:        "address in use",
	AddrNotAvail:     "address not available",
	NotConnected:     "not connected",
	MessageSize:      "message too long",
}

func (c Code) String() string {
	if c < 0 || c >= numCodes {
		return fmt.Sprintf("Code(%d)", int32(c))
	}
	return codeNames[c]
}

// codeErrs holds one stable sentinel per code so translated errors
// interoperate with errors.Is.
var codeErrs = func() [numCodes]error {
	var errs [numCodes]error
	for c := OK + 1; c < numCodes; c++ {
		errs[c] = errors.New("oserr: " + codeNames[c])
	}
	return errs
}()

// Err returns the stable sentinel error for the code, suitable for use
// with errors.Is. OK and out-of-range codes return nil.
func (c Code) Err() error {
	if c <= OK || c >= numCodes {
		return nil
	}
	return codeErrs[c]
}
