// Package oserr translates native operating-system failure codes into
// one canonical, platform-independent enumeration.
//
// # Overview
//
// Every platform exposes at least two distinct native error spaces: the
// generic OS space (Win32 ERROR_* codes on Windows, errno elsewhere)
// and the network-subsystem space (WSAE* codes on Windows). The same
// raw integer can mean different things in each space on one host, so
// translation is split:
//
//   - TranslateOS for the generic space
//   - TranslateNet for the network space
//
// Translation is total: a native code missing from the mapping tables
// yields Unknown, never a failure. The raw native code is always
// retained - it is recorded, with a rendered message, into the caller's
// iop.IOP, and carried on the returned *Error.
//
// # Usage
//
//	if err := someWinAPICall(); err != nil {
//	    return oserr.Wrap(op, uint32(err.(syscall.Errno)))
//	}
//
// FormatMessage renders a native code into a caller-owned buffer with
// explicit truncation reporting, for callers that manage their own
// message storage.
package oserr
