//go:build unix

package oserr

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// osToCode maps the errno space. Aliased errno values (EWOULDBLOCK,
// EOPNOTSUPP) are deliberately absent: listing them alongside their
// primary name would duplicate switch cases on platforms where the
// numbers coincide.
func osToCode(native uint32) Code {
	switch syscall.Errno(native) {
	case 0:
		return OK
	case unix.ENOENT, unix.ENXIO, unix.ENODEV, unix.ESRCH:
		return NotFound
	case unix.EEXIST, unix.ENOTEMPTY:
		return Exists
	case unix.EACCES, unix.EPERM, unix.EROFS:
		return PermissionDenied
	case unix.EINVAL, unix.EBADF, unix.ENAMETOOLONG, unix.ENOTDIR,
		unix.EISDIR, unix.ERANGE, unix.EDOM:
		return Invalid
	case unix.ENOMEM, unix.EMFILE, unix.ENFILE:
		return NoMemory
	case unix.EBUSY, unix.ETXTBSY:
		return Busy
	case unix.ETIMEDOUT:
		return Timeout
	case unix.EIO, unix.ENOSPC, unix.EPIPE:
		return IO
	case unix.ENOTSUP, unix.ENOSYS:
		return NotSupported
	case unix.EINTR:
		return Interrupted
	case unix.EAGAIN, unix.EINPROGRESS, unix.EALREADY:
		return WouldBlock
	case unix.ECANCELED:
		return Canceled
	case unix.ECONNREFUSED:
		return ConnRefused
	case unix.ECONNRESET:
		return ConnReset
	case unix.ECONNABORTED:
		return ConnAborted
	case unix.ENETDOWN:
		return NetDown
	case unix.ENETUNREACH, unix.ENETRESET:
		return NetUnreachable
	case unix.EHOSTUNREACH, unix.EHOSTDOWN:
		return HostUnreachable
	case unix.EADDRINUSE:
		return AddrInUse
	case unix.EADDRNOTAVAIL:
		return AddrNotAvail
	case unix.ENOTCONN:
		return NotConnected
	case unix.EMSGSIZE:
		return MessageSize
	}
	return Unknown
}

// netToCode reuses the errno table: unix-class hosts have a single
// error numbering for both spaces, unlike Windows where the Winsock
// space is disjoint from the generic one.
func netToCode(native int32) Code {
	return osToCode(uint32(native))
}

func formatNative(native uint32) string {
	e := syscall.Errno(native)
	if name := unix.ErrnoName(e); name != "" {
		return fmt.Sprintf("%s: %s", name, e.Error())
	}
	return e.Error()
}
