//go:build windows

package oserr

import (
	"fmt"
	"strings"

	"golang.org/x/sys/windows"
)

// osToCode maps the Win32 generic error space (GetLastError values).
func osToCode(native uint32) Code {
	switch windows.Errno(native) {
	case windows.ERROR_SUCCESS:
		return OK
	case windows.ERROR_FILE_NOT_FOUND,
		windows.ERROR_PATH_NOT_FOUND,
		windows.ERROR_MOD_NOT_FOUND,
		windows.ERROR_NOT_FOUND,
		windows.ERROR_NO_MORE_ITEMS:
		return NotFound
	case windows.ERROR_FILE_EXISTS,
		windows.ERROR_ALREADY_EXISTS,
		windows.ERROR_DIR_NOT_EMPTY:
		return Exists
	case windows.ERROR_ACCESS_DENIED,
		windows.ERROR_PRIVILEGE_NOT_HELD,
		windows.ERROR_WRITE_PROTECT:
		return PermissionDenied
	case windows.ERROR_INVALID_PARAMETER,
		windows.ERROR_INVALID_HANDLE,
		windows.ERROR_INVALID_NAME,
		windows.ERROR_INVALID_DATA,
		windows.ERROR_BAD_PATHNAME:
		return Invalid
	case windows.ERROR_NOT_ENOUGH_MEMORY,
		windows.ERROR_OUTOFMEMORY,
		windows.ERROR_INSUFFICIENT_BUFFER,
		windows.ERROR_MORE_DATA:
		return NoMemory
	case windows.ERROR_SHARING_VIOLATION,
		windows.ERROR_LOCK_VIOLATION,
		windows.ERROR_BUSY:
		return Busy
	case windows.WAIT_TIMEOUT,
		windows.ERROR_SEM_TIMEOUT,
		windows.ERROR_TIMEOUT:
		return Timeout
	case windows.ERROR_GEN_FAILURE,
		windows.ERROR_IO_DEVICE,
		windows.ERROR_DISK_FULL,
		windows.ERROR_HANDLE_DISK_FULL,
		windows.ERROR_BROKEN_PIPE:
		return IO
	case windows.ERROR_CALL_NOT_IMPLEMENTED,
		windows.ERROR_NOT_SUPPORTED:
		return NotSupported
	case windows.ERROR_OPERATION_ABORTED:
		return Interrupted
	case windows.ERROR_IO_PENDING,
		windows.ERROR_IO_INCOMPLETE:
		return WouldBlock
	case windows.ERROR_CANCELLED:
		return Canceled
	}
	return Unknown
}

// netToCode maps the Winsock error space (WSAGetLastError values).
// Winsock numbering starts at WSABASEERR (10000) and overlaps nothing
// in the generic space by accident only, which is why the two
// translators stay separate.
func netToCode(native int32) Code {
	switch windows.Errno(uint32(native)) {
	case windows.ERROR_SUCCESS:
		return OK
	case windows.WSAECONNREFUSED:
		return ConnRefused
	case windows.WSAECONNRESET:
		return ConnReset
	case windows.WSAECONNABORTED:
		return ConnAborted
	case windows.WSAENETDOWN:
		return NetDown
	case windows.WSAENETUNREACH, windows.WSAENETRESET:
		return NetUnreachable
	case windows.WSAEHOSTUNREACH, windows.WSAEHOSTDOWN:
		return HostUnreachable
	case windows.WSAEADDRINUSE:
		return AddrInUse
	case windows.WSAEADDRNOTAVAIL:
		return AddrNotAvail
	case windows.WSAENOTCONN:
		return NotConnected
	case windows.WSAEMSGSIZE:
		return MessageSize
	case windows.WSAETIMEDOUT:
		return Timeout
	case windows.WSAEINTR:
		return Interrupted
	case windows.WSAEWOULDBLOCK, windows.WSAEINPROGRESS, windows.WSAEALREADY:
		return WouldBlock
	case windows.WSAEACCES:
		return PermissionDenied
	case windows.WSAEINVAL, windows.WSAEFAULT, windows.WSAENOTSOCK:
		return Invalid
	case windows.WSAENOBUFS:
		return NoMemory
	case windows.WSAEAFNOSUPPORT,
		windows.WSAEPROTONOSUPPORT,
		windows.WSAESOCKTNOSUPPORT,
		windows.WSAEOPNOTSUPP:
		return NotSupported
	case windows.WSAHOST_NOT_FOUND:
		return NotFound
	}
	return Unknown
}

// formatNative renders a native code through the system message table.
// Winsock codes are present in the same table, so one renderer serves
// both spaces.
func formatNative(native uint32) string {
	const flags = windows.FORMAT_MESSAGE_FROM_SYSTEM |
		windows.FORMAT_MESSAGE_IGNORE_INSERTS |
		windows.FORMAT_MESSAGE_ARGUMENT_ARRAY
	var buf [512]uint16
	n, err := windows.FormatMessage(flags, 0, native, 0, buf[:], nil)
	if err != nil || n == 0 {
		return fmt.Sprintf("winapi error %#x", native)
	}
	return strings.TrimRight(windows.UTF16ToString(buf[:n]), " \r\n.")
}
