package oserr

import "github.com/robosanta/oskit/iop"

// TranslateOS maps a value from the host's generic OS error space to
// the canonical enumeration, recording the native code and its rendered
// message into op. Translation is total: unmapped codes yield Unknown.
// A native code of zero is success; nothing is recorded for it.
func TranslateOS(op *iop.IOP, native uint32) Code {
	code, _ := record(op, uint64(native), osToCode(native))
	return code
}

// TranslateNet is TranslateOS for the host's network-subsystem error
// space, which uses a numbering distinct from the generic OS space on
// some platforms.
func TranslateNet(op *iop.IOP, native int32) Code {
	code, _ := record(op, uint64(uint32(native)), netToCode(native))
	return code
}

// Wrap translates a generic OS error and returns it as an error value
// carrying both the canonical and the native code. Zero yields nil.
func Wrap(op *iop.IOP, native uint32) error {
	_, err := record(op, uint64(native), osToCode(native))
	return err
}

// WrapNet is Wrap for the network-subsystem space.
func WrapNet(op *iop.IOP, native int32) error {
	_, err := record(op, uint64(uint32(native)), netToCode(native))
	return err
}

func record(op *iop.IOP, native uint64, code Code) (Code, error) {
	if code == OK {
		return OK, nil
	}
	msg := formatNative(uint32(native))
	err := &Error{Code: code, Native: native, Msg: msg}
	op.Record(native, msg, err)
	return code, err
}

// FormatMessage renders a human-readable description of a native code
// into the caller's buffer. It never writes past len(buf) and returns
// the length of the full, untruncated message: a return value greater
// than len(buf) tells the caller the rendering was cut short.
func FormatMessage(native uint32, buf []byte) int {
	msg := formatNative(native)
	copy(buf, msg)
	return len(msg)
}
