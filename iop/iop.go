package iop

import (
	"fmt"
	"strings"
)

// Event is one recorded failure. Native is the raw platform code (zero
// when the failure did not originate in an OS facility), Message the
// rendered native description, and Err the translated error.
type Event struct {
	Native  uint64
	Message string
	Err     error
}

// IOP accumulates failure provenance across a call chain. The zero
// value is ready to use.
type IOP struct {
	events []Event
}

// New returns an empty operation context.
func New() *IOP {
	return &IOP{}
}

// Record appends a failure with its native provenance and returns err
// unchanged, so call sites can record and propagate in one expression.
func (op *IOP) Record(native uint64, message string, err error) error {
	if op == nil {
		return err
	}
	op.events = append(op.events, Event{Native: native, Message: message, Err: err})
	return err
}

// AddError records a failure that has no native code of its own, such
// as a policy violation detected above the OS boundary.
func (op *IOP) AddError(err error) error {
	if op == nil || err == nil {
		return err
	}
	return op.Record(0, err.Error(), err)
}

// AddErrorf formats and records a new error. The returned error wraps
// nothing; use Record or AddError to preserve a cause.
func (op *IOP) AddErrorf(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	if op == nil {
		return err
	}
	return op.Record(0, err.Error(), err)
}

// Err returns the most recently recorded error, or nil if the context
// is clean.
func (op *IOP) Err() error {
	if op == nil || len(op.events) == 0 {
		return nil
	}
	return op.events[len(op.events)-1].Err
}

// Native returns the native code of the most recent event that carried
// one, or zero. The native code of a translated failure is always
// retained here, independent of what the translated error exposes.
func (op *IOP) Native() uint64 {
	if op == nil {
		return 0
	}
	for i := len(op.events) - 1; i >= 0; i-- {
		if op.events[i].Native != 0 {
			return op.events[i].Native
		}
	}
	return 0
}

// Message returns the rendered message of the most recent event, or "".
func (op *IOP) Message() string {
	if op == nil || len(op.events) == 0 {
		return ""
	}
	return op.events[len(op.events)-1].Message
}

// Events returns a copy of the recorded history, oldest first.
func (op *IOP) Events() []Event {
	if op == nil || len(op.events) == 0 {
		return nil
	}
	out := make([]Event, len(op.events))
	copy(out, op.events)
	return out
}

// Len returns the number of recorded events.
func (op *IOP) Len() int {
	if op == nil {
		return 0
	}
	return len(op.events)
}

// Reset clears the context for reuse.
func (op *IOP) Reset() {
	if op == nil {
		return
	}
	op.events = op.events[:0]
}

// String renders the provenance chain for logging, oldest first.
func (op *IOP) String() string {
	if op == nil || len(op.events) == 0 {
		return "<no failures recorded>"
	}
	var b strings.Builder
	for i, ev := range op.events {
		if i > 0 {
			b.WriteString("\n")
		}
		if ev.Native != 0 {
			fmt.Fprintf(&b, "[%d] native=%#x %s", i, ev.Native, ev.Message)
		} else {
			fmt.Fprintf(&b, "[%d] %s", i, ev.Message)
		}
	}
	return b.String()
}
