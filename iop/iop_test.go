package iop

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// Test_NilReceiver verifies every method is safe when the caller passes
// no context.
func Test_NilReceiver(t *testing.T) {
	var op *IOP

	sentinel := errors.New("boom")
	if got := op.Record(5, "five", sentinel); got != sentinel {
		t.Errorf("Record on nil = %v, want the error back", got)
	}
	if got := op.AddError(sentinel); got != sentinel {
		t.Errorf("AddError on nil = %v, want the error back", got)
	}
	if err := op.AddErrorf("x %d", 1); err == nil || err.Error() != "x 1" {
		t.Errorf("AddErrorf on nil = %v", err)
	}
	if op.Err() != nil || op.Native() != 0 || op.Message() != "" || op.Len() != 0 {
		t.Error("nil IOP reported recorded state")
	}
	if op.Events() != nil {
		t.Error("Events on nil IOP != nil")
	}
	op.Reset() // must not panic
	_ = op.String()
}

// Test_Provenance checks that native code, message, and error all
// survive a Record and that the latest event wins.
func Test_Provenance(t *testing.T) {
	op := New()

	first := errors.New("first")
	second := errors.New("second")

	op.Record(2, "file not found", first)
	op.Record(5, "access denied", second)

	if got := op.Err(); got != second {
		t.Errorf("Err() = %v, want second", got)
	}
	if got := op.Native(); got != 5 {
		t.Errorf("Native() = %d, want 5", got)
	}
	if got := op.Message(); got != "access denied" {
		t.Errorf("Message() = %q", got)
	}
	if got := op.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}

	events := op.Events()
	if len(events) != 2 || events[0].Native != 2 || events[1].Native != 5 {
		t.Errorf("Events() = %+v", events)
	}

	// Events must be a copy, not the backing slice.
	events[0].Native = 99
	if op.Events()[0].Native != 2 {
		t.Error("Events() exposed internal state")
	}
}

// Test_NativeSkipsZero verifies the most recent event carrying a native
// code wins, even when later events have none.
func Test_NativeSkipsZero(t *testing.T) {
	op := New()
	op.Record(1234, "underlying failure", errors.New("os failure"))
	op.AddErrorf("while loading configuration")

	if got := op.Native(); got != 1234 {
		t.Errorf("Native() = %d, want 1234", got)
	}
}

// Test_RecordReturnsErr checks the record-and-propagate idiom.
func Test_RecordReturnsErr(t *testing.T) {
	op := New()
	sentinel := fmt.Errorf("wrapped: %w", errors.New("inner"))
	if got := op.Record(7, "msg", sentinel); got != sentinel {
		t.Errorf("Record() = %v, want the same error", got)
	}
}

func Test_Reset(t *testing.T) {
	op := New()
	op.Record(3, "x", errors.New("x"))
	op.Reset()

	if op.Len() != 0 || op.Err() != nil || op.Native() != 0 {
		t.Error("Reset did not clear the context")
	}
}

func Test_String(t *testing.T) {
	op := New()
	if got := op.String(); got != "<no failures recorded>" {
		t.Errorf("empty String() = %q", got)
	}

	op.Record(0x20, "sharing violation", errors.New("busy"))
	op.AddErrorf("opening settings key")

	s := op.String()
	if !strings.Contains(s, "native=0x20") || !strings.Contains(s, "opening settings key") {
		t.Errorf("String() = %q", s)
	}
}
