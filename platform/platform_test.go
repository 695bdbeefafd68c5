package platform

import (
	"math"
	"strconv"
	"testing"
	"unsafe"
)

// Test_SizeMax verifies the per-width constant matches the target's
// actual pointer width.
func Test_SizeMax(t *testing.T) {
	if got, want := unsafe.Sizeof(Size(0)), unsafe.Sizeof(uintptr(0)); got != want {
		t.Fatalf("Size is %d bytes, want pointer width %d", got, want)
	}

	switch strconv.IntSize {
	case 64:
		if int64(SizeMax) != math.MaxInt64 {
			t.Errorf("SizeMax = %d, want %d on a 64-bit target", int64(SizeMax), int64(math.MaxInt64))
		}
	case 32:
		if int64(SizeMax) != math.MaxInt32 {
			t.Errorf("SizeMax = %d, want %d on a 32-bit target", int64(SizeMax), int64(math.MaxInt32))
		}
	default:
		t.Fatalf("unexpected int width %d", strconv.IntSize)
	}
}

// Test_NaN32 checks the fixed bit pattern and NaN semantics.
func Test_NaN32(t *testing.T) {
	n := NaN32()
	if !IsNaN32(n) {
		t.Fatal("NaN32() does not compare unequal to itself")
	}
	if bits := math.Float32bits(n); bits != 0x7FFFFFFF {
		t.Errorf("NaN32 bits = %#x, want 0x7fffffff", bits)
	}
	if IsNaN32(1.5) {
		t.Error("IsNaN32(1.5) = true")
	}
}
