//go:build unix

package oserr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/robosanta/oskit/iop"
)

// Test_TranslateOS_Table walks the documented errno mapping.
func Test_TranslateOS_Table(t *testing.T) {
	tests := []struct {
		name   string
		native uint32
		want   Code
	}{
		{"success", 0, OK},
		{"ENOENT", uint32(unix.ENOENT), NotFound},
		{"EEXIST", uint32(unix.EEXIST), Exists},
		{"EACCES", uint32(unix.EACCES), PermissionDenied},
		{"EPERM", uint32(unix.EPERM), PermissionDenied},
		{"EINVAL", uint32(unix.EINVAL), Invalid},
		{"ENOMEM", uint32(unix.ENOMEM), NoMemory},
		{"EBUSY", uint32(unix.EBUSY), Busy},
		{"ETIMEDOUT", uint32(unix.ETIMEDOUT), Timeout},
		{"EIO", uint32(unix.EIO), IO},
		{"ENOSYS", uint32(unix.ENOSYS), NotSupported},
		{"EINTR", uint32(unix.EINTR), Interrupted},
		{"EAGAIN", uint32(unix.EAGAIN), WouldBlock},
		{"ECONNREFUSED", uint32(unix.ECONNREFUSED), ConnRefused},
		{"EADDRINUSE", uint32(unix.EADDRINUSE), AddrInUse},
		{"unmapped", 200000, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := iop.New()
			got := TranslateOS(op, tt.native)
			assert.Equal(t, tt.want, got)

			if tt.want == OK {
				assert.Zero(t, op.Len(), "success must record nothing")
				return
			}
			// The native code is always retained in the context.
			require.Equal(t, 1, op.Len())
			assert.Equal(t, uint64(tt.native), op.Native())
			assert.NotEmpty(t, op.Message())
			assert.Equal(t, tt.want, CodeOf(op.Err()))
		})
	}
}

// Test_TranslateNet_Coincides documents that unix-class hosts use one
// errno numbering for both spaces.
func Test_TranslateNet_Coincides(t *testing.T) {
	for _, native := range []int32{
		int32(unix.ECONNRESET),
		int32(unix.EHOSTUNREACH),
		int32(unix.ENOENT),
		0,
	} {
		if got, want := TranslateNet(nil, native), TranslateOS(nil, uint32(native)); got != want {
			t.Errorf("TranslateNet(%d) = %v, TranslateOS = %v", native, got, want)
		}
	}
}

// Test_TranslateOS_TotalCoverage sweeps a wide range of raw values:
// translation can never fail, only fall back to Unknown.
func Test_TranslateOS_TotalCoverage(t *testing.T) {
	for native := uint32(1); native < 4096; native++ {
		code := TranslateOS(nil, native)
		if code == OK {
			t.Fatalf("nonzero native %d translated to OK", native)
		}
		if code < 0 || code >= numCodes {
			t.Fatalf("native %d produced out-of-range code %d", native, code)
		}
	}
}

func Test_Wrap(t *testing.T) {
	op := iop.New()

	require.NoError(t, Wrap(op, 0))
	assert.Zero(t, op.Len())

	err := Wrap(op, uint32(unix.EACCES))
	require.Error(t, err)
	assert.True(t, errors.Is(err, PermissionDenied.Err()))

	var oe *Error
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, uint64(unix.EACCES), oe.Native)
	assert.Equal(t, uint64(unix.EACCES), op.Native())
}

func Test_FormatMessage_Truncation(t *testing.T) {
	full := formatNative(uint32(unix.ENOENT))
	require.NotEmpty(t, full)

	// Ample buffer: full rendering, exact length.
	buf := make([]byte, 256)
	n := FormatMessage(uint32(unix.ENOENT), buf)
	require.Equal(t, len(full), n)
	assert.Equal(t, full, string(buf[:n]))

	// Short buffer: bounded write, true length still reported.
	short := make([]byte, 4)
	for i := range short {
		short[i] = 0xAA
	}
	n = FormatMessage(uint32(unix.ENOENT), short)
	assert.Equal(t, len(full), n, "reported length must be the untruncated length")
	assert.Greater(t, n, len(short), "test needs a message longer than the buffer")
	assert.Equal(t, full[:4], string(short), "prefix must be written, nothing past it")

	// Zero-length buffer is legal.
	n = FormatMessage(uint32(unix.ENOENT), nil)
	assert.Equal(t, len(full), n)
}
