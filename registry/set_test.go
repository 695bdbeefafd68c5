//go:build !restricted

package registry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robosanta/oskit/internal/testutil"
	"github.com/robosanta/oskit/iop"
	"github.com/robosanta/oskit/oserr"
	"github.com/robosanta/oskit/registry"
)

func Test_Set_And_Delete(t *testing.T) {
	testutil.SetupMockRegistry(t)
	op := iop.New()

	require.NoError(t, registry.SetMachineValue(op, `Software\RoboSanta`, "Raw", []byte{1, 2, 3}))
	v, err := registry.GetMachineValue(op, `Software\RoboSanta`, "Raw")
	require.NoError(t, err)
	assert.Equal(t, registry.REG_BINARY, v.Type)
	assert.Equal(t, []byte{1, 2, 3}, v.Data())

	require.NoError(t, registry.SetU32(op, `Software\RoboSanta`, "Timeout", 45))
	got, err := registry.GetU32(op, `Software\RoboSanta`, "Timeout", 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(45), got)

	require.NoError(t, registry.SetString(op, `Software\RoboSanta`, "Server", "host.example"))
	v, err = registry.GetMachineValue(op, `Software\RoboSanta`, "Server")
	require.NoError(t, err)
	s, err := v.AsString()
	require.NoError(t, err)
	assert.Equal(t, "host.example", s)

	require.NoError(t, registry.DeleteValue(op, `Software\RoboSanta`, "Timeout"))
	got, err = registry.GetU32(op, `Software\RoboSanta`, "Timeout", 30)
	require.NoError(t, err)
	assert.Equal(t, uint32(30), got, "deleted value falls back to the default")

	err = registry.DeleteValue(op, `Software\RoboSanta`, "Timeout")
	require.Error(t, err)
	assert.True(t, errors.Is(err, registry.ErrValueNotExist))
}

func Test_Set_DeniedKey(t *testing.T) {
	m := testutil.SetupMockRegistry(t)
	m.Deny(`Software\Locked`)

	op := iop.New()
	err := registry.SetU32(op, `Software\Locked`, "Timeout", 1)
	require.Error(t, err)
	assert.Equal(t, oserr.PermissionDenied, oserr.CodeOf(err))
}
