//go:build !windows && !restricted

package registry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robosanta/oskit/iop"
	"github.com/robosanta/oskit/oserr"
	"github.com/robosanta/oskit/registry"
)

// Test_NoRegistryHost verifies the stub backend on hosts without a
// registry: every operation fails with ErrNoRegistry, classified as
// not-supported.
func Test_NoRegistryHost(t *testing.T) {
	op := iop.New()

	_, err := registry.GetU32(op, `Software\RoboSanta`, "Timeout", 30)
	require.Error(t, err, "no default fallback when the store itself is absent")
	assert.True(t, errors.Is(err, registry.ErrNoRegistry))
	assert.Equal(t, oserr.NotSupported, oserr.CodeOf(err))

	_, err = registry.GetMachineValue(op, `Software\RoboSanta`, "Blob")
	assert.True(t, errors.Is(err, registry.ErrNoRegistry))

	err = registry.SetMachineValue(op, `Software\RoboSanta`, "Blob", []byte{1})
	assert.True(t, errors.Is(err, registry.ErrNoRegistry))

	err = registry.DeleteValue(op, `Software\RoboSanta`, "Blob")
	assert.True(t, errors.Is(err, registry.ErrNoRegistry))
}
