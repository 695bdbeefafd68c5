package testutil

import (
	"testing"

	"github.com/robosanta/oskit/registry"
)

// DefaultsKey is the key path most fixtures populate.
const DefaultsKey = `Software\RoboSanta`

// SetupMockRegistry installs an empty in-memory registry backend and
// restores the previous backend when the test finishes.
//
// Example:
//
//	m := testutil.SetupMockRegistry(t)
//	m.SeedU32(testutil.DefaultsKey, "Timeout", 45)
func SetupMockRegistry(t *testing.T) *registry.Mock {
	t.Helper()
	m := registry.NewMock()
	restore := registry.SetBackend(m)
	t.Cleanup(restore)
	return m
}

// SetupSeededRegistry installs a mock pre-populated with the standard
// fixture values used across the registry tests.
func SetupSeededRegistry(t *testing.T) *registry.Mock {
	t.Helper()
	m := SetupMockRegistry(t)
	m.SeedU32(DefaultsKey, "Retries", 3).
		SeedString(DefaultsKey, "Server", "santa.example.net").
		Seed(DefaultsKey, "Blob", registry.REG_BINARY, []byte{0xDE, 0xAD, 0xBE, 0xEF})
	return m
}
