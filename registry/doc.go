// Package registry reads and writes named values under machine-wide
// configuration keys, and allows the backing store to be mocked during
// tests.
//
// # Overview
//
// All accessors address a value by key path and value name in native
// registry syntax, always beneath the machine-scoped root (HKLM):
//
//	op := iop.New()
//	timeout, err := registry.GetU32(op, `Software\RoboSanta`, "Timeout", 30)
//
// The default-value policy of GetU32 is exact and deliberate:
//
//   - value missing        -> default returned, success
//   - value malformed      -> error, the default is never substituted
//   - key inaccessible     -> error (permissions or a missing path
//     component)
//
// This is the single place in the module where an underlying failure
// is converted into a successful result.
//
// # Platforms
//
// The package compiles everywhere. On Windows it calls the live
// registry through golang.org/x/sys/windows/registry; elsewhere every
// operation fails with ErrNoRegistry. Tests (on any platform) install
// an in-memory Mock via SetBackend.
//
// # Write access
//
// SetMachineValue, SetU32, SetString, and DeleteValue exist only in
// unrestricted builds. Compiling with -tags restricted removes them
// entirely - callers in restricted execution contexts get a compile
// error, not a runtime rejection.
//
// All failures are translated through oserr before returning, and the
// native code plus rendered message are recorded in the caller's
// iop.IOP.
package registry
