// Package iop provides the operation context threaded through every
// fallible call in this module.
//
// # Overview
//
// An IOP ("I/O operation") is a caller-owned handle that accumulates
// failure provenance as an operation descends through the shim: the raw
// native error code, the rendered native message, and the translated
// error value. A caller several layers above the failing OS call can
// still retrieve the full detail afterwards - there is no process-wide
// "last error" slot anywhere in this module.
//
// # Usage
//
//	op := iop.New()
//	v, err := registry.GetU32(op, `Software\RoboSanta`, "Timeout", 30)
//	if err != nil {
//	    slog.Error("registry read failed",
//	        "native", op.Native(), "detail", op.Message())
//	}
//
// # Ownership and concurrency
//
// An IOP belongs to exactly one logical operation at a time. It is NOT
// safe for concurrent use: give each concurrently executing operation
// its own instance, or add external synchronization. Reset reclaims an
// instance once its detail has been consumed.
//
// All methods are safe on a nil receiver; callers that do not care
// about provenance may pass nil wherever an *IOP is expected.
package iop
