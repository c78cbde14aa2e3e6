// Package log defines the minimal structured logging contract used by the
// ledger engine.
//
// The engine only ever logs through this interface, so callers can plug in
// any backend (see package zaplog) or NewNop when no output is wanted.
// Credential material is never passed through this interface.
package log
