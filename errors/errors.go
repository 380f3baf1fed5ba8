// Package errors provides error handling for emo.
//
// It re-exports a subset of github.com/cockroachdb/errors and defines the
// error kinds surfaced at the CLI boundary. Kinds are sentinel errors
// attached with Mark, so callers check them with errors.Is while the
// message stays human-readable.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping.
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
	Mark  = crdb.Mark
)

// Error inspection.
var (
	Is     = crdb.Is
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Error kinds. Every failure that reaches the CLI boundary carries exactly
// one of these.
var (
	// ErrInvalidInput covers bad user input: empty queries, out-of-range
	// memo indexes, malformed code-point strings, an empty catalog.
	ErrInvalidInput = New("invalid input")

	// ErrConfiguration covers model acquisition, loading and inference
	// failures, including network failures while talking to the hub or
	// the inference server.
	ErrConfiguration = New("configuration error")

	// ErrIO covers persistence reads and writes.
	ErrIO = New("io failure")

	// ErrSerialization covers malformed persisted or embedded JSON.
	ErrSerialization = New("serialization failure")
)

// InvalidInputf builds an ErrInvalidInput-kinded error with a clean message.
func InvalidInputf(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrInvalidInput)
}

// Configurationf builds an ErrConfiguration-kinded error with a clean message.
func Configurationf(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrConfiguration)
}
