// Package ksuid - errors.go provides sentinel errors and typed errors with
// enough context to tell callers which input was rejected and why.

package ksuid

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every typed error below unwraps to one of these, so
// callers can branch with errors.Is without caring about the concrete type.
var (
	// ErrInvalidLength is returned when a byte or text buffer does not have
	// the exact size required (20 raw bytes, 27 characters).
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidCharacter is returned when text contains a byte outside the
	// base62 alphabet.
	ErrInvalidCharacter = errors.New("invalid base62 character")

	// ErrValueTooLarge is returned when well-formed base62 text decodes to a
	// value that does not fit in 160 bits.
	ErrValueTooLarge = errors.New("value too large for 20 bytes")

	// ErrDataCorrupted is returned by the interchange hooks (text, JSON, SQL)
	// when the stored representation is not a valid KSUID.
	ErrDataCorrupted = errors.New("malformed ksuid text")

	// ErrRandomSource is returned when the random source fails to provide
	// enough entropy.
	ErrRandomSource = errors.New("random source failure")

	// ErrInvalidConfig is returned when Config validation fails.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ============================================================================
// Custom Error Types
// ============================================================================

// LengthKind names the buffer whose length was rejected.
type LengthKind int

const (
	// LengthBytes is a raw binary buffer (20 bytes expected).
	LengthBytes LengthKind = iota

	// LengthText is a base62 string (27 characters expected).
	LengthText

	// LengthPayload is a payload buffer (16 bytes expected).
	LengthPayload
)

// String returns a human-readable name for the length kind.
func (k LengthKind) String() string {
	switch k {
	case LengthBytes:
		return "bytes"
	case LengthText:
		return "text"
	case LengthPayload:
		return "payload"
	default:
		return "unknown"
	}
}

// LengthError reports an input buffer of the wrong size.
//
// Example usage:
//
//	if _, err := ksuid.Parse(s); err != nil {
//	    var lengthErr *ksuid.LengthError
//	    if errors.As(err, &lengthErr) {
//	        log.Warn("bad ksuid length", "got", lengthErr.Got, "want", lengthErr.Want)
//	    }
//	}
type LengthError struct {
	// Kind is the buffer being checked.
	Kind LengthKind

	// Got is the length that was supplied.
	Got int

	// Want is the only accepted length.
	Want int
}

// Error implements the error interface.
func (e *LengthError) Error() string {
	return fmt.Sprintf("ksuid: invalid %s length: got %d, want %d", e.Kind, e.Got, e.Want)
}

// Unwrap returns ErrInvalidLength for errors.Is() compatibility.
func (e *LengthError) Unwrap() error {
	return ErrInvalidLength
}

// CharacterError reports the first byte of a text input that is not part of
// the base62 alphabet.
type CharacterError struct {
	// Char is the offending byte.
	Char byte

	// Offset is the position of Char in the input.
	Offset int
}

// Error implements the error interface.
func (e *CharacterError) Error() string {
	return fmt.Sprintf("ksuid: invalid base62 character %q at offset %d", e.Char, e.Offset)
}

// Unwrap returns ErrInvalidCharacter for errors.Is() compatibility.
func (e *CharacterError) Unwrap() error {
	return ErrInvalidCharacter
}

// CorruptedError is returned by the interchange hooks (UnmarshalText,
// UnmarshalJSON, Scan, Set) when the input is not a valid KSUID.
//
// The message deliberately carries nothing beyond "malformed ksuid text";
// the underlying parse error is available through Cause for debugging.
type CorruptedError struct {
	cause error
}

// Error implements the error interface.
func (e *CorruptedError) Error() string {
	return "ksuid: " + ErrDataCorrupted.Error()
}

// Unwrap returns ErrDataCorrupted for errors.Is() compatibility.
func (e *CorruptedError) Unwrap() error {
	return ErrDataCorrupted
}

// Cause returns the parse error that triggered the corruption report.
func (e *CorruptedError) Cause() error {
	return e.cause
}

// RandomError reports a failure of the random source during generation.
type RandomError struct {
	// Err is the error returned by the random source.
	Err error

	// Read is the number of bytes read before the failure.
	Read int
}

// Error implements the error interface.
func (e *RandomError) Error() string {
	return fmt.Sprintf("ksuid: random source failure after %d of %d bytes: %v", e.Read, payloadLength, e.Err)
}

// Unwrap returns both the sentinel and the underlying reader error.
func (e *RandomError) Unwrap() []error {
	return []error{ErrRandomSource, e.Err}
}

// ConfigError represents a Config validation error.
type ConfigError struct {
	// Field is the name of the configuration field that failed validation.
	Field string

	// Reason is a human-readable explanation of why the value is invalid.
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("ksuid: invalid configuration: %s (%s)", e.Field, e.Reason)
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// ============================================================================
// Error Helper Functions
// ============================================================================

// IsLengthError checks if an error is or wraps a LengthError.
func IsLengthError(err error) bool {
	var lengthErr *LengthError
	return errors.As(err, &lengthErr)
}

// IsCharacterError checks if an error is or wraps a CharacterError.
func IsCharacterError(err error) bool {
	var charErr *CharacterError
	return errors.As(err, &charErr)
}

// IsCorruptedError checks if an error is or wraps a CorruptedError.
func IsCorruptedError(err error) bool {
	var corruptErr *CorruptedError
	return errors.As(err, &corruptErr)
}

// GetLengthError extracts the LengthError from an error chain.
//
// Example:
//
//	if lengthErr, ok := ksuid.GetLengthError(err); ok {
//	    fmt.Printf("expected %d, got %d\n", lengthErr.Want, lengthErr.Got)
//	}
func GetLengthError(err error) (*LengthError, bool) {
	var lengthErr *LengthError
	if errors.As(err, &lengthErr) {
		return lengthErr, true
	}
	return nil, false
}

// GetCharacterError extracts the CharacterError from an error chain.
func GetCharacterError(err error) (*CharacterError, bool) {
	var charErr *CharacterError
	if errors.As(err, &charErr) {
		return charErr, true
	}
	return nil, false
}

// ============================================================================
// Error Constructor Helpers
// ============================================================================

func newLengthError(kind LengthKind, got, want int) *LengthError {
	return &LengthError{Kind: kind, Got: got, Want: want}
}

func newCharacterError(c byte, offset int) *CharacterError {
	return &CharacterError{Char: c, Offset: offset}
}

func newCorruptedError(cause error) *CorruptedError {
	return &CorruptedError{cause: cause}
}

func newConfigError(field, reason string) *ConfigError {
	return &ConfigError{Field: field, Reason: reason}
}
