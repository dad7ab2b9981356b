// Package ksuid - uuid.go bridges the 16-byte payload and uuid.UUID, which
// share the same size. This lets systems that already key records by a
// random UUID attach a creation time without changing the stored entropy.

package ksuid

import (
	"time"

	"github.com/google/uuid"
)

// FromUUID builds a KSUID whose payload is the 16 bytes of u.
func FromUUID(t time.Time, u uuid.UUID) KSUID {
	// payload length always matches uuid.UUID
	id, _ := FromParts(t, u[:])
	return id
}

// PayloadUUID returns the payload reinterpreted as a UUID. The result is only
// a well-formed RFC 4122 UUID if the KSUID was built with FromUUID.
func (i KSUID) PayloadUUID() uuid.UUID {
	var u uuid.UUID
	copy(u[:], i[timestampLength:])
	return u
}
