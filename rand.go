// Package ksuid - rand.go defines the random sources used for payloads.
//
// Any io.Reader is a random source. Sources that produce 64-bit words
// (math/rand/v2's PCG and ChaCha8, or a fixed sequence in tests) plug in
// through SourceReader.

package ksuid

import (
	"crypto/rand"
	"encoding/binary"
	"io"
)

// Source produces uniformly distributed 64-bit values. *rand.PCG and
// *rand.ChaCha8 from math/rand/v2 satisfy it.
type Source interface {
	Uint64() uint64
}

// SourceReader adapts a Source into an io.Reader. Each 64-bit value is
// emitted big-endian; a read that is not a multiple of 8 bytes discards the
// unused tail of the last value.
//
// The returned reader is not safe for concurrent use unless src is.
func SourceReader(src Source) io.Reader {
	return &sourceReader{src: src}
}

type sourceReader struct {
	src Source
}

func (r *sourceReader) Read(p []byte) (int, error) {
	var word [8]byte
	n := 0
	for n < len(p) {
		binary.BigEndian.PutUint64(word[:], r.src.Uint64())
		n += copy(p[n:], word[:])
	}
	return n, nil
}

// DefaultSource returns the cryptographically secure system random source.
func DefaultSource() io.Reader {
	return rand.Reader
}
