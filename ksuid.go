// Package ksuid provides K-Sortable Unique IDentifiers: 20-byte identifiers
// that sort by creation time and carry 128 bits of random entropy.
//
// # Layout (20 bytes)
//
//	┌──────────────────────────────┬──────────────────────────────────────────┐
//	│  4 bytes: timestamp          │  16 bytes: payload                       │
//	│  uint32 big-endian, seconds  │  random entropy                          │
//	│  since 2014-05-13T16:53:20Z  │                                          │
//	└──────────────────────────────┴──────────────────────────────────────────┘
//
// The timestamp covers roughly 136 years from the custom epoch. Identifiers
// created in the same second are disambiguated by the payload.
//
// # Text Form
//
// The string form is always 27 characters from the alphabet 0-9A-Za-z,
// left-padded with '0'. Because the alphabet is in ASCII order, sorting the
// strings gives the same order as sorting the raw bytes, which in turn is
// chronological order to the second.
//
// # Usage
//
//	// Simple usage with the default generator
//	id := ksuid.New()
//	fmt.Println(id) // 0ujtsYcgvSTl8PAuAdqWYSMnLOv
//
//	// Parsing
//	id, err := ksuid.Parse("0ujtsYcgvSTl8PAuAdqWYSMnLOv")
//
//	// Deterministic generation with a custom random source
//	id, err := ksuid.Generate(time.Now(), ksuid.SourceReader(rand.NewPCG(1, 2)))
package ksuid

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"
)

const (
	// EpochStamp is the custom epoch in Unix seconds (2014-05-13T16:53:20Z).
	// The stored timestamp field is the number of seconds past this point.
	EpochStamp int64 = 1400000000

	// byteLength is the size of the binary representation.
	byteLength = 20

	// stringEncodedLength is the size of the base62 text representation.
	stringEncodedLength = 27

	// timestampLength is the size of the timestamp field.
	timestampLength = 4

	// payloadLength is the size of the random payload.
	payloadLength = 16
)

// Exported sizes, for callers that allocate buffers or validate input.
const (
	ByteLength   = byteLength
	StringLength = stringEncodedLength
	PayloadSize  = payloadLength
)

// KSUID is a 20-byte K-Sortable Unique IDentifier.
//
// KSUID is a value type: it is comparable with == and usable as a map key,
// and copies never share state. It implements the standard interchange
// interfaces:
//   - fmt.Stringer
//   - encoding.TextMarshaler/TextUnmarshaler (JSON, YAML, XML, TOML)
//   - encoding.BinaryMarshaler/BinaryUnmarshaler
//   - json.Marshaler/Unmarshaler
//   - sql.Scanner/driver.Valuer
//   - flag.Getter
type KSUID [byteLength]byte

var (
	// Nil is the zero KSUID. Its text form is 27 '0' characters.
	Nil KSUID

	// Max is the largest KSUID (all bytes 0xFF).
	Max = KSUID{
		255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
		255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	}
)

// ============================================================================
// Construction
// ============================================================================

// Generate builds a KSUID from t and 16 bytes read from r.
//
// The timestamp field is uint32(t.Unix() - EpochStamp). Times before the epoch
// or more than 2^32-1 seconds after it wrap modulo 2^32 and will not sort
// chronologically against in-range identifiers; this is not reported as an
// error. Sub-second precision is discarded.
//
// The only failure is r not providing 16 bytes, reported as *RandomError.
//
// Example:
//
//	id, err := ksuid.Generate(time.Now(), rand.Reader)
func Generate(t time.Time, r io.Reader) (KSUID, error) {
	var id KSUID

	if n, err := io.ReadFull(r, id[timestampLength:]); err != nil {
		return Nil, &RandomError{Err: err, Read: n}
	}

	binary.BigEndian.PutUint32(id[:timestampLength], toEpochSeconds(t))
	return id, nil
}

// FromParts builds a KSUID from a time and an explicit 16-byte payload.
func FromParts(t time.Time, payload []byte) (KSUID, error) {
	if len(payload) != payloadLength {
		return Nil, newLengthError(LengthPayload, len(payload), payloadLength)
	}

	var id KSUID
	binary.BigEndian.PutUint32(id[:timestampLength], toEpochSeconds(t))
	copy(id[timestampLength:], payload)
	return id, nil
}

// FromBytes copies exactly 20 raw bytes into a KSUID. The content is not
// validated: every 20-byte sequence is a valid KSUID.
func FromBytes(b []byte) (KSUID, error) {
	var id KSUID

	if len(b) != byteLength {
		return Nil, newLengthError(LengthBytes, len(b), byteLength)
	}

	copy(id[:], b)
	return id, nil
}

// Parse decodes the 27-character base62 text form.
//
// The length is checked first (*LengthError); decoding then fails with
// *CharacterError on the first byte outside the alphabet or ErrValueTooLarge
// when the value needs more than 160 bits.
func Parse(s string) (KSUID, error) {
	if len(s) != stringEncodedLength {
		return Nil, newLengthError(LengthText, len(s), stringEncodedLength)
	}

	var id KSUID
	if err := decodeBase62((*[byteLength]byte)(&id), []byte(s)); err != nil {
		return Nil, err
	}
	return id, nil
}

// MustParse is like Parse but panics on error. Intended for constants in
// tests and initialisation code.
func MustParse(s string) KSUID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

func toEpochSeconds(t time.Time) uint32 {
	return uint32(t.Unix() - EpochStamp)
}

func fromEpochSeconds(ts uint32) time.Time {
	return time.Unix(int64(ts)+EpochStamp, 0)
}

// ============================================================================
// Accessors
// ============================================================================

// Timestamp returns the creation time, to the second.
func (i KSUID) Timestamp() time.Time {
	return fromEpochSeconds(i.RawTimestamp())
}

// RawTimestamp returns the stored timestamp field: seconds since EpochStamp.
func (i KSUID) RawTimestamp() uint32 {
	return binary.BigEndian.Uint32(i[:timestampLength])
}

// Payload returns a copy of the 16-byte random payload.
func (i KSUID) Payload() []byte {
	p := make([]byte, payloadLength)
	copy(p, i[timestampLength:])
	return p
}

// Bytes returns a copy of the 20-byte binary representation.
func (i KSUID) Bytes() []byte {
	b := make([]byte, byteLength)
	copy(b, i[:])
	return b
}

// IsNil reports whether i is the zero KSUID.
func (i KSUID) IsNil() bool {
	return i == Nil
}

// String returns the 27-character base62 representation.
func (i KSUID) String() string {
	var text [stringEncodedLength]byte
	encodeBase62(&text, (*[byteLength]byte)(&i))
	return string(text[:])
}

// Append appends the 27-character base62 representation to dst.
func (i KSUID) Append(dst []byte) []byte {
	var text [stringEncodedLength]byte
	encodeBase62(&text, (*[byteLength]byte)(&i))
	return append(dst, text[:]...)
}

// Hash returns a 64-bit xxhash of all 20 bytes. Equal identifiers always hash
// equally; useful for sharding and hash-partitioned storage.
func (i KSUID) Hash() uint64 {
	return xxhash.Sum64(i[:])
}

// ============================================================================
// Ordering
// ============================================================================

// Compare returns -1, 0 or 1 comparing a and b byte-wise, most significant
// byte first. This is numeric order of the 160-bit value, with the timestamp
// as primary key.
func Compare(a, b KSUID) int {
	return bytes.Compare(a[:], b[:])
}

// Compare returns the ordering of i relative to other. See Compare.
func (i KSUID) Compare(other KSUID) int {
	return Compare(i, other)
}

// Equal reports whether i and other hold the same 20 bytes.
func (i KSUID) Equal(other KSUID) bool {
	return i == other
}

// Less reports whether i sorts before other.
func (i KSUID) Less(other KSUID) bool {
	return Compare(i, other) < 0
}

// Before reports whether i was created in an earlier second than other.
// Identifiers from the same second are neither before nor after each other.
func (i KSUID) Before(other KSUID) bool {
	return i.RawTimestamp() < other.RawTimestamp()
}

// After reports whether i was created in a later second than other.
func (i KSUID) After(other KSUID) bool {
	return i.RawTimestamp() > other.RawTimestamp()
}

// Next returns the KSUID immediately after i in 160-bit order. Max wraps to
// Nil.
func (i KSUID) Next() KSUID {
	for n := byteLength - 1; n >= 0; n-- {
		i[n]++
		if i[n] != 0 {
			break
		}
	}
	return i
}

// Prev returns the KSUID immediately before i in 160-bit order. Nil wraps to
// Max.
func (i KSUID) Prev() KSUID {
	for n := byteLength - 1; n >= 0; n-- {
		i[n]--
		if i[n] != 0xFF {
			break
		}
	}
	return i
}

type sorter []KSUID

func (s sorter) Len() int           { return len(s) }
func (s sorter) Less(i, j int) bool { return Compare(s[i], s[j]) < 0 }
func (s sorter) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Sort sorts ids in place, oldest first.
func Sort(ids []KSUID) {
	sort.Sort(sorter(ids))
}

// IsSorted reports whether ids is in ascending order.
func IsSorted(ids []KSUID) bool {
	return sort.IsSorted(sorter(ids))
}

// ============================================================================
// Interchange
// ============================================================================

// MarshalText implements encoding.TextMarshaler.
func (i KSUID) MarshalText() ([]byte, error) {
	return i.Append(make([]byte, 0, stringEncodedLength)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Malformed input is
// reported as *CorruptedError; i is left unchanged.
func (i *KSUID) UnmarshalText(text []byte) error {
	id, err := Parse(string(text))
	if err != nil {
		return newCorruptedError(err)
	}
	*i = id
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (i KSUID) MarshalBinary() ([]byte, error) {
	return i.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (i *KSUID) UnmarshalBinary(b []byte) error {
	id, err := FromBytes(b)
	if err != nil {
		return err
	}
	*i = id
	return nil
}

// MarshalJSON implements json.Marshaler. The KSUID is always a JSON string,
// including Nil.
func (i KSUID) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, stringEncodedLength+2)
	b = append(b, '"')
	b = i.Append(b)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements json.Unmarshaler. JSON null leaves i unchanged,
// following encoding/json conventions.
func (i *KSUID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return newCorruptedError(fmt.Errorf("not a JSON string: %w", err))
	}
	return i.UnmarshalText([]byte(s))
}

// Set implements flag.Value, so a KSUID can be used directly as a command
// line flag.
func (i *KSUID) Set(s string) error {
	return i.UnmarshalText([]byte(s))
}

// Get implements flag.Getter.
func (i KSUID) Get() any {
	return i
}
