// Package ksuid - base62.go converts between the 20-byte binary form and the
// fixed 27-character base62 text form.
//
// The binary form is treated as a 160-bit unsigned integer held in five
// big-endian uint32 limbs:
//   - Encoding repeatedly divides the limbs by 62 in place, emitting the
//     remainder as the next character from the right. Leading limbs that
//     have reached zero are skipped.
//   - Decoding is Horner's rule: multiply the limbs by 62 and add the next
//     digit. A carry out of the top limb means the value needs more than
//     160 bits.
//
// Both functions work on fixed-size arrays and never allocate.

package ksuid

import "encoding/binary"

const (
	// limbCount is the number of 32-bit limbs in a 160-bit value.
	limbCount = byteLength / 4

	base62 = 62
)

// encodeBase62Map is the text alphabet; a character's ordinal value is its
// index. Digits sort before uppercase before lowercase, which keeps the text
// form in the same order as the binary form.
const encodeBase62Map = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// decodeBase62Map maps a byte to its digit value, 0xFF marks bytes outside the
// alphabet. Read-only after init.
var decodeBase62Map [256]byte

func init() {
	for i := range decodeBase62Map {
		decodeBase62Map[i] = 0xFF
	}
	for i := 0; i < len(encodeBase62Map); i++ {
		decodeBase62Map[encodeBase62Map[i]] = byte(i)
	}
}

// encodeBase62 writes the base62 form of src into dst, left-padded with '0'.
//
// 62^27 > 2^160, so 27 characters always hold the full value.
func encodeBase62(dst *[stringEncodedLength]byte, src *[byteLength]byte) {
	var limbs [limbCount]uint32
	for i := range limbs {
		limbs[i] = binary.BigEndian.Uint32(src[i*4:])
	}

	// first is the index of the most significant non-zero limb
	first := 0
	for pos := stringEncodedLength - 1; pos >= 0; pos-- {
		for first < limbCount && limbs[first] == 0 {
			first++
		}
		if first == limbCount {
			dst[pos] = encodeBase62Map[0]
			continue
		}

		var rem uint64
		for i := first; i < limbCount; i++ {
			cur := rem<<32 | uint64(limbs[i])
			limbs[i] = uint32(cur / base62)
			rem = cur % base62
		}
		dst[pos] = encodeBase62Map[rem]
	}
}

// decodeBase62 parses the 27-character text in src into dst.
//
// src must already be stringEncodedLength bytes long. Every byte is validated
// before any arithmetic, so the first invalid character is always reported as
// *CharacterError. Values of 2^160 or more return ErrValueTooLarge. dst is
// only written on success.
func decodeBase62(dst *[byteLength]byte, src []byte) error {
	var digits [stringEncodedLength]byte
	for i := range digits {
		d := decodeBase62Map[src[i]]
		if d == 0xFF {
			return newCharacterError(src[i], i)
		}
		digits[i] = d
	}

	var limbs [limbCount]uint32
	for _, d := range digits {
		carry := uint64(d)
		for i := limbCount - 1; i >= 0; i-- {
			cur := uint64(limbs[i])*base62 + carry
			limbs[i] = uint32(cur)
			carry = cur >> 32
		}
		if carry != 0 {
			return ErrValueTooLarge
		}
	}

	for i, limb := range limbs {
		binary.BigEndian.PutUint32(dst[i*4:], limb)
	}
	return nil
}
