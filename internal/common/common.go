package common

import "encoding/binary"

// Big-endian helpers for the odd widths encoding/binary does not cover.
// Callers guarantee len(b) is at least the width.

// Uint24 decodes a 3-byte big-endian unsigned integer.
func Uint24(b []byte) uint64 {
	_ = b[2]
	return uint64(b[0])<<16 | uint64(b[1])<<8 | uint64(b[2])
}

// Uint40 decodes a 5-byte big-endian unsigned integer.
func Uint40(b []byte) uint64 {
	_ = b[4]
	return uint64(b[0])<<32 | uint64(binary.BigEndian.Uint32(b[1:]))
}

// Uint48 decodes a 6-byte big-endian unsigned integer.
func Uint48(b []byte) uint64 {
	_ = b[5]
	return uint64(binary.BigEndian.Uint16(b))<<32 | uint64(binary.BigEndian.Uint32(b[2:]))
}

// PutUint24 stores the low 24 bits of v.
func PutUint24(b []byte, v uint64) {
	_ = b[2]
	b[0] = byte(v >> 16)
	b[1] = byte(v >> 8)
	b[2] = byte(v)
}

// PutUint40 stores the low 40 bits of v.
func PutUint40(b []byte, v uint64) {
	_ = b[4]
	b[0] = byte(v >> 32)
	binary.BigEndian.PutUint32(b[1:], uint32(v))
}

// PutUint48 stores the low 48 bits of v.
func PutUint48(b []byte, v uint64) {
	_ = b[5]
	binary.BigEndian.PutUint16(b, uint16(v>>32))
	binary.BigEndian.PutUint32(b[2:], uint32(v))
}
