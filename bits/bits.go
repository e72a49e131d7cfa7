/*
NAME
  bits.go

DESCRIPTION
  Package bits provides big-endian byte-slice accessors for the integer
  widths and masked fields that appear throughout MPEG-TS and PSI: plain
  u16/u24/u32, and the 13-bit PID field that is always packed into two
  bytes with its top three bits reserved.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bits provides big-endian byte-slice accessors for integer widths
// and masked fields used by MPEG-TS and PSI.
package bits

// PID is a 13-bit MPEG-TS packet identifier.
type PID uint16

// NonePID is the sentinel value for "no PID".
const NonePID PID = 0x2000

// NullPID is the PID reserved for null (stuffing) packets.
const NullPID PID = 0x1FFF

// U16 reads a big-endian uint16 at offset 0 of b.
func U16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}

// PutU16 writes v as a big-endian uint16 at offset 0 of b.
func PutU16(b []byte, v uint16) {
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

// U24 reads a big-endian 24-bit unsigned integer at offset 0 of b.
func U24(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// PutU24 writes the low 24 bits of v as big-endian at offset 0 of b.
func PutU24(b []byte, v uint32) {
	b[0] = byte(v >> 16)
	b[1] = byte(v >> 8)
	b[2] = byte(v)
}

// U32 reads a big-endian uint32 at offset 0 of b.
func U32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// PutU32 writes v as a big-endian uint32 at offset 0 of b.
func PutU32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

// GetPID reads a 13-bit PID from a two-byte big-endian field whose top
// three bits are reserved (and ignored).
func GetPID(b []byte) PID {
	return PID(U16(b) & 0x1FFF)
}

// PutPID writes a 13-bit PID into a two-byte big-endian field, setting the
// top three reserved bits to 1 as required on the wire.
func PutPID(b []byte, p PID) {
	PutU16(b, 0xE000|uint16(p&0x1FFF))
}

// Len12 reads a 12-bit length from a two-byte big-endian field whose top
// four bits are reserved (and ignored).
func Len12(b []byte) uint16 {
	return U16(b) & 0x0FFF
}

// PutLen12 writes a 12-bit length into a two-byte big-endian field, setting
// the top four reserved bits to 1 as required on the wire.
func PutLen12(b []byte, l uint16) {
	PutU16(b, 0xF000|(l&0x0FFF))
}
