/*
NAME
  packet.go

DESCRIPTION
  Package ts provides stateless field accessors and setters over a raw
  188-byte MPEG-TS packet buffer: sync/error/payload/PUSI/scrambling
  flags, PID, continuity counter, adaptation field size, payload offset,
  and PCR presence/value.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ts provides stateless accessors over a raw 188-byte MPEG-TS
// packet buffer.
package ts

import (
	"github.com/pkg/errors"

	"github.com/broadcastkit/mts/bits"
)

// PacketSize is the fixed size in bytes of an MPEG-TS packet.
const PacketSize = 188

// SyncByte is the required value of the first byte of every TS packet.
const SyncByte = 0x47

// errShort is returned by accessors given a buffer shorter than PacketSize.
var errShort = errors.New("ts: packet shorter than 188 bytes")

// NullPacket is the canonical 188-byte null (stuffing) packet: sync, PID
// 0x1FFF, adaptation_field_control = payload only, CC = 0, payload all
// zero.
var NullPacket = func() [PacketSize]byte {
	var p [PacketSize]byte
	p[0] = SyncByte
	p[1] = 0x1F
	p[2] = 0xFF
	p[3] = 0x10
	return p
}()

// FillPacket is an all-0xFF buffer used as a stuffing source when demuxing
// the tail of a section into its last packet.
var FillPacket = func() [PacketSize]byte {
	var p [PacketSize]byte
	for i := range p {
		p[i] = 0xFF
	}
	return p
}()

// IsSync reports whether p begins with the TS sync byte.
func IsSync(p []byte) bool { return len(p) > 0 && p[0] == SyncByte }

// IsError reports the transport_error_indicator bit.
func IsError(p []byte) bool { return p[1]&0x80 != 0 }

// IsPUSI reports the payload_unit_start_indicator bit.
func IsPUSI(p []byte) bool { return p[1]&0x40 != 0 }

// IsPriority reports the transport_priority bit.
func IsPriority(p []byte) bool { return p[1]&0x20 != 0 }

// PID returns the packet's 13-bit PID.
func PID(p []byte) bits.PID { return bits.GetPID(p[1:3]) }

// SetPID writes a 13-bit PID into the packet header, preserving the
// TEI/PUSI/priority bits in byte 1.
func SetPID(p []byte, pid bits.PID) {
	p[1] = (p[1] & 0xE0) | byte(pid>>8&0x1F)
	p[2] = byte(pid)
}

// IsScrambled reports whether the transport_scrambling_control field is
// nonzero.
func IsScrambled(p []byte) bool { return p[3]&0xC0 != 0 }

// IsAdaptation reports whether an adaptation field is present
// (adaptation_field_control bit 0x20).
func IsAdaptation(p []byte) bool { return p[3]&0x20 != 0 }

// IsPayload reports whether a payload follows
// (adaptation_field_control bit 0x10).
func IsPayload(p []byte) bool { return p[3]&0x10 != 0 }

// CC returns the 4-bit continuity counter.
func CC(p []byte) int { return int(p[3] & 0x0F) }

// SetCC writes the 4-bit continuity counter, preserving the other bits of
// byte 3.
func SetCC(p []byte, cc int) {
	p[3] = (p[3] &^ 0x0F) | byte(cc&0x0F)
}

// SetPUSI sets or clears the payload_unit_start_indicator bit.
func SetPUSI(p []byte, v bool) {
	if v {
		p[1] |= 0x40
	} else {
		p[1] &^= 0x40
	}
}

// SetPayload sets or clears the adaptation_field_control payload bit.
func SetPayload(p []byte, v bool) {
	if v {
		p[3] |= 0x10
	} else {
		p[3] &^= 0x10
	}
}

// AdaptationSize returns the adaptation_field_length byte (0 if no
// adaptation field is present).
func AdaptationSize(p []byte) int {
	if !IsAdaptation(p) {
		return 0
	}
	return int(p[4])
}

// PayloadOffset returns the byte offset of the payload within p, per
// whether an adaptation field is present. The caller must still check the
// result against PacketSize before indexing.
func PayloadOffset(p []byte) int {
	if !IsAdaptation(p) {
		return 4
	}
	return 5 + AdaptationSize(p)
}

// Payload returns the packet's payload bytes, or nil if none are present
// or the adaptation field overruns the packet.
func Payload(p []byte) []byte {
	if !IsPayload(p) {
		return nil
	}
	off := PayloadOffset(p)
	if off >= PacketSize {
		return nil
	}
	return p[off:]
}

// IsPCR reports whether the packet carries a program clock reference: an
// adaptation field of at least 7 bytes with the PCR flag set.
func IsPCR(p []byte) bool {
	if !IsAdaptation(p) {
		return false
	}
	if AdaptationSize(p) < 7 {
		return false
	}
	return p[5]&0x10 != 0
}

// GetPCR returns the 42-bit PCR value (base*300 + ext) carried in the
// adaptation field. The caller must check IsPCR first.
func GetPCR(p []byte) uint64 {
	b := p[6:12]
	base := uint64(b[0])<<25 | uint64(b[1])<<17 | uint64(b[2])<<9 | uint64(b[3])<<1 | uint64(b[4])>>7
	ext := uint64(b[4]&0x01)<<8 | uint64(b[5])
	return base*300 + ext
}

// SetPCR writes a 42-bit PCR value into the adaptation field. The caller
// must ensure an adaptation field with the PCR flag set and at least 7
// bytes already exists (e.g. via IsPCR).
func SetPCR(p []byte, v uint64) {
	base := (v / 300) & 0x1FFFFFFFF
	ext := v % 300
	b := p[6:12]
	b[0] = byte(base >> 25)
	b[1] = byte(base >> 17)
	b[2] = byte(base >> 9)
	b[3] = byte(base >> 1)
	b[4] = byte(base<<7) | 0x7E | byte(ext>>8)
	b[5] = byte(ext)
}

// CheckLen returns errShort (wrapped) if p is shorter than a full packet.
func CheckLen(p []byte) error {
	if len(p) < PacketSize {
		return errors.Wrapf(errShort, "got %d bytes", len(p))
	}
	return nil
}
