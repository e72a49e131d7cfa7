/*
NAME
  table_tot.go

DESCRIPTION
  The Time Offset Table: the current UTC time plus a descriptor loop
  (typically a local time offset descriptor per country). Unlike TDT,
  TOT carries a CRC.

  Grounded on original_source/src/psi/tot.rs, including the asymmetry
  that TOT's demux calls finalize() (CRC) while TDT's does not.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package psi

import "github.com/broadcastkit/mts/bits"

// TOTPID is the conventional PID carrying the Time Offset Table (shared
// with TDT).
const TOTPID bits.PID = 0x0014

const minSizeTOT = 10 + 4

// TOT is the Time Offset Table.
type TOT struct {
	// Time is the current UTC time, in Unix seconds.
	Time        int64
	Descriptors Descriptors
}

// CheckTOT reports whether section is a structurally valid, CRC-clean
// TOT section.
func CheckTOT(section []byte) bool {
	return len(section) >= minSizeTOT && section[0] == TableIDTOT && checkCRC32(section)
}

// ParseTOT parses a single TOT section. Callers should CheckTOT first.
func ParseTOT(section []byte) TOT {
	descLen := int(bits.Len12(section[8:10]))
	return TOT{
		Time:        bits.DecodeMJDTime(section[3:8]),
		Descriptors: ParseDescriptors(section[10 : 10+descLen]),
	}
}

// Assemble serializes t into a single TOT section, including the
// trailing CRC-32. TOT is single-section only, and its descriptor loop
// is not budget-checked: callers are responsible for keeping it under
// the 4096-byte section cap.
func (t TOT) Assemble() []byte {
	b := make([]byte, 8)
	b[0] = TableIDTOT
	bits.EncodeMJDTime(b[3:8], t.Time)

	descriptors := t.Descriptors.Append(nil)
	var descLen [2]byte
	bits.PutLen12(descLen[:], uint16(len(descriptors)))
	b = append(b, descLen[:]...)
	b = append(b, descriptors...)

	// TDT/TOT use the short-form header: section_syntax_indicator is
	// fixed 0 and reserved_future_use fixed 1, unlike the 0xF0 pattern
	// every other table in this package writes via finalizeSection.
	bits.PutU16(b[1:3], 0x7000|(uint16(len(b)+4-3)&0x0FFF))
	return appendCRC32(b)
}
