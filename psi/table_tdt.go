/*
NAME
  table_tdt.go

DESCRIPTION
  The Time and Date Table: carries only the current UTC time, in a fixed
  8-byte section with no CRC. It is the sole PSI section this package
  recognizes in that short form; Reassembler.Check special-cases
  table_id 0x70 accordingly.

  Grounded on original_source/src/psi/tdt.rs, including its custom demux
  that bypasses finalize()/CRC entirely.

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

// TDTPID is the conventional PID carrying the Time and Date Table
// (shared with TOT).
const TDTPID bits.PID = 0x0014

const sizeTDT = 8

// TDT is the Time and Date Table.
type TDT struct {
	// Time is the current UTC time, in Unix seconds.
	Time int64
}

// CheckTDT reports whether section is exactly an 8-byte TDT section.
// TDT carries no CRC, unlike every other table in this package.
func CheckTDT(section []byte) bool {
	return len(section) == sizeTDT && section[0] == TableIDTDT
}

// ParseTDT parses a single TDT section. Callers should CheckTDT first.
func ParseTDT(section []byte) TDT {
	return TDT{Time: bits.DecodeMJDTime(section[3:8])}
}

// Assemble serializes t into its fixed 8-byte section. No CRC is
// appended.
func (t TDT) Assemble() []byte {
	b := make([]byte, sizeTDT)
	b[0] = TableIDTDT
	b[1] = 0x70
	b[2] = 5
	bits.EncodeMJDTime(b[3:8], t.Time)
	return b
}
