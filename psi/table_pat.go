/*
NAME
  table_pat.go

DESCRIPTION
  The Program Association Table: the correspondence between a program
  number and the PID of the TS packets carrying that program's
  definition (its PMT, or the network PID for program_number 0).

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

// PATPID is the fixed PID carrying the Program Association Table.
const PATPID bits.PID = 0x0000

const minSizePAT = 8 + 4

// PATEntry associates a program number with the PID of its PMT.
// program_number 0 is reserved: its PID identifies the NIT instead.
type PATEntry struct {
	ProgramNumber uint16
	PID           bits.PID
}

// PAT is the Program Association Table.
type PAT struct {
	Version byte
	TSID    uint16
	Entries []PATEntry
}

// CheckPAT reports whether section is a structurally valid, CRC-clean
// PAT section.
func CheckPAT(section []byte) bool {
	return len(section) >= minSizePAT && section[0] == TableIDPAT && checkCRC32(section)
}

// ParsePAT parses a single PAT section. Callers should CheckPAT first.
func ParsePAT(section []byte) PAT {
	p := PAT{
		TSID:    bits.U16(section[3:5]),
		Version: (section[5] & 0x3E) >> 1,
	}
	body := section[8 : len(section)-4]
	skip := 0
	for len(body) >= skip+4 {
		p.Entries = append(p.Entries, PATEntry{
			ProgramNumber: bits.U16(body[skip:]),
			PID:           bits.GetPID(body[skip+2:]),
		})
		skip += 4
	}
	return p
}

// Assemble serializes p into a single PAT section, including the
// trailing CRC-32. Entries beyond what fits in one section (per the
// classic 1024-byte short-form budget) are silently dropped: PAT is
// single-section only.
func (p PAT) Assemble() []byte {
	b := newLongSection(TableIDPAT, p.TSID, p.Version, 0, 0)
	for _, e := range p.Entries {
		if len(b)+4 > maxPayloadSmall+3 {
			break
		}
		var entry [4]byte
		bits.PutU16(entry[0:2], e.ProgramNumber)
		bits.PutPID(entry[2:4], e.PID)
		b = append(b, entry[:]...)
	}
	return finalizeSection(b)
}
