/*
NAME
  table_pmt.go

DESCRIPTION
  The Program Map Table: the PCR PID, program-level descriptors, and the
  list of elementary streams (with their own descriptors) that make up a
  program.

  original_source/src/psi/pmt.rs is an abandoned stub (every method body
  empty); this codec is built fresh against the wire layout in ISO/IEC
  13818-1 2.4.4.8, following the structural shape of the working NIT/EIT
  codecs in the same package and the field naming of the legacy
  ausocean PMT splicer in psi.go.

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

// PMTPID is a conventional default PID for a single-program PMT; in
// practice the PMT PID is program-specific and comes from the PAT.
const PMTPID bits.PID = 0x1000

const minSizePMT = 12 + 4

// PMTStream is one elementary stream entry in a PMT's stream loop.
type PMTStream struct {
	StreamType  byte
	PID         bits.PID
	Descriptors Descriptors
}

// PMT is the Program Map Table.
type PMT struct {
	Version     byte
	ProgramNum  uint16
	PCRPID      bits.PID
	Descriptors Descriptors
	Streams     []PMTStream
}

// CheckPMT reports whether section is a structurally valid, CRC-clean
// PMT section.
func CheckPMT(section []byte) bool {
	return len(section) >= minSizePMT && section[0] == TableIDPMT && checkCRC32(section)
}

// ParsePMT parses a single PMT section. Callers should CheckPMT first.
func ParsePMT(section []byte) PMT {
	p := PMT{
		ProgramNum: bits.U16(section[3:5]),
		Version:    (section[5] & 0x3E) >> 1,
		PCRPID:     bits.GetPID(section[8:10]),
	}

	progInfoLen := int(bits.Len12(section[10:12]))
	p.Descriptors = ParseDescriptors(section[12 : 12+progInfoLen])

	body := section[12+progInfoLen : len(section)-4]
	skip := 0
	for len(body) >= skip+5 {
		streamType := body[skip]
		pid := bits.GetPID(body[skip+1 : skip+3])
		esInfoLen := int(bits.Len12(body[skip+3 : skip+5]))
		end := skip + 5 + esInfoLen
		if end > len(body) {
			break
		}
		p.Streams = append(p.Streams, PMTStream{
			StreamType:  streamType,
			PID:         pid,
			Descriptors: ParseDescriptors(body[skip+5 : end]),
		})
		skip = end
	}
	return p
}

// Assemble serializes p into a single PMT section, including the
// trailing CRC-32. Streams beyond what fits in one long-form section
// are silently dropped: PMT is single-section only.
func (p PMT) Assemble() []byte {
	b := newLongSection(TableIDPMT, p.ProgramNum, p.Version, 0, 0)

	var pcr [2]byte
	bits.PutPID(pcr[:], p.PCRPID)
	b = append(b, pcr[:]...)

	progInfo := p.Descriptors.Append(nil)
	var progInfoLen [2]byte
	bits.PutLen12(progInfoLen[:], uint16(len(progInfo)))
	b = append(b, progInfoLen[:]...)
	b = append(b, progInfo...)

	for _, s := range p.Streams {
		esInfo := s.Descriptors.Append(nil)
		entry := make([]byte, 0, 5+len(esInfo))
		entry = append(entry, s.StreamType)
		var pid [2]byte
		bits.PutPID(pid[:], s.PID)
		entry = append(entry, pid[:]...)
		var esInfoLen [2]byte
		bits.PutLen12(esInfoLen[:], uint16(len(esInfo)))
		entry = append(entry, esInfoLen[:]...)
		entry = append(entry, esInfo...)

		if len(b)+len(entry) > maxPayloadLarge+3 {
			break
		}
		b = append(b, entry...)
	}

	return finalizeSection(b)
}
