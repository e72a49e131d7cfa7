/*
NAME
  table.go

DESCRIPTION
  Shared constants and helpers for the per-table PSI codecs (PAT, PMT,
  SDT, NIT, EIT, TDT, TOT): table_id values and the section-size budgets
  the multi-section assemblers respect.

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

// Standard PSI table_id values, per ISO/IEC 13818-1 and ETSI EN 300 468.
const (
	TableIDPAT         = 0x00
	TableIDPMT         = 0x02
	TableIDNITActual   = 0x40
	TableIDNITOther    = 0x41
	TableIDSDTActual   = 0x42
	TableIDSDTOther    = 0x46
	TableIDEITPFActual = 0x4E
	TableIDEITPFOther  = 0x4F
	TableIDTDT         = 0x70
	TableIDTOT         = 0x73
)

// isEITSchedule reports whether tableID falls in the EIT schedule ranges
// (0x50-0x5F actual, 0x60-0x6F other), as opposed to the present/following
// table IDs 0x4E/0x4F.
func isEITSchedule(tableID byte) bool {
	return tableID >= 0x50 && tableID <= 0x6F
}

// isEITTableID reports whether tableID is any valid EIT table_id.
func isEITTableID(tableID byte) bool {
	return tableID == TableIDEITPFActual || tableID == TableIDEITPFOther || isEITSchedule(tableID)
}

// Section-size budgets for the multi-section assemblers, excluding the
// 3-byte section header and 4-byte trailing CRC.
const (
	// maxPayloadSmall bounds PAT/NIT/SDT sections, which share the
	// classic 1024-byte short-form section cap.
	maxPayloadSmall = 1024 - 3 - 4

	// maxPayloadLarge bounds EIT/PMT sections under the full 4096-byte
	// long-form section cap.
	maxPayloadLarge = 4096 - 3 - 4
)

// newLongSection starts a long-form section: table_id, a placeholder
// length field (filled in by finalizeSection), table_id_extension,
// version/current_next, and zeroed section_number/last_section_number.
// The returned buffer is 8 bytes; callers append table-specific body
// bytes before calling finalizeSection.
func newLongSection(tableID byte, tableIDExt uint16, version byte, section, lastSection byte) []byte {
	b := make([]byte, 8)
	b[0] = tableID
	b[1] = 0xF0
	bits.PutU16(b[3:5], tableIDExt)
	b[5] = 0xC0 | (version<<1)&0x3E | 0x01 // reserved|version|current_next=1
	b[6] = section
	b[7] = lastSection
	return b
}

// finalizeSection fills in the 12-bit section length (everything after
// the length field, including the CRC) and appends the CRC-32.
func finalizeSection(b []byte) []byte {
	bits.PutLen12(b[1:3], uint16(len(b)+4-3))
	return appendCRC32(b)
}
