/*
NAME
  table_eit.go

DESCRIPTION
  The Event Information Table: chronological per-service event listings
  (present/following or full schedule), each with a start time, duration,
  running status, and descriptor loop.

  Grounded on original_source/src/psi/eit.rs, a fully working
  implementation including multi-section assembly; this is also the
  reference for the literal multi-section test scenario.

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

// EITPID is the conventional PID carrying the Event Information Table.
const EITPID bits.PID = 0x0012

const minSizeEIT = 14 + 4

// EITEvent is one event entry in an EIT section.
type EITEvent struct {
	EventID uint16
	// Start is the event's UTC start time, in Unix seconds.
	Start int64
	// Duration in seconds.
	Duration      int
	RunningStatus byte
	FreeCAMode    bool
	Descriptors   Descriptors
}

// EIT is the Event Information Table. TableID is one of
// TableIDEITPFActual, TableIDEITPFOther, or a schedule table_id in
// 0x50..0x6F.
type EIT struct {
	TableID                  byte
	Version                  byte
	ServiceID                uint16
	TSID                     uint16
	OrigNetID                uint16
	SegmentLastSectionNumber byte
	LastTableID              byte
	Events                   []EITEvent
}

// CheckEIT reports whether section is a structurally valid, CRC-clean
// EIT section.
func CheckEIT(section []byte) bool {
	return len(section) >= minSizeEIT && isEITTableID(section[0]) && checkCRC32(section)
}

// ParseEIT parses a single EIT section. Callers should CheckEIT first.
func ParseEIT(section []byte) EIT {
	e := EIT{
		TableID:                  section[0],
		ServiceID:                bits.U16(section[3:5]),
		Version:                  (section[5] & 0x3E) >> 1,
		TSID:                     bits.U16(section[8:10]),
		OrigNetID:                bits.U16(section[10:12]),
		SegmentLastSectionNumber: section[12],
		LastTableID:              section[13],
	}

	body := section[14 : len(section)-4]
	skip := 0
	for len(body) >= skip+12 {
		descLen := int(bits.Len12(body[skip+10 : skip+12]))
		itemLen := 12 + descLen
		if skip+itemLen > len(body) {
			break
		}
		e.Events = append(e.Events, EITEvent{
			EventID:       bits.U16(body[skip:]),
			Start:         bits.DecodeMJDTime(body[skip+2 : skip+7]),
			Duration:      bits.BCDTime3(body[skip+7 : skip+10]),
			RunningStatus: (body[skip+10] & 0xE0) >> 5,
			FreeCAMode:    body[skip+10]&0x10 != 0,
			Descriptors:   ParseDescriptors(body[skip+12 : skip+itemLen]),
		})
		skip += itemLen
	}
	return e
}

// Assemble serializes e into one or more EIT sections, each respecting
// the 4096-byte long-form budget, with matching
// section_number/last_section_number and a trailing CRC-32 each.
func (e EIT) Assemble() [][]byte {
	var sections [][]byte
	b := e.newSection()

	for _, ev := range e.Events {
		descriptors := ev.Descriptors.Append(nil)
		entry := make([]byte, 0, 12+len(descriptors))

		var id [2]byte
		bits.PutU16(id[:], ev.EventID)
		entry = append(entry, id[:]...)

		var start [5]byte
		bits.EncodeMJDTime(start[:], ev.Start)
		entry = append(entry, start[:]...)

		var duration [3]byte
		bits.PutBCDTime3(duration[:], ev.Duration)
		entry = append(entry, duration[:]...)

		descLen := uint16(len(descriptors))
		flags := ev.RunningStatus<<5 | byte(descLen>>8)&0x0F
		if ev.FreeCAMode {
			flags |= 0x10
		}
		entry = append(entry, flags, byte(descLen))
		entry = append(entry, descriptors...)

		if len(b)+len(entry) > maxPayloadLarge+3 {
			sections = append(sections, b)
			b = e.newSection()
		}
		b = append(b, entry...)
	}
	sections = append(sections, b)

	last := byte(len(sections) - 1)
	for i, sec := range sections {
		sec[6] = byte(i)
		sec[7] = last
		sections[i] = finalizeSection(sec)
	}
	return sections
}

func (e EIT) newSection() []byte {
	b := newLongSection(e.TableID, e.ServiceID, e.Version, 0, 0)
	var ids [4]byte
	bits.PutU16(ids[0:2], e.TSID)
	bits.PutU16(ids[2:4], e.OrigNetID)
	b = append(b, ids[:]...)
	return append(b, e.SegmentLastSectionNumber, e.LastTableID)
}
