/*
NAME
  desc_extendedevent.go

DESCRIPTION
  The extended event descriptor (tag 0x4E): a longer, structured
  description of an event, split into (item description, item text)
  pairs plus a trailing free-text field. An event whose description
  exceeds 256 bytes is split across several of these descriptors via the
  number/last_number fields.

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

import "github.com/broadcastkit/mts/textcode"

const minSizeExtendedEvent = 8

// ExtendedEventItem is one (description, text) entry of an extended
// event descriptor's item loop, e.g. desc:"Directors" text:"Anthony
// Russo, Joe Russo".
type ExtendedEventItem struct {
	Description textcode.StringDVB
	Text        textcode.StringDVB
}

// DescriptorExtendedEvent is the extended event descriptor (ETSI EN 300
// 468 6.2.15).
type DescriptorExtendedEvent struct {
	Number     byte
	LastNumber byte
	Language   textcode.StringDVB
	Items      []ExtendedEventItem
	Text       textcode.StringDVB
}

func checkExtendedEvent(b []byte) bool {
	if len(b) < minSizeExtendedEvent {
		return false
	}
	itemsLen := int(b[6])
	if 7+itemsLen >= len(b) {
		return false
	}
	textLen := int(b[7+itemsLen])
	return int(b[1]) == minSizeExtendedEvent-2+itemsLen+textLen
}

func parseExtendedEvent(b []byte) DescriptorExtendedEvent {
	itemsStart := 7
	itemsEnd := itemsStart + int(b[6])
	textStart := itemsEnd + 1
	textEnd := textStart + int(b[itemsEnd])

	d := DescriptorExtendedEvent{
		Number:     b[2] >> 4,
		LastNumber: b[2] & 0x0F,
		Language:   textcode.Decode(b[3:6]),
		Text:       textcode.Decode(b[textStart:textEnd]),
	}

	skip := itemsStart
	for skip < itemsEnd {
		descStart := skip + 1
		descEnd := descStart + int(b[skip])
		itemTextStart := descEnd + 1
		itemTextEnd := itemTextStart + int(b[descEnd])

		d.Items = append(d.Items, ExtendedEventItem{
			Description: textcode.Decode(b[descStart:descEnd]),
			Text:        textcode.Decode(b[itemTextStart:itemTextEnd]),
		})
		skip = itemTextEnd
	}
	return d
}

func (d DescriptorExtendedEvent) Tag() byte { return TagExtendedEvent }

func (d DescriptorExtendedEvent) Size() int {
	itemsSize := 0
	for _, item := range d.Items {
		itemsSize += 2 + item.Description.Size() + item.Text.Size()
	}
	return minSizeExtendedEvent + itemsSize + d.Text.Size()
}

func (d DescriptorExtendedEvent) Append(dst []byte) []byte {
	size := d.Size() - 2
	if size > 0xFF {
		return dst
	}

	dst = append(dst, TagExtendedEvent, byte(size))
	dst = append(dst, d.Number<<4|d.LastNumber&0x0F)
	dst = append(dst, d.Language.Marshal()...)

	lenOffset := len(dst)
	dst = append(dst, 0x00)
	for _, item := range d.Items {
		dst = append(dst, item.Description.AssembleSized()...)
		dst = append(dst, item.Text.AssembleSized()...)
	}
	dst[lenOffset] = byte(len(dst) - lenOffset - 1)

	return append(dst, d.Text.AssembleSized()...)
}
