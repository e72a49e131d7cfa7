/*
NAME
  desc_shortevent.go

DESCRIPTION
  The short event descriptor (tag 0x4D): an event's title and short
  description in a given language.

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

const minSizeShortEvent = 7

// DescriptorShortEvent is the short event descriptor (ETSI EN 300 468
// 6.2.37).
type DescriptorShortEvent struct {
	Language textcode.StringDVB
	Name     textcode.StringDVB
	Text     textcode.StringDVB
}

func checkShortEvent(b []byte) bool {
	if len(b) < minSizeShortEvent {
		return false
	}
	nameLen := int(b[5])
	if 6+nameLen >= len(b) {
		return false
	}
	textLen := int(b[6+nameLen])
	return int(b[1]) == minSizeShortEvent-2+nameLen+textLen
}

func parseShortEvent(b []byte) DescriptorShortEvent {
	nameStart := 6
	nameEnd := nameStart + int(b[5])
	textStart := nameEnd + 1
	textEnd := textStart + int(b[nameEnd])
	return DescriptorShortEvent{
		Language: textcode.Decode(b[2:5]),
		Name:     textcode.Decode(b[nameStart:nameEnd]),
		Text:     textcode.Decode(b[textStart:textEnd]),
	}
}

func (d DescriptorShortEvent) Tag() byte { return TagShortEvent }
func (d DescriptorShortEvent) Size() int {
	return minSizeShortEvent + d.Name.Size() + d.Text.Size()
}

func (d DescriptorShortEvent) Append(dst []byte) []byte {
	size := d.Size()
	if size-2 > 0xFF {
		return dst
	}
	dst = append(dst, TagShortEvent, byte(size-2))
	dst = append(dst, d.Language.Marshal()...)
	dst = append(dst, d.Name.AssembleSized()...)
	return append(dst, d.Text.AssembleSized()...)
}
