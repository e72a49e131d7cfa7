/*
NAME
  desc_localtimeoffset.go

DESCRIPTION
  The local time offset descriptor (tag 0x58): per-country local time
  offset from UTC, with the next scheduled change.

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

import (
	"github.com/broadcastkit/mts/bits"
	"github.com/broadcastkit/mts/textcode"
)

const minSizeLocalTimeOffset = 2
const localTimeOffsetItemSize = 13

// LocalTimeOffsetItem is one country's entry in a local time offset
// descriptor.
type LocalTimeOffsetItem struct {
	CountryCode    textcode.StringDVB
	RegionID       byte
	OffsetPolarity byte
	Offset         int // seconds
	TimeOfChange   int64
	NextOffset     int // seconds
}

// DescriptorLocalTimeOffset is the local time offset descriptor (ETSI
// EN 300 468 6.2.20).
type DescriptorLocalTimeOffset struct {
	Items []LocalTimeOffsetItem
}

func checkLocalTimeOffset(b []byte) bool {
	return len(b) >= minSizeLocalTimeOffset && (len(b)-2)%localTimeOffsetItemSize == 0
}

func parseLocalTimeOffset(b []byte) DescriptorLocalTimeOffset {
	var d DescriptorLocalTimeOffset
	skip := 2
	for len(b) > skip {
		d.Items = append(d.Items, LocalTimeOffsetItem{
			CountryCode:    textcode.Decode(b[skip : skip+3]),
			RegionID:       b[skip+3] >> 2,
			OffsetPolarity: b[skip+3] & 0x01,
			Offset:         bits.BCDTime2(b[skip+4 : skip+6]),
			TimeOfChange:   bits.DecodeMJDTime(b[skip+6 : skip+11]),
			NextOffset:     bits.BCDTime2(b[skip+11 : skip+13]),
		})
		skip += localTimeOffsetItemSize
	}
	return d
}

func (d DescriptorLocalTimeOffset) Tag() byte { return TagLocalTimeOffset }
func (d DescriptorLocalTimeOffset) Size() int {
	return minSizeLocalTimeOffset + len(d.Items)*localTimeOffsetItemSize
}

func (d DescriptorLocalTimeOffset) Append(dst []byte) []byte {
	size := d.Size()
	if size-2 > 0xFF {
		return dst
	}
	dst = append(dst, TagLocalTimeOffset, byte(size-2))
	for _, item := range d.Items {
		dst = append(dst, item.CountryCode.Marshal()...)
		dst = append(dst, item.RegionID<<2|0x02|item.OffsetPolarity&0x01)
		var offset [2]byte
		bits.PutBCDTime2(offset[:], item.Offset)
		dst = append(dst, offset[:]...)
		var change [5]byte
		bits.EncodeMJDTime(change[:], item.TimeOfChange)
		dst = append(dst, change[:]...)
		var next [2]byte
		bits.PutBCDTime2(next[:], item.NextOffset)
		dst = append(dst, next[:]...)
	}
	return dst
}
