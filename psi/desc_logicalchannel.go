/*
NAME
  desc_logicalchannel.go

DESCRIPTION
  The logical channel descriptor (tag 0x83): a default channel number
  label for each service in a transport stream, per HD-BOOK-DTT 7.3.1.

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

const minSizeLogicalChannel = 2

// LogicalChannelItem pairs a service_id with its visibility and logical
// channel number.
type LogicalChannelItem struct {
	ServiceID uint16
	Visible   bool
	Channel   uint16
}

// DescriptorLogicalChannel is the logical channel descriptor
// (HD-BOOK-DTT 7.3.1).
type DescriptorLogicalChannel struct {
	Items []LogicalChannelItem
}

func checkLogicalChannel(b []byte) bool {
	return len(b) >= minSizeLogicalChannel && (len(b)-2)%4 == 0
}

func parseLogicalChannel(b []byte) DescriptorLogicalChannel {
	var d DescriptorLogicalChannel
	skip := 2
	for len(b) >= skip+4 {
		d.Items = append(d.Items, LogicalChannelItem{
			ServiceID: bits.U16(b[skip:]),
			Visible:   b[skip+2]&0x80 != 0,
			Channel:   bits.U16(b[skip+2:]) & 0x03FF,
		})
		skip += 4
	}
	return d
}

func (d DescriptorLogicalChannel) Tag() byte { return TagLogicalChannel }
func (d DescriptorLogicalChannel) Size() int { return minSizeLogicalChannel + len(d.Items)*4 }

func (d DescriptorLogicalChannel) Append(dst []byte) []byte {
	size := d.Size()
	if size-2 > 0xFF {
		return dst
	}
	dst = append(dst, TagLogicalChannel, byte(size-2))
	for _, item := range d.Items {
		var id [2]byte
		bits.PutU16(id[:], item.ServiceID)
		dst = append(dst, id[:]...)

		var visible uint16
		if item.Visible {
			visible = 1
		}
		var ch [2]byte
		bits.PutU16(ch[:], visible<<15|0x1F<<10|item.Channel&0x03FF)
		dst = append(dst, ch[:]...)
	}
	return dst
}
