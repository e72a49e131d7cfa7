/*
NAME
  desc_maxbitrate.go

DESCRIPTION
  The maximum bitrate descriptor (tag 0x0E): an upper bound, in units of
  50 bytes/second, on the bitrate of the associated program or program
  element, including transport overhead.

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

const minSizeMaximumBitrate = 5

// DescriptorMaximumBitrate is the maximum bitrate descriptor (ISO/IEC
// 13818-1 2.6.26).
type DescriptorMaximumBitrate struct {
	Bitrate uint32
}

func checkMaximumBitrate(b []byte) bool { return len(b) == minSizeMaximumBitrate }

func parseMaximumBitrate(b []byte) DescriptorMaximumBitrate {
	return DescriptorMaximumBitrate{Bitrate: bits.U24(b[2:5]) & 0x003FFFFF}
}

func (d DescriptorMaximumBitrate) Tag() byte { return TagMaximumBitrate }
func (d DescriptorMaximumBitrate) Size() int { return minSizeMaximumBitrate }

func (d DescriptorMaximumBitrate) Append(dst []byte) []byte {
	dst = append(dst, TagMaximumBitrate, minSizeMaximumBitrate-2)
	var b [3]byte
	bits.PutU24(b[:], 0x00C00000|d.Bitrate)
	return append(dst, b[:]...)
}
