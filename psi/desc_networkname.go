/*
NAME
  desc_networkname.go

DESCRIPTION
  The network name descriptor (tag 0x40): the network name in DVB text
  form.

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

const minSizeNetworkName = 2

// DescriptorNetworkName is the network name descriptor (ETSI EN 300 468
// 6.2.27).
type DescriptorNetworkName struct {
	Name textcode.StringDVB
}

func checkNetworkName(b []byte) bool { return len(b) >= minSizeNetworkName }

func parseNetworkName(b []byte) DescriptorNetworkName {
	return DescriptorNetworkName{Name: textcode.Decode(b[2:])}
}

func (d DescriptorNetworkName) Tag() byte { return TagNetworkName }
func (d DescriptorNetworkName) Size() int { return minSizeNetworkName + d.Name.Size() }

func (d DescriptorNetworkName) Append(dst []byte) []byte {
	size := d.Size()
	if size-2 > 0xFF {
		return dst
	}
	dst = append(dst, TagNetworkName, byte(size-2))
	return append(dst, d.Name.Marshal()...)
}
