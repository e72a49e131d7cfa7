/*
NAME
  desc_servicelist.go

DESCRIPTION
  The service list descriptor (tag 0x41): a list of (service_id,
  service_type) pairs carried by the originating transport stream.

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

const minSizeServiceList = 2

// ServiceListItem pairs a service_id with its service_type.
type ServiceListItem struct {
	ServiceID   uint16
	ServiceType byte
}

// DescriptorServiceList is the service list descriptor (ETSI EN 300 468
// 6.2.35).
type DescriptorServiceList struct {
	Items []ServiceListItem
}

func checkServiceList(b []byte) bool {
	return len(b) >= minSizeServiceList && (len(b)-2)%3 == 0
}

func parseServiceList(b []byte) DescriptorServiceList {
	var d DescriptorServiceList
	skip := 2
	for len(b) > skip {
		d.Items = append(d.Items, ServiceListItem{
			ServiceID:   bits.U16(b[skip:]),
			ServiceType: b[skip+2],
		})
		skip += 3
	}
	return d
}

func (d DescriptorServiceList) Tag() byte { return TagServiceList }
func (d DescriptorServiceList) Size() int { return minSizeServiceList + len(d.Items)*3 }

func (d DescriptorServiceList) Append(dst []byte) []byte {
	size := d.Size()
	if size-2 > 0xFF {
		return dst
	}
	dst = append(dst, TagServiceList, byte(size-2))
	for _, item := range d.Items {
		var b [2]byte
		bits.PutU16(b[:], item.ServiceID)
		dst = append(dst, b[0], b[1], item.ServiceType)
	}
	return dst
}
