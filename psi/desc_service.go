/*
NAME
  desc_service.go

DESCRIPTION
  The service descriptor (tag 0x48): service type plus the provider and
  service names in DVB text form.

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

const minSizeService = 5

// DescriptorService is the service descriptor (ETSI EN 300 468 6.2.33).
type DescriptorService struct {
	ServiceType byte
	Provider    textcode.StringDVB
	Name        textcode.StringDVB
}

func checkService(b []byte) bool {
	if len(b) < minSizeService {
		return false
	}
	providerLen := int(b[3])
	if 4+providerLen >= len(b) {
		return false
	}
	nameLen := int(b[4+providerLen])
	return int(b[1]) == minSizeService-2+providerLen+nameLen
}

func parseService(b []byte) DescriptorService {
	providerStart := 4
	providerEnd := providerStart + int(b[3])
	nameStart := providerEnd + 1
	nameEnd := nameStart + int(b[providerEnd])
	return DescriptorService{
		ServiceType: b[2],
		Provider:    textcode.Decode(b[providerStart:providerEnd]),
		Name:        textcode.Decode(b[nameStart:nameEnd]),
	}
}

func (d DescriptorService) Tag() byte { return TagService }
func (d DescriptorService) Size() int {
	return minSizeService + d.Provider.Size() + d.Name.Size()
}

func (d DescriptorService) Append(dst []byte) []byte {
	size := d.Size()
	if size-2 > 0xFF {
		return dst
	}
	dst = append(dst, TagService, byte(size-2), d.ServiceType)
	dst = append(dst, d.Provider.AssembleSized()...)
	return append(dst, d.Name.AssembleSized()...)
}
