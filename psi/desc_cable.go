/*
NAME
  desc_cable.go

DESCRIPTION
  The cable delivery system descriptor (tag 0x44): tuning parameters for
  a DVB-C transponder.

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

const minSizeCableDelivery = 13

// DescriptorCableDelivery is the cable delivery system descriptor
// (ETSI EN 300 468 6.2.13.1).
type DescriptorCableDelivery struct {
	// Frequency in Hz.
	Frequency  uint32
	FECOuter   byte
	Modulation byte
	// SymbolRate in Ksymbol/s.
	SymbolRate uint32
	FEC        byte
}

func checkCableDelivery(b []byte) bool { return len(b) == minSizeCableDelivery }

func parseCableDelivery(b []byte) DescriptorCableDelivery {
	return DescriptorCableDelivery{
		Frequency:  bits.BCD32(b[2:6]) * 100,
		FECOuter:   b[7] & 0x0F,
		Modulation: b[8],
		SymbolRate: uint32(bits.BCD24(b[9:12])),
		FEC:        b[12] & 0x0F,
	}
}

func (d DescriptorCableDelivery) Tag() byte { return TagCableDelivery }
func (d DescriptorCableDelivery) Size() int { return minSizeCableDelivery }

func (d DescriptorCableDelivery) Append(dst []byte) []byte {
	dst = append(dst, TagCableDelivery, minSizeCableDelivery-2)
	var freq [4]byte
	bits.PutBCD32(freq[:], d.Frequency/100)
	dst = append(dst, freq[:]...)
	dst = append(dst, 0xFF, 0xF0|d.FECOuter, d.Modulation)
	var symbol [3]byte
	bits.PutBCD24(symbol[:], int(d.SymbolRate))
	dst = append(dst, symbol[:]...)
	return append(dst, d.FEC)
}
