/*
NAME
  desc_satellite.go

DESCRIPTION
  The satellite delivery system descriptor (tag 0x43): tuning parameters
  for a DVB-S/S2 transponder.

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

const minSizeSatelliteDelivery = 13

// Satellite orbital position, per ETSI EN 300 468 6.2.13.2.
const (
	PositionWest = 0
	PositionEast = 1
)

// DescriptorSatelliteDelivery is the satellite delivery system
// descriptor (ETSI EN 300 468 6.2.13.2).
type DescriptorSatelliteDelivery struct {
	// Frequency in kHz.
	Frequency uint32
	// OrbitalPosition in minutes of arc.
	OrbitalPosition uint16
	WestEastFlag    byte
	Polarization    byte
	RollOff         byte
	S2              byte
	Modulation      byte
	// SymbolRate in Ksymbol/s.
	SymbolRate uint32
	FEC        byte
}

func checkSatelliteDelivery(b []byte) bool { return len(b) == minSizeSatelliteDelivery }

func parseSatelliteDelivery(b []byte) DescriptorSatelliteDelivery {
	return DescriptorSatelliteDelivery{
		Frequency:       bits.BCD32(b[2:6]) * 10,
		OrbitalPosition: uint16(bits.BCD16(b[6:8])) * 6,
		WestEastFlag:    (b[8] & 0x80) >> 7,
		Polarization:    (b[8] & 0x60) >> 5,
		RollOff:         (b[8] & 0x18) >> 3,
		S2:              (b[8] & 0x04) >> 2,
		Modulation:      b[8] & 0x03,
		SymbolRate:      uint32(bits.BCD24(b[9:12])),
		FEC:             b[12] & 0x0F,
	}
}

func (d DescriptorSatelliteDelivery) Tag() byte { return TagSatelliteDelivery }
func (d DescriptorSatelliteDelivery) Size() int { return minSizeSatelliteDelivery }

func (d DescriptorSatelliteDelivery) Append(dst []byte) []byte {
	dst = append(dst, TagSatelliteDelivery, minSizeSatelliteDelivery-2)
	var freq [4]byte
	bits.PutBCD32(freq[:], d.Frequency/10)
	dst = append(dst, freq[:]...)
	var orbital [2]byte
	bits.PutBCD16(orbital[:], int(d.OrbitalPosition/6))
	dst = append(dst, orbital[:]...)
	dst = append(dst, d.WestEastFlag<<7|d.Polarization<<5|d.RollOff<<3|d.S2<<2|d.Modulation)
	var symbol [3]byte
	bits.PutBCD24(symbol[:], int(d.SymbolRate))
	dst = append(dst, symbol[:]...)
	return append(dst, d.FEC)
}
