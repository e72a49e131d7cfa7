/*
NAME
  desc_terrestrial.go

DESCRIPTION
  The terrestrial delivery system descriptor (tag 0x5A): tuning
  parameters for a DVB-T transponder.

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

const minSizeTerrestrial = 13

// DescriptorTerrestrial is the terrestrial delivery system descriptor
// (ETSI EN 300 468 6.2.13.4).
type DescriptorTerrestrial struct {
	// Frequency in Hz.
	Frequency          uint32
	Bandwidth          byte
	Priority           byte
	TimeSlicing        byte
	MPEFEC             byte
	Modulation         byte
	Hierarchy          byte
	CodeRateHP         byte
	CodeRateLP         byte
	GuardInterval      byte
	Transmission       byte
	OtherFrequencyFlag byte
}

func checkTerrestrial(b []byte) bool { return len(b) == minSizeTerrestrial }

func parseTerrestrial(b []byte) DescriptorTerrestrial {
	return DescriptorTerrestrial{
		Frequency:          bits.U32(b[2:6]) * 10,
		Bandwidth:          (b[6] & 0xE0) >> 5,
		Priority:           (b[6] & 0x10) >> 4,
		TimeSlicing:        (b[6] & 0x08) >> 3,
		MPEFEC:             (b[6] & 0x04) >> 2,
		Modulation:         (b[7] & 0xC0) >> 6,
		Hierarchy:          (b[7] & 0x38) >> 3,
		CodeRateHP:         b[7] & 0x07,
		CodeRateLP:         (b[8] & 0xE0) >> 5,
		GuardInterval:      (b[8] & 0x18) >> 3,
		Transmission:       (b[8] & 0x06) >> 1,
		OtherFrequencyFlag: b[8] & 0x01,
	}
}

func (d DescriptorTerrestrial) Tag() byte { return TagTerrestrial }
func (d DescriptorTerrestrial) Size() int { return minSizeTerrestrial }

func (d DescriptorTerrestrial) Append(dst []byte) []byte {
	dst = append(dst, TagTerrestrial, minSizeTerrestrial-2)
	var freq [4]byte
	bits.PutU32(freq[:], d.Frequency/10)
	dst = append(dst, freq[:]...)
	dst = append(dst,
		d.Bandwidth<<5|d.Priority<<4|d.TimeSlicing<<3|d.MPEFEC<<2|0x03,
		d.Modulation<<6|d.Hierarchy<<3|d.CodeRateHP,
		d.CodeRateLP<<5|d.GuardInterval<<3|d.Transmission<<1|d.OtherFrequencyFlag,
	)
	var reserved [4]byte
	bits.PutU32(reserved[:], 0xFFFFFFFF)
	return append(dst, reserved[:]...)
}
