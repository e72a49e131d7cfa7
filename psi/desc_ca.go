/*
NAME
  desc_ca.go

DESCRIPTION
  The conditional access descriptor (tag 0x09): identifies the CA system
  and the PID carrying its ECM/EMM stream.

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

const minSizeCA = 6

// DescriptorCA is the conditional access descriptor (ISO/IEC 13818-1
// 2.6.16): CA system ID, the PID of its ECM/EMM stream, and any private
// data that follows.
type DescriptorCA struct {
	CAID bits.PID
	PID  bits.PID
	Data []byte
}

func checkCA(b []byte) bool { return len(b) >= minSizeCA }

func parseCA(b []byte) DescriptorCA {
	return DescriptorCA{
		CAID: bits.PID(bits.U16(b[2:4])),
		PID:  bits.GetPID(b[4:6]),
		Data: append([]byte(nil), b[6:]...),
	}
}

func (d DescriptorCA) Tag() byte { return TagCA }
func (d DescriptorCA) Size() int { return minSizeCA + len(d.Data) }

func (d DescriptorCA) Append(dst []byte) []byte {
	size := d.Size()
	if size-2 > 0xFF {
		return dst
	}
	dst = append(dst, TagCA, byte(size-2))
	var caid [2]byte
	bits.PutU16(caid[:], uint16(d.CAID))
	dst = append(dst, caid[:]...)
	var pid [2]byte
	bits.PutPID(pid[:], d.PID)
	dst = append(dst, pid[:]...)
	return append(dst, d.Data...)
}
