/*
NAME
  discontinuity.go

DESCRIPTION
  discontinuity.go provides functionality for flagging continuity counter
  breaks between independently sent clips of MPEG-TS, using the
  discontinuity indicator in the adaptation field of the first packet of
  the clip following a break.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package mts

import (
	"github.com/Comcast/gots/v2/packet"
	"github.com/pkg/errors"

	"github.com/broadcastkit/mts/bits"
	"github.com/broadcastkit/mts/ts"
)

// unknownCC marks a PID whose continuity counter has not been observed
// yet; a 4-bit counter can never hold it.
const unknownCC = 16

// ErrNotPSILeading is returned by Repair when a clip does not lead with
// a PAT packet.
var ErrNotPSILeading = errors.New("clip to repair must lead with a PAT packet")

// DiscontinuityRepairer tracks the continuity counter expected of the
// leading PAT packet of each clip sent to a destination, so that when a
// send fails and a clip is lost, the next clip can be marked
// discontinuous rather than leaving a silent continuity error in the
// stream.
type DiscontinuityRepairer struct {
	expCC map[bits.PID]int
}

// NewDiscontinuityRepairer returns a pointer to a new
// DiscontinuityRepairer with no observed continuity state.
func NewDiscontinuityRepairer() *DiscontinuityRepairer {
	return &DiscontinuityRepairer{
		expCC: map[bits.PID]int{bits.PID(PatPid): unknownCC},
	}
}

// Failed is to be called in the case of a failed send. This rolls the
// expected counter back so that it aligns with the resent clip's CC.
func (dr *DiscontinuityRepairer) Failed() {
	dr.decExpectedCC(bits.PID(PatPid))
}

// Repair inspects the leading PAT packet of the MPEG-TS clip d. If its
// continuity counter does not follow the previously repaired clip, the
// packet's discontinuity indicator is set, splicing in an adaptation
// field if the packet has none.
func (dr *DiscontinuityRepairer) Repair(d []byte) error {
	if len(d) < PacketSize {
		return ErrInvalidLen
	}
	pkt := d[:PacketSize]
	pid := ts.PID(pkt)
	if pid != bits.PID(PatPid) {
		return ErrNotPSILeading
	}

	cc := ts.CC(pkt)
	expect, known := dr.ExpectedCC(pid)
	if known && cc != expect {
		if err := flagDiscontinuity(pkt); err != nil {
			return err
		}
	}
	if !known || cc != expect {
		dr.SetExpectedCC(pid, cc)
	}
	dr.IncExpectedCC(pid)
	return nil
}

// flagDiscontinuity sets the discontinuity indicator of pkt, adding an
// adaptation field when none is present.
func flagDiscontinuity(pkt []byte) error {
	if ts.AdaptationSize(pkt) > 0 {
		pkt[DiscontinuityIndicatorIdx] |= DiscontinuityIndicatorMask
		return nil
	}
	var p packet.Packet
	copy(p[:], pkt)
	err := addAdaptationField(&p, DiscontinuityIndicator(true))
	if err != nil {
		return err
	}
	copy(pkt, p[:])
	return nil
}

// ExpectedCC returns the expected continuity counter for pid. If no
// counter has been observed for pid yet, false is returned.
func (dr *DiscontinuityRepairer) ExpectedCC(pid bits.PID) (int, bool) {
	cc, ok := dr.expCC[pid]
	if !ok || cc == unknownCC {
		return unknownCC, false
	}
	return cc, true
}

// IncExpectedCC increments the expected continuity counter for pid over
// the 4-bit ring.
func (dr *DiscontinuityRepairer) IncExpectedCC(pid bits.PID) {
	if cc, ok := dr.ExpectedCC(pid); ok {
		dr.expCC[pid] = (cc + 1) & 0x0F
	}
}

// decExpectedCC decrements the expected continuity counter for pid over
// the 4-bit ring.
func (dr *DiscontinuityRepairer) decExpectedCC(pid bits.PID) {
	if cc, ok := dr.ExpectedCC(pid); ok {
		dr.expCC[pid] = (cc - 1) & 0x0F
	}
}

// SetExpectedCC sets the expected continuity counter for pid.
func (dr *DiscontinuityRepairer) SetExpectedCC(pid bits.PID, cc int) {
	dr.expCC[pid] = cc & 0x0F
}
