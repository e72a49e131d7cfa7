/*
NAME
  discontinuity_test.go

DESCRIPTION
  discontinuity_test.go provides testing for the DiscontinuityRepairer
  found in discontinuity.go.

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
	"testing"

	"github.com/broadcastkit/mts/psi"
	"github.com/broadcastkit/mts/ts"
)

// patClip returns a single-packet clip leading with a PAT on the given
// continuity counter, as the encoder would emit at the head of a clip.
func patClip(cc int) []byte {
	section := psi.PAT{
		TSID:    1,
		Entries: []psi.PATEntry{{ProgramNumber: 1, PID: PmtPid}},
	}.Assemble()
	pkts, _ := psi.Packetize(section, psi.PATPID, cc)
	return append([]byte(nil), pkts[0][:]...)
}

func flagged(pkt []byte) bool {
	return ts.IsAdaptation(pkt) && pkt[DiscontinuityIndicatorIdx]&DiscontinuityIndicatorMask != 0
}

func TestRepairFlagsDiscontinuity(t *testing.T) {
	dr := NewDiscontinuityRepairer()

	// The first clip establishes continuity state and is left untouched.
	first := patClip(5)
	if err := dr.Repair(first); err != nil {
		t.Fatalf("unexpected error repairing first clip: %v", err)
	}
	if flagged(first) {
		t.Error("first clip should not be flagged")
	}

	// A consecutive clip is also left untouched.
	second := patClip(6)
	if err := dr.Repair(second); err != nil {
		t.Fatalf("unexpected error repairing second clip: %v", err)
	}
	if flagged(second) {
		t.Error("consecutive clip should not be flagged")
	}

	// A clip that skips counters must have its discontinuity indicator
	// set, with an adaptation field spliced in.
	third := patClip(9)
	if err := dr.Repair(third); err != nil {
		t.Fatalf("unexpected error repairing discontinuous clip: %v", err)
	}
	if !flagged(third) {
		t.Error("discontinuous clip should be flagged")
	}
	if !ts.IsSync(third) || ts.PID(third) != psi.PATPID {
		t.Error("repair corrupted the packet header")
	}
}

func TestRepairAfterFailedSend(t *testing.T) {
	dr := NewDiscontinuityRepairer()

	if err := dr.Repair(patClip(0)); err != nil {
		t.Fatalf("unexpected error repairing clip: %v", err)
	}

	// The send of the next clip fails, so its counter is re-expected and
	// the resent clip must pass unflagged.
	if err := dr.Repair(patClip(1)); err != nil {
		t.Fatalf("unexpected error repairing clip: %v", err)
	}
	dr.Failed()

	resent := patClip(1)
	if err := dr.Repair(resent); err != nil {
		t.Fatalf("unexpected error repairing resent clip: %v", err)
	}
	if flagged(resent) {
		t.Error("resent clip should not be flagged after Failed")
	}
}

func TestRepairRejectsNonPATClip(t *testing.T) {
	dr := NewDiscontinuityRepairer()

	short := make([]byte, PacketSize/2)
	if err := dr.Repair(short); err != ErrInvalidLen {
		t.Errorf("got %v for a short clip, want ErrInvalidLen", err)
	}

	media := make([]byte, PacketSize)
	media[0] = 0x47
	ts.SetPID(media, PIDVideo)
	if err := dr.Repair(media); err != ErrNotPSILeading {
		t.Errorf("got %v for a media-led clip, want ErrNotPSILeading", err)
	}
}
