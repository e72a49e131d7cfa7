package psi

import (
	"bytes"
	"testing"

	"github.com/broadcastkit/mts/ts"
)

func TestPacketizeAndReassembleRoundTrip(t *testing.T) {
	pat := PAT{
		TSID: 7,
		Entries: []PATEntry{
			{ProgramNumber: 1, PID: 0x1000},
			{ProgramNumber: 2, PID: 0x1001},
		},
	}
	section := pat.Assemble()

	pkts, nextCC := Packetize(section, PATPID, 3)
	if len(pkts) != 1 {
		t.Fatalf("got %d packets for a small PAT section, want 1", len(pkts))
	}
	if nextCC != 4 {
		t.Errorf("nextCC = %d, want 4", nextCC)
	}

	var r Reassembler
	for _, pkt := range pkts {
		r.Push(pkt[:])
	}
	if !r.Check() {
		t.Fatalf("Reassembler did not accept the packetized section")
	}
	if !bytes.Equal(r.Bytes(), section) {
		t.Errorf("reassembled section does not match original:\ngot:  % x\nwant: % x", r.Bytes(), section)
	}
}

func TestPacketizeMultiPacketSection(t *testing.T) {
	// A PMT with many descriptors so the section spans more than one
	// 188-byte packet and continuation packets (no PUSI) get exercised.
	p := PMT{ProgramNum: 1, PCRPID: 0x100}
	for i := 0; i < 40; i++ {
		p.Streams = append(p.Streams, PMTStream{
			StreamType: 0x1B,
			PID:        0x1000,
			Descriptors: Descriptors{
				RawDescriptor{tag: 0x7F, Data: bytes.Repeat([]byte{0xAB}, 10)},
			},
		})
	}
	section := p.Assemble()
	if len(section) <= ts.PacketSize {
		t.Fatalf("test section is too small to span multiple packets: %d bytes", len(section))
	}

	pkts, _ := Packetize(section, PMTPID, 0)
	if len(pkts) < 2 {
		t.Fatalf("got %d packets, want at least 2 for a %d-byte section", len(pkts), len(section))
	}
	if !ts.IsPUSI(pkts[0][:]) {
		t.Error("first packet should carry PUSI")
	}
	for i, pkt := range pkts[1:] {
		if ts.IsPUSI(pkt[:]) {
			t.Errorf("continuation packet %d unexpectedly carries PUSI", i+1)
		}
	}

	var r Reassembler
	for _, pkt := range pkts {
		r.Push(pkt[:])
	}
	if !r.Check() {
		t.Fatalf("Reassembler did not accept the multi-packet section")
	}
	if !bytes.Equal(r.Bytes(), section) {
		t.Error("reassembled multi-packet section does not match original")
	}
}

// TestSectionCRCToZero checks that the CRC-32 of a whole section,
// including its own trailing CRC, computes to zero.
func TestSectionCRCToZero(t *testing.T) {
	section := PAT{TSID: 1, Entries: []PATEntry{{ProgramNumber: 1, PID: 0x100}}}.Assemble()
	if got := crc32Of(section); got != 0 {
		t.Errorf("CRC over a CRC-terminated section = %#x, want 0", got)
	}
}

// TestPacketizeWrapsCC checks that the continuity counter wraps 15 -> 0
// mid-section and the reassembler still accepts the sequence.
func TestPacketizeWrapsCC(t *testing.T) {
	p := PMT{ProgramNum: 1, PCRPID: 0x100}
	for i := 0; i < 20; i++ {
		p.Streams = append(p.Streams, PMTStream{
			StreamType: 0x1B,
			PID:        0x1000,
			Descriptors: Descriptors{
				RawDescriptor{tag: 0x7F, Data: bytes.Repeat([]byte{0xCD}, 20)},
			},
		})
	}
	section := p.Assemble()

	pkts, nextCC := Packetize(section, PMTPID, 14)
	if len(pkts) < 3 {
		t.Fatalf("need at least 3 packets to cross the CC wrap, got %d", len(pkts))
	}
	if got := ts.CC(pkts[0][:]); got != 14 {
		t.Errorf("first CC = %d, want 14", got)
	}
	if got := ts.CC(pkts[2][:]); got != 0 {
		t.Errorf("third CC = %d, want 0 after wrap", got)
	}
	if want := (14 + len(pkts)) & 0x0F; nextCC != want {
		t.Errorf("nextCC = %d, want %d", nextCC, want)
	}

	var r Reassembler
	for _, pkt := range pkts {
		r.Push(pkt[:])
	}
	if !r.Check() {
		t.Fatal("Reassembler rejected a section whose CC wrapped")
	}
	if !bytes.Equal(r.Bytes(), section) {
		t.Error("reassembled section does not match original across the CC wrap")
	}
}

// TestReassemblerBackToBackSections feeds two consecutive sections on the
// same PID and checks the second replaces the first after its PUSI.
func TestReassemblerBackToBackSections(t *testing.T) {
	first := PAT{TSID: 1, Entries: []PATEntry{{ProgramNumber: 1, PID: 0x100}}}.Assemble()
	second := PAT{TSID: 2, Version: 1, Entries: []PATEntry{{ProgramNumber: 2, PID: 0x200}}}.Assemble()

	pkts1, cc := Packetize(first, PATPID, 0)
	pkts2, _ := Packetize(second, PATPID, cc)

	var r Reassembler
	for _, pkt := range pkts1 {
		r.Push(pkt[:])
	}
	if !r.Check() || !bytes.Equal(r.Bytes(), first) {
		t.Fatal("first section did not reassemble")
	}
	for _, pkt := range pkts2 {
		r.Push(pkt[:])
	}
	if !r.Check() || !bytes.Equal(r.Bytes(), second) {
		t.Fatal("second section did not replace the first")
	}
}

func TestReassemblerDropsOnDiscontinuity(t *testing.T) {
	pat := PAT{TSID: 1, Entries: []PATEntry{{ProgramNumber: 1, PID: 0x100}}}
	section := pat.Assemble()
	pkts, _ := Packetize(section, PATPID, 0)
	if len(pkts) != 1 {
		t.Fatalf("expected a single-packet section for this test, got %d", len(pkts))
	}

	var r Reassembler
	r.Push(pkts[0][:])
	if !r.Check() {
		t.Fatalf("Reassembler did not accept a well-formed single packet section")
	}

	// Feed the same packet again but with a continuity counter that
	// isn't consecutive; a second PUSI packet should always reset and
	// restart reassembly rather than corrupt the old section.
	second := pkts[0]
	ts.SetCC(second[:], 5)
	r.Push(second[:])
	if !r.Check() {
		t.Fatalf("Reassembler should still accept the fresh PUSI packet after a discontinuity")
	}
	if !bytes.Equal(r.Bytes(), section) {
		t.Error("reassembled section after discontinuity reset does not match original")
	}
}
