package psi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPATRoundTrip(t *testing.T) {
	want := PAT{
		Version: 3,
		TSID:    1,
		Entries: []PATEntry{
			{ProgramNumber: 0, PID: 0x0010}, // network PID
			{ProgramNumber: 1, PID: 0x1000},
			{ProgramNumber: 2, PID: 0x1001},
		},
	}

	section := want.Assemble()
	if !CheckPAT(section) {
		t.Fatalf("Assemble produced a section that fails CheckPAT")
	}

	got := ParsePAT(section)
	if got.TSID != want.TSID || got.Version != want.Version {
		t.Errorf("got tsid=%d version=%d, want tsid=%d version=%d", got.TSID, got.Version, want.TSID, want.Version)
	}
	if diff := cmp.Diff(want.Entries, got.Entries); diff != "" {
		t.Errorf("unexpected entries (-want +got):\n%s", diff)
	}
}

// TestPATSevenPrograms serializes a seven-entry PAT into a single TS
// packet on PID 0 starting at CC 0, and recovers every entry in order.
func TestPATSevenPrograms(t *testing.T) {
	want := PAT{
		Version: 1,
		TSID:    1,
		Entries: []PATEntry{
			{ProgramNumber: 0, PID: 16},
			{ProgramNumber: 1, PID: 1031},
			{ProgramNumber: 2, PID: 1032},
			{ProgramNumber: 3, PID: 1033},
			{ProgramNumber: 4, PID: 1034},
			{ProgramNumber: 5, PID: 1035},
			{ProgramNumber: 6, PID: 1036},
		},
	}

	pkts, nextCC := Packetize(want.Assemble(), PATPID, 0)
	if len(pkts) != 1 {
		t.Fatalf("got %d packets, want 1", len(pkts))
	}
	if nextCC != 1 {
		t.Errorf("nextCC = %d, want 1", nextCC)
	}

	var r Reassembler
	r.Push(pkts[0][:])
	if !r.Check() {
		t.Fatal("Reassembler did not accept the PAT packet")
	}
	got := ParsePAT(r.Bytes())
	if got.TSID != 1 || got.Version != 1 {
		t.Errorf("tsid/version = %d/%d, want 1/1", got.TSID, got.Version)
	}
	if diff := cmp.Diff(want.Entries, got.Entries); diff != "" {
		t.Errorf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestCheckPATRejectsCorruptSection(t *testing.T) {
	section := PAT{TSID: 1, Entries: []PATEntry{{ProgramNumber: 1, PID: 0x100}}}.Assemble()
	section[len(section)-1] ^= 0xFF // flip a CRC byte
	if CheckPAT(section) {
		t.Error("CheckPAT accepted a section with a corrupted CRC")
	}
}

func TestCheckPATRejectsWrongTableID(t *testing.T) {
	section := PMT{ProgramNum: 1, PCRPID: 0x100}.Assemble()
	if CheckPAT(section) {
		t.Error("CheckPAT accepted a PMT section")
	}
}
