package psi

import (
	"bytes"
	"testing"
)

// tdtSection is a TDT carrying 2019-01-09 18:10:12 UTC (1547057412).
var tdtSection = []byte{0x70, 0x70, 0x05, 0xE4, 0x7C, 0x18, 0x10, 0x12}

func TestParseTDT(t *testing.T) {
	pkts, _ := Packetize(tdtSection, TDTPID, 0)
	if len(pkts) != 1 {
		t.Fatalf("got %d packets for an 8-byte TDT, want 1", len(pkts))
	}

	var r Reassembler
	r.Push(pkts[0][:])
	if !r.Check() {
		t.Fatal("Reassembler did not accept the TDT section")
	}

	section := r.Bytes()
	if !CheckTDT(section) {
		t.Fatal("CheckTDT rejected a well-formed TDT")
	}
	tdt := ParseTDT(section)
	if tdt.Time != 1547057412 {
		t.Errorf("Time = %d, want 1547057412", tdt.Time)
	}
}

func TestAssembleTDT(t *testing.T) {
	got := TDT{Time: 1547057412}.Assemble()
	if !bytes.Equal(got, tdtSection) {
		t.Errorf("Assemble() = % x, want % x", got, tdtSection)
	}
}

func TestCheckTDTRejectsLongSection(t *testing.T) {
	bad := append(append([]byte(nil), tdtSection...), 0x00)
	if CheckTDT(bad) {
		t.Error("CheckTDT accepted a 9-byte section")
	}
}
