package psi

import (
	"testing"

	"github.com/broadcastkit/mts/bits"
)

func TestPMTRoundTrip(t *testing.T) {
	want := PMT{
		Version:    1,
		ProgramNum: 1,
		PCRPID:     0x1000,
		Descriptors: Descriptors{
			RawDescriptor{tag: 0x7F, Data: []byte{0x01, 0x02}},
		},
		Streams: []PMTStream{
			{StreamType: 0x1B, PID: 0x1000}, // H.264 video
			{
				StreamType: 0x0F, // AAC audio
				PID:        0x1001,
				Descriptors: Descriptors{
					RawDescriptor{tag: 0x0A, Data: []byte("eng")},
				},
			},
		},
	}

	section := want.Assemble()
	if !CheckPMT(section) {
		t.Fatalf("Assemble produced a section that fails CheckPMT")
	}

	got := ParsePMT(section)
	if got.ProgramNum != want.ProgramNum || got.Version != want.Version || got.PCRPID != want.PCRPID {
		t.Errorf("got %+v, want program/version/pcr to match %+v", got, want)
	}
	if len(got.Descriptors) != len(want.Descriptors) {
		t.Fatalf("got %d program descriptors, want %d", len(got.Descriptors), len(want.Descriptors))
	}
	if len(got.Streams) != len(want.Streams) {
		t.Fatalf("got %d streams, want %d", len(got.Streams), len(want.Streams))
	}
	for i, s := range want.Streams {
		gs := got.Streams[i]
		if gs.StreamType != s.StreamType || gs.PID != s.PID {
			t.Errorf("stream %d: got %+v, want %+v", i, gs, s)
		}
		if len(gs.Descriptors) != len(s.Descriptors) {
			t.Errorf("stream %d: got %d descriptors, want %d", i, len(gs.Descriptors), len(s.Descriptors))
		}
	}
}

func TestCheckPMTRejectsCorruptSection(t *testing.T) {
	section := PMT{ProgramNum: 1, PCRPID: 0x100}.Assemble()
	section[len(section)-1] ^= 0xFF
	if CheckPMT(section) {
		t.Error("CheckPMT accepted a section with a corrupted CRC")
	}
}

func TestPMTAssembleDropsOversizeStreamLoop(t *testing.T) {
	p := PMT{ProgramNum: 1, PCRPID: 0x100}
	// Each entry is small; add far more than could ever fit a single
	// long-form section so Assemble's budget check is exercised.
	for i := 0; i < 1000; i++ {
		p.Streams = append(p.Streams, PMTStream{StreamType: 0x1B, PID: bitsPIDFor(i)})
	}
	section := p.Assemble()
	if !CheckPMT(section) {
		t.Fatalf("Assemble produced an invalid section when truncating the stream loop")
	}
	got := ParsePMT(section)
	if len(got.Streams) >= len(p.Streams) {
		t.Errorf("expected Assemble to drop streams past the section budget, got %d of %d", len(got.Streams), len(p.Streams))
	}
}

func bitsPIDFor(i int) bits.PID { return bits.PID(0x100 + i%0x1000) }
