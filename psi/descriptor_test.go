package psi

import (
	"bytes"
	"testing"
)

func TestParseDescriptorRaw(t *testing.T) {
	b := []byte{0x7F, 0x03, 0x01, 0x02, 0x03}
	d := ParseDescriptor(b)
	raw, ok := d.(RawDescriptor)
	if !ok {
		t.Fatalf("got %T, want RawDescriptor", d)
	}
	if raw.Tag() != 0x7F {
		t.Errorf("Tag() = %#x, want 0x7f", raw.Tag())
	}
	if !bytes.Equal(raw.Data, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("Data = % x, want 01 02 03", raw.Data)
	}
	if raw.Size() != len(b) {
		t.Errorf("Size() = %d, want %d", raw.Size(), len(b))
	}
}

func TestParseDescriptorRawOverrun(t *testing.T) {
	// Declared length (5) overruns what's actually present; parseRaw
	// should truncate rather than panic.
	b := []byte{0x7F, 0x05, 0x01, 0x02}
	d := ParseDescriptor(b)
	raw := d.(RawDescriptor)
	if !bytes.Equal(raw.Data, []byte{0x01, 0x02}) {
		t.Errorf("Data = % x, want 01 02", raw.Data)
	}
}

func TestRawDescriptorAppendRoundTrip(t *testing.T) {
	want := RawDescriptor{tag: 0x7F, Data: []byte{0xAA, 0xBB}}
	b := want.Append(nil)
	got := ParseDescriptor(b).(RawDescriptor)
	if got.Tag() != want.Tag() || !bytes.Equal(got.Data, want.Data) {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestRawDescriptorAppendRefusesOversize(t *testing.T) {
	d := RawDescriptor{tag: 0x7F, Data: make([]byte, 0x100)}
	got := d.Append([]byte("x"))
	if string(got) != "x" {
		t.Errorf("Append() on oversize body should leave dst untouched, got % x", got)
	}
}

func TestParseDescriptorsStopsAtOverrun(t *testing.T) {
	// First descriptor is well formed; second declares a length that
	// overruns the slice and should halt parsing without consuming it.
	b := []byte{
		0x7F, 0x01, 0xAA,
		0x7E, 0x05, 0x01, 0x02,
	}
	ds := ParseDescriptors(b)
	if len(ds) != 1 {
		t.Fatalf("got %d descriptors, want 1", len(ds))
	}
	if ds[0].Tag() != 0x7F {
		t.Errorf("Tag() = %#x, want 0x7f", ds[0].Tag())
	}
}

func TestDescriptorsAppendAndSize(t *testing.T) {
	ds := Descriptors{
		RawDescriptor{tag: 0x7F, Data: []byte{0x01}},
		RawDescriptor{tag: 0x7E, Data: []byte{0x02, 0x03}},
	}
	want := 2 + 1 + 2 + 2
	if got := ds.Size(); got != want {
		t.Errorf("Size() = %d, want %d", got, want)
	}
	b := ds.Append(nil)
	if len(b) != want {
		t.Errorf("len(Append(nil)) = %d, want %d", len(b), want)
	}
	reparsed := ParseDescriptors(b)
	if len(reparsed) != len(ds) {
		t.Fatalf("round trip: got %d descriptors, want %d", len(reparsed), len(ds))
	}
}

func TestParseDescriptorShortInput(t *testing.T) {
	d := ParseDescriptor([]byte{0x7F})
	raw, ok := d.(RawDescriptor)
	if !ok {
		t.Fatalf("got %T, want RawDescriptor", d)
	}
	if raw.Tag() != 0 || raw.Data != nil {
		t.Errorf("got %+v, want zero value RawDescriptor", raw)
	}
}
