package ts

import "testing"

// TestPCR checks the literal packet header used as the PCR accessor
// reference scenario: is_pcr must be true and get_pcr must recover
// 86405647.
func TestPCR(t *testing.T) {
	p := make([]byte, PacketSize)
	hdr := []byte{0x47, 0x01, 0x00, 0x20, 0xB7, 0x10, 0x00, 0x02, 0x32, 0x89, 0x7E, 0xF7}
	copy(p, hdr)

	if !IsPCR(p) {
		t.Fatal("expected IsPCR to be true")
	}
	got := GetPCR(p)
	want := uint64(86405647)
	if got != want {
		t.Errorf("GetPCR() = %d, want %d", got, want)
	}
}

// TestSetPCRRoundTrip checks invariant 2: set_pcr(get_pcr(p)) is a no-op,
// and for any value in range, get_pcr(set_pcr(p, v)) == v.
func TestSetPCRRoundTrip(t *testing.T) {
	p := make([]byte, PacketSize)
	hdr := []byte{0x47, 0x01, 0x00, 0x20, 0xB7, 0x10, 0x00, 0x02, 0x32, 0x89, 0x7E, 0xF7}
	copy(p, hdr)

	before := append([]byte(nil), p[6:12]...)
	SetPCR(p, GetPCR(p))
	if string(before) != string(p[6:12]) {
		t.Errorf("SetPCR(GetPCR(p)) changed bytes 6..12: got %x, want %x", p[6:12], before)
	}

	for _, v := range []uint64{0, 1, 86405647, Max - 1} {
		SetPCR(p, v)
		if got := GetPCR(p); got != v {
			t.Errorf("GetPCR(SetPCR(p, %d)) = %d, want %d", v, got, v)
		}
	}
}

func TestIsSync(t *testing.T) {
	p := make([]byte, PacketSize)
	p[0] = 0x47
	if !IsSync(p) {
		t.Error("expected sync byte to be recognized")
	}
	p[0] = 0x00
	if IsSync(p) {
		t.Error("expected non-sync byte to be rejected")
	}
}

func TestPIDRoundTrip(t *testing.T) {
	p := make([]byte, PacketSize)
	p[0] = 0x47
	const want = 0x1ABC & 0x1FFF
	SetPID(p, want)
	if got := PID(p); got != want {
		t.Errorf("PID() = %#x, want %#x", got, want)
	}
}
