package psi

import (
	"testing"

	"github.com/broadcastkit/mts/textcode"
)

func TestNITRoundTrip(t *testing.T) {
	want := NIT{
		TableID:   TableIDNITActual,
		Version:   3,
		NetworkID: 1,
		Descriptors: Descriptors{
			DescriptorNetworkName{Name: textcode.Encode(textcode.ISO6937, "Example Net")},
		},
		Transports: []NITTransport{{
			TSID:      1,
			OrigNetID: 1,
			Descriptors: Descriptors{
				DescriptorSatelliteDelivery{
					Frequency:       12380000,
					OrbitalPosition: 780,
					WestEastFlag:    PositionEast,
					Polarization:    1,
					Modulation:      1,
					SymbolRate:      27500,
					FEC:             3,
				},
				DescriptorServiceList{
					Items: []ServiceListItem{{ServiceID: 8581, ServiceType: 1}, {ServiceID: 8582, ServiceType: 1}},
				},
			},
		}},
	}

	sections := want.Assemble()
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	section := sections[0]
	if !CheckNIT(section) {
		t.Fatal("Assemble produced a section that fails CheckNIT")
	}

	got := ParseNIT(section)
	if got.NetworkID != 1 || got.Version != 3 {
		t.Errorf("network_id/version = %d/%d, want 1/3", got.NetworkID, got.Version)
	}
	name, ok := got.Descriptors[0].(DescriptorNetworkName)
	if !ok {
		t.Fatalf("network descriptor is %T, want DescriptorNetworkName", got.Descriptors[0])
	}
	if name.Name.String() != "Example Net" {
		t.Errorf("network name = %q", name.Name.String())
	}
	if len(got.Transports) != 1 {
		t.Fatalf("got %d transports, want 1", len(got.Transports))
	}
	tr := got.Transports[0]
	if tr.TSID != 1 || tr.OrigNetID != 1 {
		t.Errorf("transport ids = %d/%d, want 1/1", tr.TSID, tr.OrigNetID)
	}
	sat, ok := tr.Descriptors[0].(DescriptorSatelliteDelivery)
	if !ok {
		t.Fatalf("transport descriptor 0 is %T, want DescriptorSatelliteDelivery", tr.Descriptors[0])
	}
	if sat.Frequency != 12380000 || sat.SymbolRate != 27500 {
		t.Errorf("satellite tuning = %d/%d, want 12380000/27500", sat.Frequency, sat.SymbolRate)
	}
	list, ok := tr.Descriptors[1].(DescriptorServiceList)
	if !ok {
		t.Fatalf("transport descriptor 1 is %T, want DescriptorServiceList", tr.Descriptors[1])
	}
	if len(list.Items) != 2 || list.Items[0].ServiceID != 8581 {
		t.Errorf("service list = %+v", list.Items)
	}
}

// TestNITMultiSection checks that enough transports to overflow the
// 1024-byte short-form budget split across sections, with the network
// descriptor loop carried only on the first.
func TestNITMultiSection(t *testing.T) {
	nit := NIT{
		TableID:   TableIDNITActual,
		NetworkID: 100,
		Descriptors: Descriptors{
			DescriptorNetworkName{Name: textcode.Encode(textcode.ISO6937, "Big Net")},
		},
	}
	const transports = 30
	for i := 0; i < transports; i++ {
		var items []ServiceListItem
		for j := 0; j < 16; j++ {
			items = append(items, ServiceListItem{ServiceID: uint16(i*100 + j), ServiceType: 1})
		}
		nit.Transports = append(nit.Transports, NITTransport{
			TSID:        uint16(i + 1),
			OrigNetID:   100,
			Descriptors: Descriptors{DescriptorServiceList{Items: items}},
		})
	}

	sections := nit.Assemble()
	if len(sections) < 2 {
		t.Fatalf("got %d sections, want at least 2", len(sections))
	}

	total := 0
	last := byte(len(sections) - 1)
	for i, section := range sections {
		if len(section) > 1024 {
			t.Errorf("section %d is %d bytes, over the 1024 cap", i, len(section))
		}
		if section[6] != byte(i) || section[7] != last {
			t.Errorf("section %d: numbering = %d/%d, want %d/%d", i, section[6], section[7], i, last)
		}
		if !CheckNIT(section) {
			t.Errorf("section %d fails CheckNIT", i)
		}
		parsed := ParseNIT(section)
		if i == 0 {
			if len(parsed.Descriptors) != 1 {
				t.Errorf("first section should carry the network descriptors, got %d", len(parsed.Descriptors))
			}
		} else if len(parsed.Descriptors) != 0 {
			t.Errorf("section %d should carry no network descriptors, got %d", i, len(parsed.Descriptors))
		}
		total += len(parsed.Transports)
	}
	if total != transports {
		t.Errorf("transports across sections = %d, want %d", total, transports)
	}
}
