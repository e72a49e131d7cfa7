/*
NAME
  descriptor.go

DESCRIPTION
  The polymorphic descriptor framework: a tagged union of the known DVB/
  ISO descriptor variants plus a raw fallback, dispatched on the leading
  tag byte of a tag-length-value (TLV) element.

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

// Descriptor is a single tag-length-value element of a descriptor loop.
// Known variants are parsed into their typed form; anything that fails
// its tag's length check, or that carries an unrecognized tag, is kept
// as RawDescriptor with its body preserved verbatim.
type Descriptor interface {
	// Tag returns the descriptor_tag byte.
	Tag() byte

	// Size returns the on-wire length of the descriptor, including the
	// 2-byte tag/length header.
	Size() int

	// Append writes the descriptor's tag, length, and body to dst and
	// returns the extended slice. A descriptor whose body would exceed
	// 255 bytes is refused (writers never emit an unencodable length)
	// and dst is returned unchanged.
	Append(dst []byte) []byte
}

// Descriptor tags recognized by the framework, per ISO/IEC 13818-1 and
// ETSI EN 300 468.
const (
	TagCA                = 0x09
	TagLanguage          = 0x0A
	TagMaximumBitrate    = 0x0E
	TagNetworkName       = 0x40
	TagServiceList       = 0x41
	TagSatelliteDelivery = 0x43
	TagCableDelivery     = 0x44
	TagService           = 0x48
	TagShortEvent        = 0x4D
	TagExtendedEvent     = 0x4E
	TagStreamIdentifier  = 0x52
	TagLocalTimeOffset   = 0x58
	TagTerrestrial       = 0x5A
	TagLogicalChannel    = 0x83
	TagMetadata          = 0x26 // private, AusOcean-specific; see meta package.
)

// ParseDescriptor parses a single descriptor starting at b[0]. b must
// span exactly the descriptor (2 + length bytes); callers loop via
// ParseDescriptors to carve individual spans out of a loop. A tag with
// no recognized variant, or one whose check() rejects the slice, decodes
// to a RawDescriptor.
func ParseDescriptor(b []byte) Descriptor {
	if len(b) < 2 {
		return RawDescriptor{tag: 0, Data: nil}
	}
	switch b[0] {
	case TagCA:
		if checkCA(b) {
			return parseCA(b)
		}
	case TagLanguage:
		if checkLanguage(b) {
			return parseLanguage(b)
		}
	case TagMaximumBitrate:
		if checkMaximumBitrate(b) {
			return parseMaximumBitrate(b)
		}
	case TagNetworkName:
		if checkNetworkName(b) {
			return parseNetworkName(b)
		}
	case TagServiceList:
		if checkServiceList(b) {
			return parseServiceList(b)
		}
	case TagSatelliteDelivery:
		if checkSatelliteDelivery(b) {
			return parseSatelliteDelivery(b)
		}
	case TagCableDelivery:
		if checkCableDelivery(b) {
			return parseCableDelivery(b)
		}
	case TagService:
		if checkService(b) {
			return parseService(b)
		}
	case TagShortEvent:
		if checkShortEvent(b) {
			return parseShortEvent(b)
		}
	case TagExtendedEvent:
		if checkExtendedEvent(b) {
			return parseExtendedEvent(b)
		}
	case TagStreamIdentifier:
		if checkStreamIdentifier(b) {
			return parseStreamIdentifier(b)
		}
	case TagLocalTimeOffset:
		if checkLocalTimeOffset(b) {
			return parseLocalTimeOffset(b)
		}
	case TagTerrestrial:
		if checkTerrestrial(b) {
			return parseTerrestrial(b)
		}
	case TagLogicalChannel:
		if checkLogicalChannel(b) {
			return parseLogicalChannel(b)
		}
	case TagMetadata:
		return parseMetadata(b)
	}
	return parseRaw(b)
}

// parseRaw builds a RawDescriptor from b, tolerating a declared length
// that overruns the slice by truncating to what is actually present.
func parseRaw(b []byte) RawDescriptor {
	l := int(b[1])
	end := 2 + l
	if end > len(b) {
		end = len(b)
	}
	return RawDescriptor{tag: b[0], Data: append([]byte(nil), b[2:end]...)}
}

// RawDescriptor preserves an unrecognized or malformed descriptor's tag
// and body verbatim, for lossless round-tripping.
type RawDescriptor struct {
	tag  byte
	Data []byte
}

func (d RawDescriptor) Tag() byte { return d.tag }
func (d RawDescriptor) Size() int { return 2 + len(d.Data) }

func (d RawDescriptor) Append(dst []byte) []byte {
	if len(d.Data) > 0xFF {
		return dst
	}
	dst = append(dst, d.tag, byte(len(d.Data)))
	return append(dst, d.Data...)
}

// Descriptors is an ordered list of descriptors, as found in a
// descriptor loop within a table.
type Descriptors []Descriptor

// ParseDescriptors greedily parses every descriptor in b. If a
// descriptor's declared length would overrun b, parsing halts without
// error: the span already consumed is kept and nothing past the bound
// is read.
func ParseDescriptors(b []byte) Descriptors {
	var out Descriptors
	skip := 0
	for len(b) >= skip+2 {
		next := skip + 2 + int(b[skip+1])
		if next > len(b) {
			break
		}
		out = append(out, ParseDescriptor(b[skip:next]))
		skip = next
	}
	return out
}

// Append writes every descriptor in ds to dst in order and returns the
// extended slice.
func (ds Descriptors) Append(dst []byte) []byte {
	for _, d := range ds {
		dst = d.Append(dst)
	}
	return dst
}

// Size returns the total on-wire length of every descriptor in ds.
func (ds Descriptors) Size() int {
	n := 0
	for _, d := range ds {
		n += d.Size()
	}
	return n
}
