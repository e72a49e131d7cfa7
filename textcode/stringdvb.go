/*
NAME
  stringdvb.go

DESCRIPTION
  Package textcode implements DVB-encoded strings (ETSI EN 300 468 Annex
  A): a code-page selector byte (or none, for the default ISO 6937 table)
  followed by the encoded text body. Decoding auto-detects the code page
  from the selector byte; encoding emits the selector appropriate to the
  requested code page.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package textcode implements DVB-encoded strings (StringDVB): code-page
// tagged byte strings used throughout PSI text fields.
package textcode

import (
	"golang.org/x/text/encoding/charmap"
)

// Code page identifiers, per ETSI EN 300 468 Annex A.
const (
	ISO6937 = 0
	// 1..16 select ISO 8859-N, N = code page - 0.
	UTF8 = 21
)

// StringDVB is a DVB text field: a code page selector and the exact
// on-wire bytes that follow it (excluding the selector prefix itself).
type StringDVB struct {
	CodePage int
	Bytes    []byte
}

// codepages maps a code page number (1..16) to its ISO 8859-N charmap.
// Code pages 11 and 12 have no ISO 8859 assignment and are left nil;
// decoding such a page falls back to '?' for every byte.
var codepages = map[int]*charmap.Charmap{
	1:  charmap.ISO8859_1,
	2:  charmap.ISO8859_2,
	3:  charmap.ISO8859_3,
	4:  charmap.ISO8859_4,
	5:  charmap.ISO8859_5,
	6:  charmap.ISO8859_6,
	7:  charmap.ISO8859_7,
	8:  charmap.ISO8859_8,
	9:  charmap.ISO8859_9,
	10: charmap.ISO8859_10,
	13: charmap.ISO8859_13,
	14: charmap.ISO8859_14,
	15: charmap.ISO8859_15,
	16: charmap.ISO8859_16,
}

// reverse maps, built lazily per code page, from rune to its 0xA0-0xFF
// byte in that code page.
var reverse = map[int]map[rune]byte{}

func reverseFor(page int) map[rune]byte {
	if m, ok := reverse[page]; ok {
		return m
	}
	cm := codepages[page]
	m := make(map[rune]byte)
	if cm != nil {
		for b := 0xA0; b <= 0xFF; b++ {
			r := cm.DecodeByte(byte(b))
			if r != 0 {
				m[r] = byte(b)
			}
		}
	}
	reverse[page] = m
	return m
}

// Decode parses a DVB string field, auto-detecting its code page from the
// leading selector byte(s) per ETSI EN 300 468 Annex A.1.
func Decode(raw []byte) StringDVB {
	switch {
	case len(raw) == 0:
		return StringDVB{CodePage: ISO6937, Bytes: nil}
	case raw[0] == 0x15:
		return StringDVB{CodePage: UTF8, Bytes: raw[1:]}
	case raw[0] >= 0x01 && raw[0] <= 0x0F:
		return StringDVB{CodePage: int(raw[0]) + 4, Bytes: raw[1:]}
	case raw[0] == 0x10 && len(raw) >= 3:
		return StringDVB{CodePage: int(raw[2]), Bytes: raw[3:]}
	case raw[0] >= 0x20:
		return StringDVB{CodePage: ISO6937, Bytes: raw}
	default:
		return StringDVB{CodePage: ISO6937, Bytes: []byte{'?'}}
	}
}

// String decodes s to a Go (UTF-8) string, per its code page. Decoding is
// total: bytes with no mapping in the selected code page become '?'.
func (s StringDVB) String() string {
	switch s.CodePage {
	case UTF8:
		return string(s.Bytes)
	case ISO6937:
		return decodeISO6937(s.Bytes)
	default:
		cm := codepages[s.CodePage]
		out := make([]rune, len(s.Bytes))
		for i, b := range s.Bytes {
			if b <= 0x7F {
				out[i] = rune(b)
				continue
			}
			if cm == nil {
				out[i] = '?'
				continue
			}
			r := cm.DecodeByte(b)
			if r == 0 {
				r = '?'
			}
			out[i] = r
		}
		return string(out)
	}
}

// Encode builds a StringDVB for s under the requested code page. Runes
// with no representation in the target code page become '?'.
func Encode(codePage int, s string) StringDVB {
	runes := []rune(s)
	switch codePage {
	case UTF8:
		return StringDVB{CodePage: UTF8, Bytes: []byte(s)}
	case ISO6937:
		return StringDVB{CodePage: ISO6937, Bytes: encodeISO6937(runes)}
	default:
		m := reverseFor(codePage)
		out := make([]byte, len(runes))
		for i, r := range runes {
			if r <= 0x7F {
				out[i] = byte(r)
				continue
			}
			if b, ok := m[r]; ok {
				out[i] = b
			} else {
				out[i] = '?'
			}
		}
		return StringDVB{CodePage: codePage, Bytes: out}
	}
}

// Marshal returns the exact on-wire bytes for s: the code-page selector
// prefix (if any) followed by the raw body.
func (s StringDVB) Marshal() []byte {
	switch {
	case s.CodePage == UTF8:
		out := make([]byte, 0, 1+len(s.Bytes))
		return append(append(out, 0x15), s.Bytes...)
	case s.CodePage == ISO6937:
		return append([]byte(nil), s.Bytes...)
	default:
		out := make([]byte, 0, 3+len(s.Bytes))
		out = append(out, 0x10, 0x00, byte(s.CodePage))
		return append(out, s.Bytes...)
	}
}

// Size returns the on-wire length of s, including any selector prefix.
func (s StringDVB) Size() int {
	return len(s.Marshal())
}

// AssembleSized writes a one-byte length followed by s's on-wire bytes, as
// used by length-prefixed string fields inside descriptors (e.g. short
// event name/text).
func (s StringDVB) AssembleSized() []byte {
	body := s.Marshal()
	out := make([]byte, 1, 1+len(body))
	out[0] = byte(len(body))
	return append(out, body...)
}

// DecodeSized reads a one-byte-length-prefixed DVB string starting at
// raw[0] and returns the decoded value plus the number of bytes consumed.
func DecodeSized(raw []byte) (StringDVB, int) {
	if len(raw) == 0 {
		return StringDVB{}, 0
	}
	n := int(raw[0])
	if 1+n > len(raw) {
		n = len(raw) - 1
	}
	return Decode(raw[1 : 1+n]), 1 + n
}
