package textcode

// iso6937Single maps the non-combining single-byte ISO/IEC 6937 code
// points in the 0xA0-0xFF range (currency, punctuation, and a handful of
// precomposed letters) to Unicode. Bytes not present here that fall in
// 0xC1-0xCF are diacritical accent marks combined with the following base
// letter; anything else outside of 7-bit ASCII decodes to '?'.
var iso6937Single = map[byte]rune{
	0xA0: 0x00A0, // NBSP
	0xA8: 0x00A4, // currency sign
	0xA9: 0x2018, // left single quote
	0xAA: 0x201C, // left double quote
	0xAF: 0x00AF, // macron
	0xB0: 0x00B0, // degree
	0xB1: 0x00B1, // plus-minus
	0xB2: 0x00BD, // one half (approx placement)
	0xB4: 0x00D7, // multiplication sign
	0xB8: 0x00F7, // division sign
	0xB9: 0x2019, // right single quote
	0xBA: 0x201D, // right double quote
	0xE0: 0x2014, // em dash
	0xE1: 0x00B9, // superscript one (approx placement)
	0xE2: 0x00AE, // registered
	0xE3: 0x00A9, // copyright
	0xE4: 0x2122, // trademark
	0xE5: 0x266A, // eighth note
	0xE6: 0x00AC, // not sign
	0xE7: 0x00A6, // broken bar
}

// iso6937Accent maps ISO 6937 combining-accent lead bytes (0xC1-0xCF) to
// the combining Unicode diacritic applied to the following base letter.
var iso6937Accent = map[byte]rune{
	0xC1: 0x0300, // grave
	0xC2: 0x0301, // acute
	0xC3: 0x0302, // circumflex
	0xC4: 0x0303, // tilde
	0xC5: 0x0304, // macron
	0xC6: 0x0306, // breve
	0xC7: 0x0307, // dot above
	0xC8: 0x0308, // diaeresis
	0xCA: 0x030A, // ring above
	0xCB: 0x0327, // cedilla
	0xCD: 0x030B, // double acute
	0xCE: 0x0328, // ogonek
	0xCF: 0x030C, // caron
}

// decodeISO6937 decodes a full ISO/IEC 6937 byte buffer to a Go string.
// 7-bit ASCII passes straight through; recognized single-byte and
// accent+base sequences above 0xA0 are mapped; everything else decodes
// to '?'.
func decodeISO6937(b []byte) string {
	out := make([]rune, 0, len(b))
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c <= 0x7F:
			out = append(out, rune(c))
		case iso6937Accent[c] != 0:
			accent := iso6937Accent[c]
			if i+1 < len(b) && b[i+1] <= 0x7F {
				out = append(out, rune(b[i+1]), accent)
				i++
			} else {
				out = append(out, '?')
			}
		case iso6937Single[c] != 0:
			out = append(out, iso6937Single[c])
		default:
			out = append(out, '?')
		}
	}
	return string(out)
}

// encodeISO6937 encodes runes to ISO/IEC 6937 bytes. Only 7-bit ASCII and
// the single-byte specials in iso6937Single round-trip; anything else
// becomes '?'.
func encodeISO6937(runes []rune) []byte {
	out := make([]byte, 0, len(runes))
	for _, r := range runes {
		if r <= 0x7F {
			out = append(out, byte(r))
			continue
		}
		found := false
		for b, rr := range iso6937Single {
			if rr == r {
				out = append(out, b)
				found = true
				break
			}
		}
		if !found {
			out = append(out, '?')
		}
	}
	return out
}
