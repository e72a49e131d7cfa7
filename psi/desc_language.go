/*
NAME
  desc_language.go

DESCRIPTION
  The ISO 639 language descriptor (tag 0x0A): one or more (language code,
  audio type) pairs for the associated program element.

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

import "github.com/broadcastkit/mts/textcode"

const minSizeLanguage = 2

// LanguageItem pairs a 3-character ISO 639 language code with its
// audio_type byte.
type LanguageItem struct {
	Language  textcode.StringDVB
	AudioType byte
}

// DescriptorLanguage is the ISO 639 language descriptor (ISO/IEC
// 13818-1 2.6.18).
type DescriptorLanguage struct {
	Items []LanguageItem
}

func checkLanguage(b []byte) bool {
	return len(b) >= minSizeLanguage && (len(b)-2)%4 == 0
}

func parseLanguage(b []byte) DescriptorLanguage {
	var d DescriptorLanguage
	skip := 2
	for len(b) > skip {
		d.Items = append(d.Items, LanguageItem{
			Language:  textcode.Decode(b[skip : skip+3]),
			AudioType: b[skip+3],
		})
		skip += 4
	}
	return d
}

func (d DescriptorLanguage) Tag() byte { return TagLanguage }
func (d DescriptorLanguage) Size() int { return minSizeLanguage + len(d.Items)*4 }

func (d DescriptorLanguage) Append(dst []byte) []byte {
	size := d.Size()
	if size-2 > 0xFF {
		return dst
	}
	dst = append(dst, TagLanguage, byte(size-2))
	for _, item := range d.Items {
		dst = append(dst, item.Language.Marshal()...)
		dst = append(dst, item.AudioType)
	}
	return dst
}
