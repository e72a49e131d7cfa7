/*
NAME
  desc_streamid.go

DESCRIPTION
  The stream identifier descriptor (tag 0x52): labels a PMT component
  stream so it can be cross-referenced from e.g. an EIT component
  descriptor.

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

const minSizeStreamIdentifier = 3

// DescriptorStreamIdentifier is the stream identifier descriptor (ETSI
// EN 300 468 6.2.39).
type DescriptorStreamIdentifier struct {
	ComponentTag byte
}

func checkStreamIdentifier(b []byte) bool { return len(b) == minSizeStreamIdentifier }

func parseStreamIdentifier(b []byte) DescriptorStreamIdentifier {
	return DescriptorStreamIdentifier{ComponentTag: b[2]}
}

func (d DescriptorStreamIdentifier) Tag() byte { return TagStreamIdentifier }
func (d DescriptorStreamIdentifier) Size() int { return minSizeStreamIdentifier }

func (d DescriptorStreamIdentifier) Append(dst []byte) []byte {
	return append(dst, TagStreamIdentifier, minSizeStreamIdentifier-2, d.ComponentTag)
}
