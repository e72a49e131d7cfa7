/*
NAME
  desc_metadata.go

DESCRIPTION
  The metadata descriptor (tag 0x26): a private descriptor carrying an
  AusOcean metadata blob (see package meta) inline in a PMT's program
  info or a stream's ES info.

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

import "github.com/broadcastkit/mts/meta"

// DescriptorMetadata carries a meta.Data-encoded blob. It has no
// check(): the tag is private, so any body is accepted and preserved
// verbatim.
type DescriptorMetadata struct {
	Data []byte
}

// NewMetadataDescriptor wraps m's encoded form for inclusion in a
// descriptor loop.
func NewMetadataDescriptor(m *meta.Data) DescriptorMetadata {
	return DescriptorMetadata{Data: append([]byte(nil), m.Encode()...)}
}

func parseMetadata(b []byte) DescriptorMetadata {
	end := 2 + int(b[1])
	if end > len(b) {
		end = len(b)
	}
	return DescriptorMetadata{Data: append([]byte(nil), b[2:end]...)}
}

// Keys returns the metadata's keys, in encounter order.
func (d DescriptorMetadata) Keys() ([]string, error) { return meta.Keys(d.Data) }

// Get returns the value stored under key.
func (d DescriptorMetadata) Get(key string) (string, error) { return meta.Get(key, d.Data) }

// All returns the metadata as key/value pairs, in encounter order.
func (d DescriptorMetadata) All() ([][2]string, error) { return meta.GetAll(d.Data) }

func (d DescriptorMetadata) Tag() byte { return TagMetadata }
func (d DescriptorMetadata) Size() int { return 2 + len(d.Data) }

func (d DescriptorMetadata) Append(dst []byte) []byte {
	if len(d.Data) > 0xFF {
		return dst
	}
	dst = append(dst, TagMetadata, byte(len(d.Data)))
	return append(dst, d.Data...)
}
