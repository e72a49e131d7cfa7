/*
NAME
  section.go

DESCRIPTION
  Package psi's section engine: a continuity-counter state machine that
  reassembles PSI sections spread across TS packets (the "mux" direction,
  in the source's terminology) and a packetizer that splits a finished
  section back into TS packets with correct stuffing and continuity (the
  "demux" direction).

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

import (
	"github.com/broadcastkit/mts/bits"
	"github.com/broadcastkit/mts/ts"
)

// MaxSectionLen is the largest PSI section the reassembler will accept
// (long-form sections, 12-bit length field: 3 header bytes + up to 4093).
const MaxSectionLen = 4096

// maxBufferLen is the reassembly buffer's headroom: a full section plus
// one TS packet's worth of payload, so a single Push never needs more
// than one grow.
const maxBufferLen = MaxSectionLen + 184

// Reassembler accumulates one PSI section at a time for a single PID. The
// zero value is ready to use. A Reassembler is not safe for concurrent
// use; the caller is expected to keep one instance per PID and feed it
// packets in arrival order.
type Reassembler struct {
	buf  []byte
	size int
	cc   int
	seen bool
}

// Reset discards any in-flight section and continuity state.
func (r *Reassembler) Reset() {
	r.buf = r.buf[:0]
	r.size = 0
	r.seen = false
}

// append grows the buffer and learns size from the section header as soon
// as three bytes are available.
func (r *Reassembler) append(p []byte) {
	r.buf = append(r.buf, p...)
	if r.size == 0 && len(r.buf) >= 3 {
		r.size = 3 + int(bits.Len12(r.buf[1:3]))
	}
}

// Push feeds one 188-byte TS packet into the reassembler. Non-payload
// packets, packets whose payload offset overruns the packet, and
// continuity discontinuities are silently absorbed per §4.6: the
// in-flight section is dropped and reassembly resumes at the next PUSI.
func (r *Reassembler) Push(packet []byte) {
	if !ts.IsPayload(packet) {
		return
	}
	offset := ts.PayloadOffset(packet)
	if offset >= ts.PacketSize {
		r.Reset()
		return
	}
	cc := ts.CC(packet)

	if ts.IsPUSI(packet) {
		pointer := int(packet[offset])
		if pointer >= 183 {
			r.Reset()
			return
		}
		offset++

		if pointer == 0 || !r.consecutive(cc) {
			r.Reset()
		}

		if len(r.buf) == 0 {
			r.append(packet[offset+pointer : ts.PacketSize])
			if r.size != 0 && len(r.buf) > r.size {
				r.buf = r.buf[:r.size]
			}
		} else {
			// The buffer's front section has been consumed; drain it and
			// keep any trailing bytes, which begin the next section.
			if r.size != 0 && len(r.buf) > r.size {
				r.buf = append(r.buf[:0], r.buf[r.size:]...)
				r.size = 0
				if len(r.buf) >= 3 {
					r.size = 3 + int(bits.Len12(r.buf[1:3]))
				}
			}
			r.append(packet[offset:ts.PacketSize])
		}
	} else {
		if !r.consecutive(cc) {
			r.Reset()
			return
		}
		r.append(packet[offset:ts.PacketSize])
		if r.size != 0 && len(r.buf) > r.size {
			r.buf = r.buf[:r.size]
		}
	}

	r.cc = cc
	r.seen = true
}

// consecutive reports whether cc follows the last observed continuity
// counter. The very first packet of a reassembler's lifetime always
// passes, since there is no prior CC to compare against.
func (r *Reassembler) consecutive(cc int) bool {
	if !r.seen {
		return true
	}
	return cc == (r.cc+1)&0x0F
}

// Check reports whether the buffer currently holds a complete,
// CRC-verified section. TDT (table_id 0x70) is the sole exception: an
// 8-byte section with no CRC.
func (r *Reassembler) Check() bool {
	if r.size == 0 || len(r.buf) < r.size {
		return false
	}
	if len(r.buf) > 0 && r.buf[0] == TableIDTDT {
		return r.size == 8
	}
	if r.size < 8 {
		return false
	}
	return checkCRC32(r.buf[:r.size])
}

// Bytes returns the reassembled section. Valid only once Check reports
// true; the caller should treat the result as read-only.
func (r *Reassembler) Bytes() []byte {
	return r.buf[:r.size]
}

// checkCRC32 reports whether b's trailing 4 bytes equal the CRC-32 of
// everything preceding them.
func checkCRC32(b []byte) bool {
	if len(b) < 4 {
		return false
	}
	want := bits.U32(b[len(b)-4:])
	got := crc32Of(b[:len(b)-4])
	return want == got
}

// Packetize splits a finished section into 188-byte TS packets on pid,
// starting from continuity counter cc. It returns the packets and the
// continuity counter to use for the next section on the same PID, per
// §4.6's demux algorithm: the first packet sets PUSI and a zero pointer
// field, continuation packets start their payload at byte 4, and the
// final packet is padded with 0xFF.
func Packetize(section []byte, pid bits.PID, cc int) ([][ts.PacketSize]byte, int) {
	var out [][ts.PacketSize]byte
	skip := 0
	size := len(section)
	for skip != size {
		var pkt [ts.PacketSize]byte
		pkt[0] = ts.SyncByte
		bits.PutPID(pkt[1:3], pid)

		var tsSkip int
		if skip == 0 {
			ts.SetPayload(pkt[:], true)
			ts.SetPUSI(pkt[:], true)
			pkt[4] = 0x00
			tsSkip = 5
		} else {
			ts.SetPayload(pkt[:], true)
			ts.SetPUSI(pkt[:], false)
			tsSkip = 4
		}

		ts.SetCC(pkt[:], cc)
		cc = (cc + 1) & 0x0F

		n := size - skip
		if room := ts.PacketSize - tsSkip; n > room {
			n = room
		}
		next := skip + n
		tsEnd := tsSkip + n
		copy(pkt[tsSkip:tsEnd], section[skip:next])

		skip = next
		if skip == size && tsEnd != ts.PacketSize {
			for i := tsEnd; i < ts.PacketSize; i++ {
				pkt[i] = 0xFF
			}
		}

		out = append(out, pkt)
	}
	return out, cc
}
