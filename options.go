/*
DESCRIPTION
  options.go provides option functions that can be provided to the MTS encoders
  constructor NewEncoder for encoder configuration. These options include the
  elementary stream parameters, PSI insertion strategy and intended access
  unit rate.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package mts

import (
	"errors"
	"time"

	"github.com/broadcastkit/mts/bits"
)

var (
	ErrInvalidMediaPID = errors.New("invalid media PID")
	ErrInvalidRate     = errors.New("invalid access unit rate")
)

// PacketBasedPSI is an option that can be passed to NewEncoder to select
// packet based PSI writing, i.e. PSI are written to the destination every
// sendCount packets.
func PacketBasedPSI(sendCount int) func(*Encoder) error {
	return func(e *Encoder) error {
		e.psiMethod = psiMethodPacket
		e.psiSendCount = sendCount
		e.pktCount = e.psiSendCount
		e.log.Debug("configured for packet based PSI insertion", "count", sendCount)
		return nil
	}
}

// TimeBasedPSI is another option that can be passed to NewEncoder to select
// time based PSI writing, i.e. PSI are written to the destination every dur
// (duration). The first Write after construction always writes PSI.
func TimeBasedPSI(dur time.Duration) func(*Encoder) error {
	return func(e *Encoder) error {
		e.psiMethod = psiMethodTime
		e.psiTime = 0
		e.psiSetTime = dur
		e.startTime = time.Now()
		e.log.Debug("configured for time based PSI insertion")
		return nil
	}
}

// Media is an option that can be passed to NewEncoder. It sets the
// elementary stream the encoder muxes: the PID its TS packets are sent
// on, and the stream ID written to the PMT stream loop and the PES
// headers. The PID must not collide with the PAT/PMT PIDs or the
// reserved null/none PIDs.
func Media(pid uint16, streamID byte) func(*Encoder) error {
	return func(e *Encoder) error {
		if pid >= uint16(bits.NullPID) || pid == PatPid || pid == PmtPid {
			return ErrInvalidMediaPID
		}
		e.mediaPID = pid
		e.streamID = streamID
		e.continuity = map[uint16]byte{PatPid: 0, PmtPid: 0, pid: 0}
		e.log.Debug("configured media stream", "PID", pid, "streamID", streamID)
		return nil
	}
}

// Rate is an option that can be passed to NewEncoder. It is used to specify
// the rate at which the access units should be played in playback. This will
// be used to create timestamps and counts such as PTS and PCR.
func Rate(r float64) func(*Encoder) error {
	return func(e *Encoder) error {
		if r < 1 || r > 60 {
			return ErrInvalidRate
		}
		e.writePeriod = time.Duration(float64(time.Second) / r)
		return nil
	}
}
