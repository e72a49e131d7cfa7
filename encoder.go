/*
NAME
  encoder.go

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>
  Dan Kortschak <dan@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package mts

import (
	"fmt"
	"io"
	"time"

	"github.com/broadcastkit/mts/bits"
	"github.com/broadcastkit/mts/internal/logging"
	"github.com/broadcastkit/mts/meta"
	"github.com/broadcastkit/mts/pes"
	"github.com/broadcastkit/mts/psi"
)

// These two constants are used to select between the different methods of
// when the PSI is sent.
const (
	psiMethodPacket = iota // PSI is inserted after a certain number of packets.
	psiMethodTime          // PSI is inserted after a certain amount of time.
)

// The program IDs we assign to different types of media.
const (
	PIDVideo = 256
	PIDAudio = 210
)

// Time-related constants.
const (
	// ptsOffset is the offset added to the clock to determine
	// the current presentation timestamp.
	ptsOffset = 700 * time.Millisecond

	// PCRFrequency is the base Program Clock Reference frequency in Hz.
	PCRFrequency = 90000

	// PTSFrequency is the presentation timestamp frequency in Hz.
	PTSFrequency = 90000

	// MaxPTS is the largest PTS value (i.e., for a 33-bit unsigned integer).
	MaxPTS = (1 << 33) - 1
)

// If we are using packet based PSI intervals then we will send PSI every 7 packets.
const psiSendCount = 7

const (
	hasPayload         = 0x1
	hasAdaptationField = 0x2
)

const (
	hasDTS = 0x1
	hasPTS = 0x2
)

// Default encoder configuration parameters.
const (
	defaultRate      = 25 // FPS
	defaultPSIMethod = psiMethodPacket
	defaultStreamID  = pes.H264SID
	defaultMediaPID  = PIDVideo
)

// Used to consistently read and write MTS metadata entries.
const (
	WriteRateKey = "writeRate"
	TimestampKey = "ts"
	LocationKey  = "loc"
)

// Encoder encapsulates properties of an MPEG-TS generator.
type Encoder struct {
	dst io.WriteCloser

	clock       time.Duration
	lastTime    time.Time
	writePeriod time.Duration
	ptsOffset   time.Duration
	tsSpace     [PacketSize]byte
	pesSpace    [pes.MaxPesSize]byte

	continuity map[uint16]byte

	psiMethod    int
	pktCount     int
	psiSendCount int
	psiTime      time.Duration
	psiSetTime   time.Duration
	startTime    time.Time
	mediaPID     uint16
	streamID     byte

	pat psi.PAT
	pmt psi.PMT

	// meta allows addition of metadata to encoded mts from outside this
	// package. See the meta package for usage.
	meta *meta.Data

	// log is used throughout the encoder code for logging.
	log logging.Logger
}

// NewEncoder returns an Encoder configured by the given options eg. if a video stream
// calls write for every frame, the rate will be the frame rate of the video.
func NewEncoder(dst io.WriteCloser, log logging.Logger, options ...func(*Encoder) error) (*Encoder, error) {
	e := &Encoder{
		dst:         dst,
		writePeriod: time.Duration(float64(time.Second) / defaultRate),
		ptsOffset:   ptsOffset,
		psiMethod:   defaultPSIMethod,
		pktCount:    8,
		mediaPID:    defaultMediaPID,
		streamID:    defaultStreamID,
		continuity:  map[uint16]byte{PatPid: 0, PmtPid: 0, defaultMediaPID: 0},
		log:         log,
		meta:        meta.New(),
		pat: psi.PAT{
			TSID:    1,
			Entries: []psi.PATEntry{{ProgramNumber: 1, PID: bits.PID(PmtPid)}},
		},
		pmt: psi.PMT{
			ProgramNum: 1,
			PCRPID:     bits.PID(defaultMediaPID),
			Streams: []psi.PMTStream{{
				StreamType: defaultStreamID,
				PID:        bits.PID(defaultMediaPID),
			}},
		},
	}

	for _, option := range options {
		err := option(e)
		if err != nil {
			return nil, fmt.Errorf("option failed with error: %w", err)
		}
	}
	log.Debug("encoder options applied")

	e.meta.Add(WriteRateKey, fmt.Sprintf("%f", 1/float64(e.writePeriod.Seconds())))

	e.pmt.PCRPID = bits.PID(e.mediaPID)
	e.pmt.Streams = []psi.PMTStream{{
		StreamType: e.streamID,
		PID:        bits.PID(e.mediaPID),
	}}

	return e, nil
}

// Meta returns the metadata store used to annotate PMT descriptors written
// by the encoder, allowing callers to set keys such as LocationKey.
func (e *Encoder) Meta() *meta.Data { return e.meta }

// Write implements io.Writer. Write takes raw video or audio data and encodes into MPEG-TS,
// then sending it to the encoder's io.Writer destination.
func (e *Encoder) Write(data []byte) (int, error) {
	e.log.Debug("writing data", "len(data)", len(data))
	switch e.psiMethod {
	case psiMethodPacket:
		e.log.Debug("checking packet no. conditions for PSI write", "count", e.pktCount, "PSI count", e.psiSendCount)
		if e.pktCount >= e.psiSendCount {
			e.pktCount = 0
			err := e.writePSI()
			if err != nil {
				return 0, fmt.Errorf("could not write psi (psiMethodPacket): %w", err)
			}
		}
	case psiMethodTime:
		dur := time.Now().Sub(e.startTime)
		e.log.Debug("checking time conditions for PSI write")
		if dur >= e.psiTime {
			e.psiTime = e.psiSetTime
			e.startTime = time.Now()
			err := e.writePSI()
			if err != nil {
				return 0, fmt.Errorf("could not write psi (psiMethodTime): %w", err)
			}
		}
	default:
		panic("undefined PSI method")
	}

	// Prepare PES data.
	pts := e.pts()
	pesPkt := pes.Packet{
		StreamID:     e.streamID,
		PDI:          hasPTS,
		PTS:          pts,
		Data:         data,
		HeaderLength: 5,
	}

	buf := pesPkt.Bytes(e.pesSpace[:pes.MaxPesSize])

	pusi := true
	for len(buf) != 0 {
		pkt := Packet{
			PUSI: pusi,
			PID:  uint16(e.mediaPID),
			RAI:  pusi,
			CC:   e.ccFor(e.mediaPID),
			AFC:  hasAdaptationField | hasPayload,
			PCRF: pusi,
		}
		n := pkt.FillPayload(buf)
		buf = buf[n:]

		if pusi {
			// If the packet has a Payload Unit Start Indicator
			// flag set then we need to write a PCR.
			pcr := e.pcr()
			e.log.Debug("new access unit", "PCR", pcr, "PTS", pts)
			pkt.PCR = pcr
			pusi = false
		}

		b := pkt.Bytes(e.tsSpace[:PacketSize])
		e.log.Debug("writing MTS packet to destination", "size", len(b), "pusi", pusi, "PID", pkt.PID, "PTS", pts, "PCR", pkt.PCR)
		_, err := e.dst.Write(b)
		if err != nil {
			return len(data), fmt.Errorf("could not write MTS packet to destination: %w", err)
		}
		e.pktCount++
	}

	e.tick()

	return len(data), nil
}

// writePSI writes the current PAT and a PMT with an updated metadata
// descriptor to the destination.
func (e *Encoder) writePSI() error {
	e.updateMeta()

	if err := e.writeTable(e.pat.Assemble(), PatPid); err != nil {
		return fmt.Errorf("could not write pat packet: %w", err)
	}
	if err := e.writeTable(e.pmt.Assemble(), PmtPid); err != nil {
		return fmt.Errorf("could not write pmt packet: %w", err)
	}

	e.log.Debug("PSI written")
	return nil
}

// writeTable packetizes section for pid using the encoder's continuity
// state, and writes the resulting TS packets to the destination.
func (e *Encoder) writeTable(section []byte, pid uint16) error {
	pkts, nextCC := psi.Packetize(section, bits.PID(pid), int(e.ccFor(pid)))
	e.continuity[pid] = byte(nextCC)
	for _, pkt := range pkts {
		_, err := e.dst.Write(pkt[:])
		if err != nil {
			return err
		}
		e.pktCount++
	}
	return nil
}

// tick advances the clock one frame interval.
func (e *Encoder) tick() {
	e.clock += e.writePeriod
}

// pts retuns the current presentation timestamp.
func (e *Encoder) pts() uint64 {
	return uint64((e.clock + e.ptsOffset).Seconds() * PTSFrequency)
}

// pcr returns the current program clock reference.
func (e *Encoder) pcr() uint64 {
	return uint64(e.clock.Seconds() * PCRFrequency)
}

// ccFor returns the next continuity counter for pid.
func (e *Encoder) ccFor(pid uint16) byte {
	cc := e.continuity[pid]
	const continuityCounterMask = 0xf
	e.continuity[pid] = (cc + 1) & continuityCounterMask
	return cc
}

// updateMeta refreshes the PMT's metadata descriptor from the encoder's
// meta store, replacing any metadata descriptor already present. A
// timestamp is stamped only if the caller hasn't provided one.
func (e *Encoder) updateMeta() {
	if _, ok := e.meta.Get(TimestampKey); !ok {
		t := fmt.Sprintf("%d", time.Now().Unix())
		e.meta.Add(TimestampKey, t)
		e.log.Debug("timestamp added to meta", "time", t)
	}

	descs := make(psi.Descriptors, 0, len(e.pmt.Descriptors)+1)
	for _, d := range e.pmt.Descriptors {
		if _, ok := d.(psi.DescriptorMetadata); ok {
			continue
		}
		descs = append(descs, d)
	}
	e.pmt.Descriptors = append(descs, psi.NewMetadataDescriptor(e.meta))
}

func (e *Encoder) Close() error {
	e.log.Debug("closing encoder")
	return e.dst.Close()
}
