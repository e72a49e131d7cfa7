/*
NAME
  main.go

DESCRIPTION
  tsinspect reads a transport stream file, reassembles its PSI sections
  and prints the parsed PAT, PMT, SDT, NIT, EIT, TDT and TOT tables it
  finds.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main implements tsinspect, a command line PSI dumper for
// transport stream files.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/broadcastkit/mts/bits"
	"github.com/broadcastkit/mts/psi"
	"github.com/broadcastkit/mts/ts"

	"github.com/broadcastkit/mts/internal/logging"
)

// Logging related constants.
const (
	logVerbosity = logging.Debug
	logSuppress  = true
)

// Base PIDs of the PSI tables that aren't programme-specific. PMT PIDs
// are learned from the PAT as the stream is read.
const (
	sdtPID = 0x0011
	nitPID = psi.NITPID
	eitPID = psi.EITPID
	tdtPID = psi.TDTPID
)

func main() {
	path := flag.String("path", "", "path to the transport stream file to inspect")
	flag.Parse()

	log := logging.New(logVerbosity, os.Stderr, logSuppress)

	if *path == "" {
		log.Fatal("no -path given")
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatal("could not open file", "error", err)
	}
	defer f.Close()

	insp := newInspector(log)
	if err := insp.run(f); err != nil {
		log.Fatal("failed inspecting stream", "error", err)
	}
}

// inspector holds one Reassembler per PID of interest, plus the set of
// PMT PIDs learned from the PAT once it's been seen.
type inspector struct {
	log  logging.Logger
	pat  psi.Reassembler
	sdt  psi.Reassembler
	nit  psi.Reassembler
	eit  psi.Reassembler
	tdt  psi.Reassembler
	pmts map[bits.PID]*psi.Reassembler
	seen map[bits.PID]bool // PIDs already printed once, to cut repeat noise on a live stream
}

func newInspector(log logging.Logger) *inspector {
	return &inspector{
		log:  log,
		pmts: make(map[bits.PID]*psi.Reassembler),
		seen: make(map[bits.PID]bool),
	}
}

func (insp *inspector) run(f *os.File) error {
	var pkt [ts.PacketSize]byte
	for {
		_, err := readFull(f, pkt[:])
		if err != nil {
			break
		}
		if !ts.IsSync(pkt[:]) {
			continue
		}
		insp.feed(pkt[:])
	}
	return nil
}

func (insp *inspector) feed(pkt []byte) {
	pid := ts.PID(pkt)

	switch {
	case pid == psi.PATPID:
		insp.pat.Push(pkt)
		if insp.pat.Check() && !insp.printed(pid) {
			insp.printPAT(insp.pat.Bytes())
		}
	case pid == sdtPID:
		insp.sdt.Push(pkt)
		if insp.sdt.Check() && !insp.printed(pid) {
			insp.printSDT(insp.sdt.Bytes())
		}
	case pid == nitPID:
		insp.nit.Push(pkt)
		if insp.nit.Check() && !insp.printed(pid) {
			insp.printNIT(insp.nit.Bytes())
		}
	case pid == eitPID:
		insp.eit.Push(pkt)
		if insp.eit.Check() && !insp.printed(pid) {
			insp.printEIT(insp.eit.Bytes())
		}
	case pid == tdtPID:
		insp.tdt.Push(pkt)
		if insp.tdt.Check() {
			insp.printTDTOrTOT(insp.tdt.Bytes())
			insp.tdt.Reset()
		}
	default:
		if r, ok := insp.pmts[pid]; ok {
			r.Push(pkt)
			if r.Check() && !insp.printed(pid) {
				insp.printPMT(r.Bytes())
			}
		}
	}
}

// printed reports whether pid's table has already been printed once,
// marking it printed as a side effect. PSI tables repeat continuously
// on a live stream; a one-shot dump only needs the first copy of each.
func (insp *inspector) printed(pid bits.PID) bool {
	if insp.seen[pid] {
		return true
	}
	insp.seen[pid] = true
	return false
}

func (insp *inspector) printPAT(section []byte) {
	if !psi.CheckPAT(section) {
		insp.log.Warn("PAT failed CRC/structure check")
		return
	}
	pat := psi.ParsePAT(section)
	fmt.Printf("PAT tsid=%d version=%d\n", pat.TSID, pat.Version)
	for _, e := range pat.Entries {
		fmt.Printf("  program=%d -> pid=0x%04x\n", e.ProgramNumber, e.PID)
		if e.ProgramNumber == 0 {
			continue
		}
		if _, ok := insp.pmts[e.PID]; !ok {
			insp.pmts[e.PID] = &psi.Reassembler{}
		}
	}
}

func (insp *inspector) printPMT(section []byte) {
	if !psi.CheckPMT(section) {
		insp.log.Warn("PMT failed CRC/structure check")
		return
	}
	pmt := psi.ParsePMT(section)
	fmt.Printf("PMT program=%d pcr_pid=0x%04x version=%d\n", pmt.ProgramNum, pmt.PCRPID, pmt.Version)
	for _, s := range pmt.Streams {
		fmt.Printf("  stream_type=0x%02x pid=0x%04x descriptors=%d\n", s.StreamType, s.PID, len(s.Descriptors))
	}
}

func (insp *inspector) printSDT(section []byte) {
	if !psi.CheckSDT(section) {
		insp.log.Warn("SDT failed CRC/structure check")
		return
	}
	sdt := psi.ParseSDT(section)
	fmt.Printf("SDT tsid=%d version=%d\n", sdt.TSID, sdt.Version)
	for _, s := range sdt.Services {
		fmt.Printf("  service=%d running_status=%d free_ca=%v\n", s.ServiceID, s.RunningStatus, s.FreeCAMode)
	}
}

func (insp *inspector) printNIT(section []byte) {
	if !psi.CheckNIT(section) {
		insp.log.Warn("NIT failed CRC/structure check")
		return
	}
	nit := psi.ParseNIT(section)
	fmt.Printf("NIT network_id=%d version=%d transports=%d\n", nit.NetworkID, nit.Version, len(nit.Transports))
}

func (insp *inspector) printEIT(section []byte) {
	if !psi.CheckEIT(section) {
		insp.log.Warn("EIT failed CRC/structure check")
		return
	}
	eit := psi.ParseEIT(section)
	fmt.Printf("EIT service=%d events=%d\n", eit.ServiceID, len(eit.Events))
}

func (insp *inspector) printTDTOrTOT(section []byte) {
	if psi.CheckTDT(section) {
		tdt := psi.ParseTDT(section)
		fmt.Printf("TDT utc=%s\n", time.Unix(tdt.Time, 0).UTC().Format(time.RFC3339))
		return
	}
	if psi.CheckTOT(section) {
		tot := psi.ParseTOT(section)
		fmt.Printf("TOT utc=%s descriptors=%d\n", time.Unix(tot.Time, 0).UTC().Format(time.RFC3339), len(tot.Descriptors))
		return
	}
	insp.log.Warn("TDT/TOT pid carried a section that failed both checks")
}

// readFull reads exactly len(p) bytes from f, returning an error (including
// io.EOF) if the file ends early.
func readFull(f *os.File, p []byte) (int, error) {
	total := 0
	for total < len(p) {
		n, err := f.Read(p[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
