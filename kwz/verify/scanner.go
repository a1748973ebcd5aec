package verify

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/kwzverify/internal/buf"
	"github.com/joshuapare/kwzverify/internal/format"
)

// State is a scanner state.
type State uint8

const (
	StateScanning State = iota
	StateResyncing
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateScanning:
		return "scanning"
	case StateResyncing:
		return "resyncing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// MarshalText encodes the state name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// scanner holds the state of one pass over one buffer. Nothing outlives the
// call to Verify, so concurrent runs over different buffers share nothing.
type scanner struct {
	data     []byte
	sigSize  int
	maxSteps int
	log      *slog.Logger

	state  State
	offset int
	report *Report
}

// Verify walks every section of data and returns the report. It never reads
// outside data and always terminates.
func Verify(data []byte, opts *Options) *Report {
	if opts == nil {
		opts = DefaultOptions()
	}
	s := &scanner{
		data:     data,
		sigSize:  opts.SignatureSize,
		maxSteps: opts.maxSteps(len(data)),
		log:      opts.logger(),
		report:   newReport(len(data)),
	}
	s.run()
	return s.report
}

func (s *scanner) run() {
	s.start()
	for s.state == StateScanning || s.state == StateResyncing {
		if s.report.Steps >= s.maxSteps {
			s.fail(fmt.Errorf("%w: %d steps at offset 0x%X", format.ErrScanLimit, s.report.Steps, s.offset))
			return
		}
		s.report.Steps++
		s.step()
	}
}

// start verifies the fixed header and positions the scanner after it.
func (s *scanner) start() {
	hdr, err := format.ParseHeader(s.data)
	if err != nil {
		res := SectionResult{Kind: format.KindHeader, Err: sectionErr(format.KindHeader, 0, err)}
		res.Magic, _ = buf.Bytes4(s.data, 0)
		s.report.add(res)
		s.fail(fmt.Errorf("no section start: %w", err))
		return
	}

	res := VerifyHeader(s.data)
	s.report.add(res)
	s.log.Debug("header", "valid", res.Valid, "length", hdr.Length, "err", res.Err)

	s.state = StateScanning
	s.advance(0, hdr.Length)
}

func (s *scanner) step() {
	if s.offset >= len(s.data) {
		s.finish()
		return
	}

	magic, err := buf.Bytes4(s.data, s.offset)
	if err != nil {
		// Fewer than four bytes left: no section can start here.
		if s.data[s.offset] == format.MagicLeadByte {
			s.unknown(magic, err)
			return
		}
		s.filler()
		return
	}
	if magic[0] != format.MagicLeadByte {
		s.filler()
		return
	}

	kind := format.ClassifyMagic(magic)
	verifier, ok := VerifierFor(kind)
	if !ok {
		s.unknown(magic, fmt.Errorf("%w: % X", format.ErrMagicMismatch, magic))
		return
	}

	res := verifier(s.data, s.offset)
	s.report.add(res)
	s.log.Debug("section", "kind", kind.String(), "offset", s.offset, "length", res.Length,
		"valid", res.Valid, "skipped", res.Skipped, "err", res.Err)

	length, err := buf.U32LE(s.data, s.offset+format.SectionLengthOffset)
	if err != nil {
		s.resync()
		return
	}
	s.state = StateScanning
	s.advance(s.offset, length)
}

// advance moves past the section at off with the given declared length. A
// length that runs past the buffer cannot be trusted, so the scanner falls
// back to probing from off+4.
func (s *scanner) advance(off int, length uint32) {
	next := int64(off) + format.SectionPreambleSize + int64(length)
	if next > int64(len(s.data)) {
		s.log.Debug("untrusted length", "offset", off, "length", length, "size", len(s.data))
		s.offset = off
		s.resync()
		return
	}
	if s.sigSize > 0 && next == int64(len(s.data)-s.sigSize) {
		s.report.SignatureDetected = true
		s.offset = int(next)
		s.finish()
		return
	}
	s.offset = buf.Align4(int(next))
}

// resync abandons the current offset and probes the next 4-byte block.
func (s *scanner) resync() {
	s.state = StateResyncing
	s.offset = buf.Align4(s.offset + format.SectionAlignment)
}

func (s *scanner) unknown(magic [4]byte, err error) {
	s.report.add(SectionResult{
		Kind:   format.KindUnknown,
		Offset: s.offset,
		Magic:  magic,
		Err:    sectionErr(format.KindUnknown, s.offset, err),
	})
	s.log.Debug("unknown section", "offset", s.offset, "magic", fmt.Sprintf("% X", magic))
	s.resync()
}

func (s *scanner) filler() {
	s.report.FillerBlocks++
	s.offset = buf.Align4(s.offset + format.SectionAlignment)
}

func (s *scanner) finish() {
	s.state = StateDone
	s.report.Outcome = StateDone
	s.report.EndOffset = s.offset
	s.log.Debug("scan done", "offset", s.offset, "steps", s.report.Steps, "signature", s.report.SignatureDetected)
}

func (s *scanner) fail(err error) {
	s.state = StateFailed
	s.report.Outcome = StateFailed
	s.report.EndOffset = s.offset
	s.report.Err = err
	s.log.Debug("scan failed", "offset", s.offset, "err", err)
}
