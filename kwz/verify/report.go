package verify

import (
	"fmt"

	"github.com/joshuapare/kwzverify/internal/format"
)

// Status is the per-kind verdict.
type Status uint8

const (
	StatusAbsent Status = iota
	StatusValid
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusAbsent:
		return "absent"
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// MarshalText encodes the status name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Present reports whether at least one section of the kind was found.
func (s Status) Present() bool { return s != StatusAbsent }

// Variant names the recognized shape of a file.
type Variant string

const (
	// VariantKWZ is a complete multimedia file with thumbnail and sound.
	VariantKWZ Variant = "KWZ"
	// VariantKWC is a minimal comment file: header, frame metadata, frame data.
	VariantKWC Variant = "KWC"
	// VariantInvalid fails the minimal policy.
	VariantInvalid Variant = "invalid"
)

// Report aggregates the results of one verification run.
type Report struct {
	// Size is the buffer length.
	Size int
	// Sections lists every discovered section in file order, including
	// unknown ones.
	Sections []SectionResult
	// Outcome is StateDone or StateFailed.
	Outcome State
	// EndOffset is where the scan stopped.
	EndOffset int
	// Steps counts scanner transitions.
	Steps int
	// FillerBlocks counts 4-byte blocks skipped because they could not start
	// a section.
	FillerBlocks int
	// SignatureDetected is set when sections ended exactly before the
	// trailing signature region.
	SignatureDetected bool
	// Err is the run-fatal error when Outcome is StateFailed.
	Err error

	statuses [format.KindSoundHeader + 1]Status
}

func newReport(size int) *Report {
	return &Report{Size: size, Outcome: StateScanning}
}

// add records a section result. A kind stays valid only while every section
// of that kind verifies.
func (r *Report) add(res SectionResult) {
	r.Sections = append(r.Sections, res)
	switch {
	case !res.Valid:
		r.statuses[res.Kind] = StatusInvalid
	case r.statuses[res.Kind] == StatusAbsent:
		r.statuses[res.Kind] = StatusValid
	}
}

// Status returns the tri-state verdict for kind.
func (r *Report) Status(kind format.SectionKind) Status {
	if int(kind) >= len(r.statuses) {
		return StatusAbsent
	}
	return r.statuses[kind]
}

// MinimalValid holds when the header and frame data verified and frame
// metadata is present. This is the shape of a comment (KWC) file.
func (r *Report) MinimalValid() bool {
	return r.Status(format.KindHeader) == StatusValid &&
		r.Status(format.KindFrameData) == StatusValid &&
		r.Status(format.KindFrameMeta).Present()
}

// FullValid additionally requires a verified thumbnail and sound header.
func (r *Report) FullValid() bool {
	return r.MinimalValid() &&
		r.Status(format.KindThumbnail) == StatusValid &&
		r.Status(format.KindSoundHeader) == StatusValid
}

// Variant classifies the file by the strongest verdict it meets.
func (r *Report) Variant() Variant {
	switch {
	case r.FullValid():
		return VariantKWZ
	case r.MinimalValid():
		return VariantKWC
	default:
		return VariantInvalid
	}
}

// Failed reports whether the scan ended without reaching a terminal success.
func (r *Report) Failed() bool {
	return r.Outcome == StateFailed
}

// Errors returns the per-section errors in file order.
func (r *Report) Errors() []error {
	var errs []error
	for _, s := range r.Sections {
		if s.Err != nil {
			errs = append(errs, s.Err)
		}
	}
	return errs
}
