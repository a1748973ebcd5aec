package kwz

import (
	"github.com/joshuapare/kwzverify/internal/format"
	"github.com/joshuapare/kwzverify/kwz/verify"
)

// Report is the result of verifying one buffer.
// Re-exported from kwz/verify for public API
type Report = verify.Report

// SectionResult is the outcome for one section.
type SectionResult = verify.SectionResult

// SectionError carries the kind and offset of a per-section failure.
type SectionError = verify.SectionError

// Status is the per-kind tri-state verdict.
type Status = verify.Status

const (
	StatusAbsent  = verify.StatusAbsent
	StatusValid   = verify.StatusValid
	StatusInvalid = verify.StatusInvalid
)

// Variant names the shape a file satisfies.
type Variant = verify.Variant

const (
	VariantKWZ     = verify.VariantKWZ
	VariantKWC     = verify.VariantKWC
	VariantInvalid = verify.VariantInvalid
)

// SectionKind identifies a section type.
// Re-exported from internal/format for public API
type SectionKind = format.SectionKind

const (
	KindUnknown     = format.KindUnknown
	KindHeader      = format.KindHeader
	KindThumbnail   = format.KindThumbnail
	KindFrameMeta   = format.KindFrameMeta
	KindFrameData   = format.KindFrameData
	KindSoundHeader = format.KindSoundHeader
)

// HeaderInfo is the descriptive metadata of the file header.
type HeaderInfo = format.HeaderInfo

// Errors, matched with errors.Is.
var (
	ErrOutOfBounds     = format.ErrOutOfBounds
	ErrMagicMismatch   = format.ErrMagicMismatch
	ErrUnreadableInput = format.ErrUnreadableInput
	ErrScanLimit       = format.ErrScanLimit
)
