package verify

import (
	"fmt"

	"github.com/joshuapare/kwzverify/internal/buf"
	"github.com/joshuapare/kwzverify/internal/format"
)

// SectionResult is the outcome of verifying one section.
type SectionResult struct {
	Kind   format.SectionKind
	Offset int
	Magic  [4]byte
	Length uint32

	// Valid is true when the stored checksum matched, or the kind is
	// defined to pass without one.
	Valid bool
	// Skipped is true when no checksum was computed.
	Skipped bool

	Stored   uint32
	Computed uint32
	Err      error
}

// Verifier checks the section whose magic sits at off.
type Verifier func(b []byte, off int) SectionResult

var verifiers = map[format.SectionKind]Verifier{
	format.KindThumbnail:   VerifyThumbnail,
	format.KindFrameMeta:   VerifyFrameMeta,
	format.KindFrameData:   VerifyFrameData,
	format.KindSoundHeader: VerifySoundHeader,
}

// VerifierFor returns the rule for a variable section kind.
func VerifierFor(kind format.SectionKind) (Verifier, bool) {
	v, ok := verifiers[kind]
	return v, ok
}

// VerifyHeader checks the KFH at offset 0: the exact file signature and the
// CRC-32 of [0x0C, 8+length) against the value stored at 0x08. A bad
// signature fails the header regardless of the checksum.
func VerifyHeader(b []byte) SectionResult {
	res := checkCRC(b, format.KindHeader, 0, format.SectionCRCOffset, format.SectionBodyOffset)
	if buf.Has(b, 0, format.MagicSize) && res.Magic != format.HeaderSignature {
		res.Valid = false
		res.Err = sectionErr(format.KindHeader, 0,
			fmt.Errorf("%w: got % X, want % X", format.ErrMagicMismatch, res.Magic, format.HeaderSignature))
	}
	return res
}

// VerifyThumbnail checks a KTN section. The CRC covers the JPEG body.
func VerifyThumbnail(b []byte, off int) SectionResult {
	return checkCRC(b, format.KindThumbnail, off, format.SectionCRCOffset, format.SectionBodyOffset)
}

// VerifyFrameData checks a KMC section. The CRC covers all frame data.
func VerifyFrameData(b []byte, off int) SectionResult {
	return checkCRC(b, format.KindFrameData, off, format.SectionCRCOffset, format.SectionBodyOffset)
}

// VerifyFrameMeta always passes: KMI carries no checksum in this format.
func VerifyFrameMeta(b []byte, off int) SectionResult {
	res := SectionResult{Kind: format.KindFrameMeta, Offset: off, Valid: true, Skipped: true}
	res.Magic, _ = buf.Bytes4(b, off)
	res.Length, _ = buf.U32LE(b, off+format.SectionLengthOffset)
	return res
}

// VerifySoundHeader checks a KSN section. Its CRC covers only the audio
// payload after the track table. When every track size is zero there is no
// payload, and the section is valid without computing anything.
func VerifySoundHeader(b []byte, off int) SectionResult {
	tracks, err := format.SoundTracks(b, off)
	if err != nil {
		res := SectionResult{Kind: format.KindSoundHeader, Offset: off}
		res.Magic, _ = buf.Bytes4(b, off)
		res.Length, _ = buf.U32LE(b, off+format.SectionLengthOffset)
		res.Err = sectionErr(format.KindSoundHeader, off, err)
		return res
	}
	if !format.HasAudio(tracks) {
		res := SectionResult{Kind: format.KindSoundHeader, Offset: off, Valid: true, Skipped: true}
		res.Magic, _ = buf.Bytes4(b, off)
		res.Length, _ = buf.U32LE(b, off+format.SectionLengthOffset)
		return res
	}
	return checkCRC(b, format.KindSoundHeader, off, format.SoundCRCOffset, format.SoundBodyOffset)
}

// checkCRC compares the u32 at off+crcOff with the CRC-32 of
// [off+bodyOff, off+8+length). Ranges running past the buffer fail with
// ErrOutOfBounds; they never match.
func checkCRC(b []byte, kind format.SectionKind, off, crcOff, bodyOff int) SectionResult {
	res := SectionResult{Kind: kind, Offset: off}

	magic, err := buf.Bytes4(b, off)
	if err != nil {
		res.Err = sectionErr(kind, off, fmt.Errorf("magic: %w", err))
		return res
	}
	res.Magic = magic

	length, err := buf.U32LE(b, off+format.SectionLengthOffset)
	if err != nil {
		res.Err = sectionErr(kind, off, fmt.Errorf("length: %w", err))
		return res
	}
	res.Length = length

	stored, err := buf.U32LE(b, off+crcOff)
	if err != nil {
		res.Err = sectionErr(kind, off, fmt.Errorf("stored crc: %w", err))
		return res
	}
	res.Stored = stored

	start := off + bodyOff
	end, ok := sectionEnd(off, length)
	if !ok {
		res.Err = sectionErr(kind, off, fmt.Errorf("%w: length 0x%X overflows", format.ErrOutOfBounds, length))
		return res
	}
	if end < start {
		res.Err = sectionErr(kind, off,
			fmt.Errorf("%w: length 0x%X ends before checksum body at 0x%X", format.ErrOutOfBounds, length, start))
		return res
	}
	computed, err := format.CRC32(b, start, end-start)
	if err != nil {
		res.Err = sectionErr(kind, off, fmt.Errorf("checksum range: %w", err))
		return res
	}
	res.Computed = computed

	if computed != stored {
		res.Err = sectionErr(kind, off, fmt.Errorf("crc32 mismatch: stored=0x%08X computed=0x%08X", stored, computed))
		return res
	}
	res.Valid = true
	return res
}

// sectionEnd returns off+8+length, reporting false on int overflow.
func sectionEnd(off int, length uint32) (int, bool) {
	l := int64(length)
	if int64(int(l)) != l {
		return 0, false
	}
	return buf.AddOverflowSafe(off+format.SectionPreambleSize, int(l))
}
