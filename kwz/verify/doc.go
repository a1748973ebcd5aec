// Package verify checks the structure and checksums of KWZ animation files.
//
// # Overview
//
// A KWZ file is a fixed header (KFH) followed by length-prefixed sections,
// each starting on a 4-byte boundary with a 4-byte magic:
//
//	KTN 0x02  thumbnail       CRC-32 of [o+0x0C, o+8+len), stored at o+0x08
//	KMI 0x05  frame metadata  no checksum, always valid
//	KMC 0x02  frame data      CRC-32 of [o+0x0C, o+8+len), stored at o+0x08
//	KSN 0x01  sound header    CRC-32 of [o+0x24, o+8+len), stored at o+0x20
//
// The header itself is checked over [0x0C, 8+len) against the value stored at
// 0x08, and its magic must be exactly 'K' 'F' 'H' 0x14.
//
// # Quick Start
//
//	data, _ := os.ReadFile("note.kwz")
//	report := verify.Verify(data, nil)
//	for _, s := range report.Sections {
//	    fmt.Printf("%s at 0x%X valid=%v\n", s.Kind, s.Offset, s.Valid)
//	}
//	if !report.MinimalValid() {
//	    os.Exit(1)
//	}
//
// # Scanning
//
// The scanner starts at header length + 8 and never trusts a length it cannot
// bound. A known magic is verified and skipped by its declared length; an
// unknown magic starting with 'K' is recorded and the scanner probes forward
// in 4-byte steps; anything else is filler. A section whose declared length
// runs past the buffer fails with ErrOutOfBounds and the scanner probes from
// the next block instead of jumping. Sections ending exactly
// Options.SignatureSize bytes before the end mark a trailing signature and
// end the scan.
//
// The number of transitions is capped, so crafted inputs cannot loop.
//
// # Verdicts
//
// MinimalValid requires a valid header, valid frame data and present frame
// metadata. FullValid additionally requires a valid thumbnail and sound
// header. SoundHeader sections whose six track sizes are all zero carry no
// audio and are valid without a checksum.
//
// # Errors
//
// Per-section failures are SectionError values carrying the kind and offset;
// use errors.Is with format.ErrOutOfBounds or format.ErrMagicMismatch to
// classify them. Only a run-fatal condition sets Report.Err.
package verify
