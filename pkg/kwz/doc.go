// Package kwz verifies Flipnote Studio 3D animation files (.kwz, and the
// comment-only .kwc variant).
//
// # Overview
//
// A KWZ file is a fixed header followed by typed, length-prefixed sections,
// each with its own CRC-32. This package loads files, runs the section
// scanner from kwz/verify, and renders the resulting reports.
//
// # Quick Start
//
//	report, err := kwz.VerifyFile("note.kwz", nil)
//	if err != nil {
//	    // errors.Is(err, kwz.ErrUnreadableInput)
//	    return err
//	}
//	fmt.Print(kwz.FormatText(kwz.Summarize("note.kwz", report), kwz.Style{}))
//	if !report.FullValid() {
//	    // missing or damaged sections
//	}
//
// Verify many files concurrently:
//
//	results, err := kwz.VerifyFiles(ctx, paths, &kwz.Options{Concurrency: 4})
//	for _, r := range results {
//	    fmt.Println(r.Path, r.Report.Variant())
//	}
//
// # Verdicts
//
//   - Minimal (KWC): header and frame data verified, frame metadata present.
//   - Full (KWZ): minimal plus verified thumbnail and sound header.
//
// # Output
//
// Summaries render as text (one line per section plus a verdict), compact
// (one line per file), JSON or YAML. All output is deterministic: verifying
// the same bytes twice produces identical output.
package kwz
