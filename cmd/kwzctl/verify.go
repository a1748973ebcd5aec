package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/kwzverify/internal/format"
	"github.com/joshuapare/kwzverify/pkg/kwz"
)

var (
	verifyFull          bool
	verifyFormat        string
	verifySignatureSize int
	verifyMaxSteps      int
	verifyJobs          int
)

func init() {
	cmd := newVerifyCmd()
	cmd.Flags().BoolVar(&verifyFull, "full", false, "Require thumbnail and sound sections (full KWZ, not KWC)")
	cmd.Flags().StringVarP(&verifyFormat, "format", "f", "text", "Output format: text, compact, json, yaml")
	cmd.Flags().IntVar(&verifySignatureSize, "signature-size", format.DefaultSignatureSize,
		"Size of the trailing signature region (0 disables detection)")
	cmd.Flags().IntVar(&verifyMaxSteps, "max-steps", 0, "Cap on scanner transitions per file (0 derives from file size)")
	cmd.Flags().IntVarP(&verifyJobs, "jobs", "j", 0, "Files verified in parallel (0 uses all CPUs)")
	rootCmd.AddCommand(cmd)
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <file>...",
		Short: "Verify section structure and checksums",
		Long: `The verify command walks every section of each file and checks its CRC-32.

A file passes when its header and frame data verify and frame metadata is
present (a KWC comment file). With --full the thumbnail and sound header must
verify too (a complete KWZ file).

Exit codes:
  0  every file passed
  1  at least one file is invalid
  2  at least one file could not be read or scanned

Example:
  kwzctl verify note.kwz
  kwzctl verify --full *.kwz
  kwzctl verify --format json note.kwz`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, args)
		},
	}
	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	if verifySignatureSize < 0 {
		return fmt.Errorf("--signature-size must not be negative")
	}
	opts := &kwz.Options{
		SignatureSize: verifySignatureSize,
		MaxSteps:      verifyMaxSteps,
		Concurrency:   verifyJobs,
		Logger:        newLogger(),
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := kwz.VerifyFiles(ctx, args, opts)
	if err != nil {
		return err
	}

	summaries := make([]kwz.Summary, len(results))
	for i, r := range results {
		summaries[i] = kwz.Summarize(r.Path, r.Report, r.Err)
	}

	if err := render(summaries); err != nil {
		return err
	}

	code, failed := exitCode(results, verifyFull)
	if code == exitOK {
		return nil
	}
	return &exitError{code: code, msg: fmt.Sprintf("%d of %d file(s) failed: %s", len(failed), len(results), strings.Join(failed, ", "))}
}

func render(summaries []kwz.Summary) error {
	switch verifyFormat {
	case "json":
		out, err := kwz.FormatJSON(summaries)
		if err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		printInfo("%s", out)
	case "yaml":
		out, err := kwz.FormatYAML(summaries)
		if err != nil {
			return fmt.Errorf("failed to format YAML: %w", err)
		}
		printInfo("%s", out)
	case "compact":
		for _, s := range summaries {
			printInfo("%s", kwz.FormatCompact(s))
		}
	case "text":
		st := textStyle()
		for i, s := range summaries {
			if i > 0 {
				printInfo("\n")
			}
			printInfo("%s", kwz.FormatText(s, st))
		}
	default:
		return fmt.Errorf("unknown format: %s (use: text, compact, json, yaml)", verifyFormat)
	}
	return nil
}

// exitCode picks the worst outcome across files: unreadable or failed scans
// beat invalid verdicts.
func exitCode(results []kwz.FileResult, full bool) (int, []string) {
	code := exitOK
	var failed []string
	for _, r := range results {
		switch {
		case r.Err != nil || r.Report == nil || r.Report.Failed():
			code = exitUnreadable
			failed = append(failed, r.Path)
		case full && !r.Report.FullValid(), !full && !r.Report.MinimalValid():
			if code == exitOK {
				code = exitInvalid
			}
			failed = append(failed, r.Path)
		}
	}
	return code, failed
}
