package kwz

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/kwzverify/internal/format"
)

// Summary is the serializable form of a Report.
type Summary struct {
	File              string           `json:"file,omitempty" yaml:"file,omitempty"`
	Size              int              `json:"size" yaml:"size"`
	Outcome           string           `json:"outcome" yaml:"outcome"`
	Variant           Variant          `json:"variant" yaml:"variant"`
	MinimalValid      bool             `json:"minimal_valid" yaml:"minimal_valid"`
	FullValid         bool             `json:"full_valid" yaml:"full_valid"`
	SignatureDetected bool             `json:"signature_detected" yaml:"signature_detected"`
	FillerBlocks      int              `json:"filler_blocks" yaml:"filler_blocks"`
	Steps             int              `json:"steps" yaml:"steps"`
	Kinds             []KindSummary    `json:"kinds" yaml:"kinds"`
	Sections          []SectionSummary `json:"sections" yaml:"sections"`
	Error             string           `json:"error,omitempty" yaml:"error,omitempty"`
}

// KindSummary is the verdict for one section kind.
type KindSummary struct {
	Kind   string `json:"kind" yaml:"kind"`
	Status string `json:"status" yaml:"status"`
}

// SectionSummary describes one discovered section.
type SectionSummary struct {
	Kind     string `json:"kind" yaml:"kind"`
	Offset   int    `json:"offset" yaml:"offset"`
	Length   uint32 `json:"length" yaml:"length"`
	Result   string `json:"result" yaml:"result"`
	Stored   string `json:"stored_crc,omitempty" yaml:"stored_crc,omitempty"`
	Computed string `json:"computed_crc,omitempty" yaml:"computed_crc,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Result labels.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
	ResultSkipped = "valid (no checksum)"
)

// Summarize flattens a report. A nil report (unreadable input) yields a
// summary carrying only loadErr.
func Summarize(file string, r *Report, loadErr error) Summary {
	s := Summary{File: file, Variant: VariantInvalid, Outcome: "unreadable"}
	if r == nil {
		if loadErr != nil {
			s.Error = loadErr.Error()
		}
		return s
	}

	s.Size = r.Size
	s.Outcome = r.Outcome.String()
	s.Variant = r.Variant()
	s.MinimalValid = r.MinimalValid()
	s.FullValid = r.FullValid()
	s.SignatureDetected = r.SignatureDetected
	s.FillerBlocks = r.FillerBlocks
	s.Steps = r.Steps
	if r.Err != nil {
		s.Error = r.Err.Error()
	}

	for _, k := range format.Kinds {
		s.Kinds = append(s.Kinds, KindSummary{Kind: k.String(), Status: r.Status(k).String()})
	}
	if st := r.Status(KindUnknown); st.Present() {
		s.Kinds = append(s.Kinds, KindSummary{Kind: KindUnknown.String(), Status: st.String()})
	}

	s.Sections = make([]SectionSummary, 0, len(r.Sections))
	for _, sec := range r.Sections {
		ss := SectionSummary{
			Kind:   sec.Kind.String(),
			Offset: sec.Offset,
			Length: sec.Length,
			Result: sectionResult(sec),
		}
		if !sec.Skipped && sec.Kind != KindUnknown {
			ss.Stored = fmt.Sprintf("0x%08X", sec.Stored)
			ss.Computed = fmt.Sprintf("0x%08X", sec.Computed)
		}
		if sec.Err != nil {
			ss.Error = sec.Err.Error()
		}
		s.Sections = append(s.Sections, ss)
	}
	return s
}

func sectionResult(sec SectionResult) string {
	switch {
	case !sec.Valid:
		return ResultInvalid
	case sec.Skipped:
		return ResultSkipped
	default:
		return ResultValid
	}
}

// Style decorates text output. The zero value is plain text.
type Style struct {
	Valid   string
	Invalid string
	Dim     string
	Reset   string
}

func (st Style) paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + st.Reset
}

// Verdict returns the one-line verdict for a summary.
func Verdict(s Summary) string {
	switch {
	case s.Outcome == "unreadable":
		return "unreadable input"
	case s.FullValid:
		return "valid KWZ file"
	case s.MinimalValid:
		return "valid KWC (comment) file"
	default:
		return "not a valid file"
	}
}

// FormatText renders one line per discovered section followed by the verdict.
func FormatText(s Summary, st Style) string {
	var b strings.Builder

	if s.File != "" {
		b.WriteString(fmt.Sprintf("%s (%d bytes)\n", s.File, s.Size))
	}
	for _, sec := range s.Sections {
		color := st.Valid
		if sec.Result == ResultInvalid {
			color = st.Invalid
		}
		b.WriteString(fmt.Sprintf("  [0x%07X] %-3s %s", sec.Offset, sec.Kind, st.paint(color, sec.Result)))
		if sec.Error != "" {
			b.WriteString(st.paint(st.Dim, ": "+sec.Error))
		}
		b.WriteString("\n")
	}
	if s.SignatureDetected {
		b.WriteString(st.paint(st.Dim, "  trailing signature present") + "\n")
	}
	if s.FillerBlocks > 0 {
		b.WriteString(st.paint(st.Dim, fmt.Sprintf("  %d filler block(s) skipped", s.FillerBlocks)) + "\n")
	}
	if s.Outcome == "failed" || s.Outcome == "unreadable" {
		b.WriteString(st.paint(st.Invalid, "  error: "+s.Error) + "\n")
	}

	color := st.Invalid
	if s.MinimalValid {
		color = st.Valid
	}
	b.WriteString("Result: " + st.paint(color, Verdict(s)) + "\n")
	return b.String()
}

// FormatCompact renders one line per file.
func FormatCompact(s Summary) string {
	var bad []string
	for _, sec := range s.Sections {
		if sec.Result == ResultInvalid {
			bad = append(bad, fmt.Sprintf("%s@0x%X", sec.Kind, sec.Offset))
		}
	}
	line := fmt.Sprintf("%s\t%s\t%s", s.File, s.Variant, s.Outcome)
	if len(bad) > 0 {
		line += "\tinvalid=" + strings.Join(bad, ",")
	}
	if s.Error != "" && s.Outcome != "done" {
		line += "\terror=" + s.Error
	}
	return line + "\n"
}

// FormatJSON renders summaries as indented JSON.
func FormatJSON(s []Summary) (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

// FormatYAML renders summaries as YAML.
func FormatYAML(s []Summary) (string, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatInfoJSON renders header metadata as indented JSON.
func FormatInfoJSON(info HeaderInfo) (string, error) {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

// FormatInfoText renders header metadata as aligned key/value lines.
func FormatInfoText(info HeaderInfo) string {
	var b strings.Builder
	row := func(k string, v any) {
		b.WriteString(fmt.Sprintf("%-16s %v\n", k+":", v))
	}
	row("Author", info.Author)
	row("Author ID", info.AuthorID)
	row("Parent author", info.ParentAuthor)
	row("Root author", info.RootAuthor)
	row("Filename", info.Filename)
	row("Parent filename", info.ParentFilename)
	row("Root filename", info.RootFilename)
	row("Created", info.Created.Format("2006-01-02 15:04:05 MST"))
	row("Modified", info.Modified.Format("2006-01-02 15:04:05 MST"))
	row("App version", fmt.Sprintf("0x%X", info.AppVersion))
	row("Frames", info.FrameCount)
	row("Thumbnail frame", info.ThumbnailFrame)
	row("Frame speed", info.FrameSpeed)
	row("Flags", fmt.Sprintf("0x%04X", info.Flags))
	row("Layer flags", fmt.Sprintf("0x%02X", info.LayerFlags))
	return b.String()
}
