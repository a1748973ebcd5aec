package kwz

import (
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/kwzverify/internal/format"
	"github.com/joshuapare/kwzverify/kwz/builder"
)

func TestFormatText_OneLinePerSection(t *testing.T) {
	data, layout := builder.New().
		FrameMeta(make([]byte, 8)).
		FrameData([]byte("frames!!")).
		BuildLayout()
	format.PutU32(data, layout[2].CRCOffset, 0)

	s := Summarize("bad.kwc", VerifyBytes(data, nil), nil)
	out := FormatText(s, Style{})
	lines := strings.Split(strings.TrimSpace(out), "\n")

	require.Equal(t, "bad.kwc (248 bytes)", lines[0])
	require.Len(t, lines, 5)
	require.Contains(t, lines[1], "KFH valid")
	require.Contains(t, lines[2], "KMI valid (no checksum)")
	require.Contains(t, lines[3], "KMC invalid: KMC at offset 0xE4: crc32 mismatch")
	require.Equal(t, "Result: not a valid file", lines[4])
}

func TestFormatText_Style(t *testing.T) {
	s := Summarize("ok.kwz", VerifyBytes(fullFile(), nil), nil)
	st := Style{Valid: "<g>", Invalid: "<r>", Dim: "<d>", Reset: "</>"}
	out := FormatText(s, st)
	require.Contains(t, out, "KSN <g>valid</>")
	require.True(t, strings.HasSuffix(out, "Result: <g>valid KWZ file</>\n"))
}

func TestFormatText_Unreadable(t *testing.T) {
	s := Summarize("gone.kwz", nil, errors.New("open gone.kwz: no such file"))
	out := FormatText(s, Style{})
	require.Contains(t, out, "error: open gone.kwz: no such file")
	require.Contains(t, out, "Result: unreadable input")
	require.Equal(t, "gone.kwz\tinvalid\tunreadable\terror=open gone.kwz: no such file\n", FormatCompact(s))
}

func TestFormatCompact(t *testing.T) {
	s := Summarize("ok.kwz", VerifyBytes(fullFile(), nil), nil)
	require.Equal(t, "ok.kwz\tKWZ\tdone\n", FormatCompact(s))
}

func TestFormatJSON_RoundTrip(t *testing.T) {
	s := Summarize("ok.kwz", VerifyBytes(fullFile(), nil), nil)
	out, err := FormatJSON([]Summary{s})
	require.NoError(t, err)

	var decoded []Summary
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)
	require.Equal(t, s, decoded[0])
	require.Contains(t, out, `"variant": "KWZ"`)
}

func TestFormatYAML(t *testing.T) {
	s := Summarize("ok.kwc", VerifyBytes(commentFile(), nil), nil)
	out, err := FormatYAML([]Summary{s})
	require.NoError(t, err)
	require.Contains(t, out, "variant: KWC")

	var decoded []Summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Equal(t, s, decoded[0])
}

func TestSummarize_Deterministic(t *testing.T) {
	data := fullFile()
	data[len(data)/2] ^= 0x10

	first, err := FormatJSON([]Summary{Summarize("x", VerifyBytes(data, nil), nil)})
	require.NoError(t, err)
	second, err := FormatJSON([]Summary{Summarize("x", VerifyBytes(data, nil), nil)})
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSummarize_Kinds(t *testing.T) {
	s := Summarize("", VerifyBytes(commentFile(), nil), nil)
	got := map[string]string{}
	for _, k := range s.Kinds {
		got[k.Kind] = k.Status
	}
	require.Equal(t, map[string]string{
		"KFH": "valid",
		"KTN": "absent",
		"KMI": "valid",
		"KMC": "valid",
		"KSN": "absent",
	}, got)
}

func TestFormatInfo(t *testing.T) {
	info := HeaderInfo{Author: "bob", FrameCount: 3, Created: format.Epoch, Modified: format.Epoch}
	text := FormatInfoText(info)
	require.Contains(t, text, "Author:          bob")
	require.Contains(t, text, "Created:         2000-01-01 00:00:00 UTC")

	out, err := FormatInfoJSON(info)
	require.NoError(t, err)
	require.Contains(t, out, `"frame_count": 3`)
}
