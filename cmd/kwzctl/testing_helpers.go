package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/kwzverify/internal/format"
	"github.com/joshuapare/kwzverify/kwz/builder"
)

// writeTestFile writes a KWZ fixture into a temp dir and returns its path.
func writeTestFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func fullFixture() []byte {
	return builder.New().
		Author("kwzctl").
		Thumbnail([]byte("thumbnail jpeg")).
		FrameMeta(make([]byte, 28)).
		FrameData([]byte("compressed frames")).
		Sound([format.SoundTrackCount]uint32{0, 4, 0, 0, 0, 0}, []byte("bgm!")).
		Build()
}

func commentFixture() []byte {
	return builder.New().
		FrameMeta(make([]byte, 28)).
		FrameData([]byte("frames")).
		Build()
}

// resetFlags restores every package-level flag to its default.
func resetFlags() {
	verbose, quiet, noColor, logJSON = false, false, true, false
	verifyFull = false
	verifyFormat = "text"
	verifySignatureSize = format.DefaultSignatureSize
	verifyMaxSteps = 0
	verifyJobs = 0
	infoJSON = false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}
