package kwz

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/kwzverify/internal/format"
	"github.com/joshuapare/kwzverify/kwz/builder"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func fullFile() []byte {
	return builder.New().
		Author("alice").
		Thumbnail([]byte("jpeg bytes go here")).
		FrameMeta(make([]byte, 28)).
		FrameData([]byte("frame data frame data frame data")).
		Sound([format.SoundTrackCount]uint32{0, 12, 0, 0, 0, 0}, []byte("audio bytes!")).
		Build()
}

func commentFile() []byte {
	return builder.New().
		FrameMeta(make([]byte, 28)).
		FrameData([]byte("frames")).
		Build()
}

func TestVerifyBytes(t *testing.T) {
	report := VerifyBytes(fullFile(), nil)
	require.True(t, report.FullValid())
	require.Equal(t, VariantKWZ, report.Variant())

	report = VerifyBytes(commentFile(), nil)
	require.True(t, report.MinimalValid())
	require.Equal(t, VariantKWC, report.Variant())
}

func TestVerifyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "note.kwz", fullFile())

	report, err := VerifyFile(path, nil)
	require.NoError(t, err)
	require.True(t, report.FullValid())
	require.Equal(t, StatusValid, report.Status(KindSoundHeader))
}

func TestVerifyFile_Unreadable(t *testing.T) {
	_, err := VerifyFile(filepath.Join(t.TempDir(), "missing.kwz"), nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnreadableInput))
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestVerifyFiles_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	damaged := commentFile()
	damaged[len(damaged)-1] ^= 0xFF

	paths := []string{
		writeFile(t, dir, "a.kwz", fullFile()),
		filepath.Join(dir, "missing.kwz"),
		writeFile(t, dir, "c.kwc", commentFile()),
		writeFile(t, dir, "d.kwc", damaged),
	}

	results, err := VerifyFiles(context.Background(), paths, &Options{
		SignatureSize: format.DefaultSignatureSize,
		Concurrency:   2,
	})
	require.NoError(t, err)
	require.Len(t, results, len(paths))
	for i, r := range results {
		require.Equal(t, paths[i], r.Path)
	}

	require.Equal(t, VariantKWZ, results[0].Report.Variant())
	require.True(t, errors.Is(results[1].Err, ErrUnreadableInput))
	require.Nil(t, results[1].Report)
	require.Equal(t, VariantKWC, results[2].Report.Variant())
	require.Equal(t, VariantInvalid, results[3].Report.Variant())
	require.Equal(t, StatusInvalid, results[3].Report.Status(KindFrameData))
}

func TestVerifyFiles_Cancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.kwz", fullFile())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := VerifyFiles(ctx, []string{path, path}, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestVerifyFiles_Many(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 32; i++ {
		paths = append(paths, writeFile(t, dir, fmt.Sprintf("%02d.kwz", i), fullFile()))
	}
	results, err := VerifyFiles(context.Background(), paths, nil)
	require.NoError(t, err)
	for _, r := range results {
		require.NoError(t, r.Err)
		require.True(t, r.Report.FullValid())
	}
}

func TestReadInfo(t *testing.T) {
	created := time.Date(2016, 5, 1, 12, 0, 0, 0, time.UTC)
	data := builder.New().
		Info(HeaderInfo{
			Created:    created,
			Modified:   created.Add(time.Hour),
			Author:     "きつね",
			AuthorID:   "0011223344556677aabb",
			Filename:   "cx4ndfpjlw0bzq4ky0d1rjtl2ags",
			FrameCount: 42,
			FrameSpeed: 6,
		}).
		FrameMeta(nil).
		FrameData(nil).
		Build()
	path := writeFile(t, t.TempDir(), "info.kwz", data)

	info, err := ReadInfo(path)
	require.NoError(t, err)
	require.Equal(t, "きつね", info.Author)
	require.Equal(t, "0011223344556677aabb", info.AuthorID)
	require.Equal(t, "cx4ndfpjlw0bzq4ky0d1rjtl2ags", info.Filename)
	require.True(t, created.Equal(info.Created), "created=%v", info.Created)
	require.True(t, created.Add(time.Hour).Equal(info.Modified), "modified=%v", info.Modified)
	require.Equal(t, uint16(42), info.FrameCount)
	require.Equal(t, uint8(6), info.FrameSpeed)

	_, err = ReadInfo(filepath.Join(t.TempDir(), "nope.kwz"))
	require.True(t, errors.Is(err, ErrUnreadableInput))
}
