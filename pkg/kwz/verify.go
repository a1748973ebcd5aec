package kwz

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/kwzverify/internal/format"
	"github.com/joshuapare/kwzverify/internal/mmfile"
	"github.com/joshuapare/kwzverify/kwz/verify"
)

// VerifyBytes verifies an in-memory file. data is never modified.
func VerifyBytes(data []byte, opts *Options) *Report {
	if opts == nil {
		opts = DefaultOptions()
	}
	return verify.Verify(data, opts.verifyOptions())
}

// VerifyFile loads path and verifies it. Load failures wrap
// ErrUnreadableInput; everything else is reported through the Report.
func VerifyFile(path string, opts *Options) (*Report, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadableInput, path, err)
	}
	defer cleanup()

	vopts := opts.verifyOptions()
	if vopts.Logger != nil {
		vopts.Logger = vopts.Logger.With("file", path)
	}
	return verify.Verify(data, vopts), nil
}

// FileResult pairs a path with its report or load error.
type FileResult struct {
	Path   string
	Report *Report
	Err    error
}

// VerifyFiles verifies paths concurrently. Each run owns its buffer, so no
// coordination is needed beyond the bound on parallelism. Results are in
// input order; per-file load errors land in FileResult.Err. The returned
// error is non-nil only when ctx is cancelled.
func VerifyFiles(ctx context.Context, paths []string, opts *Options) ([]FileResult, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency())
	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, err := VerifyFile(path, opts)
			results[i] = FileResult{Path: path, Report: report, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

// ReadInfo loads path and decodes its header metadata.
func ReadInfo(path string) (HeaderInfo, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return HeaderInfo{}, fmt.Errorf("%w: %s: %w", ErrUnreadableInput, path, err)
	}
	defer cleanup()
	return format.ParseHeaderInfo(data)
}
