package verify

import (
	"io"
	"log/slog"

	"github.com/joshuapare/kwzverify/internal/format"
)

// Options controls a verification run.
type Options struct {
	// SignatureSize is the size of the trailing signature region. When the
	// next section offset lands exactly SignatureSize bytes before the end of
	// the buffer, the scan stops successfully. Zero disables the check.
	SignatureSize int

	// MaxSteps caps scanner transitions. Zero derives the cap from the buffer
	// length (one step per 4-byte block plus one).
	MaxSteps int

	// Logger receives debug traces of scanner transitions. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns the options used when Verify is passed nil.
func DefaultOptions() *Options {
	return &Options{
		SignatureSize: format.DefaultSignatureSize,
	}
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return discard
	}
	return o.Logger
}

func (o *Options) maxSteps(size int) int {
	if o.MaxSteps > 0 {
		return o.MaxSteps
	}
	return (size+format.SectionAlignment-1)/format.SectionAlignment + 1
}
