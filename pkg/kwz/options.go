package kwz

import (
	"log/slog"
	"runtime"

	"github.com/joshuapare/kwzverify/internal/format"
	"github.com/joshuapare/kwzverify/kwz/verify"
)

// Options controls verification.
type Options struct {
	// SignatureSize is the trailing signature region size. Zero disables
	// signature detection.
	SignatureSize int

	// MaxSteps caps scanner transitions per file. Zero derives it from the
	// file size.
	MaxSteps int

	// Concurrency bounds VerifyFiles. Zero uses GOMAXPROCS.
	Concurrency int

	// Logger receives debug traces. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns the options used when nil is passed.
func DefaultOptions() *Options {
	return &Options{SignatureSize: format.DefaultSignatureSize}
}

func (o *Options) verifyOptions() *verify.Options {
	return &verify.Options{
		SignatureSize: o.SignatureSize,
		MaxSteps:      o.MaxSteps,
		Logger:        o.Logger,
	}
}

func (o *Options) concurrency() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}
