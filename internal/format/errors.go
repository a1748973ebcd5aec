package format

import (
	"errors"

	"github.com/joshuapare/kwzverify/internal/buf"
)

var (
	// ErrOutOfBounds indicates a read or checksum range extends past the buffer.
	ErrOutOfBounds = buf.ErrOutOfBounds
	// ErrMagicMismatch indicates a structure had an unexpected magic.
	ErrMagicMismatch = errors.New("format: magic mismatch")
	// ErrUnreadableInput indicates the source file could not be loaded.
	ErrUnreadableInput = errors.New("format: unreadable input")
	// ErrScanLimit indicates the section scan did not terminate within its step budget.
	ErrScanLimit = errors.New("format: scan step limit exceeded")
)
