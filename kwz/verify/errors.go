package verify

import (
	"fmt"

	"github.com/joshuapare/kwzverify/internal/format"
)

// SectionError reports a failure local to one section, with the file offset
// of the section magic.
type SectionError struct {
	Kind   format.SectionKind
	Offset int
	Err    error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("%s at offset 0x%X: %v", e.Kind, e.Offset, e.Err)
}

func (e *SectionError) Unwrap() error {
	return e.Err
}

func sectionErr(kind format.SectionKind, off int, err error) error {
	return &SectionError{Kind: kind, Offset: off, Err: err}
}
