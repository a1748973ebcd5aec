package format

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/kwzverify/internal/buf"
)

// Header is the fixed preamble of the KFH section at file offset 0.
type Header struct {
	Magic  [4]byte
	Length uint32
}

// SignatureValid reports whether the header carries the exact file signature.
func (h Header) SignatureValid() bool {
	return h.Magic == HeaderSignature
}

// SectionsStart is the offset of the first variable section.
func (h Header) SectionsStart() int {
	return int(h.Length) + SectionPreambleSize
}

// ParseHeader reads the header magic and body length. It does not check the
// signature so callers can keep scanning a file with a damaged magic.
func ParseHeader(b []byte) (Header, error) {
	magic, err := buf.Bytes4(b, 0)
	if err != nil {
		return Header{}, fmt.Errorf("kfh magic: %w", err)
	}
	length, err := buf.U32LE(b, SectionLengthOffset)
	if err != nil {
		return Header{}, fmt.Errorf("kfh length: %w", err)
	}
	return Header{Magic: magic, Length: length}, nil
}

// HeaderInfo is the descriptive metadata stored in the KFH body.
type HeaderInfo struct {
	Created        time.Time `json:"created" yaml:"created"`
	Modified       time.Time `json:"modified" yaml:"modified"`
	AppVersion     uint32    `json:"app_version" yaml:"app_version"`
	RootAuthorID   string    `json:"root_author_id" yaml:"root_author_id"`
	ParentAuthorID string    `json:"parent_author_id" yaml:"parent_author_id"`
	AuthorID       string    `json:"author_id" yaml:"author_id"`
	RootAuthor     string    `json:"root_author" yaml:"root_author"`
	ParentAuthor   string    `json:"parent_author" yaml:"parent_author"`
	Author         string    `json:"author" yaml:"author"`
	RootFilename   string    `json:"root_filename" yaml:"root_filename"`
	ParentFilename string    `json:"parent_filename" yaml:"parent_filename"`
	Filename       string    `json:"filename" yaml:"filename"`
	FrameCount     uint16    `json:"frame_count" yaml:"frame_count"`
	ThumbnailFrame uint16    `json:"thumbnail_frame" yaml:"thumbnail_frame"`
	Flags          uint16    `json:"flags" yaml:"flags"`
	FrameSpeed     uint8     `json:"frame_speed" yaml:"frame_speed"`
	LayerFlags     uint8     `json:"layer_flags" yaml:"layer_flags"`
}

// Epoch is the zero point of KFH timestamps.
var Epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// ParseHeaderInfo decodes the metadata fields of the KFH. Every field is read
// through the bounds-checked accessor, so a short or truncated header returns
// ErrOutOfBounds rather than partial data.
func ParseHeaderInfo(b []byte) (HeaderInfo, error) {
	hdr, err := ParseHeader(b)
	if err != nil {
		return HeaderInfo{}, err
	}
	if !hdr.SignatureValid() {
		return HeaderInfo{}, fmt.Errorf("kfh: %w", ErrMagicMismatch)
	}
	if hdr.SectionsStart() < HeaderSize {
		return HeaderInfo{}, fmt.Errorf("kfh: body length %d too short for metadata: %w", hdr.Length, ErrOutOfBounds)
	}

	r := fieldReader{b: b}
	info := HeaderInfo{
		Created:        r.timestamp(HeaderCreatedOffset),
		Modified:       r.timestamp(HeaderModifiedOffset),
		AppVersion:     r.u32(HeaderAppVersionOffset),
		RootAuthorID:   r.id(HeaderRootAuthorIDOffset),
		ParentAuthorID: r.id(HeaderParentAuthorIDOffset),
		AuthorID:       r.id(HeaderAuthorIDOffset),
		RootAuthor:     r.utf16(HeaderRootAuthorOffset, AuthorNameSize),
		ParentAuthor:   r.utf16(HeaderParentAuthorOffset, AuthorNameSize),
		Author:         r.utf16(HeaderAuthorOffset, AuthorNameSize),
		RootFilename:   r.ascii(HeaderRootFilenameOffset, FilenameSize),
		ParentFilename: r.ascii(HeaderParentFilenameOffset, FilenameSize),
		Filename:       r.ascii(HeaderFilenameOffset, FilenameSize),
		FrameCount:     r.u16(HeaderFrameCountOffset),
		ThumbnailFrame: r.u16(HeaderThumbIndexOffset),
		Flags:          r.u16(HeaderFlagsOffset),
		FrameSpeed:     r.u8(HeaderFrameSpeedOffset),
		LayerFlags:     r.u8(HeaderLayerFlagsOffset),
	}
	if r.err != nil {
		return HeaderInfo{}, fmt.Errorf("kfh: %w", r.err)
	}
	return info, nil
}

// fieldReader keeps the first error so a sequence of field reads can be
// checked once at the end.
type fieldReader struct {
	b   []byte
	err error
}

func (r *fieldReader) slice(off, n int) []byte {
	if r.err != nil {
		return nil
	}
	p, err := buf.Range(r.b, off, off+n)
	if err != nil {
		r.err = err
		return nil
	}
	return p
}

func (r *fieldReader) u8(off int) uint8 {
	if p := r.slice(off, 1); p != nil {
		return p[0]
	}
	return 0
}

func (r *fieldReader) u16(off int) uint16 {
	if r.err != nil {
		return 0
	}
	v, err := buf.U16LE(r.b, off)
	r.err = err
	return v
}

func (r *fieldReader) u32(off int) uint32 {
	if r.err != nil {
		return 0
	}
	v, err := buf.U32LE(r.b, off)
	r.err = err
	return v
}

func (r *fieldReader) timestamp(off int) time.Time {
	return Epoch.Add(time.Duration(r.u32(off)) * time.Second)
}

func (r *fieldReader) id(off int) string {
	return hex.EncodeToString(r.slice(off, AuthorIDSize))
}

func (r *fieldReader) ascii(off, n int) string {
	p := r.slice(off, n)
	if i := bytes.IndexByte(p, 0); i >= 0 {
		p = p[:i]
	}
	return string(p)
}

func (r *fieldReader) utf16(off, n int) string {
	p := r.slice(off, n)
	// Names are NUL-padded; cut at the first zero code unit.
	for i := 0; i+1 < len(p); i += 2 {
		if p[i] == 0 && p[i+1] == 0 {
			p = p[:i]
			break
		}
	}
	if len(p)%2 == 1 {
		p = p[:len(p)-1]
	}
	s, err := utf16le.NewDecoder().Bytes(p)
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(s), "\x00")
}
