// Package builder assembles KWZ buffers with correct checksums. It exists to
// produce fixtures: well-formed files, and files damaged in precise ways via
// Placement offsets.
package builder

import (
	"encoding/hex"
	"time"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/kwzverify/internal/buf"
	"github.com/joshuapare/kwzverify/internal/format"
)

// Placement records where a section landed in the built buffer.
type Placement struct {
	Kind   format.SectionKind
	Offset int
	// CRCOffset is the absolute offset of the stored checksum, or -1.
	CRCOffset int
	// BodyStart and BodyEnd bound the checksum-covered range. Both are zero
	// for kinds without a checksum.
	BodyStart int
	BodyEnd   int
	// End is the offset just past the section.
	End int
}

type part struct {
	kind   format.SectionKind
	tracks [format.SoundTrackCount]uint32
	body   []byte
	raw    bool
}

// Builder collects sections in file order. The zero value is not usable; call New.
//
// Example:
//
//	data := builder.New().
//	    Author("alice").
//	    FrameMeta(meta).
//	    FrameData(frames).
//	    Build()
//
// Thread safety: Builder instances are NOT thread-safe.
type Builder struct {
	info      format.HeaderInfo
	parts     []part
	signature []byte
}

// New returns a builder with an empty header.
func New() *Builder {
	return &Builder{info: format.HeaderInfo{Created: format.Epoch, Modified: format.Epoch}}
}

// Info replaces all header metadata.
func (b *Builder) Info(info format.HeaderInfo) *Builder {
	b.info = info
	return b
}

// Author sets the current author name.
func (b *Builder) Author(name string) *Builder {
	b.info.Author = name
	return b
}

// Thumbnail appends a KTN section with the given JPEG body.
func (b *Builder) Thumbnail(body []byte) *Builder {
	b.parts = append(b.parts, part{kind: format.KindThumbnail, body: body})
	return b
}

// FrameMeta appends a KMI section.
func (b *Builder) FrameMeta(body []byte) *Builder {
	b.parts = append(b.parts, part{kind: format.KindFrameMeta, body: body})
	return b
}

// FrameData appends a KMC section.
func (b *Builder) FrameData(body []byte) *Builder {
	b.parts = append(b.parts, part{kind: format.KindFrameData, body: body})
	return b
}

// Sound appends a KSN section with a track table and audio payload.
func (b *Builder) Sound(tracks [format.SoundTrackCount]uint32, audio []byte) *Builder {
	b.parts = append(b.parts, part{kind: format.KindSoundHeader, tracks: tracks, body: audio})
	return b
}

// Raw appends bytes verbatim, padded to a 4-byte boundary.
func (b *Builder) Raw(p []byte) *Builder {
	b.parts = append(b.parts, part{raw: true, body: p})
	return b
}

// Signature appends a trailing signature region after the last section.
func (b *Builder) Signature(sig []byte) *Builder {
	b.signature = sig
	return b
}

// Build returns the assembled buffer.
func (b *Builder) Build() []byte {
	data, _ := b.BuildLayout()
	return data
}

// BuildLayout returns the buffer and the placement of every section,
// starting with the header.
func (b *Builder) BuildLayout() ([]byte, []Placement) {
	data := b.header()
	layout := []Placement{{
		Kind:      format.KindHeader,
		CRCOffset: format.SectionCRCOffset,
		BodyStart: format.SectionBodyOffset,
		BodyEnd:   format.HeaderSize,
		End:       format.HeaderSize,
	}}

	for _, p := range b.parts {
		off := len(data)
		if p.raw {
			data = append(data, pad(p.body)...)
			continue
		}
		var pl Placement
		data, pl = appendSection(data, p)
		pl.Offset = off
		layout = append(layout, pl)
	}
	data = append(data, b.signature...)
	return data, layout
}

func appendSection(data []byte, p part) ([]byte, Placement) {
	off := len(data)
	sig, _ := p.kind.Signature()
	body := pad(p.body)
	pl := Placement{Kind: p.kind, CRCOffset: -1}

	var sec []byte
	switch p.kind {
	case format.KindFrameMeta:
		sec = make([]byte, format.SectionPreambleSize+len(body))
		copy(sec[format.SectionPreambleSize:], body)
	case format.KindSoundHeader:
		sec = make([]byte, format.SoundBodyOffset+len(body))
		for i, t := range p.tracks {
			format.PutU32(sec, format.SoundTrackSizesOffset+4*i, t)
		}
		copy(sec[format.SoundBodyOffset:], body)
		format.PutU32(sec, format.SoundCRCOffset, format.Checksum(body))
		pl.CRCOffset = off + format.SoundCRCOffset
		pl.BodyStart = off + format.SoundBodyOffset
	default:
		sec = make([]byte, format.SectionBodyOffset+len(body))
		copy(sec[format.SectionBodyOffset:], body)
		format.PutU32(sec, format.SectionCRCOffset, format.Checksum(body))
		pl.CRCOffset = off + format.SectionCRCOffset
		pl.BodyStart = off + format.SectionBodyOffset
	}
	copy(sec, sig[:])
	format.PutU32(sec, format.SectionLengthOffset, uint32(len(sec)-format.SectionPreambleSize))

	pl.End = off + len(sec)
	if pl.CRCOffset >= 0 {
		pl.BodyEnd = pl.End
	}
	return append(data, sec...), pl
}

func (b *Builder) header() []byte {
	h := make([]byte, format.HeaderSize)
	copy(h, format.HeaderSignature[:])
	format.PutU32(h, format.SectionLengthOffset, format.HeaderSize-format.SectionPreambleSize)

	info := b.info
	format.PutU32(h, format.HeaderCreatedOffset, seconds(info.Created))
	format.PutU32(h, format.HeaderModifiedOffset, seconds(info.Modified))
	format.PutU32(h, format.HeaderAppVersionOffset, info.AppVersion)
	putID(h, format.HeaderRootAuthorIDOffset, info.RootAuthorID)
	putID(h, format.HeaderParentAuthorIDOffset, info.ParentAuthorID)
	putID(h, format.HeaderAuthorIDOffset, info.AuthorID)
	putName(h, format.HeaderRootAuthorOffset, info.RootAuthor)
	putName(h, format.HeaderParentAuthorOffset, info.ParentAuthor)
	putName(h, format.HeaderAuthorOffset, info.Author)
	putASCII(h, format.HeaderRootFilenameOffset, info.RootFilename)
	putASCII(h, format.HeaderParentFilenameOffset, info.ParentFilename)
	putASCII(h, format.HeaderFilenameOffset, info.Filename)
	format.PutU16(h, format.HeaderFrameCountOffset, info.FrameCount)
	format.PutU16(h, format.HeaderThumbIndexOffset, info.ThumbnailFrame)
	format.PutU16(h, format.HeaderFlagsOffset, info.Flags)
	h[format.HeaderFrameSpeedOffset] = info.FrameSpeed
	h[format.HeaderLayerFlagsOffset] = info.LayerFlags

	format.PutU32(h, format.SectionCRCOffset, format.Checksum(h[format.SectionBodyOffset:]))
	return h
}

func seconds(t time.Time) uint32 {
	if t.Before(format.Epoch) {
		return 0
	}
	return uint32(t.Sub(format.Epoch) / time.Second)
}

func putID(h []byte, off int, id string) {
	raw, err := hex.DecodeString(id)
	if err != nil {
		return
	}
	copy(h[off:off+format.AuthorIDSize], raw)
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// putName writes name as UTF-16LE, truncated to whole code units that fit.
func putName(h []byte, off int, name string) {
	raw, err := utf16le.NewEncoder().Bytes([]byte(name))
	if err != nil {
		return
	}
	if len(raw) > format.AuthorNameSize {
		raw = raw[:format.AuthorNameSize&^1]
	}
	copy(h[off:off+format.AuthorNameSize], raw)
}

func putASCII(h []byte, off int, s string) {
	copy(h[off:off+format.FilenameSize], s)
}

func pad(p []byte) []byte {
	n := buf.Align4(len(p))
	if n == len(p) {
		return p
	}
	out := make([]byte, n)
	copy(out, p)
	return out
}
