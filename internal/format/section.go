package format

import "fmt"

// SectionKind identifies a section type by its full 4-byte magic.
type SectionKind uint8

const (
	KindUnknown SectionKind = iota
	KindHeader
	KindThumbnail
	KindFrameMeta
	KindFrameData
	KindSoundHeader
)

// Kinds lists the recognized kinds in report order.
var Kinds = []SectionKind{KindHeader, KindThumbnail, KindFrameMeta, KindFrameData, KindSoundHeader}

var kindTags = map[SectionKind]string{
	KindUnknown:     "???",
	KindHeader:      "KFH",
	KindThumbnail:   "KTN",
	KindFrameMeta:   "KMI",
	KindFrameData:   "KMC",
	KindSoundHeader: "KSN",
}

// String returns the three-letter section tag.
func (k SectionKind) String() string {
	if s, ok := kindTags[k]; ok {
		return s
	}
	return fmt.Sprintf("SectionKind(%d)", uint8(k))
}

// MarshalText encodes the kind as its tag so reports stay readable in JSON and YAML.
func (k SectionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Description is a human-readable name for the kind.
func (k SectionKind) Description() string {
	switch k {
	case KindHeader:
		return "file header"
	case KindThumbnail:
		return "thumbnail"
	case KindFrameMeta:
		return "frame metadata"
	case KindFrameData:
		return "frame data"
	case KindSoundHeader:
		return "sound header"
	default:
		return "unknown section"
	}
}

// Signature returns the exact 4-byte magic for k. Unknown has none.
func (k SectionKind) Signature() ([4]byte, bool) {
	switch k {
	case KindHeader:
		return HeaderSignature, true
	case KindThumbnail:
		return ThumbnailSignature, true
	case KindFrameMeta:
		return FrameMetaSignature, true
	case KindFrameData:
		return FrameDataSignature, true
	case KindSoundHeader:
		return SoundHeaderSignature, true
	}
	return [4]byte{}, false
}

// ClassifyMagic maps a 4-byte magic to a variable section kind. The header
// magic is only valid at offset 0, so it classifies as unknown here.
func ClassifyMagic(m [4]byte) SectionKind {
	switch m {
	case ThumbnailSignature:
		return KindThumbnail
	case FrameMetaSignature:
		return KindFrameMeta
	case FrameDataSignature:
		return KindFrameData
	case SoundHeaderSignature:
		return KindSoundHeader
	}
	return KindUnknown
}
