// Package format houses low-level decoders for the KWZ animation container
// (Flipnote Studio 3D). It knows the magics, field offsets and checksum
// scopes of each section type; traversal and verdicts live in kwz/verify.
package format

var (
	// HeaderSignature is the four-byte signature at the start of every file.
	// Layout:
	//   0x00  'K' 'F' 'H' 0x14
	HeaderSignature = [4]byte{'K', 'F', 'H', 0x14}

	// ThumbnailSignature identifies the KTN (JPEG thumbnail) section.
	ThumbnailSignature = [4]byte{'K', 'T', 'N', 0x02}

	// FrameMetaSignature identifies the KMI (per-frame metadata) section.
	FrameMetaSignature = [4]byte{'K', 'M', 'I', 0x05}

	// FrameDataSignature identifies the KMC (compressed frame data) section.
	FrameDataSignature = [4]byte{'K', 'M', 'C', 0x02}

	// SoundHeaderSignature identifies the KSN (sound header + audio) section.
	SoundHeaderSignature = [4]byte{'K', 'S', 'N', 0x01}
)

const (
	// MagicLeadByte is the first byte shared by every section magic.
	MagicLeadByte = 'K'

	// MagicSize is the size of a section magic (3 type bytes + flag byte).
	MagicSize = 4

	// SectionPreambleSize covers the magic and the u32 length field that
	// every section starts with. A section occupies PreambleSize+length bytes.
	SectionPreambleSize = 8

	// SectionLengthOffset is the offset of the u32 body length, relative to
	// the section magic.
	SectionLengthOffset = 0x04

	// SectionCRCOffset is where KFH, KTN and KMC keep their stored CRC-32.
	SectionCRCOffset = 0x08

	// SectionBodyOffset is where the CRC-covered body of KFH, KTN and KMC
	// begins. The covered range is [SectionBodyOffset, 8+length).
	SectionBodyOffset = 0x0C

	// SectionAlignment is the alignment of every section start.
	SectionAlignment = 4

	// DefaultSignatureSize is the size of the optional RSA signature that
	// may trail the last section.
	DefaultSignatureSize = 256
)

// KSN layout, relative to the section magic.
//
//	Offset  Size  Field
//	0x00    4     'K' 'S' 'N' 0x01
//	0x04    4     Body length
//	0x08    24    Six u32 track size words
//	0x20    4     CRC-32 of the audio payload
//	0x24    ...   Audio payload
const (
	SoundTrackSizesOffset = 0x08
	SoundTrackCount       = 6
	SoundCRCOffset        = 0x20
	SoundBodyOffset       = 0x24
)

// KFH layout, relative to file offset 0.
//
//	Offset  Size  Field
//	0x00    4     'K' 'F' 'H' 0x14
//	0x04    4     Body length
//	0x08    4     CRC-32 of [0x0C, 8+length)
//	0x0C    4     Creation timestamp (seconds since 2000-01-01)
//	0x10    4     Last edit timestamp
//	0x14    4     App version
//	0x18    10    Root author ID
//	0x22    10    Parent author ID
//	0x2C    10    Current author ID
//	0x36    22    Root author name (UTF-16LE)
//	0x4C    22    Parent author name
//	0x62    22    Current author name
//	0x78    28    Root filename
//	0x94    28    Parent filename
//	0xB0    28    Current filename
//	0xCC    2     Frame count
//	0xCE    2     Thumbnail frame index
//	0xD0    2     Flags
//	0xD2    1     Frame speed
//	0xD3    1     Layer visibility flags
const (
	HeaderCreatedOffset        = 0x0C
	HeaderModifiedOffset       = 0x10
	HeaderAppVersionOffset     = 0x14
	HeaderRootAuthorIDOffset   = 0x18
	HeaderParentAuthorIDOffset = 0x22
	HeaderAuthorIDOffset       = 0x2C
	HeaderRootAuthorOffset     = 0x36
	HeaderParentAuthorOffset   = 0x4C
	HeaderAuthorOffset         = 0x62
	HeaderRootFilenameOffset   = 0x78
	HeaderParentFilenameOffset = 0x94
	HeaderFilenameOffset       = 0xB0
	HeaderFrameCountOffset     = 0xCC
	HeaderThumbIndexOffset     = 0xCE
	HeaderFlagsOffset          = 0xD0
	HeaderFrameSpeedOffset     = 0xD2
	HeaderLayerFlagsOffset     = 0xD3

	AuthorIDSize   = 10
	AuthorNameSize = 22
	FilenameSize   = 28

	// HeaderSize is the size of a complete KFH including its preamble.
	HeaderSize = 0xD4
)
