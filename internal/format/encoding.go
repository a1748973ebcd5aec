package format

import "encoding/binary"

// Writers for constructing KWZ buffers. They panic on short buffers like the
// encoding/binary functions they wrap; only trusted, pre-sized buffers should
// be passed.

// PutU16 writes a uint16 value to the buffer at the specified offset in little-endian format.
func PutU16(b []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(b[off:off+2], v)
}

// PutU32 writes a uint32 value to the buffer at the specified offset in little-endian format.
func PutU32(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:off+4], v)
}
