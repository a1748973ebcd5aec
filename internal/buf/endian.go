// Package buf contains bounds-checked little-endian accessors. Every offset in
// a KWZ file comes from untrusted input, so reads never truncate silently: a
// read that would pass the end of the buffer returns ErrOutOfBounds instead.
package buf

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrOutOfBounds reports a read or range that extends past the buffer.
var ErrOutOfBounds = errors.New("out of bounds")

func window(b []byte, off, width int) ([]byte, error) {
	w, ok := Slice(b, off, width)
	if !ok {
		return nil, fmt.Errorf("%w: read of %d bytes at 0x%X (len=%d)", ErrOutOfBounds, width, off, len(b))
	}
	return w, nil
}

// U8 reads the byte at off.
func U8(b []byte, off int) (uint8, error) {
	w, err := window(b, off, 1)
	if err != nil {
		return 0, err
	}
	return w[0], nil
}

// U16LE reads a little-endian uint16 at off.
func U16LE(b []byte, off int) (uint16, error) {
	w, err := window(b, off, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(w), nil
}

// U32LE reads a little-endian uint32 at off.
func U32LE(b []byte, off int) (uint32, error) {
	w, err := window(b, off, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(w), nil
}

// Bytes4 returns the four bytes at off as an array, for magic comparisons.
func Bytes4(b []byte, off int) ([4]byte, error) {
	var out [4]byte
	w, err := window(b, off, 4)
	if err != nil {
		return out, err
	}
	copy(out[:], w)
	return out, nil
}
