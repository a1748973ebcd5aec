package buf

import (
	"errors"
	"testing"
)

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	if got, err := U8(data, 3); err != nil || got != 0x67 {
		t.Fatalf("U8 = 0x%x, %v want 0x67", got, err)
	}
	if got, err := U16LE(data, 0); err != nil || got != 0x2301 {
		t.Fatalf("U16LE = 0x%x, %v want 0x2301", got, err)
	}
	if got, err := U32LE(data, 0); err != nil || got != 0x67452301 {
		t.Fatalf("U32LE = 0x%x, %v want 0x67452301", got, err)
	}
	if got, err := U32LE(data, 4); err != nil || got != 0xefcdab89 {
		t.Fatalf("U32LE@4 = 0x%x, %v want 0xefcdab89", got, err)
	}
	if got, err := Bytes4(data, 2); err != nil || got != [4]byte{0x45, 0x67, 0x89, 0xab} {
		t.Fatalf("Bytes4 = %v, %v", got, err)
	}
}

func TestEndianOutOfBounds(t *testing.T) {
	data := []byte{0xAA, 0xBB, 0xCC}

	if _, err := U32LE(data, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("U32LE on short buffer: err=%v", err)
	}
	if _, err := U16LE(data, 2); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("U16LE straddling end: err=%v", err)
	}
	if _, err := U8(data, 3); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("U8 at len: err=%v", err)
	}
	if _, err := U8(data, -1); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("U8 at negative offset: err=%v", err)
	}
	if _, err := Bytes4(data, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Bytes4 on short buffer: err=%v", err)
	}
}

// Every in-bounds (offset, width) reconstructs the little-endian value byte by byte.
func TestU32LEMatchesManualReconstruction(t *testing.T) {
	data := make([]byte, 32)
	for i := range data {
		data[i] = byte(i*37 + 11)
	}
	for off := 0; off+4 <= len(data); off++ {
		got, err := U32LE(data, off)
		if err != nil {
			t.Fatalf("U32LE(%d): %v", off, err)
		}
		want := uint32(data[off]) | uint32(data[off+1])<<8 | uint32(data[off+2])<<16 | uint32(data[off+3])<<24
		if got != want {
			t.Fatalf("U32LE(%d) = 0x%08X, want 0x%08X", off, got, want)
		}
	}
	for off := len(data) - 3; off <= len(data); off++ {
		if _, err := U32LE(data, off); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("U32LE(%d) should be out of bounds, got %v", off, err)
		}
	}
}
