package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Range returns b[start:end] when 0 <= start <= end <= len(b).
//
// Section checksums are described as half-open ranges computed from untrusted
// length fields, so every caller goes through here before touching the bytes:
//
//	body, err := buf.Range(data, off+12, off+8+int(length))
//	if err != nil {
//	    return fmt.Errorf("ktn: %w", err)
//	}
func Range(b []byte, start, end int) ([]byte, error) {
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: range [%d, %d)", ErrOutOfBounds, start, end)
	}
	if end > len(b) {
		return nil, fmt.Errorf("%w: range [%d, %d) exceeds len=%d", ErrOutOfBounds, start, end, len(b))
	}
	return b[start:end], nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}

// Align4 rounds n up to the next multiple of 4.
func Align4(n int) int {
	return (n + 3) &^ 3
}
