package format

import (
	"hash/crc32"

	"github.com/joshuapare/kwzverify/internal/buf"
)

// crcTable is the standard reflected CRC-32 table (polynomial 0xEDB88320).
var crcTable = crc32.IEEETable

// Update feeds p into a raw CRC-32 register. The register is neither
// pre-inverted nor post-inverted here.
func Update(reg uint32, p []byte) uint32 {
	for _, v := range p {
		reg = crcTable[byte(reg)^v] ^ (reg >> 8)
	}
	return reg
}

// CRC32 computes the CRC-32 of b[start:start+length]. The range is checked
// before any byte is read.
func CRC32(b []byte, start, length int) (uint32, error) {
	end, ok := buf.AddOverflowSafe(start, length)
	if !ok {
		end = -1
	}
	p, err := buf.Range(b, start, end)
	if err != nil {
		return 0, err
	}
	return ^Update(0xFFFFFFFF, p), nil
}

// Checksum returns the CRC-32 of all of p.
func Checksum(p []byte) uint32 {
	return ^Update(0xFFFFFFFF, p)
}
