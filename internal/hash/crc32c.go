package hash

import (
	"encoding/binary"
	"hash/crc32"
)

// Size is the encoded size of a checksum trailer in bytes.
const Size = 4

var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// AppendCRC32C appends the little-endian CRC32C of data to dst.
func AppendCRC32C(dst, data []byte) []byte {
	return binary.LittleEndian.AppendUint32(dst, CRC32C(data))
}

// VerifyCRC32C reports whether trailer holds the CRC32C of data.
// A trailer shorter than Size never verifies.
func VerifyCRC32C(data, trailer []byte) bool {
	if len(trailer) < Size {
		return false
	}
	return binary.LittleEndian.Uint32(trailer) == CRC32C(data)
}
