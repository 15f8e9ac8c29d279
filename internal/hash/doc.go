// Package hash provides the checksums used to protect index snapshots.
//
// All checksums use CRC32-Castagnoli (CRC32C), which Go computes with hardware
// instructions on x86 (SSE4.2) and ARM (CRC extension). Snapshots store the
// checksum as a 4-byte little-endian trailer after the payload block:
//
//	buf = hash.AppendCRC32C(buf, block)
//	ok := hash.VerifyCRC32C(block, buf[len(buf)-hash.Size:])
package hash
