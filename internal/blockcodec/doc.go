// Package blockcodec compresses the payload block of an index snapshot.
//
// A block is laid out as
//
//	[UncompressedSize uint32][CompressedSize uint32][Data...]
//
// with CompressedSize == 0 marking a block stored raw. Raw storage is chosen
// whenever compression saves less than 10%.
package blockcodec
