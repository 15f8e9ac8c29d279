package blockcodec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression defines the compression algorithm used for a block.
type Compression uint8

const (
	// None stores the block raw.
	None Compression = 0
	// LZ4 uses LZ4 block compression (fast).
	LZ4 Compression = 1
	// ZSTD uses ZSTD block compression (better ratio).
	ZSTD Compression = 2
)

// HeaderSize is the size of the block header in bytes.
const HeaderSize = 8

var (
	// ErrShortBlock is returned when a block is smaller than its header claims.
	ErrShortBlock = errors.New("block data too small")
	// ErrSizeMismatch is returned when a decompressed block has the wrong length.
	ErrSizeMismatch = errors.New("decompressed size mismatch")
	// ErrUnknownCompression is returned for an unsupported Compression value.
	ErrUnknownCompression = errors.New("unknown compression")
)

// String returns the algorithm name.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// Valid reports whether c is a known algorithm.
func (c Compression) Valid() bool {
	return c <= ZSTD
}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// Compress returns data framed as a block, compressed with c when that helps.
func Compress(data []byte, c Compression) ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
	}
	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("block of %d bytes exceeds 4GiB", len(data))
	}

	var compressed []byte
	switch c {
	case LZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}
		compressed = buf[:n] // n == 0 means incompressible
	case ZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(data, nil)
		zstdEncoderPool.Put(enc)
	}

	if c == None || len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		return frame(data, len(data), 0), nil
	}
	return frame(compressed, len(data), len(compressed)), nil
}

func frame(payload []byte, uncompressedSize, compressedSize int) []byte {
	out := make([]byte, HeaderSize+len(payload))
	binary.LittleEndian.PutUint32(out[0:], uint32(uncompressedSize))
	binary.LittleEndian.PutUint32(out[4:], uint32(compressedSize))
	copy(out[HeaderSize:], payload)
	return out
}

// Decompress decodes a block written by Compress with the same algorithm.
// It returns the decoded data and the number of block bytes consumed.
func Decompress(block []byte, c Compression) ([]byte, int, error) {
	if !c.Valid() {
		return nil, 0, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
	}
	if len(block) < HeaderSize {
		return nil, 0, fmt.Errorf("%w: missing header", ErrShortBlock)
	}

	uncompressedSize := binary.LittleEndian.Uint32(block[0:])
	compressedSize := binary.LittleEndian.Uint32(block[4:])

	if compressedSize == 0 {
		end := uint64(HeaderSize) + uint64(uncompressedSize)
		if uint64(len(block)) < end {
			return nil, 0, ErrShortBlock
		}
		return block[HeaderSize:end], int(end), nil
	}

	end := uint64(HeaderSize) + uint64(compressedSize)
	if uint64(len(block)) < end {
		return nil, 0, ErrShortBlock
	}
	src := block[HeaderSize:end]

	switch c {
	case LZ4:
		result := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(src, result)
		if err != nil {
			return nil, 0, err
		}
		if uint32(n) != uncompressedSize {
			return nil, 0, ErrSizeMismatch
		}
		return result, int(end), nil
	case ZSTD:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)

		decoded, err := dec.DecodeAll(src, make([]byte, 0, uncompressedSize))
		if err != nil {
			return nil, 0, err
		}
		if uint32(len(decoded)) != uncompressedSize {
			return nil, 0, ErrSizeMismatch
		}
		return decoded, int(end), nil
	default:
		// A compressed payload under None means the header is corrupt.
		return nil, 0, fmt.Errorf("%w: compressed block under %s", ErrSizeMismatch, c)
	}
}
