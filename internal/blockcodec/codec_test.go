package blockcodec

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compressible(n int) []byte {
	return bytes.Repeat([]byte("(3,17)(3,18)(4,-1)"), n)
}

func TestCompressRoundTrip(t *testing.T) {
	data := compressible(512)

	for _, c := range []Compression{None, LZ4, ZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			block, err := Compress(data, c)
			require.NoError(t, err)
			if c != None {
				assert.Less(t, len(block), len(data))
			}

			got, n, err := Decompress(block, c)
			require.NoError(t, err)
			assert.Equal(t, len(block), n)
			assert.Equal(t, data, got)
		})
	}
}

func TestCompress_IncompressibleStoredRaw(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	data := make([]byte, 4096)
	rng.Read(data)

	for _, c := range []Compression{LZ4, ZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			block, err := Compress(data, c)
			require.NoError(t, err)
			assert.Len(t, block, HeaderSize+len(data))

			got, _, err := Decompress(block, c)
			require.NoError(t, err)
			assert.Equal(t, data, got)
		})
	}
}

func TestCompress_Empty(t *testing.T) {
	block, err := Compress(nil, ZSTD)
	require.NoError(t, err)
	assert.Len(t, block, HeaderSize)

	got, n, err := Decompress(block, ZSTD)
	require.NoError(t, err)
	assert.Equal(t, HeaderSize, n)
	assert.Empty(t, got)
}

func TestDecompress_Errors(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		_, _, err := Decompress([]byte{1, 2, 3}, None)
		assert.ErrorIs(t, err, ErrShortBlock)
	})

	t.Run("truncated payload", func(t *testing.T) {
		block, err := Compress(compressible(64), LZ4)
		require.NoError(t, err)
		_, _, err = Decompress(block[:len(block)-1], LZ4)
		assert.ErrorIs(t, err, ErrShortBlock)
	})

	t.Run("unknown compression", func(t *testing.T) {
		_, err := Compress([]byte("x"), Compression(9))
		assert.ErrorIs(t, err, ErrUnknownCompression)
		_, _, err = Decompress(make([]byte, HeaderSize), Compression(9))
		assert.ErrorIs(t, err, ErrUnknownCompression)
	})

	t.Run("compressed block read as none", func(t *testing.T) {
		block, err := Compress(compressible(64), ZSTD)
		require.NoError(t, err)
		_, _, err = Decompress(block, None)
		assert.ErrorIs(t, err, ErrSizeMismatch)
	})
}
