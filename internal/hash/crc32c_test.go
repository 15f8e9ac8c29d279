package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRC32C_KnownVector(t *testing.T) {
	// RFC 3720 test vector: 32 bytes of zeros.
	assert.Equal(t, uint32(0x8a9136aa), CRC32C(make([]byte, 32)))
}

func TestAppendAndVerify(t *testing.T) {
	data := []byte("column,value")
	buf := AppendCRC32C(nil, data)
	require.Len(t, buf, Size)
	assert.True(t, VerifyCRC32C(data, buf))

	t.Run("tampered data", func(t *testing.T) {
		assert.False(t, VerifyCRC32C([]byte("column,valuE"), buf))
	})

	t.Run("short trailer", func(t *testing.T) {
		assert.False(t, VerifyCRC32C(data, buf[:2]))
	})
}
