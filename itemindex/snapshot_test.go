package itemindex

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yxp1992/arx/model"
	"github.com/yxp1992/arx/testutil"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	table := testutil.NewRNG(11).Table(2000, 5, 30)
	table = append(table, model.Row{math.MinInt32, math.MaxInt32, -1, 0, 1})

	want, err := Build(context.Background(), table, WithShards(3))
	require.NoError(t, err)

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer
			n, err := want.Save(&buf, c)
			require.NoError(t, err)
			assert.Equal(t, int64(buf.Len()), n)

			got, err := ReadIndex(&buf)
			require.NoError(t, err)
			assertSameIndex(t, want, got)
		})
	}
}

func TestSnapshot_Deterministic(t *testing.T) {
	a, b := New(), New()
	observeAll(a, people, 0)
	for i := len(people) - 1; i >= 0; i-- {
		b.Observe(model.RowID(i), people[i])
	}

	var bufA, bufB bytes.Buffer
	_, err := a.Save(&bufA, CompressionNone)
	require.NoError(t, err)
	_, err = b.Save(&bufB, CompressionNone)
	require.NoError(t, err)
	assert.Equal(t, bufA.Bytes(), bufB.Bytes())
}

func TestSnapshot_Empty(t *testing.T) {
	var buf bytes.Buffer
	_, err := New().Save(&buf, CompressionZSTD)
	require.NoError(t, err)

	got, err := ReadIndex(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestSnapshot_MergePartials(t *testing.T) {
	left, right := New(), New()
	observeAll(left, people[:3], 0)
	observeAll(right, people[3:], 3)

	var lb, rb bytes.Buffer
	_, err := left.Save(&lb, CompressionLZ4)
	require.NoError(t, err)
	_, err = right.Save(&rb, CompressionLZ4)
	require.NoError(t, err)

	merged := New()
	for _, buf := range []*bytes.Buffer{&lb, &rb} {
		p, err := ReadIndex(buf)
		require.NoError(t, err)
		merged.Merge(p)
	}

	want := New()
	observeAll(want, people, 0)
	assertSameIndex(t, want, merged)
}

func TestReadIndex_IncompatibleFormat(t *testing.T) {
	var buf bytes.Buffer
	_, err := New().Save(&buf, CompressionNone)
	require.NoError(t, err)
	good := buf.Bytes()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short", []byte("ARX")},
		{"bad magic", append([]byte("XXXX"), good[4:]...)},
		{"bad version", patch(good, 4, 99)},
		{"bad compression", patch(good, 5, 77)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadIndex(bytes.NewReader(tt.data))
			assert.ErrorIs(t, err, ErrIncompatibleFormat)
		})
	}
}

func TestReadIndex_DetectsCorruption(t *testing.T) {
	idx := New()
	observeAll(idx, people, 0)

	for _, c := range []Compression{CompressionNone, CompressionZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer
			_, err := idx.Save(&buf, c)
			require.NoError(t, err)
			good := buf.Bytes()

			for pos := prefixSize; pos < len(good); pos++ {
				_, err := ReadIndex(bytes.NewReader(patch(good, pos, good[pos]^0xFF)))
				require.ErrorIs(t, err, ErrCorrupt, "flipped byte %d", pos)
			}

			_, err = ReadIndex(bytes.NewReader(good[:len(good)-1]))
			assert.ErrorIs(t, err, ErrCorrupt)
			_, err = ReadIndex(bytes.NewReader(good[:prefixSize+2]))
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, assert.AnError }

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, assert.AnError }

func TestSnapshot_IOErrors(t *testing.T) {
	_, err := New().Save(failingWriter{}, CompressionNone)
	assert.ErrorIs(t, err, assert.AnError)

	_, err = ReadIndex(failingReader{})
	assert.ErrorIs(t, err, assert.AnError)
}

func patch(data []byte, pos int, b byte) []byte {
	out := bytes.Clone(data)
	out[pos] = b
	return out
}
