package itemindex

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/yxp1992/arx/internal/blockcodec"
	"github.com/yxp1992/arx/internal/conv"
	"github.com/yxp1992/arx/internal/hash"
	"github.com/yxp1992/arx/item"
	"github.com/yxp1992/arx/rowset"
)

// Compression selects how the snapshot block is compressed.
type Compression = blockcodec.Compression

// Supported snapshot compressions.
const (
	CompressionNone = blockcodec.None
	CompressionLZ4  = blockcodec.LZ4
	CompressionZSTD = blockcodec.ZSTD
)

const (
	snapshotMagic   = "ARXI"
	snapshotVersion = 1
	prefixSize      = len(snapshotMagic) + 2
)

// Save writes idx to w. Items are written in Items order, so equal indexes
// produce identical snapshots.
func (idx *Index) Save(w io.Writer, c Compression) (int64, error) {
	payload, err := idx.encode()
	if err != nil {
		return 0, err
	}
	block, err := blockcodec.Compress(payload, c)
	if err != nil {
		return 0, err
	}

	out := make([]byte, 0, prefixSize+len(block)+hash.Size)
	out = append(out, snapshotMagic...)
	out = append(out, snapshotVersion, byte(c))
	out = append(out, block...)
	out = hash.AppendCRC32C(out, block)

	n, err := w.Write(out)
	return int64(n), err
}

func (idx *Index) encode() ([]byte, error) {
	var buf bytes.Buffer
	var rows bytes.Buffer
	scratch := make([]byte, binary.MaxVarintLen64)

	n := binary.PutUvarint(scratch, uint64(idx.Len()))
	buf.Write(scratch[:n])

	for _, it := range idx.Items() {
		n = binary.PutVarint(scratch, int64(it.Column()))
		buf.Write(scratch[:n])
		n = binary.PutVarint(scratch, int64(it.Value()))
		buf.Write(scratch[:n])

		rows.Reset()
		if _, err := it.Rows().WriteTo(&rows); err != nil {
			return nil, fmt.Errorf("encode rows of %s: %w", it, err)
		}
		n = binary.PutUvarint(scratch, uint64(rows.Len()))
		buf.Write(scratch[:n])
		buf.Write(rows.Bytes())
	}
	return buf.Bytes(), nil
}

// ReadIndex reads an Index written by Save.
func ReadIndex(r io.Reader) (*Index, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < prefixSize {
		return nil, fmt.Errorf("%w: snapshot too short", ErrIncompatibleFormat)
	}
	if string(data[:len(snapshotMagic)]) != snapshotMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrIncompatibleFormat)
	}
	if v := data[len(snapshotMagic)]; v != snapshotVersion {
		return nil, fmt.Errorf("%w: version %d", ErrIncompatibleFormat, v)
	}
	c := Compression(data[len(snapshotMagic)+1])
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrIncompatibleFormat, c)
	}

	rest := data[prefixSize:]
	if len(rest) < blockcodec.HeaderSize+hash.Size {
		return nil, fmt.Errorf("%w: snapshot too short", ErrCorrupt)
	}
	block, trailer := rest[:len(rest)-hash.Size], rest[len(rest)-hash.Size:]
	if !hash.VerifyCRC32C(block, trailer) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorrupt)
	}

	payload, used, err := blockcodec.Decompress(block, c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if used != len(block) {
		return nil, fmt.Errorf("%w: %d unused block bytes", ErrCorrupt, len(block)-used)
	}

	idx, err := decode(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return idx, nil
}

func decode(payload []byte) (*Index, error) {
	r := bytes.NewReader(payload)

	count, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, err
	}
	n, err := conv.Uint64ToInt(count)
	if err != nil {
		return nil, err
	}
	// Every item takes at least three bytes.
	if n > r.Len()/3 {
		return nil, fmt.Errorf("item count %d exceeds payload", n)
	}

	idx := &Index{items: make(map[item.Key]*item.Item, n)}
	for i := range n {
		column, err := readInt32(r)
		if err != nil {
			return nil, fmt.Errorf("item %d column: %w", i, err)
		}
		value, err := readInt32(r)
		if err != nil {
			return nil, fmt.Errorf("item %d value: %w", i, err)
		}
		size, err := binary.ReadUvarint(r)
		if err != nil {
			return nil, fmt.Errorf("item %d rows: %w", i, err)
		}
		if size > uint64(r.Len()) {
			return nil, fmt.Errorf("item %d rows: length %d exceeds payload", i, size)
		}

		off := len(payload) - r.Len()
		chunk := payload[off : off+int(size)]
		if _, err := r.Seek(int64(size), io.SeekCurrent); err != nil {
			return nil, err
		}

		rows := rowset.New()
		if _, err := rows.ReadFrom(bytes.NewReader(chunk)); err != nil {
			return nil, fmt.Errorf("item %d rows: %w", i, err)
		}

		k := item.ComputeKey(column, value)
		if _, dup := idx.items[k]; dup {
			return nil, fmt.Errorf("duplicate item (%d,%d)", column, value)
		}
		it := item.New(column, value)
		it.AddRows(rows)
		idx.items[k] = it
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%d trailing bytes", r.Len())
	}
	return idx, nil
}

func readInt32(r io.ByteReader) (int32, error) {
	v, err := binary.ReadVarint(r)
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%d out of int32 range", v)
	}
	return int32(v), nil
}
