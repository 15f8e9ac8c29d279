package arx

import (
	"context"
	"io"
	"time"

	"github.com/yxp1992/arx/itemindex"
	"github.com/yxp1992/arx/model"
)

// Index is the set of items found in a table.
type Index = itemindex.Index

// Build scans rows into an Index. Row i gets RowID i.
func Build(ctx context.Context, rows []model.Row, optFns ...Option) (*Index, error) {
	o := applyOptions(optFns)
	start := time.Now()

	idx, err := itemindex.Build(ctx, rows,
		itemindex.WithShards(o.shards),
		itemindex.WithLogger(o.logger.WithCount(len(rows)).Logger),
	)
	err = translateError(err)

	items := 0
	if idx != nil {
		items = idx.Len()
	}
	duration := time.Since(start)
	o.logger.LogScan(ctx, len(rows), items, duration, err)
	o.metricsCollector.RecordScan(len(rows), items, duration, err)

	if err != nil {
		return nil, err
	}
	return idx, nil
}

// Merge folds partial indexes into dst on the calling goroutine.
// The result does not depend on the order of partials.
func Merge(ctx context.Context, dst *Index, partials []*Index, optFns ...Option) {
	o := applyOptions(optFns)
	for _, p := range partials {
		dst.Merge(p)
		o.logger.LogMerge(ctx, p.Len(), dst.Len())
	}
}

// Save writes a snapshot of idx to w.
func Save(ctx context.Context, w io.Writer, idx *Index, optFns ...Option) (int64, error) {
	o := applyOptions(optFns)
	start := time.Now()

	n, err := idx.Save(w, o.compression)
	err = translateError(err)

	o.logger.LogSnapshot(ctx, "save", n, err)
	o.metricsCollector.RecordSave(n, time.Since(start), err)
	return n, err
}

// Load reads a snapshot written by Save.
func Load(ctx context.Context, r io.Reader, optFns ...Option) (*Index, error) {
	o := applyOptions(optFns)
	start := time.Now()

	cr := &countingReader{r: r}
	idx, err := itemindex.ReadIndex(cr)
	err = translateError(err)

	o.logger.LogSnapshot(ctx, "load", cr.n, err)
	o.metricsCollector.RecordLoad(cr.n, time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return idx, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
