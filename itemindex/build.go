package itemindex

import (
	"context"
	"fmt"
	"time"

	"github.com/yxp1992/arx/internal/conv"
	"github.com/yxp1992/arx/item"
	"github.com/yxp1992/arx/model"
	"golang.org/x/sync/errgroup"
)

// cancelCheckInterval is how many rows a worker scans between context checks.
const cancelCheckInterval = 1024

// Build scans rows into a new Index. Row i gets RowID i.
//
// All rows must have the width of rows[0]; otherwise Build returns a
// *RowWidthError. Cancelling ctx stops the workers and returns ctx's error.
func Build(ctx context.Context, rows []model.Row, optFns ...Option) (*Index, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	n := len(rows)
	if n == 0 {
		return New(), nil
	}
	if _, err := conv.IntToUint32(n - 1); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTooManyRows, err)
	}
	width := rows[0].Width()
	if _, err := conv.IntToInt32(width); err != nil {
		return nil, fmt.Errorf("%w: row width: %w", item.ErrOutOfRange, err)
	}

	shards := min(o.shards, n)
	partials := make([]*Index, shards)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for s := range shards {
		lo, hi := s*n/shards, (s+1)*n/shards
		g.Go(func() error {
			p := New()
			for i := lo; i < hi; i++ {
				if (i-lo)%cancelCheckInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				if rows[i].Width() != width {
					return &RowWidthError{Row: i, Expected: width, Actual: rows[i].Width()}
				}
				p.Observe(model.RowID(i), rows[i])
			}
			partials[s] = p
			o.logger.Debug("shard scanned", "shard", s, "rows", hi-lo, "items", p.Len())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	idx := partials[0]
	for _, p := range partials[1:] {
		idx.Merge(p)
	}

	o.logger.Debug("index built",
		"rows", n,
		"columns", width,
		"shards", shards,
		"items", idx.Len(),
		"duration", time.Since(start),
	)
	return idx, nil
}
