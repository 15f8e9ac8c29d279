package testutil

import (
	"math/rand"
	"sync"

	"github.com/yxp1992/arx/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int32 returns a pseudo-random int32 over the full range, negatives included.
func (r *RNG) Int32() int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int32(r.rand.Uint32())
}

// Table generates a table of rows x cols cells. Each column draws from
// cardinality codes centred on zero, so about half the codes are negative.
// Locks only once per call.
func (r *RNG) Table(rows, cols, cardinality int) []model.Row {
	r.mu.Lock()
	defer r.mu.Unlock()

	offset := int32(cardinality / 2)
	out := make([]model.Row, rows)
	for i := range out {
		row := make(model.Row, cols)
		for c := range row {
			row[c] = int32(r.rand.Intn(cardinality)) - offset
		}
		out[i] = row
	}
	return out
}

// ExactRows returns, in ascending order, the rows whose cell at column equals
// value.
func ExactRows(rows []model.Row, column int, value int32) []model.RowID {
	var out []model.RowID
	for i, row := range rows {
		if row[column] == value {
			out = append(out, model.RowID(i))
		}
	}
	return out
}

// DistinctValues returns the number of distinct codes in each column.
func DistinctValues(rows []model.Row) []int {
	if len(rows) == 0 {
		return nil
	}
	sets := make([]map[int32]struct{}, len(rows[0]))
	for c := range sets {
		sets[c] = make(map[int32]struct{})
	}
	for _, row := range rows {
		for c, v := range row {
			sets[c][v] = struct{}{}
		}
	}
	out := make([]int, len(sets))
	for c, s := range sets {
		out[c] = len(s)
	}
	return out
}
