package itemindex

import (
	"errors"
	"fmt"
)

var (
	// ErrRaggedRow is returned when a row's width differs from the first row's.
	ErrRaggedRow = errors.New("ragged row")

	// ErrTooManyRows is returned when a table has more rows than a RowID can address.
	ErrTooManyRows = errors.New("too many rows")

	// ErrCorrupt is returned when snapshot corruption is detected (checksum mismatch, etc.).
	ErrCorrupt = errors.New("snapshot corruption detected")

	// ErrIncompatibleFormat is returned when the snapshot format is not supported.
	ErrIncompatibleFormat = errors.New("incompatible snapshot format")
)

// RowWidthError reports a row whose number of columns differs from the table's.
type RowWidthError struct {
	Row      int
	Expected int
	Actual   int
}

func (e *RowWidthError) Error() string {
	return fmt.Sprintf("row %d has %d columns, expected %d", e.Row, e.Actual, e.Expected)
}

func (e *RowWidthError) Unwrap() error { return ErrRaggedRow }
