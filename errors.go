package arx

import (
	"errors"
	"fmt"

	"github.com/yxp1992/arx/item"
	"github.com/yxp1992/arx/itemindex"
)

var (
	// ErrOutOfRange is returned when a column, value or row count does not fit
	// its 32-bit encoding.
	ErrOutOfRange = errors.New("out of range")

	// ErrCorrupt is returned when a snapshot fails validation.
	ErrCorrupt = errors.New("data corruption detected")

	// ErrIncompatibleFormat is returned when a snapshot format is not supported.
	ErrIncompatibleFormat = errors.New("incompatible format")
)

// ErrRowWidth indicates a row whose width differs from the table's.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrRowWidth struct {
	Row      int
	Expected int
	Actual   int
	cause    error
}

func (e *ErrRowWidth) Error() string {
	return fmt.Sprintf("row %d: width mismatch: expected %d, got %d", e.Row, e.Expected, e.Actual)
}

func (e *ErrRowWidth) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var rwe *itemindex.RowWidthError
	if errors.As(err, &rwe) {
		return &ErrRowWidth{Row: rwe.Row, Expected: rwe.Expected, Actual: rwe.Actual, cause: err}
	}
	if errors.Is(err, item.ErrOutOfRange) || errors.Is(err, itemindex.ErrTooManyRows) {
		return fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}
	if errors.Is(err, itemindex.ErrCorrupt) {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if errors.Is(err, itemindex.ErrIncompatibleFormat) {
		return fmt.Errorf("%w: %w", ErrIncompatibleFormat, err)
	}

	return err
}
