package item

import "errors"

// ErrOutOfRange is returned when a column or value does not fit in 32 bits.
var ErrOutOfRange = errors.New("column or value out of 32-bit range")
