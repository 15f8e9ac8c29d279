// Package model defines core types shared by the arx packages.
//
// # Identity Types
//
//   - RowID: Dense, zero-based index of a record in the scanned table (uint32)
//   - Row: One record as integer-encoded column values
//
// Value encodings are owned by the data loader; arx treats every cell as an
// opaque int32 code.
package model
