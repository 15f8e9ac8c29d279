// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent silent truncation when
// converting between Go's platform-dependent int and the fixed-width types
// used for column indexes, value codes and row identifiers.
//
// Use cases:
//   - Validating caller-supplied column/value codes before packing them
//   - Converting table positions into 32-bit row identifiers
//   - Validating untrusted counts read from snapshots
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
