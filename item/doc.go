// Package item provides the atomic building block of a minimal sample unique
// search: a single (column, value) pair observed in a table together with the
// rows in which it occurs.
//
// # Identity
//
// An Item's identity is the pair (column, value) and nothing else. Two items
// with the same pair are Equal and share Hash and Key even while their row
// sets differ, so an item can be interned and looked up while its rows are
// still being accumulated.
//
// Key packs the pair into one uint64 for flat integer lookups on the scan hot
// path:
//
//	┌──────────────── 64 bits ─────────────────┐
//	│  column (32 bits)  │  value (32 bits)     │
//	└──────────────────────────────────────────┘
//
// Both halves keep the raw bit pattern of the int32, so negative value codes
// never collide with positive ones.
//
// # Rows
//
// The row set only grows. AddRow is idempotent and AddRows is an idempotent,
// commutative union, so partial items from separate shards can be merged in
// any order.
//
// # Concurrency
//
// Items are not safe for concurrent mutation. Either confine each worker to a
// private Item and merge with AddRows on one goroutine, or synchronize calls
// to AddRow/AddRows externally. Read-only use after the scan is safe.
package item
