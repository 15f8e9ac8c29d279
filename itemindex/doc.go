// Package itemindex interns items while a table is scanned.
//
// # Architecture
//
// An Index maps the packed item.Key of every (column, value) pair seen so far
// to its Item:
//
//	items: map[item.Key]*item.Item   - one flat integer lookup per cell
//
// Observe adds one row: for every cell it interns the cell's item and records
// the row in its support set.
//
// # Partitioned Scans
//
// Build splits the table into contiguous shards. Each shard is scanned by its
// own goroutine into a private partial Index, so no item is ever shared
// between workers. The partials are then folded into one Index with Merge on
// the calling goroutine:
//
//	shard 0 ─► partial 0 ─┐
//	shard 1 ─► partial 1 ─┼─► Merge (single goroutine) ─► Index
//	shard 2 ─► partial 2 ─┘
//
// Merge is a union of row sets, so the result does not depend on merge order
// and merging the same partial twice changes nothing.
//
// # Snapshots
//
// Save writes an Index in a compact binary form and ReadIndex reads it back,
// which lets partial indexes produced by separate processes be merged later.
//
//	[magic "ARXI"][version u8][compression u8][block][crc32c u32]
//
// The block holds a varint-encoded item list with Roaring-serialized row sets
// and is optionally compressed with LZ4 or ZSTD.
//
// An Index is not safe for concurrent mutation.
package itemindex
