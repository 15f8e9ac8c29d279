// Package rowset provides the row-support sets attached to items.
//
// A Set is a compressed set of RowIDs backed by a 32-bit Roaring Bitmap.
// Roaring keeps both sparse sets (rare values) and dense sets (common values)
// small, and gives fast unions for merging partial scans and fast
// intersections for combining items into itemsets:
//
//	support := rowset.Intersect(a.Rows(), b.Rows()).Cardinality()
//
// A Set is not safe for concurrent mutation.
package rowset
