// Package arx finds the items a minimal sample unique search is built from.
//
// An item is one (column, value) pair of a table plus the rows in which it
// occurs. A search for minimal sample uniques, the smallest column
// combinations whose joint values single out exactly one row, starts from
// these items and combines them by intersecting their row sets.
//
// # Quick Start
//
//	rows := []model.Row{
//	    {1, 100, 0},
//	    {1, 100, 1},
//	    {2, 200, 0},
//	}
//	idx, _ := arx.Build(ctx, rows, arx.WithShards(4))
//
//	zip, _ := idx.Get(1, 100)
//	fmt.Println(zip, zip.Support()) // (1,100) 2
//
//	for _, it := range idx.Uniques() {
//	    fmt.Println("unique:", it)
//	}
//
// # Packages
//
//   - item: the Item type, its packed Key and identity contract
//   - rowset: Roaring-backed row-support sets
//   - itemindex: interning, partitioned scans and snapshots
//
// # Snapshots
//
// Partial indexes built in separate processes can be saved, shipped and
// merged:
//
//	arx.Save(ctx, w, idx, arx.WithCompression(arx.CompressionZSTD))
//	part, _ := arx.Load(ctx, r)
//	arx.Merge(ctx, idx, []*arx.Index{part})
package arx
