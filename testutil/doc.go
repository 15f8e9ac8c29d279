// Package testutil provides testing utilities for arx.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random encoded tables and computing
// item support by brute force.
//
// # Random Tables
//
//	rng := testutil.NewRNG(seed)
//	rows := rng.Table(1000, 6, 40) // 1000 rows, 6 columns, 40 codes per column
//
// # Exact Support (Ground Truth)
//
//	want := testutil.ExactRows(rows, column, value)
package testutil
