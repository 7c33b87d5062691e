// SPDX-License-Identifier: MIT
// Package matrix provides the distance-matrix abstraction consumed by the
// path solvers in package tsp.
//
// The package provides:
//
//   - Matrix: a uniform, bounds-checked interface over n×n float64 tables.
//   - Dense: a row-major implementation with flat backing storage.
//   - FromRows: strict ingestion of [][]float64 (ragged input is rejected).
//   - NewRandomSymmetric: seeded generator of integer-weighted symmetric
//     instances with a zero diagonal, used by the benchmark harness.
//   - Permute: relabeling of cities (rows and columns permuted together).
//
// An empty 0×0 Dense is a legal value: it models an instance with no cities.
package matrix
