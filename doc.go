// Package openpath finds shortest Hamiltonian paths over dense distance
// matrices and benchmarks exact against heuristic search.
//
// Layout:
//
//	matrix/           Dense row-major distance matrices, generators, relabeling
//	tsp/              open-path solvers: Held–Karp (exact), 2-opt local search,
//	                  multi-start, routes and city sets
//	internal/config   YAML + environment configuration for the harness
//	internal/logging  zap logger construction
//	internal/harness  benchmark sweep, CSV/table reports, Prometheus metrics
//	cmd/pathbench     CLI: `pathbench run`, `pathbench solve`
//
// The solver packages are pure: no logging, no global state, no panics on
// user input. Every randomized routine is reproducible from a seed.
package openpath
