// Package builder assembles graphs from composable topology constructors.
//
// Build creates a graph and applies constructors in order; each constructor
// is a deterministic mutation (Path, Cycle, Star, Complete, RandomSparse)
// over node IDs 0..n-1. Constructors honor the graph's mode flags: on a
// weighted graph every edge receives a weight from the configured weight
// function, on a directed graph edges are emitted in ascending source
// order, and RandomSparse tries self-loops only when the graph allows
// them.
//
// Determinism: the same constructors, options, and seed always produce the
// same graph. Stochastic constructors draw from a PRNG fixed by WithSeed.
package builder
