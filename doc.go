// Package grava is an in-memory graph library built on hashed containers:
// a compact graph core plus the data structures and algorithms around it.
//
// 🚀 What is grava?
//
//	A single-threaded, hash-backed graph toolkit that brings together:
//		• Core primitives: directed/undirected, weighted/unweighted graphs
//		  with optional self-loops, built on universal-hash sets and dicts
//		• Containers: growable array, hash set, hash dict, addressable
//		  min-heap, circular queue, stack
//		• Traversals: BFS/DFS search trees, pre/post-order, bottom-up
//		• Shortest paths: Dijkstra with in-place re-keying
//		• I/O: plain edge-list text format, read & write
//		• Queries: connectivity, tree test, graph equality, random node
//		• Builders: path, cycle, star, complete, Erdős–Rényi generators
//
// Under the hood, everything is organized per subpackage:
//
//	builder/  — composable topology constructors
//	core/     — fundamental Graph type, mutators, queries, iterators
//	dijkstra/ — single-source shortest paths
//	dynarray/ — growable array primitive
//	graphio/  — edge-list text codec
//	hashdict/ — uint32-keyed hash dictionary
//	hashset/  — uint32 hash set
//	minheap/  — addressable minimum binary heap
//	query/    — connectivity, tree, equality, random-node queries
//	queue/    — circular FIFO buffer
//	stack/    — LIFO on the growable array
//	uhash/    — universal multiply-shift hashing
//	visit/    — graph traversals and tree walks
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	represents a square with four nodes and four edges.
//
//	go get github.com/katalvlaran/grava
package grava
