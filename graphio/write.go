// Package graphio: writing graphs to edge-list files.
package graphio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/grava/core"
)

// Write stores the graph in the named file, which must not already exist.
// Nodes are visited in ascending ID order; an isolated node is written as
// a bare ID, every other node contributes its (out-)edges one per line,
// and an undirected edge is written once in canonical order.
//
// Returns ErrEmptyGraph for a graph with no nodes and the underlying os
// error (satisfying errors.Is(err, fs.ErrExist) for an existing file) if
// the file cannot be created.
func Write(g *core.Graph, path string) error {
	if g.NodeCount() == 0 {
		return ErrEmptyGraph
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err = writeNodes(g, w); err != nil {
		return fmt.Errorf("graphio: write %s: %w", path, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("graphio: write %s: %w", path, err)
	}

	return f.Close()
}

// writeNodes walks the graph in ascending node order and emits one line
// per isolated node and per owned edge.
func writeNodes(g *core.Graph, w *bufio.Writer) error {
	nodes := g.Nodes()
	for {
		u, ok := nodes.Next()
		if !ok {
			return nil
		}

		degree, err := g.Degree(u)
		if err != nil {
			return err
		}
		if degree == 0 {
			if _, err = fmt.Fprintf(w, "%d\n", u); err != nil {
				return err
			}
			continue
		}

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return err
		}
		for {
			v, weight, more := neighbors.Next()
			if !more {
				break
			}
			// An undirected edge is stored on both endpoints; write it
			// from the smaller one only.
			if !g.Directed() && u > v {
				continue
			}
			if g.Weighted() {
				_, err = fmt.Fprintf(w, "%d,%d,%s\n", u, v,
					strconv.FormatFloat(weight, 'f', -1, 64))
			} else {
				_, err = fmt.Fprintf(w, "%d,%d\n", u, v)
			}
			if err != nil {
				return err
			}
		}
	}
}
