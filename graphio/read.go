// Package graphio: reading graphs from edge-list files.
//
// This file implements Read and the line parser: comment detection, node
// and weight validation, and the strict weighted-line rule (an edge line
// of a weighted graph must carry a weight).
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/grava/core"
)

// Sentinel errors for graph file operations.
var (
	// ErrBadNodeID indicates a node token that is not an unsigned decimal
	// integer fitting in an int32.
	ErrBadNodeID = errors.New("graphio: invalid node ID")

	// ErrBadWeight indicates a weight token that is not a decimal number
	// with at most one sign and one decimal point, or whose value
	// overflows.
	ErrBadWeight = errors.New("graphio: invalid edge weight")

	// ErrMissingWeight indicates an edge line without a weight in a file
	// read as a weighted graph.
	ErrMissingWeight = errors.New("graphio: edge weight not found")

	// ErrEmptyGraph indicates a file that specifies no node at all, or an
	// attempt to write a graph with no nodes.
	ErrEmptyGraph = errors.New("graphio: graph has no nodes")
)

const (
	comment   = '#'
	delimiter = ","

	maxNodeID = math.MaxInt32
)

// lineKind classifies one parsed line of a graph file.
type lineKind int

const (
	commentLine lineKind = iota
	nodeLine
	edgeLine
)

// Read parses the graph in the named file. The options configure the
// graph the edges are inserted into, exactly as core.NewGraph takes them;
// reading a weighted file into an unweighted graph ignores the weights,
// while reading a weighted graph demands a weight on every edge line.
//
// Returns an error naming the offending line if the file is malformed,
// ErrEmptyGraph if it specifies no node, and the underlying os error if
// the file cannot be opened.
func Read(path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	g := core.NewGraph(opts...)
	scanner := bufio.NewScanner(f)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()

		kind, u, v, weight, perr := parseLine(line, g.Weighted(), path, n)
		if perr != nil {
			return nil, perr
		}

		switch kind {
		case commentLine:
			continue
		case nodeLine:
			if err = g.AddNode(u); err != nil {
				return nil, fmt.Errorf(
					"graphio: node at line %d in %s: %q: %w", n, path, strings.TrimSpace(line), err)
			}
		case edgeLine:
			if g.Weighted() {
				err = g.AddEdgeWeight(u, v, weight)
			} else {
				err = g.AddEdge(u, v)
			}
			if err != nil {
				return nil, fmt.Errorf(
					"graphio: edge at line %d in %s: %q: %w", n, path, strings.TrimSpace(line), err)
			}
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read %s: %w", path, err)
	}

	if g.NodeCount() == 0 {
		return nil, fmt.Errorf("graphio: %s: %w", path, ErrEmptyGraph)
	}

	return g, nil
}

// parseLine classifies and decodes one line of a graph file.
func parseLine(line string, weighted bool, path string, n int) (kind lineKind, u, v uint32, weight float64, err error) {
	if len(line) > 0 && line[0] == comment {
		return commentLine, 0, 0, 0, nil
	}

	// An edge line of a weighted graph must carry a weight: two commas
	// with a non-blank character right after the second.
	if weighted && strings.Contains(line, delimiter) {
		if !hasWeight(strings.TrimSpace(line)) {
			return 0, 0, 0, 0, fmt.Errorf(
				"graphio: %w at line %d in %s: %q",
				ErrMissingWeight, n, path, strings.TrimSpace(line))
		}
	}

	if !strings.Contains(line, delimiter) {
		u, err = parseNode(strings.TrimSpace(line), path, n)
		if err != nil {
			return 0, 0, 0, 0, err
		}

		return nodeLine, u, 0, 0, nil
	}

	token := strings.Split(line, delimiter)
	if u, err = parseNode(strings.TrimSpace(token[0]), path, n); err != nil {
		return 0, 0, 0, 0, err
	}
	if v, err = parseNode(strings.TrimSpace(token[1]), path, n); err != nil {
		return 0, 0, 0, 0, err
	}
	if weighted {
		if weight, err = parseWeight(strings.TrimSpace(token[2]), path, n); err != nil {
			return 0, 0, 0, 0, err
		}
	}

	return edgeLine, u, v, weight, nil
}

// hasWeight reports whether an edge line carries a weight: a second comma
// followed immediately by something other than a blank or the end of the
// line.
func hasWeight(line string) bool {
	first := strings.Index(line, delimiter)
	if first < 0 {
		return false
	}
	rest := line[first+1:]
	second := strings.Index(rest, delimiter)
	if second < 0 {
		return false
	}
	after := rest[second+1:]
	if after == "" || after[0] == ' ' || after[0] == '\t' {
		return false
	}

	return true
}

// parseNode converts a node token to an ID: decimal digits only, value
// fitting in an int32.
func parseNode(token string, path string, n int) (uint32, error) {
	if token == "" {
		return 0, fmt.Errorf("graphio: %w at line %d in %s: empty token",
			ErrBadNodeID, n, path)
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return 0, fmt.Errorf("graphio: %w at line %d in %s: %q",
				ErrBadNodeID, n, path, token)
		}
	}

	id, err := strconv.ParseUint(token, 10, 64)
	if err != nil || id > maxNodeID {
		return 0, fmt.Errorf("graphio: %w at line %d in %s: %q overflows",
			ErrBadNodeID, n, path, token)
	}

	return uint32(id), nil
}

// parseWeight converts a weight token to a float64. The token may carry
// at most one minus sign and one decimal point; its integer part must fit
// in an int32 and the whole value must not overflow a float64.
func parseWeight(token string, path string, n int) (float64, error) {
	var minus, period int
	for i := 0; i < len(token); i++ {
		switch {
		case token[i] == '-':
			minus++
		case token[i] == '.':
			period++
		case token[i] < '0' || token[i] > '9':
			return 0, fmt.Errorf("graphio: %w at line %d in %s: %q",
				ErrBadWeight, n, path, token)
		}
	}
	if token == "" || minus > 1 || period > 1 {
		return 0, fmt.Errorf("graphio: %w at line %d in %s: %q",
			ErrBadWeight, n, path, token)
	}

	// The integer part must fit in an int32.
	intPart := token
	if i := strings.IndexByte(token, '.'); i >= 0 {
		intPart = token[:i]
	}
	if intPart != "" && intPart != "-" {
		whole, err := strconv.ParseInt(intPart, 10, 64)
		if err != nil || whole > math.MaxInt32 || whole < math.MinInt32 {
			return 0, fmt.Errorf("graphio: %w at line %d in %s: %q overflows",
				ErrBadWeight, n, path, token)
		}
	}

	w, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("graphio: %w at line %d in %s: %q",
			ErrBadWeight, n, path, token)
	}

	return w, nil
}
