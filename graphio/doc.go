// Package graphio reads graphs from and writes graphs to edge-list text
// files.
//
// A graph file lists one edge per line as
//
//	node1,node2[,weight]
//
// where the optional weight is required on every edge line when reading a
// weighted graph. An isolated node is a line holding a bare node ID. Lines
// whose first byte is '#' are comments. Node IDs are unsigned decimal
// integers that must fit in an int32; a weight carries at most one minus
// sign and one decimal point, and its integer part must also fit in an
// int32.
//
// Example of a weighted graph with one isolated node:
//
//	# a triangle and a loner
//	0,1,3.14159
//	1,2,2.71828
//	42
//
// Read parses an entire file strictly: any malformed line, duplicate
// edge, or disallowed self-loop aborts with an error naming the offending
// line, and a file that specifies no node at all is rejected. Write
// refuses to overwrite an existing file, walks the nodes in ascending ID
// order, emits isolated nodes as bare IDs, and writes each undirected
// edge once in canonical order.
package graphio
