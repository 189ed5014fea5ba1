// Package render turns a core.Graph into human-readable output.
//
//   - Text writes the per-vertex listing used by the demo command:
//     vertex and edge counts, then one "V<i>: [j, w<weight>] ..." line per vertex.
//   - DOT exports a Graphviz digraph, optionally highlighting one route.
//
// Both read the graph only through Neighbors, so every backend prints the
// same way up to neighbor order.
package render
