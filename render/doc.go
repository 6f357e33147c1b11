// Package render emits Graphviz DOT artifacts for a Max-Cut problem and
// its solution: the plain problem graph, and the partitioned graph with
// set-one nodes in red, set-two nodes in blue, and cut edges dashed.
//
// Output is deterministic: nodes in ascending label order, edges in the
// graph's insertion order. The package only reads the Graph and Partition
// values it is handed; it never calls back into the modeling core.
package render
