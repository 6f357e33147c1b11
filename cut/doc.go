// Package cut decodes a solver's bit assignment into a two-set partition
// of the graph's nodes and scores it with an independent cut count.
//
// Decode requires a complete 0/1 assignment: nodes with value 1 go to
// SetOne, value 0 to SetTwo, and any graph node the assignment omits is
// ErrMissingAssignment. Spin-domain assignments must be normalized with
// NormalizeSpins first — Decode performs no domain validation by contract.
//
// Score counts edges whose endpoints land on opposite sides. It never
// consults a solver-reported energy; the two agreeing is exactly the
// verification the rest of the module is built around. An edge endpoint
// on neither side is an upstream decoding defect and raises rather than
// silently undercounting.
package cut
