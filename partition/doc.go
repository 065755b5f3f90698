// Package partition splits integer sequences into blocks for bit packing.
//
// Every value is first mapped to a cost unit, the bit width it will occupy once packed.
// Widths 13..32 are rounded up to 16, 20 or 32, so a cost unit is always one of the 16
// canonical widths in CanonicalWidths. A block of K values whose widest cost unit is B
// then costs K*B bits plus a fixed per-block header overhead, and a partitioner chooses
// the block boundaries that minimize the total.
//
// Two partitioners are provided:
//
//   - Approximate: windowed shortest path over all block lengths. Runs in
//     O(n * windows) time and stays within a (1+ε1) factor of the optimum.
//   - Exact: shortest path restricted to a small menu of block lengths, with an optional
//     second menu for runs of zeros. Runs in O(n * maxBlockLen) time and is optimal for
//     its menu.
//
// Both are immutable after construction and safe for concurrent use.
package partition
