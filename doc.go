// Package divide splits a slice into a fixed number of near-equal portions.
//
// Unlike size-based chunking, which yields a variable number of chunks of a
// fixed size, [Divide] and [DivideMut] always yield exactly n portions whose
// lengths differ by at most one. Longer portions come first. If the slice is
// shorter than n, trailing portions are empty.
//
// [Divide] yields read-only [View] values. [DivideMut] yields subslices of the
// source that may be written to and handed to separate goroutines: their index
// ranges never overlap and their capacity is clipped, so appending to one
// portion never spills into the next.
//
// Portion boundaries are described by [Plan], which can be used on its own to
// split index ranges of data that is not a slice.
package divide
